// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service holds the domain services behind the HTTP handlers: upload
// ingestion, content sanitization, and upload-directory maintenance.
package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Upload limits.
const (
	// MaxUploadSize caps a single uploaded file at 5MB.
	MaxUploadSize = 5 * 1024 * 1024

	// ThumbnailWidth is the bounding width of generated thumbnail variants.
	ThumbnailWidth = 400
)

// Upload rejection errors. Handlers map them to 400-class responses.
var (
	ErrUnsupportedFileType = errors.New("only image files can be uploaded")
	ErrFileTooLarge        = fmt.Errorf("file size exceeds the maximum of %d bytes", MaxUploadSize)
)

// allowedExtensions is the image allow-list, matched case-insensitively
// against the declared filename extension.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// allowedMimeTypes is the allow-list for the declared Content-Type.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// StoredFile describes one accepted upload.
type StoredFile struct {
	Name string // generated filename inside the upload dir
	Size int64
	URL  string // absolute retrieval URL
}

// UploadService validates and stores uploaded image files. Generated names are
// unique per call, so concurrent uploads never collide and existing files are
// never overwritten.
type UploadService struct {
	uploadDir string
	baseURL   string
	now       func() time.Time
}

// NewUploadService creates an upload service writing into uploadDir. The
// directory is created if absent. baseURL is the server's public address used
// to build retrieval URLs.
func NewUploadService(uploadDir, baseURL string) (*UploadService, error) {
	if uploadDir == "" {
		uploadDir = "./uploads"
	}
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &UploadService{
		uploadDir: uploadDir,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}, nil
}

// Save validates the declared extension, MIME type, and size, then writes the
// file under a generated name and returns its retrieval URL. Oversized
// payloads are refused before any byte reaches durable storage, and a copy
// that overruns the limit mid-stream is aborted and removed.
func (s *UploadService) Save(file multipart.File, header *multipart.FileHeader) (*StoredFile, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		return nil, ErrUnsupportedFileType
	}

	mimeType := strings.ToLower(strings.TrimSpace(header.Header.Get("Content-Type")))
	// Strip parameters like "; charset=..." before matching.
	if base, _, found := strings.Cut(mimeType, ";"); found {
		mimeType = strings.TrimSpace(base)
	}
	if !allowedMimeTypes[mimeType] {
		return nil, ErrUnsupportedFileType
	}

	if header.Size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	name, err := s.generateName(ext)
	if err != nil {
		return nil, fmt.Errorf("generating filename: %w", err)
	}

	path := filepath.Join(s.uploadDir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("creating file: %w", err)
	}

	// Copy at most one byte past the cap so an undeclared oversize stream is
	// detected; the partial file is removed before reporting the rejection.
	written, err := io.Copy(dst, io.LimitReader(file, MaxUploadSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("writing file: %w", err)
	}
	if written > MaxUploadSize {
		_ = os.Remove(path)
		return nil, ErrFileTooLarge
	}

	// Thumbnail generation is best effort: a stored original that fails to
	// decode is kept without a variant.
	s.createThumbnail(path, name, ext)

	return &StoredFile{
		Name: name,
		Size: written,
		URL:  s.baseURL + "/uploads/" + name,
	}, nil
}

// generateName builds a collision-resistant filename from the current
// timestamp, a random suffix, and the original extension.
func (s *UploadService) generateName(ext string) (string, error) {
	suffix := make([]byte, 6)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), hex.EncodeToString(suffix), ext), nil
}

// createThumbnail writes a width-bounded variant next to the original,
// named <base>_thumb<ext>. GIFs are skipped to preserve animation.
func (s *UploadService) createThumbnail(path, name, ext string) {
	if ext == ".gif" || ext == ".webp" {
		// No pure-Go encoder for webp; gif thumbnails would drop frames.
		return
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return
	}
	if img.Bounds().Dx() <= ThumbnailWidth {
		return
	}

	thumb := imaging.Resize(img, ThumbnailWidth, 0, imaging.Lanczos)
	base := strings.TrimSuffix(name, ext)
	_ = imaging.Save(thumb, filepath.Join(s.uploadDir, base+"_thumb"+ext))
}
