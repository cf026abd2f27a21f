// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// makeMultipartFile builds a parsed multipart file part with the given
// filename, content type, and payload.
func makeMultipartFile(t *testing.T, filename, contentType string, data []byte) (multipart.File, *multipart.FileHeader) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("creating part: %v", err)
	}
	if _, err := part.Write(data); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/admin/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	file, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("parsing form file: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })
	return file, header
}

// pngBytes encodes a small solid PNG image.
func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func newTestUploadService(t *testing.T) (*UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	svc, err := NewUploadService(dir, "http://localhost:3000")
	if err != nil {
		t.Fatalf("NewUploadService: %v", err)
	}
	return svc, dir
}

func TestUpload_AcceptsImage(t *testing.T) {
	svc, dir := newTestUploadService(t)

	file, header := makeMultipartFile(t, "photo.png", "image/png", pngBytes(t, 10, 10))

	stored, err := svc.Save(file, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if !strings.HasSuffix(stored.Name, ".png") {
		t.Errorf("stored name %q does not keep the original extension", stored.Name)
	}
	if !strings.HasPrefix(stored.URL, "http://localhost:3000/uploads/") || !strings.HasSuffix(stored.URL, ".png") {
		t.Errorf("URL = %q, want base-address upload URL ending in .png", stored.URL)
	}
	if _, err := os.Stat(filepath.Join(dir, stored.Name)); err != nil {
		t.Errorf("stored file missing on disk: %v", err)
	}
}

func TestUpload_GeneratedNamesAreFresh(t *testing.T) {
	svc, _ := newTestUploadService(t)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		file, header := makeMultipartFile(t, "photo.png", "image/png", pngBytes(t, 4, 4))
		stored, err := svc.Save(file, header)
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		if seen[stored.Name] {
			t.Fatalf("name %q generated twice", stored.Name)
		}
		seen[stored.Name] = true
	}
}

func TestUpload_RejectsExtension(t *testing.T) {
	svc, dir := newTestUploadService(t)

	// Declared MIME type does not rescue a disallowed extension.
	file, header := makeMultipartFile(t, "script.exe", "image/png", []byte("MZ junk"))
	if _, err := svc.Save(file, header); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("Save(script.exe) = %v, want ErrUnsupportedFileType", err)
	}

	// Case-insensitive extension match.
	file, header = makeMultipartFile(t, "PHOTO.PNG", "image/png", pngBytes(t, 4, 4))
	if _, err := svc.Save(file, header); err != nil {
		t.Errorf("Save(PHOTO.PNG) = %v, want accepted", err)
	}

	assertDirHasOnly(t, dir, 1)
}

func TestUpload_RejectsMimeType(t *testing.T) {
	svc, dir := newTestUploadService(t)

	file, header := makeMultipartFile(t, "photo.png", "application/octet-stream", pngBytes(t, 4, 4))
	if _, err := svc.Save(file, header); !errors.Is(err, ErrUnsupportedFileType) {
		t.Errorf("Save with wrong MIME = %v, want ErrUnsupportedFileType", err)
	}

	assertDirHasOnly(t, dir, 0)
}

func TestUpload_RejectsOversized(t *testing.T) {
	svc, dir := newTestUploadService(t)

	big := make([]byte, MaxUploadSize+1)
	file, header := makeMultipartFile(t, "big.jpg", "image/jpeg", big)
	if _, err := svc.Save(file, header); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("Save oversized = %v, want ErrFileTooLarge", err)
	}

	// The rejected payload never appears on disk.
	assertDirHasOnly(t, dir, 0)
}

func TestUpload_ThumbnailForLargeImages(t *testing.T) {
	svc, dir := newTestUploadService(t)

	file, header := makeMultipartFile(t, "wide.png", "image/png", pngBytes(t, ThumbnailWidth*2, 100))
	stored, err := svc.Save(file, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	thumb := strings.TrimSuffix(stored.Name, ".png") + "_thumb.png"
	if _, err := os.Stat(filepath.Join(dir, thumb)); err != nil {
		t.Errorf("thumbnail %q missing: %v", thumb, err)
	}
}

func TestUpload_NoThumbnailForSmallImages(t *testing.T) {
	svc, dir := newTestUploadService(t)

	file, header := makeMultipartFile(t, "small.png", "image/png", pngBytes(t, 10, 10))
	if _, err := svc.Save(file, header); err != nil {
		t.Fatalf("Save: %v", err)
	}

	assertDirHasOnly(t, dir, 1)
}

func assertDirHasOnly(t *testing.T, dir string, want int) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != want {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("upload dir holds %d files (%v), want %d", len(entries), names, want)
	}
}
