// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/balticclima/siteapi/internal/model"
)

// Collection records are listed in insertion order (rowid), which is the
// store-defined default order the API exposes.

// CreateProduct persists a new product under a freshly generated identity.
func (q *Queries) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO products (id, name, description, price, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, p.Price, p.Image, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return model.Product{}, fmt.Errorf("creating product: %w", err)
	}
	return p, nil
}

// ListProducts returns every product in insertion order.
func (q *Queries) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, name, description, price, image, created_at, updated_at
		FROM products ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct returns one product by identity. sql.ErrNoRows signals absence.
func (q *Queries) GetProduct(ctx context.Context, id string) (model.Product, error) {
	var p model.Product
	err := q.db.QueryRowContext(ctx, `
		SELECT id, name, description, price, image, created_at, updated_at
		FROM products WHERE id = ?`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

// UpdateProduct writes the full merged record back under its identity.
func (q *Queries) UpdateProduct(ctx context.Context, p model.Product) error {
	p.UpdatedAt = time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		UPDATE products SET name = ?, description = ?, price = ?, image = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Description, p.Price, p.Image, p.UpdatedAt, p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	return nil
}

// DeleteProduct removes a product by identity and reports how many rows went.
func (q *Queries) DeleteProduct(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting product: %w", err)
	}
	return res.RowsAffected()
}

// CreateService persists a new service under a freshly generated identity.
func (q *Queries) CreateService(ctx context.Context, s model.Service) (model.Service, error) {
	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := q.db.ExecContext(ctx, `
		INSERT INTO services (id, title, description, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Description, s.Image, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return model.Service{}, fmt.Errorf("creating service: %w", err)
	}
	return s, nil
}

// ListServices returns every service in insertion order.
func (q *Queries) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT id, title, description, image, created_at, updated_at
		FROM services ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing services: %w", err)
	}
	defer rows.Close()

	services := []model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Image, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		services = append(services, s)
	}
	return services, rows.Err()
}

// GetService returns one service by identity. sql.ErrNoRows signals absence.
func (q *Queries) GetService(ctx context.Context, id string) (model.Service, error) {
	var s model.Service
	err := q.db.QueryRowContext(ctx, `
		SELECT id, title, description, image, created_at, updated_at
		FROM services WHERE id = ?`, id,
	).Scan(&s.ID, &s.Title, &s.Description, &s.Image, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// UpdateService writes the full merged record back under its identity.
func (q *Queries) UpdateService(ctx context.Context, s model.Service) error {
	s.UpdatedAt = time.Now().UTC()
	_, err := q.db.ExecContext(ctx, `
		UPDATE services SET title = ?, description = ?, image = ?, updated_at = ?
		WHERE id = ?`,
		s.Title, s.Description, s.Image, s.UpdatedAt, s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}
	return nil
}

// DeleteService removes a service by identity and reports how many rows went.
func (q *Queries) DeleteService(ctx context.Context, id string) (int64, error) {
	res, err := q.db.ExecContext(ctx, `DELETE FROM services WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting service: %w", err)
	}
	return res.RowsAffected()
}

// ListImageRefs returns every image reference string stored on any record.
// The upload sweeper uses it to spot orphaned files.
func (q *Queries) ListImageRefs(ctx context.Context) ([]string, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT image FROM products WHERE image != ''
		UNION SELECT image FROM services WHERE image != ''
		UNION SELECT image FROM about WHERE image != ''
		UNION SELECT background_image FROM hero WHERE background_image != ''`)
	if err != nil {
		return nil, fmt.Errorf("listing image refs: %w", err)
	}
	defer rows.Close()

	var refs []string
	for rows.Next() {
		var ref string
		if err := rows.Scan(&ref); err != nil {
			return nil, fmt.Errorf("scanning image ref: %w", err)
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}
