// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/balticclima/siteapi/internal/model"
)

// Singleton tables hold at most one row, enforced by the slot sentinel column.
// Upserts are atomic INSERT ... ON CONFLICT(slot) DO UPDATE statements, so two
// concurrent first writers can never produce two rows. The original record's
// identity and creation time survive the conflict branch.

// GetAbout returns the about block. sql.ErrNoRows signals that none exists.
func (q *Queries) GetAbout(ctx context.Context) (model.About, error) {
	var a model.About
	err := q.db.QueryRowContext(ctx, `
		SELECT id, title, content, image, created_at, updated_at FROM about`,
	).Scan(&a.ID, &a.Title, &a.Content, &a.Image, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

// UpsertAbout creates the sole about row or updates it in place.
func (q *Queries) UpsertAbout(ctx context.Context, a model.About) (model.About, error) {
	now := time.Now().UTC()
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO about (slot, id, title, content, image, created_at, updated_at)
		VALUES (0, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			title = excluded.title,
			content = excluded.content,
			image = excluded.image,
			updated_at = excluded.updated_at
		RETURNING id, title, content, image, created_at, updated_at`,
		uuid.NewString(), a.Title, a.Content, a.Image, now, now,
	).Scan(&a.ID, &a.Title, &a.Content, &a.Image, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return model.About{}, fmt.Errorf("upserting about: %w", err)
	}
	return a, nil
}

// GetContact returns the contact block. sql.ErrNoRows signals that none exists.
func (q *Queries) GetContact(ctx context.Context) (model.Contact, error) {
	var c model.Contact
	err := q.db.QueryRowContext(ctx, `
		SELECT id, title, phone, email, address, latitude, longitude,
		       weekday_hours, saturday_hours, sunday_hours, created_at, updated_at
		FROM contact`,
	).Scan(&c.ID, &c.Title, &c.Phone, &c.Email, &c.Address, &c.Latitude, &c.Longitude,
		&c.WeekdayHours, &c.SaturdayHours, &c.SundayHours, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// UpsertContact creates the sole contact row or updates it in place.
func (q *Queries) UpsertContact(ctx context.Context, c model.Contact) (model.Contact, error) {
	now := time.Now().UTC()
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO contact (slot, id, title, phone, email, address, latitude, longitude,
		                     weekday_hours, saturday_hours, sunday_hours, created_at, updated_at)
		VALUES (0, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			title = excluded.title,
			phone = excluded.phone,
			email = excluded.email,
			address = excluded.address,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			weekday_hours = excluded.weekday_hours,
			saturday_hours = excluded.saturday_hours,
			sunday_hours = excluded.sunday_hours,
			updated_at = excluded.updated_at
		RETURNING id, title, phone, email, address, latitude, longitude,
		          weekday_hours, saturday_hours, sunday_hours, created_at, updated_at`,
		uuid.NewString(), c.Title, c.Phone, c.Email, c.Address, c.Latitude, c.Longitude,
		c.WeekdayHours, c.SaturdayHours, c.SundayHours, now, now,
	).Scan(&c.ID, &c.Title, &c.Phone, &c.Email, &c.Address, &c.Latitude, &c.Longitude,
		&c.WeekdayHours, &c.SaturdayHours, &c.SundayHours, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return model.Contact{}, fmt.Errorf("upserting contact: %w", err)
	}
	return c, nil
}

// GetHero returns the hero banner. sql.ErrNoRows signals that none exists.
func (q *Queries) GetHero(ctx context.Context) (model.Hero, error) {
	var h model.Hero
	err := q.db.QueryRowContext(ctx, `
		SELECT id, subheading, heading, button_text, background_image, created_at, updated_at
		FROM hero`,
	).Scan(&h.ID, &h.Subheading, &h.Heading, &h.ButtonText, &h.BackgroundImage, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}

// UpsertHero creates the sole hero row or updates it in place.
func (q *Queries) UpsertHero(ctx context.Context, h model.Hero) (model.Hero, error) {
	now := time.Now().UTC()
	err := q.db.QueryRowContext(ctx, `
		INSERT INTO hero (slot, id, subheading, heading, button_text, background_image, created_at, updated_at)
		VALUES (0, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			subheading = excluded.subheading,
			heading = excluded.heading,
			button_text = excluded.button_text,
			background_image = excluded.background_image,
			updated_at = excluded.updated_at
		RETURNING id, subheading, heading, button_text, background_image, created_at, updated_at`,
		uuid.NewString(), h.Subheading, h.Heading, h.ButtonText, h.BackgroundImage, now, now,
	).Scan(&h.ID, &h.Subheading, &h.Heading, &h.ButtonText, &h.BackgroundImage, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return model.Hero{}, fmt.Errorf("upserting hero: %w", err)
	}
	return h, nil
}

// GetFooter returns the footer block. sql.ErrNoRows signals that none exists.
func (q *Queries) GetFooter(ctx context.Context) (model.Footer, error) {
	var f model.Footer
	var social, links string
	err := q.db.QueryRowContext(ctx, `
		SELECT id, copyright, social_links, links, created_at, updated_at FROM footer`,
	).Scan(&f.ID, &f.Copyright, &social, &links, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return model.Footer{}, err
	}
	if err := json.Unmarshal([]byte(social), &f.SocialLinks); err != nil {
		return model.Footer{}, fmt.Errorf("decoding social links: %w", err)
	}
	if err := json.Unmarshal([]byte(links), &f.Links); err != nil {
		return model.Footer{}, fmt.Errorf("decoding footer links: %w", err)
	}
	return f, nil
}

// UpsertFooter creates the sole footer row or updates it in place. The link
// maps are stored as JSON text.
func (q *Queries) UpsertFooter(ctx context.Context, f model.Footer) (model.Footer, error) {
	if f.SocialLinks == nil {
		f.SocialLinks = map[string]string{}
	}
	if f.Links == nil {
		f.Links = map[string]string{}
	}
	social, err := encodeLinkMap(f.SocialLinks)
	if err != nil {
		return model.Footer{}, fmt.Errorf("encoding social links: %w", err)
	}
	links, err := encodeLinkMap(f.Links)
	if err != nil {
		return model.Footer{}, fmt.Errorf("encoding footer links: %w", err)
	}

	now := time.Now().UTC()
	err = q.db.QueryRowContext(ctx, `
		INSERT INTO footer (slot, id, copyright, social_links, links, created_at, updated_at)
		VALUES (0, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			copyright = excluded.copyright,
			social_links = excluded.social_links,
			links = excluded.links,
			updated_at = excluded.updated_at
		RETURNING id, copyright, created_at, updated_at`,
		uuid.NewString(), f.Copyright, social, links, now, now,
	).Scan(&f.ID, &f.Copyright, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return model.Footer{}, fmt.Errorf("upserting footer: %w", err)
	}
	return f, nil
}

func encodeLinkMap(m map[string]string) (string, error) {
	if m == nil {
		m = map[string]string{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
