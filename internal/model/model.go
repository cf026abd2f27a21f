// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the domain records served by the content API and the
// patch types that describe their partial-update schemas. Every record carries
// an opaque UUID identity assigned at creation time and never changed.
package model

import "time"

// Product is a catalog item with many independent instances.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       *float64  `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProductPatch is the partial-update payload for Product. Nil fields are left
// untouched on update; unknown JSON fields are ignored.
type ProductPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
}

// Apply merges the non-nil patch fields into the product.
func (p *Product) Apply(patch ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
}

// Service is a catalog entry describing one offered service.
type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ServicePatch is the partial-update payload for Service.
type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// Apply merges the non-nil patch fields into the service.
func (s *Service) Apply(patch ServicePatch) {
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Description != nil {
		s.Description = *patch.Description
	}
	if patch.Image != nil {
		s.Image = *patch.Image
	}
}

// About is the singleton company description block.
type About struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AboutPatch is the partial-update payload for About.
type AboutPatch struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Image   *string `json:"image"`
}

// Apply merges the non-nil patch fields into the about block.
func (a *About) Apply(patch AboutPatch) {
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Image != nil {
		a.Image = *patch.Image
	}
}

// Contact is the singleton contact-details block.
type Contact struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	Address       string    `json:"address"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	WeekdayHours  string    `json:"weekdayHours"`
	SaturdayHours string    `json:"saturdayHours"`
	SundayHours   string    `json:"sundayHours"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ContactPatch is the partial-update payload for Contact.
type ContactPatch struct {
	Title         *string  `json:"title"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	Address       *string  `json:"address"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	WeekdayHours  *string  `json:"weekdayHours"`
	SaturdayHours *string  `json:"saturdayHours"`
	SundayHours   *string  `json:"sundayHours"`
}

// Apply merges the non-nil patch fields into the contact block.
func (c *Contact) Apply(patch ContactPatch) {
	if patch.Title != nil {
		c.Title = *patch.Title
	}
	if patch.Phone != nil {
		c.Phone = *patch.Phone
	}
	if patch.Email != nil {
		c.Email = *patch.Email
	}
	if patch.Address != nil {
		c.Address = *patch.Address
	}
	if patch.Latitude != nil {
		c.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		c.Longitude = *patch.Longitude
	}
	if patch.WeekdayHours != nil {
		c.WeekdayHours = *patch.WeekdayHours
	}
	if patch.SaturdayHours != nil {
		c.SaturdayHours = *patch.SaturdayHours
	}
	if patch.SundayHours != nil {
		c.SundayHours = *patch.SundayHours
	}
}

// Hero is the singleton homepage hero banner.
type Hero struct {
	ID              string    `json:"id"`
	Subheading      string    `json:"subheading"`
	Heading         string    `json:"heading"`
	ButtonText      string    `json:"buttonText"`
	BackgroundImage string    `json:"backgroundImage"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// HeroPatch is the partial-update payload for Hero.
type HeroPatch struct {
	Subheading      *string `json:"subheading"`
	Heading         *string `json:"heading"`
	ButtonText      *string `json:"buttonText"`
	BackgroundImage *string `json:"backgroundImage"`
}

// Apply merges the non-nil patch fields into the hero banner.
func (h *Hero) Apply(patch HeroPatch) {
	if patch.Subheading != nil {
		h.Subheading = *patch.Subheading
	}
	if patch.Heading != nil {
		h.Heading = *patch.Heading
	}
	if patch.ButtonText != nil {
		h.ButtonText = *patch.ButtonText
	}
	if patch.BackgroundImage != nil {
		h.BackgroundImage = *patch.BackgroundImage
	}
}

// DefaultHero is the value served while no hero row exists yet. It is never
// persisted by the read path.
func DefaultHero() Hero {
	return Hero{
		Subheading: "Welcome to Baltic Clima",
		Heading:    "Professional Climate and Appliance Solutions",
		ButtonText: "Explore Our Services",
	}
}

// Footer is the singleton page footer: a copyright line plus two free-form
// link maps rendered by the site.
type Footer struct {
	ID          string            `json:"id"`
	Copyright   string            `json:"copyright"`
	SocialLinks map[string]string `json:"socialLinks"`
	Links       map[string]string `json:"links"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// FooterPatch is the partial-update payload for Footer. The link maps are
// replaced wholesale when present, matching how the admin console submits them.
type FooterPatch struct {
	Copyright   *string           `json:"copyright"`
	SocialLinks map[string]string `json:"socialLinks"`
	Links       map[string]string `json:"links"`
}

// Apply merges the non-nil patch fields into the footer.
func (f *Footer) Apply(patch FooterPatch) {
	if patch.Copyright != nil {
		f.Copyright = *patch.Copyright
	}
	if patch.SocialLinks != nil {
		f.SocialLinks = patch.SocialLinks
	}
	if patch.Links != nil {
		f.Links = patch.Links
	}
}

// DefaultFooter is the value served while no footer row exists yet.
func DefaultFooter() Footer {
	return Footer{
		Copyright: "Copyright © Baltic Clima 2026",
		SocialLinks: map[string]string{
			"twitter":   "#",
			"facebook":  "#",
			"instagram": "#",
		},
		Links: map[string]string{
			"privacy": "Privacy Policy",
			"terms":   "Terms of Use",
		},
	}
}
