// Copyright (c) 2026 Baltic Clima SIA
// SPDX-License-Identifier: GPL-3.0-or-later

package api

import (
	"github.com/balticclima/siteapi/internal/model"
	"github.com/balticclima/siteapi/internal/service"
	"github.com/balticclima/siteapi/internal/store"
)

// initResources builds the handler set for every resource. Rich-text fields
// (product and service descriptions, the about content) are sanitized on the
// way in; everything else is stored verbatim.
func (h *Handler) initResources(queries *store.Queries, san *service.Sanitizer) {
	h.Products = newCollection(collectionOps[model.Product, model.ProductPatch]{
		kind:   "product",
		list:   queries.ListProducts,
		get:    queries.GetProduct,
		create: queries.CreateProduct,
		update: queries.UpdateProduct,
		remove: queries.DeleteProduct,
		apply: func(record *model.Product, patch model.ProductPatch) {
			patch.Description = san.CleanPtr(patch.Description)
			record.Apply(patch)
		},
		validate: func(record model.Product) string {
			if record.Name == "" {
				return "Product name is required"
			}
			return ""
		},
	})

	h.Services = newCollection(collectionOps[model.Service, model.ServicePatch]{
		kind:   "service",
		list:   queries.ListServices,
		get:    queries.GetService,
		create: queries.CreateService,
		update: queries.UpdateService,
		remove: queries.DeleteService,
		apply: func(record *model.Service, patch model.ServicePatch) {
			patch.Description = san.CleanPtr(patch.Description)
			record.Apply(patch)
		},
		validate: func(record model.Service) string {
			if record.Title == "" {
				return "Service title is required"
			}
			return ""
		},
	})

	h.About = newSingleton(singletonOps[model.About, model.AboutPatch]{
		kind:   "about",
		get:    queries.GetAbout,
		upsert: queries.UpsertAbout,
		// No content has been written yet: serve an empty object, never an error.
		fallback: func() any { return struct{}{} },
		apply: func(record *model.About, patch model.AboutPatch) {
			patch.Content = san.CleanPtr(patch.Content)
			record.Apply(patch)
		},
	})

	h.Contact = newSingleton(singletonOps[model.Contact, model.ContactPatch]{
		kind:     "contact",
		get:      queries.GetContact,
		upsert:   queries.UpsertContact,
		fallback: func() any { return struct{}{} },
		apply: func(record *model.Contact, patch model.ContactPatch) {
			record.Apply(patch)
		},
	})

	h.Hero = newSingleton(singletonOps[model.Hero, model.HeroPatch]{
		kind:     "hero",
		get:      queries.GetHero,
		upsert:   queries.UpsertHero,
		fallback: func() any { return model.DefaultHero() },
		apply: func(record *model.Hero, patch model.HeroPatch) {
			record.Apply(patch)
		},
	})

	h.Footer = newSingleton(singletonOps[model.Footer, model.FooterPatch]{
		kind:     "footer",
		get:      queries.GetFooter,
		upsert:   queries.UpsertFooter,
		fallback: func() any { return model.DefaultFooter() },
		apply: func(record *model.Footer, patch model.FooterPatch) {
			record.Apply(patch)
		},
	})
}
