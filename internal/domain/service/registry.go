package service

import (
	"slices"

	"reviewhub/internal/domain/entity"
)

// Registry indexes platform adapters by platform and exposes them by capability.
type Registry struct {
	adapters map[entity.Platform]PlatformAdapter
	order    []entity.Platform
}

// NewRegistry builds a registry. A later adapter for the same platform replaces an earlier one.
func NewRegistry(adapters ...PlatformAdapter) *Registry {
	r := &Registry{adapters: make(map[entity.Platform]PlatformAdapter, len(adapters))}
	for _, a := range adapters {
		if _, exists := r.adapters[a.Platform()]; !exists {
			r.order = append(r.order, a.Platform())
		}
		r.adapters[a.Platform()] = a
	}
	slices.SortFunc(r.order, func(a, b entity.Platform) int {
		return slices.Index(entity.AllPlatforms, a) - slices.Index(entity.AllPlatforms, b)
	})

	return r
}

// Platforms returns the registered platforms in display order.
func (r *Registry) Platforms() []entity.Platform {
	return slices.Clone(r.order)
}

// Adapter returns the adapter registered for p.
func (r *Registry) Adapter(p entity.Platform) (PlatformAdapter, bool) {
	a, ok := r.adapters[p]

	return a, ok
}

// ReviewSources returns every adapter able to fetch reviews.
func (r *Registry) ReviewSources() []ReviewSource {
	var out []ReviewSource
	for _, p := range r.order {
		if s, ok := r.adapters[p].(ReviewSource); ok {
			out = append(out, s)
		}
	}

	return out
}

// ReplyPublisher returns the reply capability of p, if it has one.
func (r *Registry) ReplyPublisher(p entity.Platform) (ReplyPublisher, bool) {
	pub, ok := r.adapters[p].(ReplyPublisher)

	return pub, ok
}

// ListingSources returns every adapter able to sync listings.
func (r *Registry) ListingSources() []ListingSource {
	var out []ListingSource
	for _, p := range r.order {
		if s, ok := r.adapters[p].(ListingSource); ok {
			out = append(out, s)
		}
	}

	return out
}

// ListingSource returns the listing capability of p, if it has one.
func (r *Registry) ListingSource(p entity.Platform) (ListingSource, bool) {
	s, ok := r.adapters[p].(ListingSource)

	return s, ok
}
