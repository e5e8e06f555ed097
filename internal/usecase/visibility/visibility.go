// Package visibility decides how much of a profile a requester may see.
// Nothing on the record itself controls this; it is always the viewer
// identity compared against the profile owner at request time.
package visibility

import "profolio/internal/repository"

type Projection int

const (
	// ProjectionPublic omits record ids and internal fields and may be
	// row-capped in aggregate views.
	ProjectionPublic Projection = iota
	// ProjectionOwner includes record ids and is never capped.
	ProjectionOwner
)

const (
	// MaxRecordsPerCategory caps active child records per user per category.
	// Enforced in application logic before insert, so two concurrent creates
	// at the boundary can still land one past the ceiling.
	MaxRecordsPerCategory = 50

	// Aggregate profile responses are previews; the dedicated per-category
	// endpoints return the full list.
	AggregatePreviewLimit        = 3
	AggregateContactPreviewLimit = 4
)

func Resolve(viewer *repository.User, ownerID int64) Projection {
	if viewer != nil && viewer.ID == ownerID {
		return ProjectionOwner
	}
	return ProjectionPublic
}
