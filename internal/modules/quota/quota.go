// Package quota tracks per-identity daily request counts.
package quota

import "context"

const dateLayout = "2006-01-02"

// Store is a per-identity daily counter. Allow consumes one slot for today if
// any remain; a denied call must leave the counter untouched. Remaining never
// goes below zero.
//
// Implementations must make the check-then-increment sequence atomic so two
// concurrent requests from the same identity cannot both take the last slot.
type Store interface {
	Allow(ctx context.Context, identity string) (bool, error)
	Remaining(ctx context.Context, identity string) (int, error)
}
