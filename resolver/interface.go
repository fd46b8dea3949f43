package resolver

import (
	"context"

	"github.com/raushankrgupta/skin-finder/models"
	"github.com/raushankrgupta/skin-finder/narration"
)

// Resolver defines the interface for all skin resolution strategies.
// Resolve never fails: every error degrades to fewer results or to the
// fallback record, so the returned slice always has 1 to 3 entries with
// pairwise-distinct image URLs and titles "Variant 1".."Variant k".
type Resolver interface {
	// Name identifies the strategy ("local", "namemc")
	Name() string
	// Resolve turns a non-empty trimmed query into display-ready variants,
	// narrating progress into the sink as it goes
	Resolve(ctx context.Context, query string, sink narration.Sink) []models.SkinData
}
