// Package session runs generation cycles: the scripted narration and the
// real candidate resolution in parallel, joined before any result surfaces.
package session

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/raushankrgupta/skin-finder/models"
	"github.com/raushankrgupta/skin-finder/narration"
	"github.com/raushankrgupta/skin-finder/resolver"
	"github.com/raushankrgupta/skin-finder/viewer"
)

var (
	// ErrEmptyQuery means no cycle was started at all: the sink is not
	// cleared and the previous state stays visible
	ErrEmptyQuery = errors.New("empty query")
	// ErrNoResults should be unreachable while the resolvers keep their
	// fallback guarantee, but the taxonomy handles it anyway
	ErrNoResults = errors.New("generation produced no usable variants")
)

// Session wires one resolver, one narration sink and one variant controller
// together. Concurrent Run calls are deliberately not serialized: a second
// cycle does not cancel the first, and whichever finishes last overwrites
// the shared state. Known limitation, kept as documented behavior.
type Session struct {
	Resolver   resolver.Resolver
	Narrator   *narration.Narrator
	Sink       narration.Sink
	Controller *viewer.Controller
}

func New(res resolver.Resolver, sink narration.Sink, ctrl *viewer.Controller) *Session {
	return &Session{
		Resolver:   res,
		Narrator:   narration.NewNarrator(),
		Sink:       sink,
		Controller: ctrl,
	}
}

// Run executes one cycle end to end. Completion is gated on BOTH the
// narration and the resolution finishing, so the narration always plays out
// fully and results never show early, however fast the resolution was.
func (s *Session) Run(ctx context.Context, query string) (models.VariantState, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return models.VariantState{}, ErrEmptyQuery
	}

	s.Sink.Clear()

	var items []models.SkinData
	var g errgroup.Group
	g.Go(func() error {
		s.Narrator.Run(s.Sink)
		return nil
	})
	g.Go(func() error {
		items = s.Resolver.Resolve(ctx, trimmed, s.Sink)
		return nil
	})
	// Neither task returns an error by contract; the join is what matters
	if err := g.Wait(); err != nil {
		return models.VariantState{}, err
	}

	if len(items) == 0 {
		s.Sink.ErrorLine("Generation failed. No skin could be derived.")
		return models.VariantState{}, ErrNoResults
	}

	if err := s.Controller.Initialize(items); err != nil {
		s.Sink.ErrorLine("Generation failed. No skin could be derived.")
		return models.VariantState{}, ErrNoResults
	}

	s.Sink.Line("Analysis complete.")
	return s.Controller.Snapshot(), nil
}
