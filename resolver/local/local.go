// Package local resolves skin variants from naming-convention heuristics
// alone: candidates are probed against the texture host in priority order.
package local

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/raushankrgupta/skin-finder/models"
	"github.com/raushankrgupta/skin-finder/narration"
	"github.com/raushankrgupta/skin-finder/resolver/candidates"
)

const maxVariants = 3

// Resolver is the local heuristic strategy.
type Resolver struct {
	// Probe reports whether a texture exists at the URL. Best effort: a
	// false never aborts resolution, it only skips the candidate. Nil
	// means the default HEAD probe.
	Probe  func(ctx context.Context, imageURL string) bool
	client *http.Client
}

func New() *Resolver {
	return &Resolver{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (r *Resolver) Name() string {
	return "local"
}

// Resolve walks the generated candidates in order, accepting each one whose
// image URL is unseen and whose texture probe succeeds, capped at 3. If
// nothing is accepted a single fallback record is built from the base name,
// so the result is never empty.
func (r *Resolver) Resolve(ctx context.Context, query string, sink narration.Sink) []models.SkinData {
	base := candidates.BaseName(query)
	sink.Line(fmt.Sprintf("Deriving name candidates for %q...", base))

	seen := make(map[string]bool)
	var out []models.SkinData
	for _, cand := range candidates.Generate(query) {
		if len(out) >= maxVariants {
			break
		}
		skin := models.SkinFor(cand)
		if seen[skin.ImageURL] {
			continue
		}
		if !r.probe(ctx, skin.ImageURL) {
			sink.Line(fmt.Sprintf("No archive entry for %s, trying next candidate...", cand))
			continue
		}
		seen[skin.ImageURL] = true
		out = append(out, skin)
		sink.Line(fmt.Sprintf("Candidate locked: %s", cand))
	}

	if len(out) == 0 {
		sink.Line("No candidate matched, falling back to the base name")
		out = append(out, models.SkinFor(base))
	}

	// Titles follow the final position, not generation order, so the
	// numbering stays gapless however many candidates were skipped
	for i := range out {
		out[i].Title = fmt.Sprintf("Variant %d", i+1)
	}
	return out
}

func (r *Resolver) probe(ctx context.Context, imageURL string) bool {
	if r.Probe != nil {
		return r.Probe(ctx, imageURL)
	}
	return r.headProbe(ctx, imageURL)
}

// headProbe checks existence only. It never inspects the payload; whether
// the bytes are a usable texture is the viewer's problem.
func (r *Resolver) headProbe(ctx context.Context, imageURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, imageURL, nil)
	if err != nil {
		return false
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
