package local

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raushankrgupta/skin-finder/config"
	"github.com/raushankrgupta/skin-finder/narration"
)

func TestMain(m *testing.M) {
	config.SkinImageBase = "https://skins.example.com/skin"
	config.ProfileBase = "https://profiles.example.com/profile"
	m.Run()
}

func acceptAll(ctx context.Context, imageURL string) bool { return true }
func rejectAll(ctx context.Context, imageURL string) bool { return false }

func TestResolveAllCandidatesAccepted(t *testing.T) {
	r := New()
	r.Probe = acceptAll
	sink := &narration.BuilderSink{}

	skins := r.Resolve(context.Background(), "Steve", sink)

	require.Len(t, skins, 3)
	// First three candidates in generator order
	assert.Equal(t, "https://skins.example.com/skin/Steve", skins[0].ImageURL)
	assert.Equal(t, "https://skins.example.com/skin/Steve_", skins[1].ImageURL)
	assert.Equal(t, "https://skins.example.com/skin/TheSteve", skins[2].ImageURL)
	for i, s := range skins {
		assert.Equal(t, fmt.Sprintf("Variant %d", i+1), s.Title)
	}
}

func TestResolveZeroAcceptedFallsBack(t *testing.T) {
	r := New()
	r.Probe = rejectAll
	sink := &narration.BuilderSink{}

	skins := r.Resolve(context.Background(), " Ender Dragon ", sink)

	require.Len(t, skins, 1)
	assert.Equal(t, "Variant 1", skins[0].Title)
	assert.Equal(t, "https://skins.example.com/skin/EnderDragon", skins[0].ImageURL)
	assert.Equal(t, "https://profiles.example.com/profile/EnderDragon", skins[0].DetailLink)
}

func TestResolvePartialAcceptanceKeepsTitlesGapless(t *testing.T) {
	// Accept only the decorated candidates; rejected ones must not leave
	// holes in the numbering
	r := New()
	r.Probe = func(ctx context.Context, imageURL string) bool {
		return strings.Contains(imageURL, "Itz") || strings.Contains(imageURL, "123") || strings.Contains(imageURL, "PVP")
	}
	sink := &narration.BuilderSink{}

	skins := r.Resolve(context.Background(), "Steve", sink)

	require.Len(t, skins, 3)
	assert.Equal(t, "https://skins.example.com/skin/ItzSteve", skins[0].ImageURL)
	assert.Equal(t, "https://skins.example.com/skin/Steve123", skins[1].ImageURL)
	assert.Equal(t, "https://skins.example.com/skin/StevePVP", skins[2].ImageURL)
	assert.Equal(t, "Variant 1", skins[0].Title)
	assert.Equal(t, "Variant 2", skins[1].Title)
	assert.Equal(t, "Variant 3", skins[2].Title)
}

func TestResolveImageURLsPairwiseDistinct(t *testing.T) {
	r := New()
	r.Probe = acceptAll
	for _, query := range []string{"Steve", "Alex", "x", "Ender Dragon"} {
		skins := r.Resolve(context.Background(), query, &narration.BuilderSink{})
		seen := make(map[string]bool)
		for _, s := range skins {
			assert.False(t, seen[s.ImageURL], "duplicate URL %s for query %q", s.ImageURL, query)
			seen[s.ImageURL] = true
		}
		assert.GreaterOrEqual(t, len(skins), 1)
		assert.LessOrEqual(t, len(skins), 3)
	}
}

func TestResolveLocatorsShareIdentifier(t *testing.T) {
	r := New()
	r.Probe = acceptAll
	skins := r.Resolve(context.Background(), "Steve", &narration.BuilderSink{})
	for _, s := range skins {
		imgName := s.ImageURL[strings.LastIndex(s.ImageURL, "/")+1:]
		linkName := s.DetailLink[strings.LastIndex(s.DetailLink, "/")+1:]
		assert.Equal(t, imgName, linkName)
	}
}

func TestResolveNeverReturnsError(t *testing.T) {
	// Probe panics are out of contract, but a canceled context and a dead
	// host must still yield the fallback record
	r := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	skins := r.Resolve(ctx, "Steve", &narration.BuilderSink{})
	require.Len(t, skins, 1)
	assert.Equal(t, "Variant 1", skins[0].Title)
}
