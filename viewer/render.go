package viewer

// RenderAdapter is the 3D preview collaborator. The real viewer lives in
// the browser; this side only tells it what to show.
type RenderAdapter interface {
	// Reconstruct tears the viewer down and rebuilds it around a new
	// result set's first texture. Called once per generation cycle.
	Reconstruct(imageURL string)
	// LoadImage hot-swaps the displayed texture without rebuilding
	LoadImage(imageURL string)
	// Highlight marks the selector control at index active, all others
	// inactive
	Highlight(index int)
}
