package viewer

import (
	"fmt"
	"sync"

	"github.com/raushankrgupta/skin-finder/models"
)

// Controller owns the variant state of the current generation cycle and
// keeps the render adapter in sync with the cursor. Items are fixed for the
// lifetime of one cycle; Initialize replaces them wholesale.
type Controller struct {
	mu      sync.Mutex
	render  RenderAdapter
	items   []models.SkinData
	current int
}

func NewController(render RenderAdapter) *Controller {
	return &Controller{render: render}
}

// Initialize installs a new result set, resets the cursor to 0 and rebuilds
// the viewer around the first variant. An empty set is rejected and leaves
// the previous state untouched; the resolvers' fallback guarantee means a
// caller should never actually hit that.
func (c *Controller) Initialize(items []models.SkinData) error {
	if len(items) == 0 {
		return fmt.Errorf("cannot initialize with empty variant set")
	}

	c.mu.Lock()
	c.items = items
	c.current = 0
	c.mu.Unlock()

	c.render.Reconstruct(items[0].ImageURL)
	c.render.Highlight(0)
	return nil
}

// Select moves the cursor. Out-of-range indexes are rejected and leave the
// cursor where it was; clamping would put the highlight and the displayed
// texture out of step with what the user clicked.
func (c *Controller) Select(index int) (models.SkinData, error) {
	c.mu.Lock()
	if index < 0 || index >= len(c.items) {
		n := len(c.items)
		c.mu.Unlock()
		return models.SkinData{}, fmt.Errorf("variant index %d out of range [0,%d)", index, n)
	}
	c.current = index
	skin := c.items[index]
	c.mu.Unlock()

	c.render.LoadImage(skin.ImageURL)
	c.render.Highlight(index)
	return skin, nil
}

// Next advances to the following variant, wrapping around at the end.
func (c *Controller) Next() (models.SkinData, error) {
	c.mu.Lock()
	if len(c.items) == 0 {
		c.mu.Unlock()
		return models.SkinData{}, fmt.Errorf("no variants loaded")
	}
	next := (c.current + 1) % len(c.items)
	c.mu.Unlock()

	return c.Select(next)
}

// Current returns the record under the cursor, false before the first
// successful cycle.
func (c *Controller) Current() (models.SkinData, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return models.SkinData{}, false
	}
	return c.items[c.current], true
}

// Snapshot copies the state for API responses.
func (c *Controller) Snapshot() models.VariantState {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.SkinData, len(c.items))
	copy(items, c.items)
	return models.VariantState{Items: items, CurrentIndex: c.current}
}
