package timeline

import "fmt"

// Composition is the in-memory representation of one video project's
// timed content: fixed frame rate, canvas size and the ordered list of
// placed components. Frame rate and dimensions are immutable after creation.
type Composition struct {
	FPS        int
	Width      int
	Height     int
	Components []*ComponentNode

	ledger *trackLedger
}

// NewComposition creates an empty composition with a fixed frame rate and canvas
func NewComposition(fps, width, height int) (*Composition, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps must be positive, got %d", fps)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %dx%d", width, height)
	}
	return &Composition{
		FPS:    fps,
		Width:  width,
		Height: height,
		ledger: newTrackLedger(),
	}, nil
}

// Clock returns the seconds/frames converter bound to this composition's fps
func (c *Composition) Clock() Clock {
	return Clock{FPS: c.FPS}
}

// Cursor returns the next free frame on a track
func (c *Composition) Cursor(track string) int {
	return c.ledger.Cursor(track)
}

// Tracks returns the names of all tracks with at least one placement
func (c *Composition) Tracks() []string {
	return c.ledger.Tracks()
}

// ReplayLedger rebuilds the track cursors from the component list in
// insertion order. Cursors are derived state, so a composition loaded
// from an exported document recovers them by replay.
func (c *Composition) ReplayLedger() {
	c.ledger = newTrackLedger()
	for _, n := range c.Components {
		if end := n.EndFrame(); end > c.ledger.cursors[n.Track] {
			c.ledger.cursors[n.Track] = end
		}
	}
}
