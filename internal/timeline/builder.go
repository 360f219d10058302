package timeline

import "fmt"

// Builder is the sole mutator of a composition's component list. It
// computes start frames through the track ledger and validates every
// input before touching any state, so a failed call leaves the
// composition exactly as it was.
//
// A builder serializes nothing itself: concurrent calls against the
// same composition must be serialized by the caller (the project layer
// holds one lock per composition). Builders over distinct compositions
// are fully independent.
type Builder struct {
	comp *Composition
}

// NewBuilder binds a builder to a composition
func NewBuilder(comp *Composition) *Builder {
	return &Builder{comp: comp}
}

// AddComponent places a component after the existing content on a track.
// Duration and gapBefore accept raw seconds or an "Ns"/"Nms" string;
// gapBefore may be nil for no gap. The returned node carries the
// computed start frame and frame count.
func (b *Builder) AddComponent(node ComponentNode, duration any, track string, gapBefore any) (*ComponentNode, error) {
	return b.add(node, duration, track, gapBefore, nil)
}

// AddComponentAt places a component at an absolute time on a track. The
// requested start is clamped forward if the track's existing content has
// not finished by then.
func (b *Builder) AddComponentAt(node ComponentNode, duration any, track string, startAt any) (*ComponentNode, error) {
	if startAt == nil {
		return b.add(node, duration, track, nil, nil)
	}

	if b == nil || b.comp == nil {
		return nil, ErrNoActiveComposition
	}
	startSec, err := ParseTimeValue(startAt)
	if err != nil {
		return nil, err
	}
	startFrame, err := b.comp.Clock().SecondsToFrames(startSec)
	if err != nil {
		return nil, err
	}
	return b.add(node, duration, track, nil, &startFrame)
}

func (b *Builder) add(node ComponentNode, duration any, track string, gapBefore any, requestedStart *int) (*ComponentNode, error) {
	if b == nil || b.comp == nil {
		return nil, ErrNoActiveComposition
	}
	if track == "" {
		return nil, fmt.Errorf("track name is required")
	}

	clock := b.comp.Clock()

	durSec, err := ParseTimeValue(duration)
	if err != nil {
		return nil, err
	}
	durFrames, err := clock.SecondsToFrames(durSec)
	if err != nil {
		return nil, err
	}
	if durFrames <= 0 {
		return nil, fmt.Errorf("%w: duration %v resolves to %d frames at %d fps", ErrInvalidDuration, duration, durFrames, b.comp.FPS)
	}

	gapFrames := 0
	if gapBefore != nil {
		gapSec, err := ParseTimeValue(gapBefore)
		if err != nil {
			return nil, err
		}
		gapFrames, err = clock.SecondsToFrames(gapSec)
		if err != nil {
			return nil, err
		}
	}

	// Validation is complete; from here exactly one cursor advances and
	// exactly one node is appended.
	start := b.comp.ledger.Reserve(track, requestedStart, gapFrames, durFrames)

	placed := node
	placed.Track = track
	placed.StartFrame = start
	placed.DurationFrames = durFrames
	b.comp.Components = append(b.comp.Components, &placed)

	return &placed, nil
}
