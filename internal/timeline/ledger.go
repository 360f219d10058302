package timeline

// trackLedger keeps the next free frame per named track.
// Tracks are created lazily on first use and cursors only ever move forward.
type trackLedger struct {
	cursors map[string]int
}

func newTrackLedger() *trackLedger {
	return &trackLedger{cursors: make(map[string]int)}
}

// Reserve computes the actual start frame for a placement and advances
// the track cursor. With no requested start the placement appends after
// the track's existing content plus the gap. An explicit requested start
// is clamped forward to the cursor so existing content is never overlapped;
// callers needing true overlap use distinct tracks.
func (l *trackLedger) Reserve(track string, requestedStart *int, gapFrames, durationFrames int) int {
	cursor := l.cursors[track]

	start := cursor + gapFrames
	if requestedStart != nil {
		start = *requestedStart
		if start < cursor {
			start = cursor
		}
	}

	l.cursors[track] = start + durationFrames
	return start
}

// Cursor returns the next free frame on a track (0 for an unused track)
func (l *trackLedger) Cursor(track string) int {
	return l.cursors[track]
}

// Tracks returns the names of all tracks that have received a placement
func (l *trackLedger) Tracks() []string {
	names := make([]string, 0, len(l.cursors))
	for name := range l.cursors {
		names = append(names, name)
	}
	return names
}
