package timeline

// ComponentNode represents one placed component instance.
// Props values may be scalars, arrays, maps, or nested *ComponentNode
// built by the resolver; nested nodes keep zero start/duration because
// their visible span is governed by the parent placement.
type ComponentNode struct {
	Type           string         `yaml:"type" json:"type"`
	Track          string         `yaml:"track,omitempty" json:"track,omitempty"`
	StartFrame     int            `yaml:"startFrame" json:"startFrame"`
	DurationFrames int            `yaml:"durationFrames" json:"durationFrames"`
	Layer          int            `yaml:"layer,omitempty" json:"layer,omitempty"`
	Props          map[string]any `yaml:"props,omitempty" json:"props,omitempty"`
}

// EndFrame returns the first frame after the component's visible span
func (n *ComponentNode) EndFrame() int {
	return n.StartFrame + n.DurationFrames
}
