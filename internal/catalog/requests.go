package catalog

// Placement carries the timing fields shared by every component tool.
// Duration, GapBefore and StartAt accept raw seconds or an "Ns"/"Nms"
// string; StartAt requests an absolute position and wins over GapBefore.
type Placement struct {
	Duration  any    `json:"duration" validate:"required"`
	Track     string `json:"track,omitempty"`
	GapBefore any    `json:"gap_before,omitempty"`
	StartAt   any    `json:"start_at,omitempty"`
	Layer     int    `json:"layer,omitempty"`
}

// TitleSceneRequest adds a full-screen title card
type TitleSceneRequest struct {
	Placement
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Subtitle string `json:"subtitle,omitempty" validate:"max=300"`
	Align    string `json:"align,omitempty" validate:"omitempty,oneof=left center right"`
}

// TextOverlayRequest adds a positioned text overlay
type TextOverlayRequest struct {
	Placement
	Text     string `json:"text" validate:"required,min=1"`
	Position string `json:"position,omitempty" validate:"omitempty,oneof=top center bottom"`
	FontSize int    `json:"font_size,omitempty" validate:"omitempty,min=8,max=200"`
	Color    string `json:"color,omitempty"`
}

// ChartSeries is one named data series on a line chart
type ChartSeries struct {
	Name   string    `json:"name" validate:"required"`
	Values []float64 `json:"values" validate:"required,min=1"`
	Color  string    `json:"color,omitempty"`
}

// LineChartRequest adds an animated line chart
type LineChartRequest struct {
	Placement
	Title  string        `json:"title,omitempty"`
	Labels []string      `json:"labels" validate:"required,min=1"`
	Series []ChartSeries `json:"series" validate:"required,min=1,dive"`
}

// BarChartRequest adds an animated bar chart
type BarChartRequest struct {
	Placement
	Title  string    `json:"title,omitempty"`
	Labels []string  `json:"labels" validate:"required,min=1"`
	Values []float64 `json:"values" validate:"required,min=1"`
	Color  string    `json:"color,omitempty"`
}

// CodeBlockRequest adds a syntax-highlighted code block
type CodeBlockRequest struct {
	Placement
	Code           string `json:"code" validate:"required,min=1"`
	Language       string `json:"language,omitempty"`
	Theme          string `json:"theme,omitempty"`
	HighlightLines []int  `json:"highlight_lines,omitempty"`
}

// LayoutRequest adds a row or column layout whose children may be nested
// component descriptors of arbitrary depth
type LayoutRequest struct {
	Placement
	Direction string `json:"direction" validate:"required,oneof=row column"`
	Gap       int    `json:"gap,omitempty" validate:"omitempty,min=0"`
	Children  []any  `json:"children" validate:"required,min=1"`
}

// ImageOverlayRequest adds an image overlay at a canvas position
type ImageOverlayRequest struct {
	Placement
	Src     string  `json:"src" validate:"required"`
	X       int     `json:"x,omitempty"`
	Y       int     `json:"y,omitempty"`
	Width   int     `json:"width,omitempty" validate:"omitempty,min=1"`
	Height  int     `json:"height,omitempty" validate:"omitempty,min=1"`
	Opacity float64 `json:"opacity,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// VideoClipRequest adds an embedded video clip
type VideoClipRequest struct {
	Placement
	Src       string  `json:"src" validate:"required"`
	TrimStart float64 `json:"trim_start,omitempty" validate:"omitempty,min=0"`
	TrimEnd   float64 `json:"trim_end,omitempty" validate:"omitempty,min=0"`
	Muted     bool    `json:"muted,omitempty"`
}

// ComponentRequest adds an arbitrary component from a raw descriptor config
type ComponentRequest struct {
	Placement
	Type   string         `json:"type" validate:"required"`
	Config map[string]any `json:"config,omitempty"`
}
