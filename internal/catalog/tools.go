package catalog

import (
	"encoding/json"

	"github.com/ivlev/vidcompose/internal/timeline"
)

func (c *Catalog) registerBuiltins() {
	c.register("add_title_scene", "Add a full-screen title card", c.addTitleScene)
	c.register("add_text_overlay", "Add a positioned text overlay", c.addTextOverlay)
	c.register("add_line_chart", "Add an animated line chart", c.addLineChart)
	c.register("add_bar_chart", "Add an animated bar chart", c.addBarChart)
	c.register("add_code_block", "Add a syntax-highlighted code block", c.addCodeBlock)
	c.register("add_layout", "Add a row/column layout with nested children", c.addLayout)
	c.register("add_image_overlay", "Add an image overlay", c.addImageOverlay)
	c.register("add_video_clip", "Add an embedded video clip", c.addVideoClip)
	c.register("add_component", "Add an arbitrary component from a raw descriptor", c.addComponent)
}

func (c *Catalog) addTitleScene(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req TitleSceneRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	props := map[string]any{"title": req.Title}
	if req.Subtitle != "" {
		props["subtitle"] = req.Subtitle
	}
	if req.Align != "" {
		props["align"] = req.Align
	}
	return c.place(b, "TitleScene", props, req.Placement)
}

func (c *Catalog) addTextOverlay(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req TextOverlayRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	props := map[string]any{"text": req.Text}
	if req.Position != "" {
		props["position"] = req.Position
	}
	if req.FontSize > 0 {
		props["fontSize"] = req.FontSize
	}
	if req.Color != "" {
		props["color"] = req.Color
	}
	return c.place(b, "TextOverlay", props, req.Placement)
}

func (c *Catalog) addLineChart(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req LineChartRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	series := make([]any, len(req.Series))
	for i, s := range req.Series {
		entry := map[string]any{"name": s.Name, "values": s.Values}
		if s.Color != "" {
			entry["color"] = s.Color
		}
		series[i] = entry
	}

	props := map[string]any{"labels": req.Labels, "series": series}
	if req.Title != "" {
		props["title"] = req.Title
	}
	return c.place(b, "LineChart", props, req.Placement)
}

func (c *Catalog) addBarChart(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req BarChartRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	props := map[string]any{"labels": req.Labels, "values": req.Values}
	if req.Title != "" {
		props["title"] = req.Title
	}
	if req.Color != "" {
		props["color"] = req.Color
	}
	return c.place(b, "BarChart", props, req.Placement)
}

func (c *Catalog) addCodeBlock(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req CodeBlockRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	props := map[string]any{"code": req.Code}
	if req.Language != "" {
		props["language"] = req.Language
	}
	if req.Theme != "" {
		props["theme"] = req.Theme
	}
	if len(req.HighlightLines) > 0 {
		props["highlightLines"] = req.HighlightLines
	}
	return c.place(b, "CodeBlock", props, req.Placement)
}

func (c *Catalog) addLayout(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req LayoutRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	children, err := c.res.Resolve(req.Children)
	if err != nil {
		return nil, err
	}

	props := map[string]any{
		"direction": req.Direction,
		"children":  children,
	}
	if req.Gap > 0 {
		props["gap"] = req.Gap
	}
	return c.place(b, "Layout", props, req.Placement)
}

func (c *Catalog) addImageOverlay(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req ImageOverlayRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	props := map[string]any{"src": req.Src, "x": req.X, "y": req.Y}
	if req.Width > 0 {
		props["width"] = req.Width
	}
	if req.Height > 0 {
		props["height"] = req.Height
	}
	if req.Opacity > 0 {
		props["opacity"] = req.Opacity
	}
	return c.place(b, "ImageOverlay", props, req.Placement)
}

func (c *Catalog) addVideoClip(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req VideoClipRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	props := map[string]any{"src": req.Src}
	if req.TrimStart > 0 {
		props["trimStart"] = req.TrimStart
	}
	if req.TrimEnd > 0 {
		props["trimEnd"] = req.TrimEnd
	}
	if req.Muted {
		props["muted"] = true
	}
	return c.place(b, "VideoClip", props, req.Placement)
}

// addComponent accepts any {type, config} descriptor, so callers can
// place component kinds the catalog has no dedicated tool for
func (c *Catalog) addComponent(b *timeline.Builder, raw json.RawMessage) (*timeline.ComponentNode, error) {
	var req ComponentRequest
	if err := c.decode(raw, &req); err != nil {
		return nil, err
	}

	resolved, err := c.res.Resolve(map[string]any{"type": req.Type, "config": req.Config})
	if err != nil {
		return nil, err
	}
	node := resolved.(*timeline.ComponentNode)

	return c.place(b, node.Type, node.Props, req.Placement)
}
