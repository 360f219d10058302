// Package catalog registers the component tools exposed to external
// callers. Each tool decodes a flat argument object, validates it,
// resolves any nested component descriptors and hands a single placement
// to the timeline builder. Typed core errors are stringified here, at
// the wrapper boundary, and nowhere below it.
package catalog

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/ivlev/vidcompose/internal/project"
	"github.com/ivlev/vidcompose/internal/resolver"
	"github.com/ivlev/vidcompose/internal/timeline"
)

// DefaultTrack receives placements that name no track
const DefaultTrack = "main"

// Handler places one component through the builder
type Handler func(b *timeline.Builder, args json.RawMessage) (*timeline.ComponentNode, error)

// Tool is one registered component tool
type Tool struct {
	Name        string
	Description string

	handler Handler
}

// Result is the uniform envelope returned to tool callers. Start and
// duration are reported in seconds; a failed call changes nothing in the
// composition, so the caller may retry with corrected input.
type Result struct {
	Status         string  `json:"status"`
	Message        string  `json:"message,omitempty"`
	Component      string  `json:"component,omitempty"`
	Track          string  `json:"track,omitempty"`
	StartTime      float64 `json:"startTime"`
	Duration       float64 `json:"duration"`
	StartFrame     int     `json:"startFrame"`
	DurationFrames int     `json:"durationFrames"`
	Layer          int     `json:"layer,omitempty"`
}

// Catalog holds the registered component tools
type Catalog struct {
	validate     *validator.Validate
	res          *resolver.Resolver
	defaultTrack string
	tools        map[string]Tool
}

// New creates a catalog with all built-in component tools registered
func New(res *resolver.Resolver, defaultTrack string) *Catalog {
	if res == nil {
		res = resolver.New()
	}
	if defaultTrack == "" {
		defaultTrack = DefaultTrack
	}
	c := &Catalog{
		validate:     validator.New(),
		res:          res,
		defaultTrack: defaultTrack,
		tools:        make(map[string]Tool),
	}
	c.registerBuiltins()
	return c
}

// Tools returns the registered tools ordered by name
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, 0, len(c.tools))
	for _, t := range c.tools {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Call runs a named tool against a project. Arguments are re-encoded to
// JSON so YAML-sourced and JSON-sourced calls go through the same
// decode/validate path. The project lock serializes the placement.
func (c *Catalog) Call(p *project.Project, name string, args map[string]any) Result {
	tool, ok := c.tools[name]
	if !ok {
		return Result{Status: "error", Message: fmt.Sprintf("unknown tool %q", name)}
	}

	raw, err := json.Marshal(args)
	if err != nil {
		return Result{Status: "error", Message: fmt.Sprintf("encode args: %v", err)}
	}

	var node *timeline.ComponentNode
	err = p.Do(func(b *timeline.Builder) error {
		placed, err := tool.handler(b, raw)
		if err != nil {
			return err
		}
		node = placed
		return nil
	})
	if err != nil {
		return Result{Status: "error", Message: err.Error()}
	}

	clock := p.Composition().Clock()
	return Result{
		Status:         "ok",
		Component:      node.Type,
		Track:          node.Track,
		StartTime:      clock.FramesToSeconds(node.StartFrame),
		Duration:       clock.FramesToSeconds(node.DurationFrames),
		StartFrame:     node.StartFrame,
		DurationFrames: node.DurationFrames,
		Layer:          node.Layer,
	}
}

func (c *Catalog) register(name, description string, handler Handler) {
	c.tools[name] = Tool{Name: name, Description: description, handler: handler}
}

// decode unmarshals raw args into a request struct and validates it
func (c *Catalog) decode(raw json.RawMessage, req any) error {
	if err := json.Unmarshal(raw, req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	if err := c.validate.Struct(req); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// place hands one finalized component to the builder
func (c *Catalog) place(b *timeline.Builder, typeName string, props map[string]any, pl Placement) (*timeline.ComponentNode, error) {
	track := pl.Track
	if track == "" {
		track = c.defaultTrack
	}

	node := timeline.ComponentNode{Type: typeName, Layer: pl.Layer, Props: props}
	if pl.StartAt != nil {
		return b.AddComponentAt(node, pl.Duration, track, pl.StartAt)
	}
	return b.AddComponent(node, pl.Duration, track, pl.GapBefore)
}
