package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/vidcompose/internal/timeline"
)

func TestResolveScalarsPassThrough(t *testing.T) {
	r := New()

	for _, v := range []any{nil, true, 42, 1.5, "hello"} {
		got, err := r.Resolve(v)
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestResolveOpaqueMapPassThrough(t *testing.T) {
	r := New()

	// No descriptor shape: returned unchanged
	bag := map[string]any{"color": "red", "size": 12}
	got, err := r.Resolve(bag)
	require.NoError(t, err)
	assert.Equal(t, bag, got)

	// "type" without "config" is still an opaque bag
	typed := map[string]any{"type": "linear", "speed": 0.5}
	got, err = r.Resolve(typed)
	require.NoError(t, err)
	assert.Equal(t, typed, got)
}

func TestResolveDescriptor(t *testing.T) {
	r := New()

	got, err := r.Resolve(map[string]any{
		"type":   "Container",
		"config": map[string]any{"content": map[string]any{"type": "VideoContent", "config": map[string]any{"src": "a.mp4"}}},
	})
	require.NoError(t, err)

	container, ok := got.(*timeline.ComponentNode)
	require.True(t, ok)
	assert.Equal(t, "Container", container.Type)
	assert.Equal(t, 0, container.StartFrame)
	assert.Equal(t, 0, container.DurationFrames)
	assert.Equal(t, 0, container.Layer)

	video, ok := container.Props["content"].(*timeline.ComponentNode)
	require.True(t, ok)
	assert.Equal(t, "VideoContent", video.Type)
	assert.Equal(t, "a.mp4", video.Props["src"])
}

func TestResolveThreeLevelNesting(t *testing.T) {
	r := New()

	got, err := r.Resolve(map[string]any{
		"type": "Scene",
		"config": map[string]any{
			"title": "outer",
			"body": map[string]any{
				"type": "Container",
				"config": map[string]any{
					"padding": 8,
					"content": map[string]any{
						"type":   "VideoContent",
						"config": map[string]any{"src": "clip.mp4", "loop": true},
					},
				},
			},
		},
	})
	require.NoError(t, err)

	scene := got.(*timeline.ComponentNode)
	assert.Equal(t, "Scene", scene.Type)
	assert.Equal(t, "outer", scene.Props["title"])

	container := scene.Props["body"].(*timeline.ComponentNode)
	assert.Equal(t, "Container", container.Type)
	assert.Equal(t, 8, container.Props["padding"])

	video := container.Props["content"].(*timeline.ComponentNode)
	assert.Equal(t, "VideoContent", video.Type)
	assert.Equal(t, "clip.mp4", video.Props["src"])
	assert.Equal(t, true, video.Props["loop"])
}

func TestResolveArray(t *testing.T) {
	r := New()

	got, err := r.Resolve([]any{
		"plain",
		map[string]any{"type": "Badge", "config": map[string]any{"label": "new"}},
		7,
	})
	require.NoError(t, err)

	arr := got.([]any)
	require.Len(t, arr, 3)
	assert.Equal(t, "plain", arr[0])
	badge := arr[1].(*timeline.ComponentNode)
	assert.Equal(t, "Badge", badge.Type)
	assert.Equal(t, "new", badge.Props["label"])
	assert.Equal(t, 7, arr[2])
}

func TestResolveNullConfig(t *testing.T) {
	r := New()

	got, err := r.Resolve(map[string]any{"type": "Spacer", "config": nil})
	require.NoError(t, err)

	node := got.(*timeline.ComponentNode)
	assert.Equal(t, "Spacer", node.Type)
	assert.Empty(t, node.Props)
}

func TestResolveMalformedDescriptor(t *testing.T) {
	r := New()

	// type present but not a string
	_, err := r.Resolve(map[string]any{"type": 42, "config": map[string]any{}})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	// config present but not an object
	_, err = r.Resolve(map[string]any{"type": "Badge", "config": "nope"})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)

	// malformed descriptor nested inside a valid one still surfaces
	_, err = r.Resolve(map[string]any{
		"type":   "Container",
		"config": map[string]any{"content": map[string]any{"type": 1, "config": map[string]any{}}},
	})
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestResolveDepthCeiling(t *testing.T) {
	r := &Resolver{MaxDepth: 5}

	// Build a descriptor chain deeper than the ceiling
	value := map[string]any{"type": "Leaf", "config": map[string]any{}}
	for i := 0; i < 10; i++ {
		value = map[string]any{"type": "Wrap", "config": map[string]any{"content": value}}
	}

	_, err := r.Resolve(value)
	assert.ErrorIs(t, err, ErrNestingTooDeep)

	// The same input resolves fine with the default ceiling
	got, err := New().Resolve(value)
	require.NoError(t, err)
	assert.Equal(t, "Wrap", got.(*timeline.ComponentNode).Type)
}
