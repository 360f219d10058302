// Package resolver converts embedded {type, config} descriptors inside
// decoded JSON values into timeline component nodes, recursing through
// arbitrarily deep nesting.
package resolver

import (
	"errors"
	"fmt"

	"github.com/ivlev/vidcompose/internal/timeline"
)

// DefaultMaxDepth bounds recursion through nested descriptors. The limit
// is configurable; anything past it is treated as pathological input.
const DefaultMaxDepth = 64

var (
	// ErrInvalidDescriptor is returned for a descriptor whose type is not
	// a string or whose config is not an object
	ErrInvalidDescriptor = errors.New("invalid component descriptor")

	// ErrNestingTooDeep is returned when resolution exceeds the depth ceiling
	ErrNestingTooDeep = errors.New("component nesting too deep")
)

// Resolver walks JSON-like values and builds component nodes from descriptors
type Resolver struct {
	MaxDepth int
}

// New creates a resolver with the default depth ceiling
func New() *Resolver {
	return &Resolver{MaxDepth: DefaultMaxDepth}
}

// Resolve walks a decoded JSON value. Maps with a string "type" field and
// a "config" object become *timeline.ComponentNode with recursively
// resolved props and zero start/duration/layer (nested components inherit
// timing from their parent placement). Arrays are resolved element-wise.
// Scalars and maps without the descriptor shape pass through unchanged.
func (r *Resolver) Resolve(value any) (any, error) {
	return r.resolve(value, 0)
}

func (r *Resolver) resolve(value any, depth int) (any, error) {
	if depth > r.maxDepth() {
		return nil, fmt.Errorf("%w: exceeded %d levels", ErrNestingTooDeep, r.maxDepth())
	}

	switch v := value.(type) {
	case nil:
		return nil, nil

	case []any:
		resolved := make([]any, len(v))
		for i, item := range v {
			out, err := r.resolve(item, depth+1)
			if err != nil {
				return nil, err
			}
			resolved[i] = out
		}
		return resolved, nil

	case map[string]any:
		rawType, hasType := v["type"]
		rawConfig, hasConfig := v["config"]
		if !hasType || !hasConfig {
			// Opaque property bag, not a nested component
			return v, nil
		}

		typeName, ok := rawType.(string)
		if !ok {
			return nil, fmt.Errorf("%w: type field is %T, want string", ErrInvalidDescriptor, rawType)
		}

		var config map[string]any
		switch cfg := rawConfig.(type) {
		case nil:
			config = map[string]any{}
		case map[string]any:
			config = cfg
		default:
			return nil, fmt.Errorf("%w: config for %q is %T, want object", ErrInvalidDescriptor, typeName, rawConfig)
		}

		props := make(map[string]any, len(config))
		for key, propValue := range config {
			out, err := r.resolve(propValue, depth+1)
			if err != nil {
				return nil, err
			}
			props[key] = out
		}

		return &timeline.ComponentNode{Type: typeName, Props: props}, nil

	default:
		// Scalar prop, pass through
		return value, nil
	}
}

func (r *Resolver) maxDepth() int {
	if r.MaxDepth > 0 {
		return r.MaxDepth
	}
	return DefaultMaxDepth
}
