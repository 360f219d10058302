// Package project owns the active compositions. Each project wraps one
// composition behind a lock so placement calls against it are serialized;
// distinct projects share no state and run in parallel.
package project

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ivlev/vidcompose/internal/timeline"
)

// Project binds one composition to an identity and a mutation lock
type Project struct {
	ID   string
	Name string

	mu      sync.Mutex
	comp    *timeline.Composition
	builder *timeline.Builder
}

// New creates a project with a fresh composition
func New(name string, fps, width, height int) (*Project, error) {
	comp, err := timeline.NewComposition(fps, width, height)
	if err != nil {
		return nil, err
	}
	return &Project{
		ID:      uuid.NewString(),
		Name:    name,
		comp:    comp,
		builder: timeline.NewBuilder(comp),
	}, nil
}

// Do runs fn with the project's builder while holding the mutation lock.
// The track ledger's read-modify-write is not atomic, so this is the only
// sanctioned way to reach the builder.
func (p *Project) Do(fn func(b *timeline.Builder) error) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fn(p.builder)
}

// Composition returns the project's composition
func (p *Project) Composition() *timeline.Composition {
	return p.comp
}
