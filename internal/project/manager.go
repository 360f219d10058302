package project

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Manager tracks the active projects by ID
type Manager struct {
	log *zap.Logger

	mu       sync.RWMutex
	projects map[string]*Project
}

// NewManager creates an empty project manager
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:      log,
		projects: make(map[string]*Project),
	}
}

// Create registers a new project with a fresh composition
func (m *Manager) Create(name string, fps, width, height int) (*Project, error) {
	p, err := New(name, fps, width, height)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.projects[p.ID] = p
	m.mu.Unlock()

	m.log.Info("project created",
		zap.String("id", p.ID),
		zap.String("name", name),
		zap.Int("fps", fps),
		zap.Int("width", width),
		zap.Int("height", height),
	)
	return p, nil
}

// Get returns a registered project by ID
func (m *Manager) Get(id string) (*Project, error) {
	m.mu.RLock()
	p, ok := m.projects[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("project %q not found", id)
	}
	return p, nil
}

// Close discards a project and its composition
func (m *Manager) Close(id string) error {
	m.mu.Lock()
	_, ok := m.projects[id]
	delete(m.projects, id)
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("project %q not found", id)
	}
	m.log.Info("project closed", zap.String("id", id))
	return nil
}

// List returns the active projects ordered by name
func (m *Manager) List() []*Project {
	m.mu.RLock()
	out := make([]*Project, 0, len(m.projects))
	for _, p := range m.projects {
		out = append(out, p)
	}
	m.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
