// Package export writes and reads composition documents. The document
// carries everything the downstream generator and storage layers need:
// frame rate, canvas size and the ordered component list with resolved
// prop trees. Ledger cursors are derived state and are rebuilt by replay
// on read.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/vidcompose/internal/timeline"
)

// DocumentVersion identifies the composition document format
const DocumentVersion = "1.0"

// Document is the serialized form of a composition
type Document struct {
	Version    string                    `yaml:"version" json:"version"`
	FPS        int                       `yaml:"fps" json:"fps"`
	Width      int                       `yaml:"width" json:"width"`
	Height     int                       `yaml:"height" json:"height"`
	Components []*timeline.ComponentNode `yaml:"components" json:"components"`
}

// WriteComposition writes a composition document to path. The format is
// chosen by extension: .json for JSON, anything else YAML.
func WriteComposition(comp *timeline.Composition, path string) error {
	doc := Document{
		Version:    DocumentVersion,
		FPS:        comp.FPS,
		Width:      comp.Width,
		Height:     comp.Height,
		Components: comp.Components,
	}

	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadComposition reads a composition document and rebuilds the track
// cursors by replaying the component list in insertion order. Nested
// component nodes inside props come back as plain maps, which is the
// same shape the downstream generator consumes.
func ReadComposition(path string) (*timeline.Composition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc Document
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, err
	}

	comp, err := timeline.NewComposition(doc.FPS, doc.Width, doc.Height)
	if err != nil {
		return nil, fmt.Errorf("invalid composition document %s: %w", path, err)
	}
	comp.Components = doc.Components
	comp.ReplayLedger()

	return comp, nil
}
