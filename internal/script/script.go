// Package script reads batch composition scripts and drives the catalog
// tools against the project manager.
package script

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script describes a batch of projects to assemble
type Script struct {
	Version  string          `yaml:"version"`
	Projects []ProjectScript `yaml:"projects"`
}

// ProjectScript is one project with its ordered tool-call steps
type ProjectScript struct {
	Name   string `yaml:"name"`
	FPS    int    `yaml:"fps"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Preset string `yaml:"preset"`
	Steps  []Step `yaml:"steps"`
}

// Step is a single tool call
type Step struct {
	Tool string         `yaml:"tool"`
	Args map[string]any `yaml:"args"`
}

// ReadScript reads a script from a YAML file
func ReadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}

	if len(s.Projects) == 0 {
		return nil, fmt.Errorf("script %s contains no projects", path)
	}
	for i, p := range s.Projects {
		if p.Name == "" {
			return nil, fmt.Errorf("script %s: project %d has no name", path, i+1)
		}
		if len(p.Steps) == 0 {
			return nil, fmt.Errorf("script %s: project %q has no steps", path, p.Name)
		}
	}

	return &s, nil
}

// WriteScript writes a script to a YAML file
func WriteScript(s *Script, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
