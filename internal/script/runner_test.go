package script

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ivlev/vidcompose/internal/catalog"
	"github.com/ivlev/vidcompose/internal/config"
	"github.com/ivlev/vidcompose/internal/export"
	"github.com/ivlev/vidcompose/internal/project"
)

const sampleScript = `version: "1.0"
projects:
  - name: intro
    fps: 30
    preset: "16:9"
    steps:
      - tool: add_title_scene
        args:
          title: Welcome
          duration: 3.0
      - tool: add_code_block
        args:
          code: "x := 1"
          language: go
          duration: 2.0
          gap_before: 1s
  - name: teaser
    fps: 30
    width: 720
    height: 1280
    steps:
      - tool: add_text_overlay
        args:
          text: Coming soon
          duration: 1.5
          track: overlay
`

func writeTempScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newTestRunner() *Runner {
	return NewRunner(project.NewManager(nil), catalog.New(nil, ""), config.Default(), nil)
}

func TestReadScript(t *testing.T) {
	s, err := ReadScript(writeTempScript(t, sampleScript))
	require.NoError(t, err)

	assert.Equal(t, "1.0", s.Version)
	require.Len(t, s.Projects, 2)
	assert.Equal(t, "intro", s.Projects[0].Name)
	assert.Len(t, s.Projects[0].Steps, 2)
	assert.Equal(t, "add_title_scene", s.Projects[0].Steps[0].Tool)
	assert.Equal(t, "Welcome", s.Projects[0].Steps[0].Args["title"])
}

func TestReadScriptRejectsEmpty(t *testing.T) {
	_, err := ReadScript(writeTempScript(t, `version: "1.0"`))
	assert.Error(t, err)

	_, err = ReadScript(writeTempScript(t, "version: \"1.0\"\nprojects:\n  - name: empty\n"))
	assert.Error(t, err)

	_, err = ReadScript(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRunnerBuildsAllProjects(t *testing.T) {
	s, err := ReadScript(writeTempScript(t, sampleScript))
	require.NoError(t, err)

	outDir := t.TempDir()
	outputs, err := newTestRunner().Run(context.Background(), s, outDir)
	require.NoError(t, err)
	require.Len(t, outputs, 2)

	intro, err := export.ReadComposition(outputs[0])
	require.NoError(t, err)
	assert.Equal(t, 1280, intro.Width) // from the 16:9 preset
	require.Len(t, intro.Components, 2)
	assert.Equal(t, 0, intro.Components[0].StartFrame)
	assert.Equal(t, 90, intro.Components[0].DurationFrames)
	assert.Equal(t, 120, intro.Components[1].StartFrame)

	teaser, err := export.ReadComposition(outputs[1])
	require.NoError(t, err)
	assert.Equal(t, 720, teaser.Width)
	assert.Equal(t, 1280, teaser.Height)
	require.Len(t, teaser.Components, 1)
	assert.Equal(t, "overlay", teaser.Components[0].Track)
}

func TestRunnerPropagatesStepErrors(t *testing.T) {
	s := &Script{Projects: []ProjectScript{{
		Name: "broken",
		Steps: []Step{
			{Tool: "add_title_scene", Args: map[string]any{"title": "ok", "duration": 1.0}},
			{Tool: "add_title_scene", Args: map[string]any{"title": "bad", "duration": "bogus"}},
		},
	}}}

	_, err := newTestRunner().Run(context.Background(), s, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
	assert.Contains(t, err.Error(), "step 2")
}

func TestRunnerHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := &Script{Projects: []ProjectScript{{
		Name:  "late",
		Steps: []Step{{Tool: "add_title_scene", Args: map[string]any{"title": "x", "duration": 1.0}}},
	}}}

	_, err := newTestRunner().Run(ctx, s, t.TempDir())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScriptFileName(t *testing.T) {
	assert.Equal(t, "my_video.yaml", scriptFileName(" my video "))
}
