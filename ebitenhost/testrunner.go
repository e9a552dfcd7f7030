package ebitenhost

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

// Script actions.
const (
	ActionLayout     = "layout"
	ActionClick      = "click"
	ActionDrag       = "drag"
	ActionWait       = "wait"
	ActionSelect     = "select"
	ActionScreenshot = "screenshot"
)

// ErrEmptyScript is returned for a script with no steps.
var ErrEmptyScript = errors.New("no steps")

type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Layout string  `json:"layout,omitempty"`
	Index  int     `json:"index,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner plays a scripted sequence of layout switches, injected input
// and screenshots, one step per frame. Attach it with RunConfig.Script or
// Game.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON script:
//
//	{"steps": [
//		{"action": "layout", "layout": "spiral"},
//		{"action": "wait", "frames": 90},
//		{"action": "select", "index": 0},
//		{"action": "screenshot", "label": "selected"}
//	]}
func LoadTestScript(data []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: %w", ErrEmptyScript)
	}
	for i, st := range script.Steps {
		switch st.Action {
		case ActionLayout, ActionClick, ActionDrag, ActionWait, ActionSelect, ActionScreenshot:
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// LoadTestScriptFile reads and parses a script file.
func LoadTestScriptFile(path string) (*TestRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test script: %w", err)
	}
	return LoadTestScript(data)
}

// Done reports whether every step has run.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame. Called from Game.Update before
// input is processed.
func (r *TestRunner) step(g *Game) {
	if r.done {
		return
	}
	if len(g.input.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case ActionLayout:
		g.vis.SetLayout(st.Layout)
	case ActionClick:
		g.InjectClick(st.X, st.Y)
	case ActionDrag:
		g.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case ActionSelect:
		if !g.InjectSelect(st.Index) {
			g.logger.Warn("select: instance not on screen", "index", st.Index)
		}
	case ActionWait:
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case ActionScreenshot:
		g.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(g.input.injectQueue) == 0 {
		r.done = true
	}
}
