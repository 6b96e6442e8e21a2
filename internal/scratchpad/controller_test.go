package scratchpad

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mj1618/scratchpad/internal/geometry"
	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/platform"
)

// layout builds a two-workspace tree. The terminal is added on the first
// workspace when marks are given.
//
//	root
//	└── eDP-1
//	    ├── 1 (firefox)
//	    │   └── floating: term (marks...)
//	    └── __i3_scratch (floating: music)
func layout(termFocused bool, marks ...string) model.Node {
	ws1 := &model.Branch{
		ID: 3, Name: "1", Type: "workspace",
		Children: []model.Node{
			&model.Leaf{Container: model.Container{ID: 10, AppID: "firefox", PID: 500, Workspace: "1"}},
		},
	}
	if len(marks) > 0 {
		ws1.Floating = []model.Node{
			&model.Leaf{Container: model.Container{ID: 11, AppID: "foot", PID: 600, Marks: marks, Focused: termFocused, Workspace: "1"}},
		}
	}
	scratch := &model.Branch{
		ID: 4, Name: model.ScratchpadWorkspace, Type: "workspace",
		Floating: []model.Node{
			&model.Leaf{Container: model.Container{ID: 12, AppID: "spotify", PID: 700, Marks: []string{"SCRATCHPAD_music"}, Workspace: model.ScratchpadWorkspace}},
		},
	}
	return &model.Branch{
		ID: 1, Type: "root",
		Children: []model.Node{
			&model.Branch{ID: 2, Name: "eDP-1", Type: "output", Children: []model.Node{ws1, scratch}},
		},
	}
}

var term = Target{Tag: model.NewTag("term"), Launch: Launch{Command: "foot", Args: []string{"-e", "tmux"}}}

func TestDecide(t *testing.T) {
	tag := model.NewTag("term")
	tests := []struct {
		name       string
		containers []model.Container
		want       Decision
	}{
		{"not tagged", []model.Container{{ID: 1}, {ID: 2, Marks: []string{"other"}}}, DecisionLaunch},
		{"empty", nil, DecisionLaunch},
		{"tagged focused", []model.Container{{ID: 1, Marks: []string{"SCRATCHPAD_term"}, Focused: true}}, DecisionHide},
		{"tagged unfocused", []model.Container{{ID: 1, Marks: []string{"SCRATCHPAD_term"}}}, DecisionShow},
		{"duplicate tag uses first", []model.Container{
			{ID: 1, Marks: []string{"SCRATCHPAD_term"}},
			{ID: 2, Marks: []string{"SCRATCHPAD_term"}, Focused: true},
		}, DecisionShow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := Decide(tt.containers, tag)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToggle_LaunchWhenMissing(t *testing.T) {
	h := newHarness(layout(false), defaultOpts)
	h.stream.batches = [][]platform.Event{{newWindowEvent("new", 42, 1234)}}

	result, err := h.ctl.Toggle(term)
	require.NoError(t, err)

	assert.Equal(t, DecisionLaunch, result.Decision)
	require.NotNil(t, result.Watch)
	assert.Equal(t, Matched, result.Watch.Outcome)
	assert.Equal(t, "foot", h.launcher.command)
	assert.Equal(t, []string{"-e", "tmux"}, h.launcher.args)
	assert.Equal(t, []runCall{
		{Command: `mark "SCRATCHPAD_term", move scratchpad, focus`, Criteria: "[con_id=42]"},
		{Command: "resize set 1824 px 972 px, move position center", Criteria: "[con_id=42]"},
	}, h.commander.calls)
	assert.Equal(t, 1, h.tree.calls)
}

func TestToggle_HideWhenFocused(t *testing.T) {
	h := newHarness(layout(true, "SCRATCHPAD_term"), defaultOpts)

	result, err := h.ctl.Toggle(term)
	require.NoError(t, err)

	assert.Equal(t, DecisionHide, result.Decision)
	require.NotNil(t, result.Container)
	assert.Equal(t, int64(11), result.Container.ID)
	assert.Equal(t, []runCall{
		{Command: "move scratchpad", Criteria: `[con_mark="^SCRATCHPAD_term$"]`},
	}, h.commander.calls)
	assert.Empty(t, h.sleeps)
	assert.Equal(t, 0, h.outputs.calls)
	assert.Nil(t, h.sub.kinds)
}

func TestToggle_ShowWhenUnfocused(t *testing.T) {
	h := newHarness(layout(false, "SCRATCHPAD_term"), defaultOpts)

	result, err := h.ctl.Toggle(term)
	require.NoError(t, err)

	assert.Equal(t, DecisionShow, result.Decision)
	assert.Equal(t, []runCall{
		{Command: "move scratchpad, focus", Criteria: `[con_mark="^SCRATCHPAD_term$"]`},
		{Command: "resize set 1824 px 972 px, move position center", Criteria: `[con_mark="^SCRATCHPAD_term$"]`},
	}, h.commander.calls)
	assert.Equal(t, []time.Duration{DefaultSettleDelay}, h.sleeps)
	assert.Nil(t, h.sub.kinds)
}

func TestToggle_ShowWithOffsetPlacement(t *testing.T) {
	opts := defaultOpts
	opts.Placement = geometry.PlaceOffset
	opts.Size = geometry.NewSize(50, 50, 0, 0)
	h := newHarness(layout(false, "SCRATCHPAD_term"), opts)

	_, err := h.ctl.Toggle(term)
	require.NoError(t, err)
	require.Len(t, h.commander.calls, 2)
	assert.Equal(t, "resize set 960 px 540 px, move position 480 px 270 px", h.commander.calls[1].Command)
}

func TestToggle_TreeError(t *testing.T) {
	h := newHarness(nil, defaultOpts)
	h.tree.err = errors.New("broken pipe")

	_, err := h.ctl.Toggle(term)
	require.Error(t, err)
	assert.Empty(t, h.commander.calls)
}

func TestToggle_ShowDisplayError(t *testing.T) {
	h := newHarness(layout(false, "SCRATCHPAD_term"), defaultOpts)
	h.outputs.outputs = nil

	_, err := h.ctl.Toggle(term)
	require.Error(t, err)
	assert.ErrorIs(t, err, geometry.ErrNoFocusedOutput)
	assert.Empty(t, h.commander.calls)
}

func TestToggle_LaunchWithoutCommand(t *testing.T) {
	h := newHarness(layout(false), defaultOpts)

	_, err := h.ctl.Toggle(Target{Tag: model.NewTag("term")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term")
	assert.Empty(t, h.launcher.command)
}

func TestToggle_AbandonedNotifies(t *testing.T) {
	opts := defaultOpts
	opts.Notify = true
	h := newHarness(layout(false), opts)
	h.launcher.proc.running = 0

	result, err := h.ctl.Toggle(term)
	require.NoError(t, err)
	require.NotNil(t, result.Watch)
	assert.Equal(t, Abandoned, result.Watch.Outcome)
	assert.Equal(t, []string{"scratchpad term"}, h.notifier.summaries)
	assert.Empty(t, h.commander.calls)
}

func TestToggle_AbandonedSilentByDefault(t *testing.T) {
	h := newHarness(layout(false), defaultOpts)
	h.launcher.proc.running = 0

	_, err := h.ctl.Toggle(term)
	require.NoError(t, err)
	assert.Empty(t, h.notifier.summaries)
}

func TestShow_ForcesShowWhenFocused(t *testing.T) {
	h := newHarness(layout(true, "SCRATCHPAD_term"), defaultOpts)

	result, err := h.ctl.Show(model.NewTag("term"))
	require.NoError(t, err)
	assert.Equal(t, DecisionShow, result.Decision)
	assert.Len(t, h.commander.calls, 2)
}

func TestHide_ForcesHideWhenUnfocused(t *testing.T) {
	h := newHarness(layout(false, "SCRATCHPAD_term"), defaultOpts)

	result, err := h.ctl.Hide(model.NewTag("term"))
	require.NoError(t, err)
	assert.Equal(t, DecisionHide, result.Decision)
	assert.Equal(t, []runCall{{Command: "move scratchpad", Criteria: `[con_mark="^SCRATCHPAD_term$"]`}}, h.commander.calls)
}

func TestShowHide_NotFound(t *testing.T) {
	h := newHarness(layout(false), defaultOpts)

	_, err := h.ctl.Show(model.NewTag("term"))
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = h.ctl.Hide(model.NewTag("term"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, h.commander.calls)
}

func TestList(t *testing.T) {
	h := newHarness(layout(true, "SCRATCHPAD_term"), defaultOpts)

	windows, err := h.ctl.List()
	require.NoError(t, err)
	require.Len(t, windows, 2)
	assert.Equal(t, "term", windows[0].Name)
	assert.True(t, windows[0].Focused)
	assert.False(t, windows[0].Hidden)
	assert.Equal(t, "music", windows[1].Name)
	assert.True(t, windows[1].Hidden)
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "launch", DecisionLaunch.String())
	assert.Equal(t, "show", DecisionShow.String())
	assert.Equal(t, "hide", DecisionHide.String())
}

func TestNewTarget(t *testing.T) {
	target := NewTarget("term", []string{"foot", "-e", "tmux"})
	assert.Equal(t, model.NewTag("term"), target.Tag)
	assert.Equal(t, Launch{Command: "foot", Args: []string{"-e", "tmux"}}, target.Launch)

	empty := NewTarget("notes", nil)
	assert.Equal(t, "", empty.Launch.Command)
}

func TestToggle_LaunchWithoutLauncher(t *testing.T) {
	h := newHarness(layout(false), defaultOpts)
	h.ctl.provider.Launcher = nil

	_, err := h.ctl.Toggle(term)
	assert.ErrorIs(t, err, platform.ErrNoLauncher)
}

// held reports whether mu is currently locked.
func held(mu *sync.Mutex) bool {
	if mu.TryLock() {
		mu.Unlock()
		return false
	}
	return true
}

func TestSerialize_ReleasesLockWhileLaunching(t *testing.T) {
	h := newHarness(layout(false), defaultOpts)
	h.stream.batches = [][]platform.Event{{newWindowEvent("new", 42, 1234)}}
	var mu sync.Mutex
	h.ctl.Serialize(&mu)

	var heldAtSpawn bool
	h.launcher.onSpawn = func() { heldAtSpawn = held(&mu) }

	result, err := h.ctl.Toggle(term)
	require.NoError(t, err)
	assert.Equal(t, DecisionLaunch, result.Decision)
	assert.False(t, heldAtSpawn)
	assert.False(t, held(&mu))
}

func TestSerialize_HoldsLockWhileCommanding(t *testing.T) {
	h := newHarness(layout(true, "SCRATCHPAD_term"), defaultOpts)
	var mu sync.Mutex
	h.ctl.Serialize(&mu)

	var heldAtRun []bool
	h.commander.onRun = func() { heldAtRun = append(heldAtRun, held(&mu)) }

	_, err := h.ctl.Toggle(term)
	require.NoError(t, err)
	_, err = h.ctl.Show(term.Tag)
	require.NoError(t, err)

	assert.Equal(t, []bool{true, true, true}, heldAtRun)
	assert.False(t, held(&mu))
}
