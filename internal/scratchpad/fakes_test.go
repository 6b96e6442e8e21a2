package scratchpad

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mj1618/scratchpad/internal/model"
	"github.com/mj1618/scratchpad/internal/platform"
)

var errNoMoreEvents = errors.New("no more scripted events")

type fakeTree struct {
	root  model.Node
	err   error
	calls int
}

func (f *fakeTree) GetTree() (model.Node, error) {
	f.calls++
	return f.root, f.err
}

type fakeOutputs struct {
	outputs []model.Output
	err     error
	calls   int
}

func (f *fakeOutputs) GetOutputs() ([]model.Output, error) {
	f.calls++
	return f.outputs, f.err
}

type runCall struct {
	Command  string
	Criteria string
}

type fakeCommander struct {
	calls  []runCall
	failOn int    // 1-based call index that fails (0 = never)
	onRun  func() // called before each command is recorded
}

func (f *fakeCommander) Run(command string, criteria platform.Criteria) error {
	if f.onRun != nil {
		f.onRun()
	}
	f.calls = append(f.calls, runCall{Command: command, Criteria: criteria.String()})
	if f.failOn == len(f.calls) {
		return fmt.Errorf("command %d rejected", len(f.calls))
	}
	return nil
}

// fakeStream delivers one scripted batch of events per Poll.
type fakeStream struct {
	batches [][]platform.Event
	queue   []platform.Event
	polls   int
	closed  bool
}

func (s *fakeStream) TryRecv() (platform.Event, bool) {
	if len(s.queue) == 0 {
		return platform.Event{}, false
	}
	ev := s.queue[0]
	s.queue = s.queue[1:]
	return ev, true
}

func (s *fakeStream) Poll() error {
	s.polls++
	if len(s.batches) == 0 {
		return errNoMoreEvents
	}
	s.queue = append(s.queue, s.batches[0]...)
	s.batches = s.batches[1:]
	return nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

type fakeSubscriber struct {
	stream *fakeStream
	kinds  []platform.EventKind
	err    error
}

func (f *fakeSubscriber) Subscribe(kinds ...platform.EventKind) (platform.EventStream, error) {
	f.kinds = kinds
	if f.err != nil {
		return nil, f.err
	}
	return f.stream, nil
}

// fakeProcess reports exited once its scripted running checks run out.
type fakeProcess struct {
	pid     int
	running int // TryStatus calls that report still running (-1 = forever)
	checks  int
}

func (p *fakeProcess) PID() int { return p.pid }

func (p *fakeProcess) TryStatus() (bool, error) {
	p.checks++
	if p.running < 0 {
		return false, nil
	}
	return p.checks > p.running, nil
}

type fakeLauncher struct {
	proc    *fakeProcess
	err     error
	command string
	args    []string
	onSpawn func()
}

func (f *fakeLauncher) Spawn(command string, args []string) (platform.Process, error) {
	if f.onSpawn != nil {
		f.onSpawn()
	}
	f.command = command
	f.args = args
	if f.err != nil {
		return nil, f.err
	}
	return f.proc, nil
}

type fakeNotifier struct {
	summaries []string
}

func (f *fakeNotifier) Notify(summary, body string) error {
	f.summaries = append(f.summaries, summary)
	return nil
}

func newWindowEvent(change string, conID int64, pid int) platform.Event {
	return platform.Event{
		Kind:   platform.EventWindow,
		Window: &platform.WindowChange{Change: change, ConID: conID, PID: pid},
	}
}

func tickEvent() platform.Event {
	return platform.Event{Kind: platform.EventTick}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type harness struct {
	tree      *fakeTree
	outputs   *fakeOutputs
	commander *fakeCommander
	stream    *fakeStream
	sub       *fakeSubscriber
	launcher  *fakeLauncher
	notifier  *fakeNotifier
	sleeps    []time.Duration
	ctl       *Controller
}

func newHarness(root model.Node, opts Options) *harness {
	h := &harness{
		tree: &fakeTree{root: root},
		outputs: &fakeOutputs{outputs: []model.Output{
			{Name: "DP-1", Rect: model.Rect{Width: 2560, Height: 1440}},
			{Name: "eDP-1", Focused: true, Rect: model.Rect{Width: 1920, Height: 1080}},
		}},
		commander: &fakeCommander{},
		stream:    &fakeStream{},
		launcher:  &fakeLauncher{proc: &fakeProcess{pid: 1234, running: -1}},
		notifier:  &fakeNotifier{},
	}
	h.sub = &fakeSubscriber{stream: h.stream}
	provider := &platform.Provider{
		Tree:       h.tree,
		Outputs:    h.outputs,
		Commander:  h.commander,
		Subscriber: h.sub,
		Launcher:   h.launcher,
		Notifier:   h.notifier,
	}
	h.ctl = New(provider, opts, discardLogger())
	h.ctl.sleep = func(d time.Duration) { h.sleeps = append(h.sleeps, d) }
	return h
}
