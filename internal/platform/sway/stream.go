package sway

import (
	"context"
	"log/slog"
	"time"

	gosway "github.com/joshuarubin/go-sway"
	"github.com/pkg/errors"

	"github.com/mj1618/scratchpad/internal/platform"
)

// pollInterval bounds how long Poll waits for an event, so callers can
// check on the spawned process between waits.
const pollInterval = 100 * time.Millisecond

// eventBuffer is the number of events held between Polls before the
// subscription stops reading from the socket.
const eventBuffer = 64

// stream adapts the callback subscription to TryRecv/Poll. The handler
// runs on the subscription goroutine and feeds events.
type stream struct {
	events chan platform.Event
	done   chan struct{}
	err    error // set before done is closed
	cancel context.CancelFunc
	wait   time.Duration
	queue  []platform.Event
}

func subscribe(parent context.Context, types []gosway.EventType, logger *slog.Logger) *stream {
	ctx, cancel := context.WithCancel(parent)
	s := &stream{
		events: make(chan platform.Event, eventBuffer),
		done:   make(chan struct{}),
		cancel: cancel,
		wait:   pollInterval,
	}
	h := &handler{ctx: ctx, events: s.events}
	go func() {
		defer close(s.done)
		err := gosway.Subscribe(ctx, h, types...)
		if ctx.Err() != nil {
			return
		}
		if err == nil {
			err = errors.New("connection closed")
		}
		logger.Debug("subscription ended", "error", err)
		s.err = errors.Wrap(err, "SUBSCRIBE")
	}()
	return s
}

func (s *stream) TryRecv() (platform.Event, bool) {
	if len(s.queue) > 0 {
		ev := s.queue[0]
		s.queue = s.queue[1:]
		return ev, true
	}
	select {
	case ev := <-s.events:
		return ev, true
	default:
		return platform.Event{}, false
	}
}

// Poll waits for at most one event. It returns nil without queueing
// anything when no event arrives within the poll interval, and the
// subscription error once the subscription has ended.
func (s *stream) Poll() error {
	timer := time.NewTimer(s.wait)
	defer timer.Stop()
	select {
	case ev := <-s.events:
		s.queue = append(s.queue, ev)
		return nil
	case <-s.done:
		select {
		case ev := <-s.events:
			s.queue = append(s.queue, ev)
			return nil
		default:
		}
		if s.err != nil {
			return s.err
		}
		return errors.New("subscription closed")
	case <-timer.C:
		return nil
	}
}

// Close cancels the subscription. It does not wait for the subscription
// goroutine to return.
func (s *stream) Close() error {
	s.cancel()
	return nil
}

// handler forwards the subscribed events to the stream. Only window and
// tick events are subscribed, so the embedded handler is never called.
type handler struct {
	gosway.EventHandler
	ctx    context.Context
	events chan<- platform.Event
}

func (h *handler) Window(_ context.Context, e gosway.WindowEvent) {
	h.send(platform.Event{
		Kind: platform.EventWindow,
		Window: &platform.WindowChange{
			Change: string(e.Change),
			ConID:  int64(e.Container.ID),
			PID:    pidOf(&e.Container),
		},
	})
}

func (h *handler) Tick(_ context.Context, _ gosway.TickEvent) {
	h.send(platform.Event{Kind: platform.EventTick})
}

func (h *handler) send(ev platform.Event) {
	select {
	case h.events <- ev:
	case <-h.ctx.Done():
	}
}
