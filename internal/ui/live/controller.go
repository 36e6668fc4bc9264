package live

import (
	"io"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"agenteval/pkg/agenteval"
)

// Controller runs the live UI and accepts events from a poller.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithAltScreen())
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop once pending events drain.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// Observe forwards one refreshed evaluation as a one-row snapshot. It is
// shaped to plug into agenteval.Config.PollObserver for single-run waits.
// The evaluation is copied because Refresh mutates it in place.
func (c *Controller) Observe(eval *agenteval.Evaluation) {
	if c == nil || eval == nil {
		return
	}
	snapshot := *eval
	c.send(Event{
		Kind:        EventSnapshot,
		Evaluations: []*agenteval.Evaluation{&snapshot},
		Pagination:  agenteval.Pagination{Total: 1, Page: 1},
		At:          time.Now(),
	})
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
