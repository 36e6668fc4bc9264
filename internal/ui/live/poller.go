package live

import (
	"context"
	"time"

	"agenteval/pkg/agenteval"
)

// Poller feeds evaluation list snapshots to the live UI.
type Poller struct {
	client   *agenteval.Client
	params   agenteval.ListEvaluationsParams
	interval time.Duration
}

// NewPoller builds a poller for the given list parameters.
func NewPoller(client *agenteval.Client, params agenteval.ListEvaluationsParams, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Poller{
		client:   client,
		params:   params,
		interval: interval,
	}
}

// Run polls the list endpoint until ctx is done, forwarding snapshots to the
// controller. The controller is closed on return so the UI shuts down with
// the poll loop.
func (p *Poller) Run(ctx context.Context, ctrl *Controller) {
	defer ctrl.Close()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		list, err := p.client.Evaluations.List(ctx, p.params)
		switch {
		case err != nil && ctx.Err() != nil:
			return
		case err != nil:
			ctrl.send(Event{Kind: EventError, Err: err.Error(), At: time.Now()})
		default:
			ctrl.send(Event{
				Kind:        EventSnapshot,
				Evaluations: list.Evaluations,
				Pagination:  list.Pagination,
				At:          time.Now(),
			})
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
