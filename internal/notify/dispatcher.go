package notify

import (
	"context"
	"sync"
	"time"

	"agenteval/internal/platform"
	"agenteval/pkg/agenteval"
)

// Config wires dependencies for the dispatcher.
type Config struct {
	// Webhooks returns the current registrations. Required.
	Webhooks func() []*agenteval.Webhook
	// Retry defaults to DefaultRetryConfig.
	Retry *RetryConfig
	// DeliveryTimeout bounds one delivery including retries. Defaults to 2m.
	DeliveryTimeout time.Duration
	// Logf receives delivery failures. Optional.
	Logf func(format string, args ...any)
	// Now stamps payloads. Defaults to time.Now.
	Now func() time.Time
}

// Dispatcher fans evaluation state transitions out to subscribed webhooks.
// Register Handle as the store's event listener.
type Dispatcher struct {
	webhooks  func() []*agenteval.Webhook
	deliverer *Deliverer
	timeout   time.Duration
	logf      func(format string, args ...any)
	now       func() time.Time
	wg        sync.WaitGroup
}

// New builds a dispatcher.
func New(cfg Config) *Dispatcher {
	retry := DefaultRetryConfig()
	if cfg.Retry != nil {
		retry = *cfg.Retry
	}
	if cfg.DeliveryTimeout <= 0 {
		cfg.DeliveryTimeout = 2 * time.Minute
	}
	if cfg.Logf == nil {
		cfg.Logf = func(string, ...any) {}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Dispatcher{
		webhooks:  cfg.Webhooks,
		deliverer: NewDeliverer(retry),
		timeout:   cfg.DeliveryTimeout,
		logf:      cfg.Logf,
		now:       cfg.Now,
	}
}

// Handle delivers ev to every webhook subscribed to its type. Deliveries
// run in the background so store sweeps never block on slow targets.
func (d *Dispatcher) Handle(ev platform.Event) {
	payload := Payload{
		Event:      ev.Type,
		Timestamp:  d.now(),
		Evaluation: ev.Evaluation,
	}
	for _, hook := range d.webhooks() {
		if !subscribed(hook, ev.Type) {
			continue
		}
		d.wg.Add(1)
		go func(url string) {
			defer d.wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
			defer cancel()
			if err := d.deliverer.Send(ctx, url, payload); err != nil {
				d.logf("webhook delivery to %s failed: %v", url, err)
			}
		}(hook.URL)
	}
}

// Wait blocks until in-flight deliveries drain.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func subscribed(hook *agenteval.Webhook, event string) bool {
	for _, e := range hook.Events {
		if e == event {
			return true
		}
	}
	return false
}
