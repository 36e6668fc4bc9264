package platform

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"agenteval/pkg/agenteval"
)

// Lookup errors returned by the store. The HTTP layer maps them to 404s.
var (
	ErrAgentNotFound     = errors.New("agent not found")
	ErrTestSuiteNotFound = errors.New("test suite not found")
)

// Timings control how long evaluations spend in each non-terminal state.
type Timings struct {
	PendingFor time.Duration
	RunningFor time.Duration
}

func (t Timings) withDefaults() Timings {
	if t.PendingFor <= 0 {
		t.PendingFor = 2 * time.Second
	}
	if t.RunningFor <= 0 {
		t.RunningFor = 4 * time.Second
	}
	return t
}

// Event reports an evaluation state transition.
type Event struct {
	Type       string
	Evaluation agenteval.Evaluation
}

// Config wires dependencies for the store.
type Config struct {
	// Clock defaults to the wall clock.
	Clock Clock
	// Timings default to 2s pending and 4s running.
	Timings Timings
	// Org names the single organization served. Defaults to "acme".
	Org string
	// Suites seeds the catalog. Defaults to DefaultSuites.
	Suites []*agenteval.TestSuite
	// Listener receives state transition events. Optional. Called without
	// internal locks held.
	Listener func(Event)
}

// Store is the in-memory state of the evaluation service. Evaluations move
// through pending, running and a terminal state on a schedule measured from
// their creation time; transitions materialize whenever a record is read or
// the store is swept.
type Store struct {
	mu       sync.RWMutex
	clock    Clock
	timings  Timings
	org      string
	agents   map[string]*agenteval.Agent
	suites   map[string]*agenteval.TestSuite
	suiteIDs []string
	evals    map[string]*evalRecord
	evalIDs  []string
	webhooks map[string]*agenteval.Webhook
	hookIDs  []string
	listener func(Event)
}

type evalRecord struct {
	eval agenteval.Evaluation
}

// New creates a store seeded with the configured test suite catalog.
func New(cfg Config) *Store {
	if cfg.Clock == nil {
		cfg.Clock = realClock{}
	}
	if cfg.Org == "" {
		cfg.Org = "acme"
	}
	if len(cfg.Suites) == 0 {
		cfg.Suites = DefaultSuites(cfg.Clock.Now())
	}
	s := &Store{
		clock:    cfg.Clock,
		timings:  cfg.Timings.withDefaults(),
		org:      cfg.Org,
		agents:   map[string]*agenteval.Agent{},
		suites:   map[string]*agenteval.TestSuite{},
		evals:    map[string]*evalRecord{},
		webhooks: map[string]*agenteval.Webhook{},
		listener: cfg.Listener,
	}
	for _, suite := range cfg.Suites {
		copied := *suite
		s.suites[suite.ID] = &copied
		s.suiteIDs = append(s.suiteIDs, suite.ID)
	}
	return s
}

// Org returns the organization name stamped on created resources.
func (s *Store) Org() string { return s.org }

// CreateAgent registers an agent. Name is required; model and version fall
// back to the service defaults.
func (s *Store) CreateAgent(params agenteval.CreateAgentParams) (*agenteval.Agent, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("agent name is required")
	}
	if params.Model == "" {
		params.Model = "unknown"
	}
	if params.Version == "" {
		params.Version = "1.0.0"
	}
	agent := &agenteval.Agent{
		ID:           newID("agent"),
		Name:         params.Name,
		Model:        params.Model,
		Version:      params.Version,
		Description:  params.Description,
		Metadata:     params.Metadata,
		Organization: s.org,
		CreatedAt:    s.clock.Now(),
	}
	s.mu.Lock()
	s.agents[agent.ID] = agent
	s.mu.Unlock()
	copied := *agent
	return &copied, nil
}

// GetAgent returns the agent with the given id, if present.
func (s *Store) GetAgent(id string) (*agenteval.Agent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	agent, ok := s.agents[id]
	if !ok {
		return nil, false
	}
	copied := *agent
	return &copied, true
}

// ListSuites returns the catalog in seed order.
func (s *Store) ListSuites() []*agenteval.TestSuite {
	s.mu.RLock()
	defer s.mu.RUnlock()
	suites := make([]*agenteval.TestSuite, 0, len(s.suiteIDs))
	for _, id := range s.suiteIDs {
		copied := *s.suites[id]
		suites = append(suites, &copied)
	}
	return suites
}

// CreateWebhook registers a notification target. URL is required; events
// default to evaluation.completed.
func (s *Store) CreateWebhook(params agenteval.CreateWebhookParams) (*agenteval.Webhook, error) {
	if params.URL == "" {
		return nil, fmt.Errorf("webhook url is required")
	}
	if len(params.Events) == 0 {
		params.Events = []string{agenteval.EventEvaluationCompleted}
	}
	hook := &agenteval.Webhook{
		ID:        newID("wh"),
		URL:       params.URL,
		Events:    append([]string(nil), params.Events...),
		CreatedAt: s.clock.Now(),
	}
	s.mu.Lock()
	s.webhooks[hook.ID] = hook
	s.hookIDs = append(s.hookIDs, hook.ID)
	s.mu.Unlock()
	copied := *hook
	return &copied, nil
}

// Webhooks returns all registered webhooks in creation order.
func (s *Store) Webhooks() []*agenteval.Webhook {
	s.mu.RLock()
	defer s.mu.RUnlock()
	hooks := make([]*agenteval.Webhook, 0, len(s.hookIDs))
	for _, id := range s.hookIDs {
		copied := *s.webhooks[id]
		hooks = append(hooks, &copied)
	}
	return hooks
}

func (s *Store) emit(events []Event) {
	if s.listener == nil {
		return
	}
	for _, ev := range events {
		s.listener(ev)
	}
}
