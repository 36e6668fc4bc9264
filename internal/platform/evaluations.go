package platform

import (
	"agenteval/pkg/agenteval"
)

// CreateEvaluation starts an evaluation of agentID against suiteID. Both
// must already exist. The evaluation begins in the pending state.
func (s *Store) CreateEvaluation(agentID, suiteID string, config map[string]any) (*agenteval.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.agents[agentID]; !ok {
		return nil, ErrAgentNotFound
	}
	if _, ok := s.suites[suiteID]; !ok {
		return nil, ErrTestSuiteNotFound
	}
	rec := &evalRecord{eval: agenteval.Evaluation{
		ID:           newID("eval"),
		AgentID:      agentID,
		TestSuiteID:  suiteID,
		Status:       agenteval.StatusPending,
		Config:       config,
		Organization: s.org,
		CreatedAt:    s.clock.Now(),
	}}
	s.evals[rec.eval.ID] = rec
	s.evalIDs = append(s.evalIDs, rec.eval.ID)
	copied := rec.eval
	return &copied, nil
}

// GetEvaluation returns the evaluation with the given id, materializing any
// due state transition first.
func (s *Store) GetEvaluation(id string) (*agenteval.Evaluation, bool) {
	s.mu.Lock()
	rec, ok := s.evals[id]
	if !ok {
		s.mu.Unlock()
		return nil, false
	}
	events := s.advanceLocked(rec, s.clock.Now())
	copied := rec.eval
	s.mu.Unlock()
	s.emit(events)
	return &copied, true
}

// ListEvaluations returns one page, newest first, optionally filtered by
// status. Page is 1-based; limit is capped at 100.
func (s *Store) ListEvaluations(page, limit int, status agenteval.Status) ([]*agenteval.Evaluation, agenteval.Pagination) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	s.mu.Lock()
	now := s.clock.Now()
	var events []Event
	matched := make([]agenteval.Evaluation, 0, len(s.evalIDs))
	for i := len(s.evalIDs) - 1; i >= 0; i-- {
		rec := s.evals[s.evalIDs[i]]
		events = append(events, s.advanceLocked(rec, now)...)
		if status != "" && rec.eval.Status != status {
			continue
		}
		matched = append(matched, rec.eval)
	}
	s.mu.Unlock()
	s.emit(events)

	total := len(matched)
	totalPages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}
	pageItems := make([]*agenteval.Evaluation, 0, end-start)
	for i := start; i < end; i++ {
		copied := matched[i]
		pageItems = append(pageItems, &copied)
	}
	return pageItems, agenteval.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Sweep materializes due transitions across all evaluations and returns how
// many fired. The daemon calls this periodically so webhooks deliver without
// waiting for a read.
func (s *Store) Sweep() int {
	s.mu.Lock()
	now := s.clock.Now()
	var events []Event
	for _, id := range s.evalIDs {
		events = append(events, s.advanceLocked(s.evals[id], now)...)
	}
	s.mu.Unlock()
	s.emit(events)
	return len(events)
}
