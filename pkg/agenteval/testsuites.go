package agenteval

import "context"

// TestSuitesService reads the test suite catalog.
type TestSuitesService struct {
	client *Client
}

type testSuiteList struct {
	TestSuites []*TestSuite `json:"test_suites"`
}

// List returns all available test suites.
func (s *TestSuitesService) List(ctx context.Context) ([]*TestSuite, error) {
	var list testSuiteList
	if err := s.client.getJSON(ctx, "/test-suites", &list); err != nil {
		return nil, err
	}
	return list.TestSuites, nil
}

// Get returns the test suite with the given id, or (nil, nil) when no such
// suite exists. The service has no per-suite endpoint, so Get filters List.
func (s *TestSuitesService) Get(ctx context.Context, id string) (*TestSuite, error) {
	suites, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, suite := range suites {
		if suite.ID == id {
			return suite, nil
		}
	}
	return nil, nil
}
