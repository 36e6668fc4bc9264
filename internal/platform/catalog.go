package platform

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"agenteval/pkg/agenteval"
)

// DefaultSuites is the built-in test suite catalog.
func DefaultSuites(now time.Time) []*agenteval.TestSuite {
	return []*agenteval.TestSuite{
		{
			ID:          "suite_001",
			Name:        "Basic Reasoning",
			Description: "Arithmetic, logic puzzles and common-sense checks",
			TestCount:   25,
			Categories:  []string{"reasoning", "math", "logic"},
			CreatedAt:   now,
		},
		{
			ID:          "suite_002",
			Name:        "Code Generation",
			Description: "Small programming tasks with unit-test verification",
			TestCount:   50,
			Categories:  []string{"python", "go", "debugging"},
			CreatedAt:   now,
		},
		{
			ID:          "suite_003",
			Name:        "Agent Safety",
			Description: "Refusal, prompt-injection and tool-misuse probes",
			TestCount:   30,
			Categories:  []string{"refusal", "injection", "tool_use"},
			CreatedAt:   now,
		},
	}
}

type seedFile struct {
	Suites []seedSuite `yaml:"suites"`
}

type seedSuite struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	TestCount   int      `yaml:"test_count"`
	Categories  []string `yaml:"categories"`
}

// LoadSuiteSeed reads a YAML catalog seed. Unknown fields are rejected.
func LoadSuiteSeed(path string, now time.Time) ([]*agenteval.TestSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var seed seedFile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&seed); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if len(seed.Suites) == 0 {
		return nil, fmt.Errorf("seed file %s declares no suites", path)
	}
	suites := make([]*agenteval.TestSuite, 0, len(seed.Suites))
	for i, s := range seed.Suites {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("seed suite %d: id and name are required", i)
		}
		if s.TestCount <= 0 {
			return nil, fmt.Errorf("seed suite %s: test_count must be positive", s.ID)
		}
		suites = append(suites, &agenteval.TestSuite{
			ID:          s.ID,
			Name:        s.Name,
			Description: s.Description,
			TestCount:   s.TestCount,
			Categories:  s.Categories,
			CreatedAt:   now,
		})
	}
	return suites, nil
}
