package agenteval

import (
	"math"
	"testing"
)

func TestPassRate(t *testing.T) {
	cases := []struct {
		name   string
		passed int
		failed int
		want   float64
	}{
		{"no tests", 0, 0, 0},
		{"all passed", 10, 0, 1},
		{"all failed", 0, 5, 0},
		{"mixed", 8, 2, 0.8},
		{"one of three", 1, 2, 1.0 / 3.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := EvaluationResults{PassedTests: tc.passed, FailedTests: tc.failed}
			if got := r.PassRate(); math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("expected pass rate %v, got %v", tc.want, got)
			}
		})
	}
}

func TestGradeBoundaries(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{1.0, "A+"},
		{0.9, "A+"},
		{0.89, "A"},
		{0.85, "A"},
		{0.84, "B"},
		{0.8, "B"},
		{0.79, "C"},
		{0.7, "C"},
		{0.69, "D"},
		{0.6, "D"},
		{0.59, "F"},
		{0, "F"},
	}
	for _, tc := range cases {
		r := EvaluationResults{OverallScore: tc.score}
		if got := r.Grade(); got != tc.want {
			t.Errorf("score %v: expected grade %s, got %s", tc.score, tc.want, got)
		}
	}
}
