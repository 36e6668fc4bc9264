package platform

import (
	"hash/fnv"
	"math"

	"agenteval/pkg/agenteval"
)

// scoreEvaluation derives deterministic results from the agent, suite and
// category identifiers, so repeated runs of the same pairing score the same.
// Execution time is salted with the evaluation id and varies per run.
func scoreEvaluation(eval agenteval.Evaluation, suite *agenteval.TestSuite, timings Timings) agenteval.EvaluationResults {
	categories := suite.Categories
	if len(categories) == 0 {
		categories = []string{"general"}
	}
	scores := make(map[string]float64, len(categories))
	var sum float64
	for _, cat := range categories {
		v := 0.55 + 0.44*hashFraction(eval.AgentID, eval.TestSuiteID, cat)
		v = math.Round(v*1000) / 1000
		scores[cat] = v
		sum += v
	}
	overall := math.Round(sum/float64(len(categories))*1000) / 1000
	passed := int(math.Round(overall * float64(suite.TestCount)))
	if passed > suite.TestCount {
		passed = suite.TestCount
	}
	execution := timings.RunningFor.Seconds() + 10*hashFraction(eval.ID)
	return agenteval.EvaluationResults{
		OverallScore:         overall,
		PassedTests:          passed,
		FailedTests:          suite.TestCount - passed,
		Categories:           scores,
		ExecutionTimeSeconds: math.Round(execution*100) / 100,
	}
}

// hashFraction maps its inputs to [0, 1).
func hashFraction(parts ...string) float64 {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return float64(h.Sum64()%100000) / 100000
}
