package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// fixtureModels cycle across generated agents.
var fixtureModels = []string{"gpt-4", "claude-3-opus", "llama-3-70b"}

// fixtureScores cycle across generated evaluations so every grade band
// shows up in the report.
var fixtureScores = []float64{0.93, 0.87, 0.81, 0.74, 0.62, 0.55}

func fixtureModel(index int) string {
	return fixtureModels[index%len(fixtureModels)]
}

func fixtureScore(index int) float64 {
	return fixtureScores[index%len(fixtureScores)]
}

// dirOf returns the parent directory for a file path.
func dirOf(path string) string {
	if path == "" {
		return "."
	}
	if idx := len(path) - 1; idx >= 0 && path[idx] == os.PathSeparator {
		return path
	}
	return filepath.Dir(path)
}

// removeIfExists deletes an existing fixture file so runs always start fresh.
func removeIfExists(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove existing fixture: %w", err)
		}
		return nil
	}
	if os.IsNotExist(err) {
		return nil
	}
	return fmt.Errorf("stat fixture: %w", err)
}

// deterministicID generates a repeatable UUID for fixture rows.
func deterministicID(prefix string, index int) string {
	return uuid.NewSHA1(fixtureNamespace, []byte(fmt.Sprintf("%s-%d", prefix, index))).String()
}

// fixtureNamespace keeps generated UUIDs stable across fixture runs.
var fixtureNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
