package history

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// mapExpression builds a MAP constructor expression for score literals.
func mapExpression(scores map[string]float64) string {
	if scores == nil {
		return "NULL"
	}
	if len(scores) == 0 {
		return "map([], [])"
	}
	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	keyLiterals := make([]string, 0, len(keys))
	valLiterals := make([]string, 0, len(keys))
	for _, k := range keys {
		keyLiterals = append(keyLiterals, quoteLiteral(k))
		valLiterals = append(valLiterals, strconv.FormatFloat(scores[k], 'g', -1, 64))
	}
	return fmt.Sprintf("map([%s], [%s])", strings.Join(keyLiterals, ", "), strings.Join(valLiterals, ", "))
}

// listExpression builds a list constructor expression for string literals.
func listExpression(values []string) string {
	if values == nil {
		return "NULL"
	}
	literals := make([]string, 0, len(values))
	for _, v := range values {
		literals = append(literals, quoteLiteral(v))
	}
	return "[" + strings.Join(literals, ", ") + "]"
}

// quoteLiteral escapes a string for SQL literal use.
func quoteLiteral(value string) string {
	escaped := strings.ReplaceAll(value, "'", "''")
	return "'" + escaped + "'"
}
