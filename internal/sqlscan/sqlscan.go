// Package sqlscan provides best-effort heuristic scanning of SQL text.
//
// These are deliberately not a SQL parser: extraction is plain substring and
// token scanning, kept compatible with the downstream consumers that tolerate
// its known blind spots (subqueries, joins, quoted identifiers, multi-line
// SQL). Malformed input is skipped, never an error.
package sqlscan

import "strings"

// maxTableNameLen rejects tokens too long to plausibly be a table name.
const maxTableNameLen = 50

// TableAfterFrom returns the candidate table name from a SQL query.
//
// Rules:
//   - Locate the first occurrence of "from" (case-insensitive).
//   - Take the next whitespace-delimited token, lowercased, with backtick
//     quoting stripped.
//   - Accept only non-empty tokens shorter than 50 characters.
//
// ok is false when no candidate is found.
func TableAfterFrom(sql string) (table string, ok bool) {
	lower := strings.ToLower(sql)
	idx := strings.Index(lower, "from")
	if idx < 0 {
		return "", false
	}
	fields := strings.Fields(lower[idx+len("from"):])
	if len(fields) == 0 {
		return "", false
	}
	table = strings.Trim(fields[0], "`")
	if table == "" || len(table) >= maxTableNameLen {
		return "", false
	}
	return table, true
}

// Patterns flags broad query constructs detected in one SQL query.
type Patterns struct {
	Count     bool // a COUNT aggregate call
	Aggregate bool // any of SUM/AVG/MAX/MIN aggregate calls
	Filter    bool // a WHERE clause
}

// aggregateCalls are the non-COUNT aggregate markers Classify looks for.
var aggregateCalls = []string{"SUM(", "AVG(", "MAX(", "MIN("}

// Classify detects query constructs by substring matching on an uppercased
// copy of the query.
func Classify(sql string) Patterns {
	upper := strings.ToUpper(sql)
	p := Patterns{
		Count:  strings.Contains(upper, "COUNT("),
		Filter: strings.Contains(upper, "WHERE"),
	}
	for _, agg := range aggregateCalls {
		if strings.Contains(upper, agg) {
			p.Aggregate = true
			break
		}
	}
	return p
}
