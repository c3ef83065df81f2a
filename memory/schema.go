package memory

import (
	"sort"

	"github.com/fennwick/sqlchat/internal/sqlscan"
)

// SchemaLearning aggregates schema hints scraped from the SQL issued so far.
// Columns and CommonFilters are reserved: their extraction is deliberately a
// no-op and both are always empty. Callers rely on that contract; do not
// start populating them without changing the contract first.
type SchemaLearning struct {
	Tables        []string            `json:"tables"`
	Columns       map[string][]string `json:"columns"`
	CommonFilters map[string]int      `json:"common_filters"`
}

// SchemaLearning extracts candidate table names from every stored SQL query
// by best-effort token scanning (see sqlscan.TableAfterFrom). Malformed
// queries are skipped, never an error. Tables are deduplicated and sorted
// for deterministic output.
func (s *Store) SchemaLearning(sessionID, database string) SchemaLearning {
	s.mu.Lock()
	defer s.mu.Unlock()

	learned := SchemaLearning{
		Tables:        []string{},
		Columns:       map[string][]string{},
		CommonFilters: map[string]int{},
	}
	seen := make(map[string]struct{})
	for _, m := range s.history(sessionID, database, 0) {
		if m.SQLQuery == "" {
			continue
		}
		table, ok := sqlscan.TableAfterFrom(m.SQLQuery)
		if !ok {
			continue
		}
		if _, dup := seen[table]; dup {
			continue
		}
		seen[table] = struct{}{}
		learned.Tables = append(learned.Tables, table)
	}
	sort.Strings(learned.Tables)
	return learned
}
