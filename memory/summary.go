package memory

import (
	"fmt"
	"strings"
)

// summaryWindow and summaryTail bound how much history the digest covers:
// at most the last summaryTail of the last summaryWindow fetched messages.
const (
	summaryWindow = 5
	summaryTail   = 3
)

// noHistory is the fixed sentinel for conversations with nothing stored.
const noHistory = "No previous conversation history."

// Summary builds a short natural-language digest of the recent conversation:
// user turns echo the question and any SQL issued for it; assistant turns
// report row count and column names when a results digest is present.
func (s *Store) Summary(sessionID, database string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.history(sessionID, database, summaryWindow)
	if len(history) == 0 {
		return noHistory
	}
	if len(history) > summaryTail {
		history = history[len(history)-summaryTail:]
	}

	var b strings.Builder
	b.WriteString("Previous conversation context:\n")
	for _, m := range history {
		switch m.Role {
		case RoleUser:
			fmt.Fprintf(&b, "User asked: %s\n", m.Content)
			if m.SQLQuery != "" {
				fmt.Fprintf(&b, "SQL used: %s\n", m.SQLQuery)
			}
		case RoleAssistant:
			if m.Results != nil {
				fmt.Fprintf(&b, "Found %d rows with columns: %s\n",
					m.Results.RowCount, strings.Join(m.Results.Columns, ", "))
			}
		}
	}
	return b.String()
}
