package memory

import (
	"fmt"
	"time"
)

// DisplayResults projects a results digest for display.
type DisplayResults struct {
	RowCount      int      `json:"row_count"`
	Columns       []string `json:"columns"`
	ExecutionTime float64  `json:"execution_time"`
}

// DisplayItem is one displayable entry: a user question plus, when the next
// stored message is the assistant's answer, the SQL and results it produced.
type DisplayItem struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Content   string          `json:"content"`
	SQLQuery  string          `json:"sql_query,omitempty"`
	Results   *DisplayResults `json:"results,omitempty"`
	MessageID int             `json:"message_id"`
}

// HistoryStats summarizes the fetched history for display.
type HistoryStats struct {
	TotalQueries       int    `json:"total_queries"`
	TotalRowsProcessed int    `json:"total_rows_processed"`
	SessionDuration    string `json:"session_duration"`
}

// FormattedHistory pairs display items with session statistics.
type FormattedHistory struct {
	Conversations []DisplayItem `json:"conversations"`
	Stats         HistoryStats  `json:"stats"`
}

// FormattedHistory walks the last max fetched messages (max <= 0 for the full
// window) and produces one DisplayItem per user message. An assistant message
// immediately following a user message contributes its SQL and results to
// that item; assistant messages with no preceding user message produce no
// item of their own. TotalQueries counts only user items that received a
// paired results digest.
func (s *Store) FormattedHistory(sessionID, database string, max int) FormattedHistory {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.history(sessionID, database, max)

	items := []DisplayItem{}
	totalQueries := 0
	totalRows := 0
	for i, m := range history {
		if m.Role != RoleUser {
			continue
		}
		item := DisplayItem{
			Type:      "query",
			Timestamp: m.Timestamp,
			Content:   m.Content,
			MessageID: i,
		}
		if i+1 < len(history) && history[i+1].Role == RoleAssistant {
			reply := history[i+1]
			item.SQLQuery = reply.SQLQuery
			if reply.Results != nil {
				item.Results = &DisplayResults{
					RowCount:      reply.Results.RowCount,
					Columns:       reply.Results.Columns,
					ExecutionTime: reply.Results.ExecutionTime,
				}
				totalQueries++
				totalRows += reply.Results.RowCount
			}
		}
		items = append(items, item)
	}

	return FormattedHistory{
		Conversations: items,
		Stats: HistoryStats{
			TotalQueries:       totalQueries,
			TotalRowsProcessed: totalRows,
			SessionDuration:    sessionDuration(history),
		},
	}
}

// sessionDuration reports the wall-clock span between the first and last
// fetched message. Empty history reports "0 minutes"; unusable timestamps
// degrade to "Unknown duration" rather than failing the call.
func sessionDuration(history []Message) string {
	if len(history) == 0 {
		return "0 minutes"
	}
	first := history[0].Timestamp
	last := history[len(history)-1].Timestamp
	if first.IsZero() || last.IsZero() {
		return "Unknown duration"
	}
	minutes := last.Sub(first).Minutes()
	switch {
	case minutes < 1:
		return "Less than 1 minute"
	case minutes < 60:
		return fmt.Sprintf("%d minutes", int(minutes))
	default:
		return fmt.Sprintf("%.1f hours", minutes/60)
	}
}
