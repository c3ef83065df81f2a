package memory

import "github.com/fennwick/sqlchat/internal/sqlscan"

// QueryPatterns counts broad query categories across the stored SQL. SELECT
// is incremented once per query regardless of shape; the others on substring
// evidence of the corresponding construct.
type QueryPatterns struct {
	Select    int `json:"SELECT"`
	Count     int `json:"COUNT"`
	Aggregate int `json:"AGGREGATE"`
	Filter    int `json:"FILTER"`
}

// Insights summarizes usage patterns across one conversation.
type Insights struct {
	QueryPatterns     QueryPatterns  `json:"query_patterns"`
	TableUsage        map[string]int `json:"table_usage"`
	TotalInteractions int            `json:"total_interactions"`
	MostActivePeriod  string         `json:"most_active_period"`
}

// Insights classifies every stored SQL query, tallies per-table usage via the
// same token scan as SchemaLearning, counts user turns, and buckets the
// average hour-of-day of the stored messages into a named period.
func (s *Store) Insights(sessionID, database string) Insights {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.history(sessionID, database, 0)

	out := Insights{TableUsage: map[string]int{}}
	for _, m := range history {
		if m.Role == RoleUser {
			out.TotalInteractions++
		}
		if m.SQLQuery == "" {
			continue
		}
		out.QueryPatterns.Select++
		p := sqlscan.Classify(m.SQLQuery)
		if p.Count {
			out.QueryPatterns.Count++
		}
		if p.Aggregate {
			out.QueryPatterns.Aggregate++
		}
		if p.Filter {
			out.QueryPatterns.Filter++
		}
		if table, ok := sqlscan.TableAfterFrom(m.SQLQuery); ok {
			out.TableUsage[table]++
		}
	}
	out.MostActivePeriod = mostActivePeriod(history)
	return out
}

// mostActivePeriod buckets the average hour-of-day across the stored
// timestamps: Morning [5,12), Afternoon [12,17), Evening [17,22), Night
// otherwise. Empty history reports "No activity"; unusable timestamps
// degrade to "Various times" rather than failing the call.
func mostActivePeriod(history []Message) string {
	if len(history) == 0 {
		return "No activity"
	}
	total := 0
	for _, m := range history {
		if m.Timestamp.IsZero() {
			return "Various times"
		}
		total += m.Timestamp.Hour()
	}
	avg := float64(total) / float64(len(history))
	switch {
	case avg >= 5 && avg < 12:
		return "Morning"
	case avg >= 12 && avg < 17:
		return "Afternoon"
	case avg >= 17 && avg < 22:
		return "Evening"
	default:
		return "Night"
	}
}
