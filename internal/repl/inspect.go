package repl

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fennwick/sqlchat/memory"
)

// HistoryCommand prints the recent message window, newest last.
var HistoryCommand = Command{
	Name:        "history",
	Description: "Show the last N stored messages (default 10; 0 for the full window).",
	Run: func(_ context.Context, s *Session, args string) (string, error) {
		max := memory.DefaultHistoryMessages
		if args != "" {
			n, err := strconv.Atoi(args)
			if err != nil {
				return "", fmt.Errorf("usage: /history [n]")
			}
			max = n
		}

		history := s.Store.History(s.SessionID, s.Database, max)
		if len(history) == 0 {
			return "no stored messages", nil
		}

		var b strings.Builder
		for _, m := range history {
			fmt.Fprintf(&b, "[%s] %s", m.Role, m.Content)
			if m.SQLQuery != "" {
				fmt.Fprintf(&b, " (sql: %s)", m.SQLQuery)
			}
			b.WriteString("\n")
		}
		return b.String(), nil
	},
}

// SummaryCommand prints the natural-language digest.
var SummaryCommand = Command{
	Name:        "summary",
	Description: "Show a short natural-language digest of the recent conversation.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		return s.Store.Summary(s.SessionID, s.Database), nil
	},
}

// SchemaCommand prints the schema hints learned from stored SQL.
var SchemaCommand = Command{
	Name:        "schema",
	Description: "Show table names scraped from the stored SQL queries.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		return marshalIndent(s.Store.SchemaLearning(s.SessionID, s.Database))
	},
}

// FormattedCommand prints display-ready history with session statistics.
var FormattedCommand = Command{
	Name:        "formatted",
	Description: "Show display-ready history: question/answer pairs plus session stats.",
	Run: func(_ context.Context, s *Session, args string) (string, error) {
		max := memory.DefaultHistoryMessages
		if args != "" {
			n, err := strconv.Atoi(args)
			if err != nil {
				return "", fmt.Errorf("usage: /formatted [n]")
			}
			max = n
		}
		return marshalIndent(s.Store.FormattedHistory(s.SessionID, s.Database, max))
	},
}

// InsightsCommand prints query-pattern and table-usage insight.
var InsightsCommand = Command{
	Name:        "insights",
	Description: "Show query patterns, table usage and activity insight.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		return marshalIndent(s.Store.Insights(s.SessionID, s.Database))
	},
}

// StatsCommand prints store-level counters.
var StatsCommand = Command{
	Name:        "stats",
	Description: "Show store-level counters for this session.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		return fmt.Sprintf("session=%s database=%s conversations=%d\n",
			s.SessionID, s.Database, s.Store.Len()), nil
	},
}

func marshalIndent(v any) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b) + "\n", nil
}
