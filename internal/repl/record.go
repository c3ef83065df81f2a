package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/fennwick/sqlchat/internal/telemetry"
	"github.com/fennwick/sqlchat/memory"
)

// AskCommand records a user question.
var AskCommand = Command{
	Name:        "ask",
	Description: "Record a user question, e.g. /ask show sales by region",
	Run: func(ctx context.Context, s *Session, args string) (string, error) {
		if args == "" {
			return "", fmt.Errorf("usage: /ask <question>")
		}
		s.Store.AddMessage(s.SessionID, s.Database, memory.RoleUser, args, "", nil)
		telemetry.EmitMessageFeatures(ctx, string(memory.RoleUser), args)
		return "recorded question", nil
	},
}

// AnswerCommand records an assistant answer: the SQL that was run, optionally
// followed by a JSON results digest, e.g.
//
//	/answer SELECT * FROM orders {"row_count": 3, "columns": ["id", "total"]}
var AnswerCommand = Command{
	Name:        "answer",
	Description: "Record an assistant answer: /answer <sql> [{\"row_count\":N,\"columns\":[...],\"execution_time\":S}]",
	Run: func(ctx context.Context, s *Session, args string) (string, error) {
		if args == "" {
			return "", fmt.Errorf("usage: /answer <sql> [results-json]")
		}
		sql, results := splitSQLResults(args)
		content := "Query executed."
		if results != nil {
			content = fmt.Sprintf("Returned %d rows.", results.RowCount)
		}
		s.Store.AddMessage(s.SessionID, s.Database, memory.RoleAssistant, content, sql, results)
		telemetry.EmitMessageFeatures(ctx, string(memory.RoleAssistant), content)
		return "recorded answer", nil
	},
}

// splitSQLResults separates trailing results JSON from the SQL text. The
// digest must be a valid JSON object; anything else is kept as SQL. Missing
// digest fields default to zero values.
func splitSQLResults(args string) (string, *memory.ResultsSummary) {
	idx := strings.Index(args, "{")
	if idx < 0 {
		return strings.TrimSpace(args), nil
	}
	blob := strings.TrimSpace(args[idx:])
	if !gjson.Valid(blob) || !gjson.Parse(blob).IsObject() {
		return strings.TrimSpace(args), nil
	}

	results := &memory.ResultsSummary{
		RowCount:      int(gjson.Get(blob, "row_count").Int()),
		ExecutionTime: gjson.Get(blob, "execution_time").Float(),
	}
	for _, col := range gjson.Get(blob, "columns").Array() {
		results.Columns = append(results.Columns, col.String())
	}
	return strings.TrimSpace(args[:idx]), results
}
