package repl_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fennwick/sqlchat/internal/repl"
	"github.com/fennwick/sqlchat/memory"
)

func newSession(t *testing.T) *repl.Session {
	t.Helper()
	store := memory.New(memory.Config{})
	return repl.New(store, "sess-1", "salesdb")
}

func TestExecute_BlankLine_NoOutput(t *testing.T) {
	s := newSession(t)
	out, err := s.Execute(context.Background(), "   ")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestExecute_UnknownCommand(t *testing.T) {
	s := newSession(t)
	_, err := s.Execute(context.Background(), "/bogus")
	require.ErrorContains(t, err, "unknown command")
}

func TestExecute_PlainLineIsAsk(t *testing.T) {
	s := newSession(t)
	_, err := s.Execute(context.Background(), "show sales")
	require.NoError(t, err)

	history := s.Store.History("sess-1", "salesdb", 0)
	require.Len(t, history, 1)
	require.Equal(t, memory.RoleUser, history[0].Role)
	require.Equal(t, "show sales", history[0].Content)
}

func TestAskThenAnswer_RecordsPair(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()

	_, err := s.Execute(ctx, "/ask show sales")
	require.NoError(t, err)
	_, err = s.Execute(ctx, `/answer SELECT * FROM orders {"row_count": 3, "columns": ["a", "b"], "execution_time": 0.25}`)
	require.NoError(t, err)

	history := s.Store.History("sess-1", "salesdb", 0)
	require.Len(t, history, 2)

	assistant := history[1]
	require.Equal(t, memory.RoleAssistant, assistant.Role)
	require.Equal(t, "SELECT * FROM orders", assistant.SQLQuery)
	require.NotNil(t, assistant.Results)
	require.Equal(t, 3, assistant.Results.RowCount)
	require.Equal(t, []string{"a", "b"}, assistant.Results.Columns)
	require.InDelta(t, 0.25, assistant.Results.ExecutionTime, 1e-9)
	require.Equal(t, "Returned 3 rows.", assistant.Content)
}

func TestAnswer_WithoutResultsJSON(t *testing.T) {
	s := newSession(t)
	_, err := s.Execute(context.Background(), "/answer SELECT COUNT(*) FROM orders")
	require.NoError(t, err)

	history := s.Store.History("sess-1", "salesdb", 0)
	require.Len(t, history, 1)
	require.Equal(t, "SELECT COUNT(*) FROM orders", history[0].SQLQuery)
	require.Nil(t, history[0].Results)
	require.Equal(t, "Query executed.", history[0].Content)
}

func TestAnswer_MalformedJSONKeptAsSQL(t *testing.T) {
	s := newSession(t)
	_, err := s.Execute(context.Background(), "/answer SELECT * FROM t {oops")
	require.NoError(t, err)

	history := s.Store.History("sess-1", "salesdb", 0)
	require.Len(t, history, 1)
	require.Equal(t, "SELECT * FROM t {oops", history[0].SQLQuery)
	require.Nil(t, history[0].Results)
}

func TestAsk_EmptyArgs_Error(t *testing.T) {
	s := newSession(t)
	_, err := s.Execute(context.Background(), "/ask")
	require.ErrorContains(t, err, "usage")
}

func TestHistoryCommand_Render(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	_, _ = s.Execute(ctx, "/ask show sales")
	_, _ = s.Execute(ctx, "/answer SELECT * FROM orders")

	out, err := s.Execute(ctx, "/history")
	require.NoError(t, err)
	require.Contains(t, out, "[user] show sales")
	require.Contains(t, out, "(sql: SELECT * FROM orders)")
}

func TestHistoryCommand_EmptyStore(t *testing.T) {
	s := newSession(t)
	out, err := s.Execute(context.Background(), "/history")
	require.NoError(t, err)
	require.Equal(t, "no stored messages", out)
}

func TestHistoryCommand_BadCount(t *testing.T) {
	s := newSession(t)
	_, err := s.Execute(context.Background(), "/history many")
	require.ErrorContains(t, err, "usage")
}

func TestSummaryCommand_PassesThrough(t *testing.T) {
	s := newSession(t)
	out, err := s.Execute(context.Background(), "/summary")
	require.NoError(t, err)
	require.Equal(t, "No previous conversation history.", out)
}

func TestInsightsCommand_JSONShape(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	_, _ = s.Execute(ctx, "/ask count the orders")
	_, _ = s.Execute(ctx, "/answer SELECT COUNT(*) FROM orders")

	out, err := s.Execute(ctx, "/insights")
	require.NoError(t, err)
	require.Contains(t, out, `"query_patterns"`)
	require.Contains(t, out, `"orders": 1`)
}

func TestSchemaCommand_JSONShape(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	_, _ = s.Execute(ctx, "/answer SELECT * FROM orders")

	out, err := s.Execute(ctx, "/schema")
	require.NoError(t, err)
	require.Contains(t, out, `"orders"`)
	require.Contains(t, out, `"columns": {}`)
}

func TestClearCommands(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	_, _ = s.Execute(ctx, "/ask show sales")

	out, err := s.Execute(ctx, "/clear")
	require.NoError(t, err)
	require.Equal(t, "conversation cleared", out)
	require.Empty(t, s.Store.History("sess-1", "salesdb", 0))

	_, _ = s.Execute(ctx, "/ask again")
	out, err = s.Execute(ctx, "/clear-all")
	require.NoError(t, err)
	require.Equal(t, "all conversations cleared", out)
	require.Zero(t, s.Store.Len())
}

func TestHelpCommand_ListsEveryCommand(t *testing.T) {
	s := newSession(t)
	out, err := s.Execute(context.Background(), "/help")
	require.NoError(t, err)
	for _, c := range repl.Registry() {
		require.True(t, strings.Contains(out, "/"+c.Name), "missing %q in help output", c.Name)
	}
}

func TestStatsCommand(t *testing.T) {
	s := newSession(t)
	ctx := context.Background()
	_, _ = s.Execute(ctx, "/ask show sales")

	out, err := s.Execute(ctx, "/stats")
	require.NoError(t, err)
	require.Contains(t, out, "conversations=1")
}
