package memory_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fennwick/sqlchat/memory"
)

func TestSummary_EmptyConversation_Sentinel(t *testing.T) {
	s := memory.New(memory.Config{})
	require.Equal(t, "No previous conversation history.", s.Summary("sess", "db"))
}

func TestSummary_UserQuestionWithoutSQL(t *testing.T) {
	s := memory.New(memory.Config{})
	s.AddMessage("sess", "db", memory.RoleUser, "show sales", "", nil)

	got := s.Summary("sess", "db")
	require.Contains(t, got, "Previous conversation context:")
	require.Contains(t, got, "User asked: show sales")
	require.NotContains(t, got, "SQL used:")
}

func TestSummary_UserQuestionWithSQL(t *testing.T) {
	s := memory.New(memory.Config{})
	s.AddMessage("sess", "db", memory.RoleUser, "show sales", "SELECT * FROM sales", nil)

	got := s.Summary("sess", "db")
	require.Contains(t, got, "User asked: show sales")
	require.Contains(t, got, "SQL used: SELECT * FROM sales")
}

func TestSummary_AssistantResultsLine(t *testing.T) {
	s := memory.New(memory.Config{})
	s.AddMessage("sess", "db", memory.RoleUser, "show sales", "", nil)
	s.AddMessage("sess", "db", memory.RoleAssistant, "Returned 3 rows.", "SELECT * FROM sales",
		&memory.ResultsSummary{RowCount: 3, Columns: []string{"region", "total"}})

	got := s.Summary("sess", "db")
	require.Contains(t, got, "Found 3 rows with columns: region, total")
}

func TestSummary_AssistantWithoutResults_NoLine(t *testing.T) {
	s := memory.New(memory.Config{})
	s.AddMessage("sess", "db", memory.RoleAssistant, "Query executed.", "SELECT 1", nil)

	got := s.Summary("sess", "db")
	require.Equal(t, "Previous conversation context:\n", got)
}

func TestSummary_CoversOnlyLastThreeMessages(t *testing.T) {
	s := memory.New(memory.Config{})
	for i := 1; i <= 5; i++ {
		s.AddMessage("sess", "db", memory.RoleUser, fmt.Sprintf("question-%d", i), "", nil)
	}

	got := s.Summary("sess", "db")
	require.NotContains(t, got, "question-1")
	require.NotContains(t, got, "question-2")
	require.Contains(t, got, "question-3")
	require.Contains(t, got, "question-4")
	require.Contains(t, got, "question-5")
}
