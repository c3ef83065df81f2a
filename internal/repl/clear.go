package repl

import "context"

// ClearCommand removes this session's conversation. Idempotent.
var ClearCommand = Command{
	Name:        "clear",
	Description: "Forget this session's conversation.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		s.Store.Clear(s.SessionID, s.Database)
		return "conversation cleared", nil
	},
}

// ClearAllCommand empties the whole store, including other sessions'
// conversations.
var ClearAllCommand = Command{
	Name:        "clear-all",
	Description: "Forget every conversation in the store.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		s.Store.ClearAll()
		return "all conversations cleared", nil
	},
}
