// Package repl drives the conversation store from an interactive session.
//
// It plays the role of the external caller: the user supplies questions, SQL
// and result digests by hand, and the commands expose the store's read-side
// helpers. Nothing here generates SQL.
package repl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fennwick/sqlchat/memory"
)

// Command is one slash command wired into the session.
type Command struct {
	Name        string
	Description string
	Run         func(ctx context.Context, s *Session, args string) (string, error)
}

// Registry returns all commands wired for the session.
func Registry() []Command {
	return []Command{
		AskCommand,
		AnswerCommand,
		HistoryCommand,
		SummaryCommand,
		SchemaCommand,
		FormattedCommand,
		InsightsCommand,
		StatsCommand,
		ClearCommand,
		ClearAllCommand,
		HelpCommand,
	}
}

// Session binds a store to one (session, database) pair for the lifetime of
// the REPL.
type Session struct {
	Store     *memory.Store
	SessionID string
	Database  string

	commands map[string]Command
}

// New builds a Session with the full command registry.
func New(store *memory.Store, sessionID, database string) *Session {
	s := &Session{
		Store:     store,
		SessionID: sessionID,
		Database:  database,
		commands:  make(map[string]Command),
	}
	for _, c := range Registry() {
		s.commands[c.Name] = c
	}
	return s
}

// Execute dispatches one input line. Lines not starting with "/" are treated
// as user questions (shorthand for /ask). Blank lines produce no output.
func (s *Session) Execute(ctx context.Context, line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	if !strings.HasPrefix(line, "/") {
		return AskCommand.Run(ctx, s, line)
	}

	name, args, _ := strings.Cut(line[1:], " ")
	cmd, ok := s.commands[name]
	if !ok {
		return "", fmt.Errorf("unknown command %q; try /help", name)
	}
	return cmd.Run(ctx, s, strings.TrimSpace(args))
}

var HelpCommand = Command{
	Name:        "help",
	Description: "List available commands.",
	Run: func(_ context.Context, s *Session, _ string) (string, error) {
		names := make([]string, 0, len(s.commands))
		for name := range s.commands {
			names = append(names, name)
		}
		sort.Strings(names)

		var b strings.Builder
		for _, name := range names {
			fmt.Fprintf(&b, "/%s\t%s\n", name, s.commands[name].Description)
		}
		return b.String(), nil
	},
}
