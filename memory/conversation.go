package memory

import "time"

// conversation is the record held per (session, database) pair. It is owned
// exclusively by the Store; callers only ever see copies of its messages.
type conversation struct {
	sessionID    string
	database     string
	messages     []Message
	createdAt    time.Time
	lastAccessed time.Time
}

// conversationKey derives the registry key for a (session, database) pair.
// A direct composite key is used rather than a content hash: the separator
// cannot occur in either component's role as a delimiter, so identical pairs
// always collide to the same record and distinct pairs never do.
func conversationKey(sessionID, database string) string {
	return sessionID + "\x00" + database
}

// trim drops oldest messages first so that at most max remain.
func (c *conversation) trim(max int) {
	if len(c.messages) > max {
		c.messages = c.messages[len(c.messages)-max:]
	}
}

// window returns a copy of the last max messages in chronological order.
// max <= 0 returns the full stored window.
func (c *conversation) window(max int) []Message {
	msgs := c.messages
	if max > 0 && len(msgs) > max {
		msgs = msgs[len(msgs)-max:]
	}
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}
