package memory

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog/log"

	"github.com/fennwick/sqlchat/internal/telemetry"
)

const (
	DefaultMaxConversations           = 10
	DefaultMaxMessagesPerConversation = 20

	// DefaultHistoryMessages is the conventional read window callers pass to
	// History and FormattedHistory when they have no better bound.
	DefaultHistoryMessages = 10
)

// Config controls store capacity. Zero or negative caps fall back to the
// defaults. Clock overrides the timestamp source (nil means time.Now); tests
// use it to pin message times.
type Config struct {
	MaxConversations           int
	MaxMessagesPerConversation int
	Clock                      func() time.Time
}

// Store owns the bounded collection of conversations.
//
// Invariants:
//   - Per-conversation message count never exceeds the configured cap;
//     trimming keeps the newest entries.
//   - Conversation count never exceeds MaxConversations; eviction removes the
//     least recently accessed conversation first. On equal access timestamps
//     the recency-list order of the underlying LRU decides (least recently
//     touched goes first), making the tiebreak deterministic.
//   - Reads promote: History and every helper built on it bump last-accessed.
//
// Every public operation takes the one store lock. Reads mutate recency
// state and writes trigger eviction, so no sub-operation is safe to
// interleave.
type Store struct {
	mu            sync.Mutex
	conversations *lru.Cache[string, *conversation]
	maxMessages   int
	now           func() time.Time
	purging       bool // suppresses eviction events during Clear/ClearAll
}

// New constructs a Store with the given capacities. It is intended to be
// built once at startup and handed to consumers; there is no package-level
// instance.
func New(cfg Config) *Store {
	maxConversations := cfg.MaxConversations
	if maxConversations <= 0 {
		maxConversations = DefaultMaxConversations
	}
	maxMessages := cfg.MaxMessagesPerConversation
	if maxMessages <= 0 {
		maxMessages = DefaultMaxMessagesPerConversation
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	s := &Store{maxMessages: maxMessages, now: now}
	// Size is always positive here, so construction cannot fail.
	cache, _ := lru.NewWithEvict[string, *conversation](maxConversations, s.onEvicted)
	s.conversations = cache
	return s
}

// onEvicted runs inside the LRU whenever a conversation is removed. Capacity
// evictions are reported; explicit Clear/ClearAll removals are not.
func (s *Store) onEvicted(_ string, c *conversation) {
	if s.purging {
		return
	}
	log.Info().
		Str("session", c.sessionID).
		Str("database", c.database).
		Msg("evicted least recently accessed conversation")
	telemetry.Emit("conversation_evicted", map[string]any{
		"session":  c.sessionID,
		"database": c.database,
		"messages": len(c.messages),
	})
}

// AddMessage appends one turn to the conversation for (sessionID, database),
// creating the conversation on first use. The message window is trimmed to
// the newest entries and, when the append created a new conversation past
// capacity, the least recently accessed conversation is evicted — possibly
// one entirely unrelated to this call. AddMessage is total: it always
// succeeds.
func (s *Store) AddMessage(sessionID, database string, role Role, content, sqlQuery string, results *ResultsSummary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	key := conversationKey(sessionID, database)
	c, ok := s.conversations.Get(key)
	if !ok {
		c = &conversation{sessionID: sessionID, database: database, createdAt: now}
		// Add may evict the least recently accessed conversation.
		s.conversations.Add(key, c)
	}

	c.messages = append(c.messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: now,
		SQLQuery:  sqlQuery,
		Results:   results,
	})
	c.lastAccessed = now
	c.trim(s.maxMessages)

	log.Debug().
		Str("session", sessionID).
		Str("database", database).
		Int("messages", len(c.messages)).
		Msg("added message to conversation")
	telemetry.Emit("message_added", map[string]any{
		"session":  sessionID,
		"database": database,
		"role":     string(role),
		"messages": len(c.messages),
	})
}

// History returns the last max stored messages in chronological order;
// max <= 0 returns the full stored window. Unknown keys yield an empty
// result, never an error. The lookup counts as access even though it is a
// read.
func (s *Store) History(sessionID, database string, max int) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history(sessionID, database, max)
}

// history is the lock-held core shared by the read-side helpers.
func (s *Store) history(sessionID, database string, max int) []Message {
	c, ok := s.conversations.Get(conversationKey(sessionID, database))
	if !ok {
		return nil
	}
	c.lastAccessed = s.now()
	return c.window(max)
}

// Clear removes the conversation for (sessionID, database). Clearing an
// unknown key is a no-op.
func (s *Store) Clear(sessionID, database string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purging = true
	removed := s.conversations.Remove(conversationKey(sessionID, database))
	s.purging = false
	if removed {
		log.Info().Str("session", sessionID).Str("database", database).Msg("cleared conversation")
		telemetry.Emit("conversation_cleared", map[string]any{
			"session":  sessionID,
			"database": database,
		})
	}
}

// ClearAll empties the store.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purging = true
	s.conversations.Purge()
	s.purging = false
	log.Info().Msg("cleared all conversations")
	telemetry.Emit("store_cleared", nil)
}

// Len reports the current conversation count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conversations.Len()
}
