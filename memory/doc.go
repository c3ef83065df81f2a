// Package memory provides a bounded, in-process store of recent
// conversational turns keyed by (session, database) pair.
//
// Model:
//   - Each (session, database) pair maps to one conversation holding a capped,
//     time-ordered message window; trimming drops oldest messages first.
//   - The store itself is capped: when an append pushes it over capacity, the
//     least recently accessed conversation is evicted. Reads count as access.
//   - Read-side helpers (summary, schema learning, formatted history,
//     insights) are computed on demand from the stored messages, never cached.
//
// The store is volatile and process-lifetime only; there is no persistence.
package memory
