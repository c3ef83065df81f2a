package memory

import "time"

// Role identifies which side of the conversation produced a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ResultsSummary is a compact digest of a query's output: row count, column
// names and execution time, rather than the full result set.
type ResultsSummary struct {
	RowCount      int      `json:"row_count"`
	Columns       []string `json:"columns"`
	ExecutionTime float64  `json:"execution_time,omitempty"`
}

// Message is one conversational turn: a user question or an assistant answer,
// optionally carrying the SQL issued and a results digest. Messages are
// immutable once appended; they are removed only by window trimming or by
// eviction of their whole conversation.
type Message struct {
	Role      Role            `json:"role"`
	Content   string          `json:"content"`
	Timestamp time.Time       `json:"timestamp"`
	SQLQuery  string          `json:"sql_query,omitempty"`
	Results   *ResultsSummary `json:"results_summary,omitempty"`
}
