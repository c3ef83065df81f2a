package telemetry

import (
	"context"

	"github.com/fennwick/sqlchat/internal/metrics"
)

// EmitMessageFeatures records text-shape features of one conversational turn.
// Only counts are emitted; the raw content never leaves the process.
func EmitMessageFeatures(ctx context.Context, role, content string) {
	if !ObserveEnabled() {
		return
	}
	sessionID, _ := SessionIDFromContext(ctx)
	f := metrics.CountTurn(content)
	Emit("message_features", map[string]any{
		"session_id":       sessionID,
		"role":             role,
		"features_version": "1",
		"content": map[string]any{
			"bytes": f.Bytes,
			"runes": f.Runes,
			"words": f.Words,
			"lines": f.Lines,
		},
	})
}
