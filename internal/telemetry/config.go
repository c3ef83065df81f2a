package telemetry

import (
	"os"
)

var observeEnabled bool

func init() {
	// Read once at process start. Mid-run environment changes have no effect,
	// except the explicit "1" override below.
	observeEnabled = os.Getenv("SQLCHAT_OBSERVE_JSON") == "1"
}

// ObserveEnabled reports whether JSONL emission is enabled. The value is
// startup-evaluated, but tests may flip it mid-run via the explicit "1"/"0"
// env overrides.
func ObserveEnabled() bool {
	switch os.Getenv("SQLCHAT_OBSERVE_JSON") {
	case "1":
		return true
	case "0":
		return false
	}
	return observeEnabled
}
