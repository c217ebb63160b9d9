package debug

import "os"

const (
	DebugDumpPromptsKey = "DEBUG_DUMP_PROMPTS"
)

func isDebugDumpPromptsSet() bool {
	return os.Getenv(DebugDumpPromptsKey) == "true"
}
