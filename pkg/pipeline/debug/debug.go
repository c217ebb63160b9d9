package debug

const (
	Debug = true
)

func IsDebug() bool {
	return Debug
}

func IsDebugDumpPrompts() bool {
	return Debug && isDebugDumpPromptsSet()
}
