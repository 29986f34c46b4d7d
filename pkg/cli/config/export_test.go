package config

// Test-only accessors

func (x *Logger) SetForTest(level, format, output string) {
	x.level = level
	x.format = format
	x.output = output
}

func (x *Taxonomy) SetExtensionPathForTest(path string) {
	x.extensionPath = path
}

func (x *SessionStore) SetForTest(maxSessions, historyLimit int) {
	x.maxSessions = maxSessions
	x.historyLimit = historyLimit
}
