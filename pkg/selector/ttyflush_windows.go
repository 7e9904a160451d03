package selector

// FlushTTYInput is a no-op on Windows.
func FlushTTYInput() {}
