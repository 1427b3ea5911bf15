package dispatch

// Test-only exports for internal functions.
var (
	ScalarSize = scalarSize
)
