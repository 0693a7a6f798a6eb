package common

// Logical surface size used by the demo window.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
