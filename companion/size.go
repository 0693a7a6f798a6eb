package companion

import (
	"fmt"
	"strconv"
	"strings"
)

// Size is the rendered edge length of the companion in pixels.
type Size int

const (
	SizeSmall  Size = 32
	SizeMedium Size = 38
	SizeLarge  Size = 42
)

// Sizes lists the supported sizes, smallest first.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge}

func (s Size) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// Offset is the vertical adjustment applied when the companion is placed on
// its origin.
func (s Size) Offset() float64 {
	switch s {
	case SizeSmall:
		return 3
	case SizeMedium:
		return -2
	case SizeLarge:
		return -6
	}
	return 0
}

func (s Size) Half() float64 {
	return float64(s) / 2
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return fmt.Sprintf("Size(%d)", int(s))
}

// ParseSize accepts a size name ("small", "medium", "large") or its pixel
// value. An empty string yields SizeSmall.
func ParseSize(s string) (Size, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "small":
		return SizeSmall, nil
	case "medium":
		return SizeMedium, nil
	case "large":
		return SizeLarge, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || !Size(n).Valid() {
		return 0, fmt.Errorf("%w: unknown size %q", ErrInvalidConfiguration, s)
	}
	return Size(n), nil
}
