// Package buf contains overflow-safe arithmetic for slot and byte sizing.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for slotCount * elementSize calculations in allocators.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// GrowCap returns the next capacity for a buffer currently reserving c slots:
// 1 for an empty buffer, otherwise double, clamped to MaxInt on overflow.
func GrowCap(c int) int {
	if c == 0 {
		return 1
	}
	if c > math.MaxInt/2 {
		return math.MaxInt
	}
	return c * 2
}

// ByteSize computes n * elemSize, returning ok = false on overflow or
// negative inputs. Allocators use it to size raw regions before carving
// them into slots.
func ByteSize(n, elemSize int) (int, bool) {
	if n < 0 || elemSize < 0 {
		return 0, false
	}
	return MulOverflowSafe(n, elemSize)
}
