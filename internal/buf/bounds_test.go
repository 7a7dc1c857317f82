package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if p, ok := MulOverflowSafe(6, 7); !ok || p != 42 {
		t.Fatalf("MulOverflowSafe(6,7)=%d,%v want 42,true", p, ok)
	}
	if p, ok := MulOverflowSafe(0, math.MaxInt); !ok || p != 0 {
		t.Fatalf("multiplying by zero should never overflow")
	}
	if _, ok := MulOverflowSafe(math.MaxInt, 2); ok {
		t.Fatalf("expected overflow for MaxInt*2")
	}
}

func TestGrowCap(t *testing.T) {
	if got := GrowCap(0); got != 1 {
		t.Fatalf("GrowCap(0)=%d want 1", got)
	}
	if got := GrowCap(1); got != 2 {
		t.Fatalf("GrowCap(1)=%d want 2", got)
	}
	if got := GrowCap(16); got != 32 {
		t.Fatalf("GrowCap(16)=%d want 32", got)
	}
	if got := GrowCap(math.MaxInt/2 + 1); got != math.MaxInt {
		t.Fatalf("GrowCap near MaxInt should clamp, got %d", got)
	}
}

func TestByteSize(t *testing.T) {
	if n, ok := ByteSize(10, 8); !ok || n != 80 {
		t.Fatalf("ByteSize(10,8)=%d,%v want 80,true", n, ok)
	}
	if _, ok := ByteSize(-1, 8); ok {
		t.Fatalf("ByteSize should reject negative counts")
	}
	if _, ok := ByteSize(math.MaxInt, 2); ok {
		t.Fatalf("ByteSize should report overflow")
	}
}
