package pipeline

import (
	"strings"
	"testing"
	"time"
)

func TestEncodeULID(t *testing.T) {
	var zero [16]byte
	if got := encodeULID(zero); got != strings.Repeat("0", 26) {
		t.Errorf("zero ULID = %q", got)
	}

	var one [16]byte
	one[5] = 1 // 1ms timestamp, zero entropy
	if got, want := encodeULID(one), "0000000001"+strings.Repeat("0", 16); got != want {
		t.Errorf("1ms ULID = %q, want %q", got, want)
	}

	var full [16]byte
	for i := range full {
		full[i] = 0xFF
	}
	if got, want := encodeULID(full), "7"+strings.Repeat("Z", 25); got != want {
		t.Errorf("max ULID = %q, want %q", got, want)
	}
}

func TestNewULID_TimestampPrefix(t *testing.T) {
	id := newULID(time.UnixMilli(0))
	if !strings.HasPrefix(id, "0000000000") {
		t.Errorf("epoch ULID should have a zero timestamp, got %q", id)
	}
}

func TestNewJobID_UniqueAndOrdered(t *testing.T) {
	const n = 1000
	seen := make(map[string]bool, n)
	prev := ""
	for range n {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26 characters, got %q", id)
		}
		if strings.Trim(id, crockford) != "" {
			t.Fatalf("unexpected characters in %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if id <= prev {
			t.Fatalf("ids out of order: %q after %q", id, prev)
		}
		prev = id
	}
}
