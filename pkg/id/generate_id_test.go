package id

import (
	"regexp"
	"testing"
)

var reID = regexp.MustCompile(`^[a-f0-9]{32}$`)

func TestNewID32_Format(t *testing.T) {
	for i := 0; i < 100; i++ {
		got := NewID32()
		if !reID.MatchString(got) {
			t.Fatalf("NewID32() = %q, want 32 lowercase hex chars", got)
		}
	}
}

func TestNewID32_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		got := NewID32()
		if _, dup := seen[got]; dup {
			t.Fatalf("duplicate id generated: %s", got)
		}
		seen[got] = struct{}{}
	}
}
