package id

import (
	"strings"
	"testing"
)

func TestNewIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		v := New()
		if seen[v] {
			t.Fatalf("duplicate id %q after %d draws", v, i)
		}
		seen[v] = true
	}
}

func TestNewIsBase36(t *testing.T) {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	v := New()
	if v == "" {
		t.Fatal("empty id")
	}
	for _, r := range v {
		if !strings.ContainsRune(alphabet, r) {
			t.Fatalf("id %q contains non-base36 rune %q", v, r)
		}
	}
}
