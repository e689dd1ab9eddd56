package uuid

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	id := New()
	if !IsValid(id) {
		t.Fatalf("expected valid uuid, got %q", id)
	}
	if id[14] != '7' {
		t.Errorf("expected version 7 uuid, got %q", id)
	}
}

func TestNew_SortsByCreation(t *testing.T) {
	prev := New()
	for i := 0; i < 50; i++ {
		next := New()
		if next == prev {
			t.Fatalf("duplicate uuid %q", next)
		}
		// ids from different milliseconds must sort; within the same
		// millisecond only the timestamp prefix is guaranteed equal
		if next[:13] < prev[:13] {
			t.Fatalf("expected %q to sort after %q", next, prev)
		}
		prev = next
	}
}

func TestParse(t *testing.T) {
	t.Run("canonicalises", func(t *testing.T) {
		in := "0190F3B2-7C1D-7A00-8000-000000000001"
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != strings.ToLower(in) {
			t.Errorf("expected %q, got %q", strings.ToLower(in), got)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := Parse("not-a-uuid"); err == nil {
			t.Error("expected error for invalid uuid")
		}
		if IsValid("123") {
			t.Error("expected 123 to be invalid")
		}
	})
}
