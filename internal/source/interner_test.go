package source

import (
	"testing"
)

func TestInternerBasic(t *testing.T) {
	interner := NewInterner()

	if s, ok := interner.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID should map to the empty string, got %q ok=%v", s, ok)
	}

	id1 := interner.Intern("hello")
	if id1 == NoStringID {
		t.Fatalf("Intern returned NoStringID for a non-empty string")
	}
	if id2 := interner.Intern("hello"); id1 != id2 {
		t.Fatalf("repeated Intern returned a different ID: %d != %d", id1, id2)
	}
	if s, ok := interner.Lookup(id1); !ok || s != "hello" {
		t.Fatalf("Lookup returned %q ok=%v", s, ok)
	}
	if id3 := interner.Intern("world"); id3 == id1 {
		t.Fatalf("different strings share an ID")
	}
	if interner.Len() != 3 { // "", "hello", "world"
		t.Fatalf("Len = %d, want 3", interner.Len())
	}
}

func TestInternerKeepsItsOwnCopy(t *testing.T) {
	interner := NewInterner()

	buf := []byte("original")
	id := interner.InternBytes(buf)
	buf[0] = 'X'

	if s, ok := interner.Lookup(id); !ok || s != "original" {
		t.Fatalf("interner must keep its own copy, got %q", s)
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	interner := NewInterner()

	defer func() {
		if recover() == nil {
			t.Fatalf("MustLookup must panic for an unknown ID")
		}
	}()
	interner.MustLookup(StringID(9999))
}

func TestInternerRestore(t *testing.T) {
	interner := NewInterner()
	a := interner.Intern("alpha")
	b := interner.Intern("beta")

	restored := Restore(interner.Snapshot())
	if got := restored.Intern("alpha"); got != a {
		t.Fatalf("restored ID for alpha = %d, want %d", got, a)
	}
	if got, ok := restored.Lookup(b); !ok || got != "beta" {
		t.Fatalf("restored lookup for beta = %q ok=%v", got, ok)
	}
	if restored.Len() != interner.Len() {
		t.Fatalf("restored Len = %d, want %d", restored.Len(), interner.Len())
	}
}
