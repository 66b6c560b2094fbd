package types

import (
	"testing"
)

func TestInternerDeduplicates(t *testing.T) {
	in := NewInterner()

	a := in.Intern(MakeFunc(7))
	b := in.Intern(MakeFunc(7))
	if a != b {
		t.Fatalf("identical descriptors interned to %d and %d", a, b)
	}
	if c := in.Intern(MakeFunc(8)); c == a {
		t.Fatalf("distinct owners share a TypeID")
	}
	if d := in.Intern(MakeEnumClass(7)); d == a {
		t.Fatalf("distinct kinds share a TypeID")
	}
}

func TestInternerInvalidIsNoType(t *testing.T) {
	in := NewInterner()
	if id := in.Intern(Type{Kind: KindInvalid}); id != NoTypeID {
		t.Fatalf("invalid descriptor interned to %d", id)
	}
	if NoTypeID.IsValid() {
		t.Fatalf("NoTypeID must be invalid")
	}
}

func TestInternerBuiltinsStable(t *testing.T) {
	in := NewInterner()
	builtins := in.Builtins()

	if !builtins.Int.IsValid() || !builtins.Bool.IsValid() || !builtins.String.IsValid() {
		t.Fatalf("builtins not seeded: %+v", builtins)
	}
	if got := in.Intern(MakeInt(WidthAny)); got != builtins.Int {
		t.Fatalf("re-interning int gave %d, want %d", got, builtins.Int)
	}
	if desc := in.Get(builtins.Bool); desc.Kind != KindBool {
		t.Fatalf("Get(bool) = %v", desc.Kind)
	}
}
