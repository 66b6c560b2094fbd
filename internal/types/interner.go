package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for common primitive datatypes.
type Builtins struct {
	Invalid TypeID
	Bool    TypeID
	Int     TypeID
	Uint    TypeID
	String  TypeID
}

type typeKey Type

// Interner provides stable TypeIDs by hashing structural descriptors.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Bool = in.Intern(Type{Kind: KindBool})
	in.builtins.Int = in.Intern(MakeInt(WidthAny))
	in.builtins.Uint = in.Intern(Type{Kind: KindUint, Width: WidthAny})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	return in
}

// Builtins returns TypeIDs for primitive datatypes.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

func (in *Interner) internRaw(t Type) TypeID {
	value, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("type interner overflow: %w", err))
	}
	id := TypeID(value)
	in.types = append(in.types, t)
	in.index[typeKey(t)] = id
	return id
}

// Get returns the descriptor for id. The zero descriptor comes back for
// NoTypeID.
func (in *Interner) Get(id TypeID) Type {
	if int(id) >= len(in.types) {
		return Type{}
	}
	return in.types[id]
}

// Len counts interned datatypes including the invalid sentinel.
func (in *Interner) Len() int {
	return len(in.types)
}
