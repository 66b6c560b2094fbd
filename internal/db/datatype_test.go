package db

import (
	"testing"

	"rivet/internal/source"
	"rivet/internal/types"
)

func TestFunctionIdentDatatypes(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	kinds := []FuncKind{
		FuncPlain, FuncUnittest, FuncFinal, FuncDestructor,
		FuncPackage, FuncModule, FuncIterator, FuncStruct, FuncGenerator,
	}
	for i, kind := range kinds {
		fn, id, err := declareFunc(d, d.RootBlock(), kind, kind.String()+"_fn", span)
		if err != nil {
			t.Fatalf("declare %v: %v", kind, err)
		}
		dt := d.IdentDatatype(id)
		if !dt.IsValid() {
			t.Fatalf("kind %v produced no datatype", kind)
		}
		desc := d.Types.Get(dt)
		if desc.Kind != types.KindFunc || desc.Owner != uint32(fn) {
			t.Fatalf("kind %v produced %v/%d, want func datatype of %d (case %d)",
				kind, desc.Kind, desc.Owner, fn, i)
		}
	}
}

func TestEnumIdentDatatype(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	fn, id, err := declareFunc(d, d.RootBlock(), FuncEnum, "Color", span)
	if err != nil {
		t.Fatalf("declare enum: %v", err)
	}
	desc := d.Types.Get(d.IdentDatatype(id))
	if desc.Kind != types.KindEnumClass || desc.Owner != uint32(fn) {
		t.Fatalf("enum datatype = %v/%d, want enumclass of %d", desc.Kind, desc.Owner, fn)
	}
}

func TestConstructorIdentDatatype(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	fn, id, err := declareFunc(d, d.RootBlock(), FuncConstructor, "Point", span)
	if err != nil {
		t.Fatalf("declare constructor: %v", err)
	}
	tclass := d.NewTclass(fn)
	desc := d.Types.Get(d.IdentDatatype(id))
	if desc.Kind != types.KindTclass || desc.Owner != uint32(tclass) {
		t.Fatalf("constructor datatype = %v/%d, want tclass of %d", desc.Kind, desc.Owner, tclass)
	}
}

func TestVariableIdentDatatype(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	nameID := d.Intern("v")
	v := d.NewVar(nameID, span)
	id, err := d.NewVariableIdent(d.RootBlock(), v, nameID)
	if err != nil {
		t.Fatalf("declare var: %v", err)
	}

	// Before inference the datatype is simply unknown.
	if dt := d.IdentDatatype(id); dt.IsValid() {
		t.Fatalf("unassigned variable has datatype %v", dt)
	}
	want := d.Types.Builtins().Int
	d.SetVarDatatype(v, want)
	if dt := d.IdentDatatype(id); dt != want {
		t.Fatalf("variable datatype = %v, want %v", dt, want)
	}
}

func TestOperatorIdentDatatypePanics(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	fn := d.NewFunc(d.RootBlock(), FuncOperator, d.Intern("+"), span, NoFilepathID)
	id, err := d.NewIdent(NoBlockID, IdentFunction, d.Intern("+"), span)
	if err != nil {
		t.Fatalf("create unbound ident: %v", err)
	}
	d.Ident(id).Func = fn

	defer func() {
		if recover() == nil {
			t.Fatalf("datatype of an operator identifier must panic")
		}
	}()
	d.IdentDatatype(id)
}
