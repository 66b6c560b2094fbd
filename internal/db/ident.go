package db

import (
	"fmt"

	"rivet/internal/ast"
	"rivet/internal/diag"
	"rivet/internal/source"
)

// IdentKind distinguishes what declaration an identifier denotes.
type IdentKind uint8

const (
	IdentFunction IdentKind = iota
	IdentVariable
)

func (k IdentKind) String() string {
	switch k {
	case IdentFunction:
		return "function"
	case IdentVariable:
		return "variable"
	}
	return "invalid"
}

// Ident is a named binding inside a scope. It does not own its payload: the
// function or variable belongs to the database and may be denoted by several
// identifiers at once (re-export, copy).
type Ident struct {
	Kind  IdentKind
	Name  source.StringID
	Block BlockID
	Func  FuncID
	Var   VarID
}

// DuplicateIdentError is the reported compile error for a second declaration
// of a name already bound in the same scope.
type DuplicateIdentError struct {
	Name string
	Span source.Span
}

func (e *DuplicateIdentError) Error() string {
	return fmt.Sprintf("identifier '%s' already exists in this scope", e.Name)
}

// NewIdent creates an identifier in block's table. Passing NoBlockID creates
// an unbound identifier that no lookup will ever find (operator identifiers).
// A name already bound in the block is a reported compile error.
func (d *Database) NewIdent(block BlockID, kind IdentKind, name source.StringID, span source.Span) (IdentID, error) {
	if block.IsValid() {
		if old := d.BlockFindIdent(block, name); old.IsValid() {
			nameStr := d.NameOf(name)
			diag.ReportError(d.reporter, diag.SemaDuplicateIdent, span,
				fmt.Sprintf("identifier '%s' already exists in this scope", nameStr)).
				WithNote(d.IdentSpan(old), "previous declaration here").
				Emit()
			return NoIdentID, &DuplicateIdentError{Name: nameStr, Span: span}
		}
	}
	id := IdentID(d.idents.alloc(Ident{
		Kind: kind,
		Name: name,
	}))
	if block.IsValid() {
		d.blockAppendIdent(block, id)
	}
	return id, nil
}

// NewFunctionIdent creates an identifier denoting fn at the function's
// declared location and registers it on the function record.
func (d *Database) NewFunctionIdent(block BlockID, fn FuncID, name source.StringID) (IdentID, error) {
	id, err := d.NewIdent(block, IdentFunction, name, d.Func(fn).Span)
	if err != nil {
		return NoIdentID, err
	}
	d.Ident(id).Func = fn
	d.funcAppendIdent(fn, id)
	return id, nil
}

// NewVariableIdent creates an identifier denoting vr at the variable's
// declared location and registers it on the variable record.
func (d *Database) NewVariableIdent(block BlockID, vr VarID, name source.StringID) (IdentID, error) {
	id, err := d.NewIdent(block, IdentVariable, name, d.Var(vr).Span)
	if err != nil {
		return NoIdentID, err
	}
	d.Ident(id).Var = vr
	d.varAppendIdent(vr, id)
	return id, nil
}

// Ident returns the identifier record or nil for an invalid ID.
func (d *Database) Ident(id IdentID) *Ident {
	return d.idents.get(uint32(id))
}

// RenameIdent rebinds the identifier under newName and rewrites the name of
// every AST expression referencing it. The caller must have checked that
// newName is free in the identifier's scope; a collision panics.
func (d *Database) RenameIdent(id IdentID, newName source.StringID) {
	ident := d.Ident(id)
	if ident == nil {
		panic("db: rename of invalid identifier")
	}
	block := ident.Block
	if block.IsValid() {
		d.blockRemoveIdent(block, id)
	}
	ident.Name = newName
	if block.IsValid() {
		d.blockAppendIdent(block, id)
	}
	for _, exprID := range d.identRefs[id] {
		d.Exprs.SetName(exprID, newName)
	}
}

// CopyIdent creates an identifier of the same kind and name in destBlock,
// sharing the source's function or variable payload. The caller must ensure
// the name is free on destBlock.
func (d *Database) CopyIdent(id IdentID, destBlock BlockID) IdentID {
	ident := d.Ident(id)
	if ident == nil {
		panic("db: copy of invalid identifier")
	}
	newID := IdentID(d.idents.alloc(Ident{
		Kind: ident.Kind,
		Name: ident.Name,
		Func: ident.Func,
		Var:  ident.Var,
	}))
	d.blockAppendIdent(destBlock, newID)
	switch ident.Kind {
	case IdentFunction:
		d.funcAppendIdent(ident.Func, newID)
	case IdentVariable:
		d.varAppendIdent(ident.Var, newID)
	}
	return newID
}

// IdentIsModuleOrPackage reports whether the identifier denotes a namespace:
// a function of module or package kind.
func (d *Database) IdentIsModuleOrPackage(id IdentID) bool {
	ident := d.Ident(id)
	if ident == nil || ident.Kind != IdentFunction {
		return false
	}
	kind := d.Func(ident.Func).Kind
	return kind == FuncPackage || kind == FuncModule
}

// IdentSubBlock returns the scope the identifier opens, if any. Variables
// have none; that absence is a soft miss, not an error.
func (d *Database) IdentSubBlock(id IdentID) BlockID {
	ident := d.Ident(id)
	if ident == nil {
		return NoBlockID
	}
	if ident.Kind == IdentFunction {
		if fn := d.Func(ident.Func); fn != nil {
			return fn.SubBlock
		}
	}
	return NoBlockID
}

// IdentSpan returns the declared location of the identifier's payload, or the
// zero span while the payload is not yet bound.
func (d *Database) IdentSpan(id IdentID) source.Span {
	ident := d.Ident(id)
	if ident == nil {
		return source.Span{}
	}
	switch ident.Kind {
	case IdentFunction:
		if fn := d.Func(ident.Func); fn != nil {
			return fn.Span
		}
	case IdentVariable:
		if v := d.Var(ident.Var); v != nil {
			return v.Span
		}
	}
	return source.Span{}
}

// AddIdentRef records that the AST ident expression reads this identifier.
// RenameIdent uses the association to keep expression names consistent.
func (d *Database) AddIdentRef(id IdentID, expr ast.ExprID) {
	d.identRefs[id] = append(d.identRefs[id], expr)
}

// IdentRefs returns the AST expressions currently bound to the identifier.
func (d *Database) IdentRefs(id IdentID) []ast.ExprID {
	return d.identRefs[id]
}
