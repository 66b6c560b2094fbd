package db

import (
	"fmt"

	"rivet/internal/source"
)

// FuncKind enumerates the declared kinds of functions.
type FuncKind uint8

const (
	FuncPlain FuncKind = iota
	FuncUnittest
	FuncFinal
	FuncDestructor
	FuncPackage
	FuncModule
	FuncIterator
	FuncStruct
	FuncGenerator
	FuncEnum
	FuncConstructor
	// FuncOperator functions never acquire identifiers; hitting one through
	// an identifier is a compiler bug.
	FuncOperator
)

func (k FuncKind) String() string {
	switch k {
	case FuncPlain:
		return "func"
	case FuncUnittest:
		return "unittest"
	case FuncFinal:
		return "final"
	case FuncDestructor:
		return "destructor"
	case FuncPackage:
		return "package"
	case FuncModule:
		return "module"
	case FuncIterator:
		return "iterator"
	case FuncStruct:
		return "struct"
	case FuncGenerator:
		return "generator"
	case FuncEnum:
		return "enum"
	case FuncConstructor:
		return "constructor"
	case FuncOperator:
		return "operator"
	default:
		return fmt.Sprintf("FuncKind(%d)", k)
	}
}

// Func is a function record. SubBlock is its body scope. Idents lists every
// identifier that denotes this function; there can be more than one after
// module re-export or copy.
type Func struct {
	Kind     FuncKind
	Name     source.StringID
	Span     source.Span
	SubBlock BlockID
	Tclass   TclassID
	Idents   []IdentID
}

// NewFunc allocates a function together with its body block. The body block's
// lexical owner is the block the function is declared in; filepath associates
// the body with a module (builtin functions pass NoFilepathID).
func (d *Database) NewFunc(owner BlockID, kind FuncKind, name source.StringID, span source.Span, filepath FilepathID) FuncID {
	id := FuncID(d.funcs.alloc(Func{
		Kind: kind,
		Name: name,
		Span: span,
	}))
	body := d.NewBlock(BlockFunction, owner, filepath, span)
	d.Block(body).OwnerFunc = id
	d.Func(id).SubBlock = body
	return id
}

// Func returns the function record or nil for an invalid ID.
func (d *Database) Func(id FuncID) *Func {
	return d.funcs.get(uint32(id))
}

// funcAppendIdent registers one more identifier denoting the function.
func (d *Database) funcAppendIdent(fn FuncID, id IdentID) {
	f := d.Func(fn)
	if f == nil {
		panic("db: append ident to invalid function")
	}
	f.Idents = append(f.Idents, id)
}

// NewModule creates a module function under the root scope together with its
// filepath record, wiring the filepath's module block to the function body.
// The identifier is not created here; lowering decides where the module is
// visible from.
func (d *Database) NewModule(name source.StringID, path string, span source.Span) (FuncID, FilepathID) {
	filepath := d.NewFilepath(path)
	fn := d.NewFunc(d.root, FuncModule, name, span, filepath)
	d.Filepath(filepath).ModuleBlock = d.Func(fn).SubBlock
	return fn, filepath
}
