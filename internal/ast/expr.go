package ast

import (
	"rivet/internal/source"
)

// ExprKind enumerates the expression shapes a qualified name is built from.
type ExprKind uint8

const (
	ExprInvalid ExprKind = iota
	// ExprIdent is a bare name reference.
	ExprIdent
	// ExprDot is a dotted pair: First is the sub-path, Second the trailing
	// ident expression.
	ExprDot
	// ExprAs aliases the path in First under the name of the ident in Second.
	ExprAs
)

func (k ExprKind) String() string {
	switch k {
	case ExprIdent:
		return "ident"
	case ExprDot:
		return "dot"
	case ExprAs:
		return "as"
	default:
		return "invalid"
	}
}

// Expr is a node of a (possibly dotted, possibly aliased) qualified name.
// Name is set only for ExprIdent nodes and is mutable: renaming an identifier
// rewrites the Name of every expression that references it.
type Expr struct {
	Kind   ExprKind
	Name   source.StringID
	First  ExprID
	Second ExprID
	Span   source.Span
}

// Exprs manages allocation of path expressions.
type Exprs struct {
	Arena *Arena[Expr]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena: NewArena[Expr](capHint),
	}
}

// NewIdent allocates a bare name reference.
func (e *Exprs) NewIdent(name source.StringID, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind: ExprIdent,
		Name: name,
		Span: span,
	}))
}

// NewDot joins a sub-path and a trailing ident expression.
func (e *Exprs) NewDot(first, second ExprID, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:   ExprDot,
		First:  first,
		Second: second,
		Span:   span,
	}))
}

// NewAs wraps a path under an alias ident expression.
func (e *Exprs) NewAs(path, alias ExprID, span source.Span) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:   ExprAs,
		First:  path,
		Second: alias,
		Span:   span,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// SetName rewrites the name of an ident expression. Panics on any other
// expression kind: only ident nodes carry names.
func (e *Exprs) SetName(id ExprID, name source.StringID) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		panic("ast: SetName on non-ident expression")
	}
	expr.Name = name
}
