package db

import (
	"rivet/internal/ast"
	"rivet/internal/source"
)

// FindOwningIdent finds the identifier denoting the scope that owns this
// identifier's scope: for a function body that is the function's own
// identifier in the enclosing block, for a class body the identifier of the
// template's constructor. Top-level identifiers have none. Statement blocks
// never own named identifiers; asking is a compiler bug.
func (d *Database) FindOwningIdent(id IdentID) IdentID {
	ident := d.Ident(id)
	if ident == nil {
		return NoIdentID
	}
	block := d.Block(ident.Block)
	if block == nil {
		return NoIdentID
	}
	owningBlock := block.Owner
	if !owningBlock.IsValid() {
		return NoIdentID
	}
	var name source.StringID
	switch block.Kind {
	case BlockFunction:
		name = d.Func(block.OwnerFunc).Name
	case BlockStatement:
		panic("db: statement blocks do not have identifiers")
	case BlockClass:
		tclass := d.Class(block.OwnerClass).Tclass
		name = d.Func(d.Tclass(tclass).Func).Name
	default:
		panic("db: identifier owned by invalid block kind")
	}
	return d.BlockFindIdent(owningBlock, name)
}

// IdentPathExpr builds the fully qualified path expression that re-resolves
// to the identifier from the global scope, by walking owning identifiers
// upward and joining segments with dot nodes.
func (d *Database) IdentPathExpr(id IdentID) ast.ExprID {
	span := d.IdentSpan(id)
	identExpr := d.Exprs.NewIdent(d.Ident(id).Name, span)
	owning := d.FindOwningIdent(id)
	if !owning.IsValid() {
		return identExpr
	}
	prefix := d.IdentPathExpr(owning)
	return d.Exprs.NewDot(prefix, identExpr, span)
}
