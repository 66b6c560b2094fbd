package db

import (
	"rivet/internal/ast"
	"rivet/internal/source"
)

// FindIdent resolves an unqualified name from scopeBlock: the block itself
// first, then the top-level block of the module the scope belongs to, then
// the global root. Builtin scopes carry no filepath, so for them the module
// step is skipped entirely. Absence is a soft miss; callers decide whether
// it is an error.
func (d *Database) FindIdent(scopeBlock BlockID, name source.StringID) IdentID {
	if id := d.BlockFindIdent(scopeBlock, name); id.IsValid() {
		return id
	}
	block := d.Block(scopeBlock)
	if block == nil {
		return NoIdentID
	}
	if block.Filepath.IsValid() {
		moduleBlock := d.Filepath(block.Filepath).ModuleBlock
		if id := d.BlockFindIdent(moduleBlock, name); id.IsValid() {
			return id
		}
	}
	// Identifiers for builtin classes and root declarations live in the
	// global scope.
	return d.BlockFindIdent(d.root, name)
}

// findIdentFromPath resolves a path expression by plain scope descent: the
// leading name is looked up directly in scopeBlock (no fallback at this
// level), every further segment in the sub-block of the previous result.
func (d *Database) findIdentFromPath(scopeBlock BlockID, path ast.ExprID) IdentID {
	expr := d.Exprs.Get(path)
	if expr == nil {
		panic("db: path resolution on invalid expression")
	}
	if expr.Kind == ast.ExprAs {
		// Aliasing changes how the binding is re-exposed, not what the
		// right-hand path means.
		expr = d.Exprs.Get(expr.First)
		if expr == nil {
			panic("db: as-expression without a path")
		}
	}
	if expr.Kind == ast.ExprIdent {
		return d.BlockFindIdent(scopeBlock, expr.Name)
	}
	if expr.Kind != ast.ExprDot {
		panic("db: malformed path expression shape")
	}
	trailing := d.Exprs.Get(expr.Second)
	if trailing == nil || trailing.Kind != ast.ExprIdent {
		panic("db: dotted path without trailing ident")
	}
	ident := d.findIdentFromPath(scopeBlock, expr.First)
	if !ident.IsValid() {
		return NoIdentID
	}
	subBlock := d.IdentSubBlock(ident)
	if !subBlock.IsValid() {
		return NoIdentID
	}
	return d.BlockFindIdent(subBlock, trailing.Name)
}

// FindIdentFromPath resolves a qualified name from scopeBlock, retrying from
// the global root when the local attempt fails so builtins and root-level
// declarations stay reachable from any context.
func (d *Database) FindIdentFromPath(scopeBlock BlockID, path ast.ExprID) IdentID {
	if ident := d.findIdentFromPath(scopeBlock, path); ident.IsValid() {
		return ident
	}
	return d.findIdentFromPath(d.root, path)
}
