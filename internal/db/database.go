package db

import (
	"fmt"

	"fortio.org/safecast"

	"rivet/internal/ast"
	"rivet/internal/diag"
	"rivet/internal/source"
	"rivet/internal/types"
)

// Hints provide optional capacity suggestions for the database arenas.
type Hints struct {
	Blocks, Idents, Funcs, Vars uint
}

// Options configures database construction.
type Options struct {
	Reporter diag.Reporter
	Strings  *source.Interner
	Exprs    *ast.Exprs
}

// Database is the whole-program semantic database: every block, function,
// variable, class and identifier lives in one of its arenas. It replaces the
// usual compiler global with an explicit value passed to every operation.
type Database struct {
	Strings *source.Interner
	Exprs   *ast.Exprs
	Types   *types.Interner

	blocks    store[Block]
	idents    store[Ident]
	funcs     store[Func]
	vars      store[Var]
	filepaths store[Filepath]
	classes   store[Class]
	tclasses  store[Tclass]

	// identRefs maps an identifier to the AST ident expressions reading it.
	// Kept as an association table next to the arenas so record relocation
	// can never dangle a back-reference.
	identRefs map[IdentID][]ast.ExprID

	root     BlockID
	reporter diag.Reporter
}

// NewDatabase builds an empty database with a root scope. The root block has
// no filepath: it is the builtin/global scope, so name resolution inside it
// never takes the module step.
func NewDatabase(h Hints, opts Options) *Database {
	blockCap := capHint(h.Blocks)
	identCap := capHint(h.Idents)
	funcCap := capHint(h.Funcs)
	varCap := capHint(h.Vars)

	strings := opts.Strings
	if strings == nil {
		strings = source.NewInterner()
	}
	exprs := opts.Exprs
	if exprs == nil {
		exprs = ast.NewExprs(0)
	}
	d := &Database{
		Strings:   strings,
		Exprs:     exprs,
		Types:     types.NewInterner(),
		blocks:    newStore[Block](blockCap),
		idents:    newStore[Ident](identCap),
		funcs:     newStore[Func](funcCap),
		vars:      newStore[Var](varCap),
		filepaths: newStore[Filepath](8),
		classes:   newStore[Class](8),
		tclasses:  newStore[Tclass](8),
		identRefs: make(map[IdentID][]ast.ExprID),
		reporter:  opts.Reporter,
	}
	d.root = d.NewBlock(BlockFunction, NoBlockID, NoFilepathID, source.Span{})
	return d
}

func capHint(hint uint) uint32 {
	value, err := safecast.Conv[uint32](hint)
	if err != nil {
		panic(fmt.Errorf("arena capacity overflow: %w", err))
	}
	return value
}

// RootBlock returns the global scope every resolution falls back to.
func (d *Database) RootBlock() BlockID { return d.root }

// Reporter returns the diagnostic sink the database reports through.
func (d *Database) Reporter() diag.Reporter { return d.reporter }

// Intern is a convenience shortcut for d.Strings.Intern.
func (d *Database) Intern(name string) source.StringID {
	return d.Strings.Intern(name)
}

// NameOf renders an interned name for diagnostics and dumps.
func (d *Database) NameOf(id source.StringID) string {
	return d.Strings.MustLookup(id)
}

// NumBlocks, NumIdents and friends report arena sizes (sentinel excluded).
func (d *Database) NumBlocks() int    { return d.blocks.len() }
func (d *Database) NumIdents() int    { return d.idents.len() }
func (d *Database) NumFuncs() int     { return d.funcs.len() }
func (d *Database) NumVars() int      { return d.vars.len() }
func (d *Database) NumFilepaths() int { return d.filepaths.len() }
