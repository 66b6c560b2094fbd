package db

import (
	"fmt"
	"maps"
	"slices"

	"rivet/internal/ast"
	"rivet/internal/source"
	"rivet/internal/types"
)

// Image is a plain-data view of a database, suitable for serialization.
// AST expressions, back-references and derived datatypes are rebuilt by the
// passes that need them and are deliberately not part of the image.
type Image struct {
	Strings   []string
	Blocks    []Block
	Idents    []Ident
	Funcs     []Func
	Vars      []Var
	Filepaths []Filepath
	Classes   []Class
	Tclasses  []Tclass
	Root      BlockID
}

// Image captures the current database state. Slices include the reserved
// zero sentinel so IDs stay stable across a round trip. The copy is deep:
// nothing in the image aliases the live database, so mutating one can never
// corrupt the other.
func (d *Database) Image() *Image {
	return &Image{
		Strings:   d.Strings.Snapshot(),
		Blocks:    cloneBlocks(d.blocks.data),
		Idents:    slices.Clone(d.idents.data),
		Funcs:     cloneFuncs(d.funcs.data),
		Vars:      cloneVars(d.vars.data),
		Filepaths: slices.Clone(d.filepaths.data),
		Classes:   slices.Clone(d.classes.data),
		Tclasses:  slices.Clone(d.tclasses.data),
		Root:      d.root,
	}
}

func cloneBlocks(src []Block) []Block {
	out := slices.Clone(src)
	for i := range out {
		out[i].Idents = slices.Clone(out[i].Idents)
		out[i].NameIndex = maps.Clone(out[i].NameIndex)
	}
	return out
}

func cloneFuncs(src []Func) []Func {
	out := slices.Clone(src)
	for i := range out {
		out[i].Idents = slices.Clone(out[i].Idents)
	}
	return out
}

func cloneVars(src []Var) []Var {
	out := slices.Clone(src)
	for i := range out {
		out[i].Idents = slices.Clone(out[i].Idents)
	}
	return out
}

// FromImage reconstructs a database from an image.
func FromImage(img *Image) (*Database, error) {
	if img == nil {
		return nil, fmt.Errorf("db: nil image")
	}
	if len(img.Blocks) == 0 || !img.Root.IsValid() || int(img.Root) >= len(img.Blocks) {
		return nil, fmt.Errorf("db: image has no valid root block")
	}
	d := &Database{
		Strings:   source.Restore(img.Strings),
		Exprs:     ast.NewExprs(0),
		Types:     types.NewInterner(),
		blocks:    store[Block]{data: cloneBlocks(img.Blocks)},
		idents:    store[Ident]{data: slices.Clone(img.Idents)},
		funcs:     store[Func]{data: cloneFuncs(img.Funcs)},
		vars:      store[Var]{data: cloneVars(img.Vars)},
		filepaths: store[Filepath]{data: slices.Clone(img.Filepaths)},
		classes:   store[Class]{data: slices.Clone(img.Classes)},
		tclasses:  store[Tclass]{data: slices.Clone(img.Tclasses)},
		identRefs: make(map[IdentID][]ast.ExprID),
		root:      img.Root,
	}
	// Deserialized blocks may carry nil name indexes for empty scopes.
	for i := range d.blocks.data {
		if d.blocks.data[i].NameIndex == nil {
			d.blocks.data[i].NameIndex = make(map[source.StringID]IdentID)
		}
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("db: corrupt image: %w", err)
	}
	return d, nil
}

// AllIdents calls fn for every allocated identifier in creation order.
func (d *Database) AllIdents(fn func(IdentID)) {
	for idx := 1; idx < len(d.idents.data); idx++ {
		fn(IdentID(idx))
	}
}
