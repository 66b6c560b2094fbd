package db

import (
	"rivet/internal/diag"
	"rivet/internal/source"
)

// newTestDB builds an empty database with a bag reporter for assertions on
// emitted diagnostics.
func newTestDB() (*Database, *diag.Bag) {
	bag := diag.NewBag(16)
	d := NewDatabase(Hints{}, Options{Reporter: diag.BagReporter{Bag: bag}})
	return d, bag
}

// declareVar creates a variable and binds an identifier for it in block.
func declareVar(d *Database, block BlockID, name string, span source.Span) (IdentID, error) {
	nameID := d.Intern(name)
	v := d.NewVar(nameID, span)
	return d.NewVariableIdent(block, v, nameID)
}

// declareFunc creates a function owned by block and binds its identifier there.
func declareFunc(d *Database, block BlockID, kind FuncKind, name string, span source.Span) (FuncID, IdentID, error) {
	nameID := d.Intern(name)
	filepath := NoFilepathID
	if b := d.Block(block); b != nil {
		filepath = b.Filepath
	}
	fn := d.NewFunc(block, kind, nameID, span, filepath)
	id, err := d.NewFunctionIdent(block, fn, nameID)
	return fn, id, err
}
