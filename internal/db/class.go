package db

import (
	"rivet/internal/source"
)

// Tclass is a generic class template. Func is the constructor function whose
// name the template is known by.
type Tclass struct {
	Func FuncID
}

// Class is an instantiated class. Its body block holds the data members; the
// template link leads back to the constructor's name for path construction.
type Class struct {
	Tclass   TclassID
	SubBlock BlockID
}

// NewTclass registers a template for the given constructor function.
func (d *Database) NewTclass(constructor FuncID) TclassID {
	id := TclassID(d.tclasses.alloc(Tclass{Func: constructor}))
	d.Func(constructor).Tclass = id
	return id
}

// Tclass returns the template record or nil for an invalid ID.
func (d *Database) Tclass(id TclassID) *Tclass {
	return d.tclasses.get(uint32(id))
}

// NewClass instantiates a class body block for the template.
func (d *Database) NewClass(tclass TclassID, owner BlockID, filepath FilepathID, span source.Span) ClassID {
	id := ClassID(d.classes.alloc(Class{Tclass: tclass}))
	body := d.NewBlock(BlockClass, owner, filepath, span)
	d.Block(body).OwnerClass = id
	d.Class(id).SubBlock = body
	return id
}

// Class returns the class record or nil for an invalid ID.
func (d *Database) Class(id ClassID) *Class {
	return d.classes.get(uint32(id))
}
