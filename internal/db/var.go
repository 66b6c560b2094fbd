package db

import (
	"rivet/internal/source"
	"rivet/internal/types"
)

// Var is a variable record. Datatype stays NoTypeID until inference assigns
// one. Idents lists every identifier denoting this variable.
type Var struct {
	Name     source.StringID
	Span     source.Span
	Datatype types.TypeID
	Idents   []IdentID
}

// NewVar allocates a variable record.
func (d *Database) NewVar(name source.StringID, span source.Span) VarID {
	return VarID(d.vars.alloc(Var{
		Name: name,
		Span: span,
	}))
}

// Var returns the variable record or nil for an invalid ID.
func (d *Database) Var(id VarID) *Var {
	return d.vars.get(uint32(id))
}

// SetVarDatatype records the datatype inference settled on.
func (d *Database) SetVarDatatype(id VarID, dt types.TypeID) {
	v := d.Var(id)
	if v == nil {
		panic("db: set datatype on invalid variable")
	}
	v.Datatype = dt
}

// varAppendIdent registers one more identifier denoting the variable.
func (d *Database) varAppendIdent(vr VarID, id IdentID) {
	v := d.Var(vr)
	if v == nil {
		panic("db: append ident to invalid variable")
	}
	v.Idents = append(v.Idents, id)
}
