package db

import (
	"rivet/internal/types"
)

// IdentDatatype derives the datatype of the declaration the identifier
// denotes. A variable that inference has not reached yet yields NoTypeID,
// which callers must treat as "not yet known". Operator functions never have
// identifiers, so that branch aborts.
func (d *Database) IdentDatatype(id IdentID) types.TypeID {
	ident := d.Ident(id)
	if ident == nil {
		return types.NoTypeID
	}
	switch ident.Kind {
	case IdentFunction:
		fn := d.Func(ident.Func)
		switch fn.Kind {
		case FuncPlain, FuncUnittest, FuncFinal, FuncDestructor,
			FuncPackage, FuncModule, FuncIterator, FuncStruct, FuncGenerator:
			return d.Types.Intern(types.MakeFunc(uint32(ident.Func)))
		case FuncEnum:
			return d.Types.Intern(types.MakeEnumClass(uint32(ident.Func)))
		case FuncConstructor:
			return d.Types.Intern(types.MakeTclass(uint32(fn.Tclass)))
		case FuncOperator:
			panic("db: operators don't have idents")
		}
	case IdentVariable:
		return d.Var(ident.Var).Datatype
	}
	return types.NoTypeID
}
