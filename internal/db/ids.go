package db

type (
	// BlockID identifies a scope block in the database arena.
	BlockID uint32
	// IdentID identifies an identifier record.
	IdentID uint32
	// FuncID identifies a function record.
	FuncID uint32
	// VarID identifies a variable record.
	VarID uint32
	// FilepathID identifies a source file / module record.
	FilepathID uint32
	// ClassID identifies an instantiated class record.
	ClassID uint32
	// TclassID identifies a generic class template record.
	TclassID uint32
)

const (
	NoBlockID    BlockID    = 0
	NoIdentID    IdentID    = 0
	NoFuncID     FuncID     = 0
	NoVarID      VarID      = 0
	NoFilepathID FilepathID = 0
	NoClassID    ClassID    = 0
	NoTclassID   TclassID   = 0
)

func (id BlockID) IsValid() bool    { return id != NoBlockID }
func (id IdentID) IsValid() bool    { return id != NoIdentID }
func (id FuncID) IsValid() bool     { return id != NoFuncID }
func (id VarID) IsValid() bool      { return id != NoVarID }
func (id FilepathID) IsValid() bool { return id != NoFilepathID }
func (id ClassID) IsValid() bool    { return id != NoClassID }
func (id TclassID) IsValid() bool   { return id != NoTclassID }
