package db

import (
	"rivet/internal/source"
)

// BlockKind enumerates supported scope categories.
type BlockKind uint8

const (
	BlockInvalid BlockKind = iota
	// BlockFunction is a function body scope (modules and packages included:
	// both are function kinds with their own top-level block).
	BlockFunction
	// BlockStatement is a sub-scope introduced by a compound statement.
	// Statement blocks never own named identifiers.
	BlockStatement
	// BlockClass is the data scope of an instantiated class.
	BlockClass
)

func (k BlockKind) String() string {
	switch k {
	case BlockFunction:
		return "function"
	case BlockStatement:
		return "statement"
	case BlockClass:
		return "class"
	default:
		return "invalid"
	}
}

// Block models a lexical scope with an ordered, name-keyed identifier table.
// Owner is the enclosing scope; OwnerFunc/OwnerClass link back to the entity
// whose body this block is. Filepath is set for blocks that belong to a
// module; builtin scopes leave it invalid.
type Block struct {
	Kind       BlockKind
	Owner      BlockID
	OwnerFunc  FuncID
	OwnerClass ClassID
	Filepath   FilepathID
	Span       source.Span
	Idents     []IdentID
	NameIndex  map[source.StringID]IdentID
}

// NewBlock allocates a bare scope block. Most callers want NewFunc or
// NewClass, which allocate the body block themselves.
func (d *Database) NewBlock(kind BlockKind, owner BlockID, filepath FilepathID, span source.Span) BlockID {
	return BlockID(d.blocks.alloc(Block{
		Kind:      kind,
		Owner:     owner,
		Filepath:  filepath,
		Span:      span,
		NameIndex: make(map[source.StringID]IdentID),
	}))
}

// NewStatementBlock allocates a statement sub-scope of owner.
func (d *Database) NewStatementBlock(owner BlockID, span source.Span) BlockID {
	filepath := NoFilepathID
	if ownerBlock := d.Block(owner); ownerBlock != nil {
		filepath = ownerBlock.Filepath
	}
	return d.NewBlock(BlockStatement, owner, filepath, span)
}

// Block returns the block record or nil for an invalid ID.
func (d *Database) Block(id BlockID) *Block {
	return d.blocks.get(uint32(id))
}

// BlockFindIdent looks a name up directly in the block's own table. No
// fallback of any kind; absence is a soft miss.
func (d *Database) BlockFindIdent(block BlockID, name source.StringID) IdentID {
	b := d.Block(block)
	if b == nil {
		return NoIdentID
	}
	return b.NameIndex[name]
}

// blockAppendIdent inserts the identifier into the block's table. The name
// must be free: callers either pre-checked (NewIdent) or promised it free
// (RenameIdent, CopyIdent), so a collision here is a compiler bug.
func (d *Database) blockAppendIdent(block BlockID, id IdentID) {
	b := d.Block(block)
	if b == nil {
		panic("db: append ident to invalid block")
	}
	ident := d.Ident(id)
	if _, occupied := b.NameIndex[ident.Name]; occupied {
		panic("db: identifier name already bound in block")
	}
	b.Idents = append(b.Idents, id)
	b.NameIndex[ident.Name] = id
	ident.Block = block
}

// blockRemoveIdent detaches the identifier from the block's table.
func (d *Database) blockRemoveIdent(block BlockID, id IdentID) {
	b := d.Block(block)
	if b == nil {
		return
	}
	ident := d.Ident(id)
	if b.NameIndex[ident.Name] == id {
		delete(b.NameIndex, ident.Name)
	}
	for i, candidate := range b.Idents {
		if candidate == id {
			b.Idents = append(b.Idents[:i], b.Idents[i+1:]...)
			break
		}
	}
	ident.Block = NoBlockID
}

// RemoveIdent detaches the identifier from its current scope. The record
// itself stays in the arena; only the binding disappears.
func (d *Database) RemoveIdent(id IdentID) {
	ident := d.Ident(id)
	if ident == nil || !ident.Block.IsValid() {
		return
	}
	d.blockRemoveIdent(ident.Block, id)
}
