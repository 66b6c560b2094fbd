package db

import (
	"errors"
	"fmt"

	"fortio.org/safecast"
)

// Validate walks the arenas checking structural invariants. Returns nil if
// everything is consistent; otherwise aggregates all detected issues.
func (d *Database) Validate() error {
	var errs []error

	// Check blocks: every name-index entry must point at a listed ident
	// that names this block as its owner under that exact name.
	for idx := 1; idx < len(d.blocks.data); idx++ {
		blockID, err := toBlockID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		block := d.blocks.data[idx]
		if block.Kind == BlockInvalid {
			errs = append(errs, fmt.Errorf("block %d has invalid kind", blockID))
		}
		if block.Owner == blockID {
			errs = append(errs, fmt.Errorf("block %d owns itself", blockID))
		}
		listed := make(map[IdentID]struct{}, len(block.Idents))
		for _, id := range block.Idents {
			listed[id] = struct{}{}
		}
		covered := make(map[IdentID]struct{}, len(block.Idents))
		for name, id := range block.NameIndex {
			ident := d.Ident(id)
			if ident == nil {
				errs = append(errs, fmt.Errorf("block %d name index references missing ident %d", blockID, id))
				continue
			}
			if ident.Name != name {
				errs = append(errs, fmt.Errorf("block %d indexes ident %d under wrong name", blockID, id))
			}
			if ident.Block != blockID {
				errs = append(errs, fmt.Errorf("block %d indexes ident %d owned by block %d", blockID, id, ident.Block))
			}
			if _, ok := listed[id]; !ok {
				errs = append(errs, fmt.Errorf("block %d name index entry %d missing from ident list", blockID, id))
			}
			covered[id] = struct{}{}
		}
		for _, id := range block.Idents {
			if _, ok := covered[id]; !ok {
				errs = append(errs, fmt.Errorf("block %d ident %d missing in name index", blockID, id))
			}
		}
	}

	// Check idents: a bound identifier must be indexed by its block.
	for idx := 1; idx < len(d.idents.data); idx++ {
		identID, err := toIdentID(idx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		ident := d.idents.data[idx]
		if !ident.Block.IsValid() {
			continue // operator identifiers and detached records
		}
		block := d.Block(ident.Block)
		if block == nil {
			errs = append(errs, fmt.Errorf("ident %d has invalid block %d", identID, ident.Block))
			continue
		}
		if block.NameIndex[ident.Name] != identID {
			errs = append(errs, fmt.Errorf("ident %d is not indexed by its block %d", identID, ident.Block))
		}
		switch ident.Kind {
		case IdentFunction:
			if d.Func(ident.Func) == nil {
				errs = append(errs, fmt.Errorf("ident %d has invalid function payload %d", identID, ident.Func))
			}
		case IdentVariable:
			if d.Var(ident.Var) == nil {
				errs = append(errs, fmt.Errorf("ident %d has invalid variable payload %d", identID, ident.Var))
			}
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func toBlockID(idx int) (BlockID, error) {
	value, err := safecast.Conv[uint32](idx)
	if err != nil {
		return NoBlockID, fmt.Errorf("block index %d overflow: %w", idx, err)
	}
	return BlockID(value), nil
}

func toIdentID(idx int) (IdentID, error) {
	value, err := safecast.Conv[uint32](idx)
	if err != nil {
		return NoIdentID, fmt.Errorf("ident index %d overflow: %w", idx, err)
	}
	return IdentID(value), nil
}
