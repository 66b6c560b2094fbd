package db

// Filepath ties a module's top-level block to the file it was parsed from.
type Filepath struct {
	Path        string
	ModuleBlock BlockID
}

// NewFilepath registers a file. The module block is wired afterwards, once
// the module function exists (see NewModule).
func (d *Database) NewFilepath(path string) FilepathID {
	return FilepathID(d.filepaths.alloc(Filepath{Path: path}))
}

// Filepath returns the file record or nil for an invalid ID.
func (d *Database) Filepath(id FilepathID) *Filepath {
	return d.filepaths.get(uint32(id))
}
