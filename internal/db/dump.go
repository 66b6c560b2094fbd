package db

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DumpIdentTo writes a one-line trace of the identifier for debugging.
func (d *Database) DumpIdentTo(w io.Writer, id IdentID) {
	ident := d.Ident(id)
	if ident == nil {
		fmt.Fprintf(w, "ident <invalid> (0x%x)\n", uint32(id))
		return
	}
	fmt.Fprintf(w, "ident %s (0x%x) -> ", d.NameOf(ident.Name), uint32(id))
	switch ident.Kind {
	case IdentFunction:
		fn := d.Func(ident.Func)
		fmt.Fprintf(w, "function %s 0x%x\n", fn.Kind, uint32(ident.Func))
	case IdentVariable:
		fmt.Fprintf(w, "variable 0x%x\n", uint32(ident.Var))
	}
}

// DumpIdent writes the identifier trace to stdout.
func (d *Database) DumpIdent(id IdentID) {
	d.DumpIdentTo(os.Stdout, id)
}

// DumpIdentString renders the identifier trace as a string.
func (d *Database) DumpIdentString(id IdentID) string {
	var sb strings.Builder
	d.DumpIdentTo(&sb, id)
	return sb.String()
}
