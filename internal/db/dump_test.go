package db

import (
	"strings"
	"testing"

	"rivet/internal/source"
)

func TestDumpIdentFormats(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	_, fnIdent, err := declareFunc(d, d.RootBlock(), FuncModule, "mod", span)
	if err != nil {
		t.Fatalf("declare module: %v", err)
	}
	varIdent, err := declareVar(d, d.RootBlock(), "value", span)
	if err != nil {
		t.Fatalf("declare var: %v", err)
	}

	fnLine := d.DumpIdentString(fnIdent)
	if !strings.Contains(fnLine, "mod") || !strings.Contains(fnLine, "function module") {
		t.Fatalf("unexpected function dump: %q", fnLine)
	}
	varLine := d.DumpIdentString(varIdent)
	if !strings.Contains(varLine, "value") || !strings.Contains(varLine, "variable") {
		t.Fatalf("unexpected variable dump: %q", varLine)
	}
}
