package db

import (
	"testing"

	"rivet/internal/source"
)

func TestScopeFallbackOrder(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}
	name := d.Intern("x")

	modFn, _ := d.NewModule(d.Intern("mod"), "mod.rv", span)
	modBlock := d.Func(modFn).SubBlock

	// Local scope: a plain function inside the module.
	localFn, _, err := declareFunc(d, modBlock, FuncPlain, "f", span)
	if err != nil {
		t.Fatalf("declare local func: %v", err)
	}
	localBlock := d.Func(localFn).SubBlock

	localID, err := declareVar(d, localBlock, "x", span)
	if err != nil {
		t.Fatalf("declare local x: %v", err)
	}
	moduleID, err := declareVar(d, modBlock, "x", span)
	if err != nil {
		t.Fatalf("declare module x: %v", err)
	}
	globalID, err := declareVar(d, d.RootBlock(), "x", span)
	if err != nil {
		t.Fatalf("declare global x: %v", err)
	}

	if got := d.FindIdent(localBlock, name); got != localID {
		t.Fatalf("expected local identifier, got %v", got)
	}
	d.RemoveIdent(localID)
	if got := d.FindIdent(localBlock, name); got != moduleID {
		t.Fatalf("expected module identifier after local removal, got %v", got)
	}
	d.RemoveIdent(moduleID)
	if got := d.FindIdent(localBlock, name); got != globalID {
		t.Fatalf("expected global identifier after module removal, got %v", got)
	}
	d.RemoveIdent(globalID)
	if got := d.FindIdent(localBlock, name); got.IsValid() {
		t.Fatalf("expected miss after removing every binding, got %v", got)
	}

	if err := d.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestBuiltinScopeSkipsModuleStep(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}
	name := d.Intern("len")

	// A module declares the name; a builtin scope must never see it through
	// the module step.
	modFn, _ := d.NewModule(d.Intern("mod"), "mod.rv", span)
	modBlock := d.Func(modFn).SubBlock
	if _, err := declareVar(d, modBlock, "len", span); err != nil {
		t.Fatalf("declare module len: %v", err)
	}

	// Builtin scope: a function body with no filepath.
	builtinFn := d.NewFunc(d.RootBlock(), FuncPlain, d.Intern("builtin"), span, NoFilepathID)
	builtinBlock := d.Func(builtinFn).SubBlock

	if got := d.FindIdent(builtinBlock, name); got.IsValid() {
		t.Fatalf("builtin scope resolved a module binding: %v", got)
	}

	globalID, err := declareVar(d, d.RootBlock(), "len", span)
	if err != nil {
		t.Fatalf("declare global len: %v", err)
	}
	if got := d.FindIdent(builtinBlock, name); got != globalID {
		t.Fatalf("builtin scope should fall through to global, got %v", got)
	}
}

func TestModuleScenarioEndToEnd(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 4}

	modFn, _ := d.NewModule(d.Intern("mod"), "mod.rv", span)
	modBlock := d.Func(modFn).SubBlock

	_, fooIdent, err := declareFunc(d, modBlock, FuncPlain, "foo", span)
	if err != nil {
		t.Fatalf("declare foo: %v", err)
	}

	if got := d.FindIdent(modBlock, d.Intern("foo")); got != fooIdent {
		t.Fatalf("foo should resolve inside its module, got %v", got)
	}
	if got := d.FindIdent(d.RootBlock(), d.Intern("foo")); got.IsValid() {
		t.Fatalf("foo must not leak into the global scope, got %v", got)
	}
	// Path fallback retries in the global scope, not the module, so foo
	// stays unreachable from the root as a bare path too.
	path := d.Exprs.NewIdent(d.Intern("foo"), span)
	if got := d.FindIdentFromPath(d.RootBlock(), path); got.IsValid() {
		t.Fatalf("path fallback must not search module scopes, got %v", got)
	}
}
