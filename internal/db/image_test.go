package db

import (
	"testing"

	"rivet/internal/source"
)

func TestImageRoundTripIsIndependent(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	if _, err := declareVar(d, d.RootBlock(), "a", span); err != nil {
		t.Fatalf("declare a: %v", err)
	}
	d2, err := FromImage(d.Image())
	if err != nil {
		t.Fatalf("from image: %v", err)
	}

	// Declarations after the copy must stay confined to their own database.
	if _, err := declareVar(d2, d2.RootBlock(), "b", span); err != nil {
		t.Fatalf("declare b in copy: %v", err)
	}
	if got := d.FindIdent(d.RootBlock(), d.Intern("b")); got.IsValid() {
		t.Fatalf("declaration in the copy leaked into the original: %v", got)
	}
	if _, err := declareVar(d, d.RootBlock(), "c", span); err != nil {
		t.Fatalf("declare c in original: %v", err)
	}
	if got := d2.FindIdent(d2.RootBlock(), d2.Intern("c")); got.IsValid() {
		t.Fatalf("declaration in the original leaked into the copy: %v", got)
	}

	if err := d.Validate(); err != nil {
		t.Fatalf("validate original: %v", err)
	}
	if err := d2.Validate(); err != nil {
		t.Fatalf("validate copy: %v", err)
	}
}

func TestImageDoesNotAliasLiveState(t *testing.T) {
	d, _ := newTestDB()
	span := source.Span{File: 1}

	if _, err := declareVar(d, d.RootBlock(), "a", span); err != nil {
		t.Fatalf("declare a: %v", err)
	}
	img := d.Image()
	if _, err := declareVar(d, d.RootBlock(), "late", span); err != nil {
		t.Fatalf("declare late: %v", err)
	}

	root := img.Blocks[int(img.Root)]
	if _, ok := root.NameIndex[d.Intern("late")]; ok {
		t.Fatalf("image name index picked up a post-capture declaration")
	}
	if len(root.Idents) != 1 {
		t.Fatalf("image root lists %d idents, want 1", len(root.Idents))
	}
}
