package diag

import (
	"fmt"
)

type Code uint16

const (
	// Unknown/unclassified.
	UnknownCode Code = 0

	// Semantic database errors.
	SemaInfo            Code = 3000
	SemaError           Code = 3001
	SemaDuplicateIdent  Code = 3002
	SemaUnresolvedName  Code = 3003
	SemaUnresolvedPath  Code = 3004

	// IO / snapshot errors.
	IOInfo            Code = 4000
	IOSnapshotRead    Code = 4001
	IOSnapshotWrite   Code = 4002
	IOSnapshotSchema  Code = 4003

	// Project manifest errors.
	ProjInfo            Code = 5000
	ProjManifestInvalid Code = 5001
)

var codeDescription = map[Code]string{
	UnknownCode:         "Unknown error",
	SemaInfo:            "Semantic information",
	SemaError:           "Semantic error",
	SemaDuplicateIdent:  "Identifier already declared in this scope",
	SemaUnresolvedName:  "Unresolved name",
	SemaUnresolvedPath:  "Unresolved qualified name",
	IOInfo:              "IO information",
	IOSnapshotRead:      "Failed to read snapshot",
	IOSnapshotWrite:     "Failed to write snapshot",
	IOSnapshotSchema:    "Snapshot schema mismatch",
	ProjInfo:            "Project information",
	ProjManifestInvalid: "Invalid project manifest",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
