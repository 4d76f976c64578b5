package types

// ResolvedKind tags the terminal outcome of a picker session.
type ResolvedKind int

const (
	// ResolvedNone means the user aborted; nothing is created or emitted.
	ResolvedNone ResolvedKind = iota
	// ResolvedFolder names a directory that already exists, either
	// literally or as a date-prefixed variant.
	ResolvedFolder
	// ResolvedNew names a directory that was just created.
	ResolvedNew
)

// Resolved is the outcome of one picker session. It is produced exactly
// once, after the selection loop has finished.
type Resolved struct {
	Kind ResolvedKind

	// Name is the final directory name under the tries dir.
	// Empty when Kind is ResolvedNone.
	Name string
}

// None reports whether the session ended without a selection.
func (r Resolved) None() bool {
	return r.Kind == ResolvedNone
}

func (k ResolvedKind) String() string {
	switch k {
	case ResolvedFolder:
		return "folder"
	case ResolvedNew:
		return "new"
	default:
		return "none"
	}
}
