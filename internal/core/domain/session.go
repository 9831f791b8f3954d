package domain

// SurfaceMode describes what the table surface is currently doing.
type SurfaceMode int

const (
	// ModeBrowse is the default: the table is navigable and searchable.
	ModeBrowse SurfaceMode = iota
	// ModeAdd shows the editor for a new record.
	ModeAdd
	// ModeEdit shows the editor for an existing record.
	ModeEdit
	// ModeConfirmDelete waits for the user to accept or decline a deletion.
	ModeConfirmDelete
)

// String returns the string representation of the mode.
func (m SurfaceMode) String() string {
	switch m {
	case ModeBrowse:
		return "browse"
	case ModeAdd:
		return "add"
	case ModeEdit:
		return "edit"
	case ModeConfirmDelete:
		return "confirm_delete"
	default:
		return "unknown"
	}
}

// EditorOpen reports whether the add/edit form is showing.
func (m SurfaceMode) EditorOpen() bool {
	return m == ModeAdd || m == ModeEdit
}

// ActionKind identifies a mutation that requires confirmation.
type ActionKind string

// ActionDelete removes a record from the store.
const ActionDelete ActionKind = "delete"

// PendingAction is a mutation requested by the user but not yet confirmed.
// Declining it performs no mutation and is not an error.
type PendingAction struct {
	Kind   ActionKind
	Record Hearing
}

// Prompt returns the fixed confirmation question shown to users.
func (a PendingAction) Prompt() string {
	switch a.Kind {
	case ActionDelete:
		return "Tem certeza de que deseja excluir este item?"
	default:
		return "Confirmar?"
	}
}
