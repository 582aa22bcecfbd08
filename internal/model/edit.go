package model

// EditAction says how an Edit is applied to its target line.
type EditAction int

const (
	// EditUpdate replaces the line at the target index.
	EditUpdate EditAction = iota
	// EditInsertAfter inserts a new line immediately after the target index.
	EditInsertAfter
)

// Edit is a planned single-line change. Edits are created by the planner and
// consumed exactly once by the applier; they are never persisted.
type Edit struct {
	File   Path
	Line   int // 0-indexed target line
	Action EditAction
	Text   string
}

// MutationStatus is the per-service outcome of one planned mutation.
type MutationStatus int

const (
	// MutationAdded means an edit was planned (and applied unless dry-run).
	MutationAdded MutationStatus = iota
	// MutationAlreadyPresent means the value was already a list member.
	MutationAlreadyPresent
	// MutationNotFound means the service block was not found in the file.
	MutationNotFound
	// MutationFailed means reading or writing the file failed.
	MutationFailed
)

// MutationOutcome reports what happened for one (file, service) target.
type MutationOutcome struct {
	File    Path
	Prod    string
	Service string
	Status  MutationStatus
	Line    int // 1-indexed line the edit touches, when Status is MutationAdded
	Err     error
}
