// Package apperr defines the sentinel error conditions of the importer.
package apperr

import "errors"

var (
	// ErrUnknownKind reports a source markup element whose qualified name is
	// not in the kind table.
	ErrUnknownKind = errors.New("unknown markup kind")
	// ErrPipelineState reports a normalization pass observing input a
	// previous pass should already have consumed.
	ErrPipelineState = errors.New("invalid pipeline state")
	// ErrStructure reports a structural invariant violated during rendering.
	ErrStructure = errors.New("structural invariant violation")
	// ErrLineage reports a parent/child mismatch found after normalization.
	ErrLineage = errors.New("broken lineage")
	// ErrBadNote reports an unreadable or malformed source note file.
	ErrBadNote = errors.New("malformed note")
)
