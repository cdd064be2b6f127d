package diagnostic

import (
	"fmt"

	"partial-generator/internal/common"
)

// Kind classifies a generation-time failure.
type Kind int

const (
	// KindDirectiveSyntax reports a malformed //partial: directive.
	KindDirectiveSyntax Kind = iota
	// KindUnsupportedShape reports a source type that is not a named-field struct.
	KindUnsupportedShape
	// KindUnknownField reports an omit/optional name with no matching field.
	KindUnknownField
	// KindConflictingClassification reports a field that is both omitted and optional.
	KindConflictingClassification
)

// String returns a stable identifier for the kind.
func (k Kind) String() string {
	switch k {
	case KindDirectiveSyntax:
		return "directive-syntax"
	case KindUnsupportedShape:
		return "unsupported-shape"
	case KindUnknownField:
		return "unknown-field"
	case KindConflictingClassification:
		return "conflicting-classification"
	default:
		return common.UnknownStr
	}
}

// Pos locates an error in the input.
//
// The directive parser only knows byte offsets within the directive payload,
// so it fills Offset alone; the loader relocates the error onto a file
// position with At.
type Pos struct {
	File   string
	Line   int
	Column int
	// Offset is the byte offset within the directive payload.
	Offset int
}

// IsZero reports whether the position carries no location at all.
func (p Pos) IsZero() bool {
	return p == Pos{}
}

// String formats the position as file:line:col where known.
func (p Pos) String() string {
	if p.File == "" {
		if p.Line == 0 {
			return fmt.Sprintf("offset %d", p.Offset)
		}

		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}

	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Error is the single structured diagnostic surfaced by a failing
// generation pass. Exactly one is produced per pass; the first failure wins.
type Error struct {
	Kind    Kind
	Message string
	Pos     Pos
}

// Errorf builds an Error with a formatted message.
func Errorf(kind Kind, pos Pos, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}

	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
}

// At relocates an offset-only error onto a file position. The base position
// is where the directive payload begins; the error's offset shifts the column.
func (e *Error) At(base Pos) *Error {
	relocated := *e
	relocated.Pos = Pos{
		File:   base.File,
		Line:   base.Line,
		Column: base.Column + e.Pos.Offset,
		Offset: e.Pos.Offset,
	}

	return &relocated
}
