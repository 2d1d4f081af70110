package jobs

import "errors"

var (
	// ErrZeroTotal indicates a parsed job set with no algorithms; every
	// algorithm contributes at least one job, since Range.Count is never
	// below 1.
	ErrZeroTotal = errors.New("jobs: zero total iterations")

	// ErrSkipBeyondTotal indicates --skip requested more jobs skipped
	// than the parsed set actually contains.
	ErrSkipBeyondTotal = errors.New("jobs: skip count exceeds total jobs")
)

// ParseError is a grammar diagnostic pointing at the offending column of
// the original input string, the Go equivalent of the caret-pointing
// diagnostics spec.md §6 calls for.
type ParseError struct {
	Input   string
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return "jobs: " + e.Message + "\n" + e.Input + "\n" + caret(e.Column)
}

func caret(col int) string {
	if col < 0 {
		col = 0
	}
	b := make([]byte, col+1)
	for i := 0; i < col; i++ {
		b[i] = ' '
	}
	b[col] = '^'
	return string(b)
}
