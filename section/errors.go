package section

import (
	"errors"
	"fmt"
)

// ErrUnterminatedDirectory matches UnterminatedDirectoryError via errors.Is.
var ErrUnterminatedDirectory = errors.New("unterminated directory")

// UnterminatedDirectoryError reports a header whose section index ran to the
// end of the stream without reaching its terminating SEND record.
type UnterminatedDirectoryError struct {
	Line int // 1-based number of the last line read
}

func (e *UnterminatedDirectoryError) Error() string {
	return fmt.Sprintf("directory still open after line %d", e.Line)
}

// Is reports whether target is ErrUnterminatedDirectory.
func (e *UnterminatedDirectoryError) Is(target error) bool {
	return target == ErrUnterminatedDirectory
}
