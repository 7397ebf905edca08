// Package exit couples a finished command's message with the stream it
// belongs on and the process exit code.
package exit

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Result holds the output destination and exit code for program termination.
type Result struct {
	Output   io.Writer
	ExitCode int
	Message  string
}

// Print writes the message to its stream.
func (r *Result) Print() {
	fmt.Fprint(r.Output, r.Message)
}

// Success is a zero exit code result written to stdout.
func Success(message string) *Result {
	return &Result{
		Output:   os.Stdout,
		ExitCode: 0,
		Message:  message,
	}
}

// Error is a failure result written to stderr. The message renders red on
// terminals; color is suppressed on pipes and when NO_COLOR is set.
func Error(message string) *Result {
	return &Result{
		Output:   os.Stderr,
		ExitCode: 1,
		Message:  color.RedString("%s", message),
	}
}

func Errorf(format string, a ...any) *Result {
	return Error(fmt.Sprintf(format, a...))
}
