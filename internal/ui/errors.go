package ui

import (
	"context"
	"errors"
)

var (
	// ErrInterrupted is returned when the user cancels a prompt.
	ErrInterrupted = errors.New("interrupted")
	// ErrNotTTY is returned when input is not an interactive terminal.
	ErrNotTTY = errors.New("not a terminal")
)

const (
	interruptedMessage = "We Do It All For Our Impatient Queen."
	notTTYMessage      = "You can't pipe stuff, this is an interactive program."
)

// ExitStatus maps a Run error to the message printed on exit and the
// process exit code.
func ExitStatus(err error) (string, int) {
	switch {
	case err == nil:
		return "", 0
	case errors.Is(err, ErrInterrupted), errors.Is(err, context.Canceled):
		return interruptedMessage, 0
	case errors.Is(err, ErrNotTTY):
		return notTTYMessage, 1
	}
	return err.Error(), 1
}
