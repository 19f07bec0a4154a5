package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// stdio is the conventional name for stdin or stdout.
const stdio = "-"

// inputNames returns the positional inputs, falling back to stdin.
func inputNames(files []string) []string {
	if len(files) == 0 {
		return []string{stdio}
	}

	return files
}

// displayName names an input in logs and error messages.
func displayName(name string) string {
	if name == stdio {
		return "stdin"
	}

	return name
}

// readInput reads one whole input. Size ceilings are enforced by the
// codec, not here.
func readInput(name string) ([]byte, error) {
	if name == stdio {
		b, err := io.ReadAll(os.Stdin)

		return b, errors.WithStack(err)
	}

	b, err := os.ReadFile(name)

	return b, errors.WithStack(err)
}

// openOutput opens the named output for writing, stdout for "-". The
// returned func closes file outputs and is a no-op for stdout.
func openOutput(name string) (io.Writer, func(), error) {
	if name == "" || name == stdio {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(name)
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}

	return f, func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("closing output")
		}
	}, nil
}
