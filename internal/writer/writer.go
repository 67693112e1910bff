// Package writer is the privileged half of ideapadctl. It parses
// "set <parameter> <value>", validates the value and writes it to the
// attribute file of the located device. Nothing else runs elevated.
package writer

import (
	"fmt"
	"io"
	"os"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/device"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"github.com/spf13/afero"
)

// Exit statuses of the helper.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const command = "set"

type Writer struct {
	fs      afero.Fs
	locator *device.Locator
}

func New(fs afero.Fs, locator *device.Locator) *Writer {
	return &Writer{fs: fs, locator: locator}
}

// Default writes to the real sysfs tree found through device.Pattern.
func Default() *Writer {
	fs := afero.NewOsFs()
	return New(fs, device.NewLocator(fs, device.Pattern))
}

// Run executes the helper with os.Args style arguments and returns the
// process exit status.
func (w *Writer) Run(args []string, stderr io.Writer) int {
	name, value, err := parseArgs(args)
	if err != nil {
		prog := "ideapadctl-writer"
		if len(args) > 0 {
			prog = args[0]
		}
		fmt.Fprintf(stderr, "Usage: %s set <parameter> <value>\n", prog)
		return ExitUsage
	}

	if err := w.Set(name, value); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	return ExitOK
}

// parseArgs accepts exactly "<prog> set <parameter> <value>".
func parseArgs(args []string) (name, value string, err error) {
	if len(args) != 4 {
		return "", "", errors.New().WithData(errors.ErrInvalidUsage, len(args)-1)
	}
	if args[1] != command {
		return "", "", errors.New().WithData(errors.ErrInvalidUsage, args[1])
	}

	return args[2], args[3], nil
}

// Set validates value for the named parameter and writes it.
func (w *Writer) Set(name, value string) error {
	p, err := attribute.Parse(name)
	if err != nil {
		return err
	}

	v, err := attribute.ParseArg(p, value)
	if err != nil {
		return err
	}

	dev, err := w.locator.Locate()
	if err != nil {
		return err
	}

	return w.write(dev.Attribute(p), v.String())
}

// write replaces the content of an existing attribute file with a single
// write. Missing files are never created.
func (w *Writer) write(path, text string) error {
	errFactory := errors.New()

	f, err := w.fs.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return errFactory.Wrap(attribute.ErrUnwritable, err)
	}

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		return errFactory.Wrap(attribute.ErrUnwritable, err)
	}

	if err := f.Close(); err != nil {
		return errFactory.Wrap(attribute.ErrUnwritable, err)
	}

	return nil
}
