// Package escalate runs the privileged writer through the system's
// interactive escalation broker and maps its exit status to an error.
package escalate

import (
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/errors"
	"codeberg.org/mutker/ideapadctl/internal/logger"
)

const (
	// HelperName is the file name of the privileged writer, installed next
	// to the ideapadctl executable.
	HelperName = "ideapadctl-writer"

	DefaultBroker = "pkexec"
)

// Launcher requests elevated writes. A launched broker is always waited
// for; there is no cancellation.
type Launcher struct {
	broker     string
	executable func() (string, error)
	stdout     io.Writer
	stderr     io.Writer
	log        logger.Logger
}

type Option func(*Launcher)

// WithBroker replaces pkexec.
func WithBroker(broker string) Option {
	return func(l *Launcher) {
		l.broker = broker
	}
}

// WithExecutable replaces os.Executable when resolving the helper.
func WithExecutable(fn func() (string, error)) Option {
	return func(l *Launcher) {
		l.executable = fn
	}
}

// WithOutput sets where the broker's and helper's output goes.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(l *Launcher) {
		l.stdout = stdout
		l.stderr = stderr
	}
}

func WithLogger(log logger.Logger) Option {
	return func(l *Launcher) {
		l.log = log
	}
}

func New(opts ...Option) *Launcher {
	l := &Launcher{
		broker:     DefaultBroker,
		executable: os.Executable,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		log:        logger.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// HelperPath returns the privileged writer next to the running executable.
func (l *Launcher) HelperPath() (string, error) {
	exe, err := l.executable()
	if err != nil {
		return "", errors.New().Wrap(ErrHelperPathUnresolved, err)
	}

	return filepath.Join(filepath.Dir(exe), HelperName), nil
}

// Write validates v against the domain of p and runs
// "<broker> <helper> set <parameter> <value>", blocking until it exits.
//
// A non-zero status does not mean the write was attempted: the broker
// uses the same channel to report a cancelled or denied authorization.
func (l *Launcher) Write(p attribute.Parameter, v attribute.Value) error {
	errFactory := errors.New()

	if err := attribute.Validate(p, v); err != nil {
		return err
	}

	helper, err := l.HelperPath()
	if err != nil {
		return err
	}

	args := []string{helper, "set", p.String(), v.String()}
	l.log.Debug().Str("broker", l.broker).Strs("args", args).Msg("launching helper")

	cmd := exec.Command(l.broker, args...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr

	err = cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return errFactory.Wrap(ErrEscalationFailed, err)
	}

	code := exitErr.ExitCode()
	if code < 0 {
		return errFactory.Wrap(ErrAbnormalTermination, err)
	}

	return errFactory.WithData(ErrEscalationFailed, code)
}

// ExitCode returns the exit status carried by an escalation_failed error.
// ok is false when the error has none, for instance when the broker could
// not be started.
func ExitCode(err error) (code int, ok bool) {
	var coded errors.Error
	if !errors.As(err, &coded) || coded.Code() != ErrEscalationFailed {
		return 0, false
	}

	code, ok = coded.GetData().(int)
	return code, ok
}
