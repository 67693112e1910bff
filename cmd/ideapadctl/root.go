package main

import (
	"io"

	"codeberg.org/mutker/ideapadctl/internal/config"
	"codeberg.org/mutker/ideapadctl/internal/escalate"
	"codeberg.org/mutker/ideapadctl/internal/ideapad"
	"codeberg.org/mutker/ideapadctl/internal/logger"
	"github.com/spf13/cobra"
)

var version = "dev"

// deps lets tests replace the sysfs reader and the escalation writer.
type deps struct {
	reader *ideapad.Reader
	writer ideapad.Writer
}

type app struct {
	cfg    *config.Config
	client *ideapad.Client
	deps   *deps
}

func newRootCmd(d *deps) *cobra.Command {
	if d == nil {
		d = &deps{}
	}
	a := &app{deps: d}

	root := &cobra.Command{
		Use:          "ideapadctl",
		Version:      version,
		Short:        "Read and change Lenovo IdeaPad platform settings",
		Long:         "ideapadctl reads the ideapad_laptop driver attributes and changes them through pkexec and the ideapadctl-writer helper.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newStatusCmd(a),
		newGetCmd(a),
		newSetCmd(a),
		newParamsCmd(),
	)

	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	level, _ := logger.ParseLevel(string(cfg.LogLevel))
	logger.Init(level, logger.IsService())
	logger.Debug().
		Str("broker", cfg.Broker).
		Str("format", string(cfg.Format)).
		Msg("Config loaded")

	reader := a.deps.reader
	if reader == nil {
		reader = ideapad.DefaultReader()
	}

	writer := a.deps.writer
	if writer == nil {
		writer = escalate.New(
			escalate.WithBroker(cfg.Broker),
			escalate.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
		)
	}

	a.client = ideapad.NewClient(reader, writer, logger.Default())

	return nil
}

func (a *app) json() bool {
	return a.cfg.Format == config.FormatJSON
}

func (a *app) out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
