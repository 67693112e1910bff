package main

import (
	"encoding/json"
	"fmt"

	"codeberg.org/mutker/ideapadctl/internal/attribute"
	"codeberg.org/mutker/ideapadctl/internal/logger"
	"codeberg.org/mutker/ideapadctl/internal/status"
	"github.com/spf13/cobra"
)

func paramNames() []string {
	names := make([]string, 0, len(attribute.All()))
	for _, p := range attribute.All() {
		names = append(names, p.String())
	}
	return names
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show every parameter, marking unreadable ones as unknown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			readings := a.client.Snapshot()
			if a.json() {
				return status.RenderJSON(a.out(cmd), readings)
			}
			status.RenderText(a.out(cmd), readings)
			return nil
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "get <parameter>",
		Short:     "Print the current value of one parameter",
		Args:      cobra.ExactArgs(1),
		ValidArgs: paramNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := attribute.Parse(args[0])
			if err != nil {
				return err
			}

			v, err := a.client.Get(p)
			if err != nil {
				return err
			}

			return a.printValue(cmd, p, v)
		},
	}
}

func newSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <parameter> <value>",
		Short: "Change one parameter through the privileged helper",
		Long: "Change one parameter. Booleans accept true, false, 1 or 0; fan_mode accepts 0-4.\n" +
			"The write runs ideapadctl-writer through the configured broker (pkexec by default),\n" +
			"which may ask for authentication.",
		Args:      cobra.ExactArgs(2),
		ValidArgs: paramNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := attribute.Parse(args[0])
			if err != nil {
				return err
			}

			v, err := attribute.ParseArg(p, args[1])
			if err != nil {
				return err
			}

			if err := a.client.Set(p, v); err != nil {
				return err
			}

			// Show what the driver accepted, it may clamp or ignore the value.
			// The write already succeeded, so a failed re-read is not fatal.
			current, err := a.client.Get(p)
			if err != nil {
				logger.Warn().Err(err).Str("parameter", p.String()).Msg("re-read after write failed")
				return a.printUnknown(cmd, p)
			}

			return a.printValue(cmd, p, current)
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the supported parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status.RenderParams(cmd.OutOrStdout())
			return nil
		},
	}
}

func (a *app) printValue(cmd *cobra.Command, p attribute.Parameter, v attribute.Value) error {
	if !a.json() {
		fmt.Fprintln(a.out(cmd), status.FormatValue(v))
		return nil
	}

	return json.NewEncoder(a.out(cmd)).Encode(map[string]any{
		p.String(): status.JSONValue(v),
	})
}

func (a *app) printUnknown(cmd *cobra.Command, p attribute.Parameter) error {
	if !a.json() {
		fmt.Fprintln(a.out(cmd), "unknown")
		return nil
	}

	return json.NewEncoder(a.out(cmd)).Encode(map[string]any{p.String(): nil})
}
