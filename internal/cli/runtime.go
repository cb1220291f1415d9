package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	ort "github.com/olafurjohannsson/ort-go"
)

type versionResult struct {
	Version string `json:"version" yaml:"version"`
	Library string `json:"library" yaml:"library"`
}

func newVersionCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Load the native runtime and print its version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := g.load(g.runtimeOptions()...)
			if err != nil {
				return fmt.Errorf("loading onnxruntime: %w", err)
			}
			return g.print(cmd, versionResult{Version: rt.Version(), Library: rt.Path()})
		},
	}
}

func newCheckCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <code-or-name> <message>...",
		Short: "Round-trip a status through the native runtime",
		Long: `check creates an OrtStatus in the loaded runtime with the given code and
message, converts it back into a Go error and prints the result.
Negative codes must follow "--" so they are not read as flags.`,
		Example: `  orterr check invalid_graph bad node
  orterr check -- -1 host`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseNumericCode(args[0])
			if err != nil {
				return err
			}
			rt, err := g.load(g.runtimeOptions()...)
			if err != nil {
				return fmt.Errorf("loading onnxruntime: %w", err)
			}

			code := ort.FromCode(n)
			status := rt.NewStatus(code, strings.Join(args[1:], " "))
			g.logger.Debug("created native status", "code", code.String(), "status", fmt.Sprintf("%#x", status))

			if err := rt.CheckStatus(status); err != nil {
				return g.printError(cmd, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}
}
