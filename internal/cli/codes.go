package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	ort "github.com/olafurjohannsson/ort-go"
)

type codeRow struct {
	Code        int32  `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

func newCodeRow(code ort.ErrorCode) codeRow {
	return codeRow{
		Code:        code.Value(),
		Name:        code.String(),
		Description: code.Description(),
	}
}

// errorResult is the structured form of an *ort.Error.
type errorResult struct {
	Code    int32  `json:"code" yaml:"code"`
	Name    string `json:"name" yaml:"name"`
	Message string `json:"message" yaml:"message"`
	Error   string `json:"error" yaml:"error"`
}

func newErrorResult(err error) errorResult {
	var ortErr *ort.Error
	if !errors.As(err, &ortErr) {
		ortErr = ort.NewError(err.Error())
	}
	return errorResult{
		Code:    ortErr.Code().Value(),
		Name:    ortErr.Code().String(),
		Message: ortErr.Message(),
		Error:   ortErr.Error(),
	}
}

// printError writes the rendered error as a single line in table mode and
// as a structured document otherwise.
func (g *globalOptions) printError(cmd *cobra.Command, err error) error {
	if strings.EqualFold(g.output, "table") || g.output == "" {
		_, werr := io.WriteString(cmd.OutOrStdout(), err.Error()+"\n")
		return werr
	}
	return g.print(cmd, newErrorResult(err))
}

func newListCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every status code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := ort.Codes()
			rows := make([]codeRow, len(codes))
			for i, c := range codes {
				rows[i] = newCodeRow(c)
			}
			return g.print(cmd, rows)
		},
	}
}

func newLookupCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <code-or-name>...",
		Short: "Resolve numeric codes or ORT_* names",
		Example: `  orterr lookup 5
  orterr lookup invalid_graph ORT_EP_FAIL 99`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([]codeRow, 0, len(args))
			for _, arg := range args {
				code, err := ort.ParseErrorCode(arg)
				if err != nil {
					return err
				}
				rows = append(rows, newCodeRow(code))
			}
			return g.print(cmd, rows)
		},
	}
}

func newRenderCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render <code-or-name> <message>...",
		Short: "Print the error a native status would produce",
		Long: `render prints the error a status with the given code and message maps to.
Negative codes must follow "--" so they are not read as flags; the host-side
code -1 can also be given by name as go_unknown.`,
		Example: `  orterr render 2 bad shape
  Error code - ORT_INVALID_ARGUMENT - message: bad shape

  orterr render -- -1 host
  orterr render go_unknown host`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := parseNumericCode(args[0])
			if err != nil {
				return err
			}
			return g.printError(cmd, ort.NewErrorCode(code, strings.Join(args[1:], " ")))
		},
	}
}

// parseNumericCode accepts either a raw integer, passed through unchanged so
// out-of-range values reach FromCode, or a code name.
func parseNumericCode(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	code, err := ort.ParseErrorCode(s)
	if err != nil {
		return 0, fmt.Errorf("parsing code: %w", err)
	}
	return int(code.Value()), nil
}
