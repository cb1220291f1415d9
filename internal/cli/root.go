package cli

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	ort "github.com/olafurjohannsson/ort-go"
	"github.com/olafurjohannsson/ort-go/internal/output"
)

// nativeRuntime is the subset of *ort.Runtime the commands use.
type nativeRuntime interface {
	Version() string
	Path() string
	NewStatus(code ort.ErrorCode, message string) uintptr
	CheckStatus(status uintptr) error
}

type loaderFunc func(opts ...ort.Option) (nativeRuntime, error)

func loadRuntime(opts ...ort.Option) (nativeRuntime, error) {
	return ort.Load(opts...)
}

type globalOptions struct {
	output     string
	library    string
	apiVersion uint32
	verbose    bool
	envFile    string

	formatter output.Formatter
	logger    *slog.Logger
	load      loaderFunc
}

// runtimeOptions turns the global flags into ort options.
func (g *globalOptions) runtimeOptions() []ort.Option {
	opts := []ort.Option{
		ort.WithAPIVersion(g.apiVersion),
		ort.WithLogger(g.logger),
	}
	if g.library != "" {
		opts = append(opts, ort.WithLibraryPath(g.library))
	}
	return opts
}

// NewRootCommand constructs the root orterr command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(loadRuntime)
}

func newRootCommand(load loaderFunc) *cobra.Command {
	g := &globalOptions{load: load}

	cmd := &cobra.Command{
		Use:           "orterr",
		Short:         "orterr inspects ONNX Runtime status codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(g.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return ort.WrapError(err, "reading "+g.envFile)
			}
			f, err := output.NewFormatter(g.output)
			if err != nil {
				return ort.WrapError(err, "invalid --output")
			}
			g.formatter = f
			g.logger = newLogger(cmd.ErrOrStderr(), g.verbose)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&g.output, "output", "o", "table", "output format: table, json or yaml")
	flags.StringVar(&g.library, "library", "", "path to the onnxruntime shared library (default $"+ort.LibraryPathEnv+")")
	flags.Uint32Var(&g.apiVersion, "api-version", ort.DefaultAPIVersion, "OrtApi version to request")
	flags.BoolVarP(&g.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&g.envFile, "env-file", ".env", "environment file loaded before running")

	cmd.AddCommand(newListCommand(g))
	cmd.AddCommand(newLookupCommand(g))
	cmd.AddCommand(newRenderCommand(g))
	cmd.AddCommand(newVersionCommand(g))
	cmd.AddCommand(newCheckCommand(g))

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (g *globalOptions) print(cmd *cobra.Command, data any) error {
	out, err := g.formatter.Format(data)
	if err != nil {
		return err
	}
	_, err = io.WriteString(cmd.OutOrStdout(), out)
	return err
}
