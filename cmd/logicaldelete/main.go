// logicaldelete generates logical-delete aware mappers from a database
// schema and a YAML configuration file.
//
//	logicaldelete generate -c logicaldelete.yaml
//	logicaldelete check -c logicaldelete.yaml --strict
//	logicaldelete inspect -c logicaldelete.yaml
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/compiler/load"
)

const defaultConfig = "logicaldelete.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// options are the flags shared by every command.
type options struct {
	config  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "logicaldelete",
		Short: "Generate logical-delete aware SQL mappers",
		Long: `logicaldelete rewrites the delete and select operations of every configured
table into logical-delete form and emits a Go mapper per table.

Examples:

  logicaldelete generate -c logicaldelete.yaml
  logicaldelete generate --watch
  logicaldelete check --strict
  logicaldelete inspect --yaml
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", defaultConfig, "configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.AddCommand(
		newGenerateCmd(opts),
		newCheckCmd(opts),
		newInspectCmd(opts),
	)
	return cmd
}

func (o *options) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// project is a loaded configuration file with its generator config.
type project struct {
	file   *load.Config
	config *gen.Config
}

func (o *options) project() (*project, error) {
	file, err := load.LoadConfig(o.config)
	if err != nil {
		return nil, err
	}
	config, err := gen.NewConfig(append(file.Options(), gen.WithLogger(o.logger()))...)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", o.config, err)
	}
	return &project{file: file, config: config}, nil
}
