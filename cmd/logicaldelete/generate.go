package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/syssam/logicaldelete/compiler/gen"
	"github.com/syssam/logicaldelete/compiler/gen/sql"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var watchMode bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the mapper of every configured table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if err := generate(cmd.Context(), out, opts); err != nil {
				if !watchMode {
					return err
				}
				printError(out, err)
			}
			if !watchMode {
				return nil
			}
			return watch(cmd.Context(), out, opts, func() error {
				return generate(cmd.Context(), out, opts)
			})
		},
	}
	cmd.Flags().BoolVarP(&watchMode, "watch", "w", false, "regenerate when the configuration or schema file changes")
	return cmd
}

func generate(ctx context.Context, out io.Writer, opts *options) error {
	p, err := opts.project()
	if err != nil {
		return err
	}
	tables, err := p.file.LoadTables(ctx)
	if err != nil {
		return err
	}
	res, err := sql.Generate(ctx, p.config, tables)
	if err != nil {
		return err
	}
	printResult(out, res)
	fmt.Fprintf(out, "%s generated %d mappers in %s\n", color.GreenString("✓"), len(res.Tables), p.config.Target)
	return nil
}

// watch runs fn every time the configuration file, its .env file or its
// schema file changes, until ctx is done.
func watch(ctx context.Context, out io.Writer, opts *options, fn func() error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()
	files, err := watchedFiles(opts)
	if err != nil {
		return err
	}
	dirs := make(map[string]bool)
	for f := range files {
		if dir := filepath.Dir(f); !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	fmt.Fprintf(out, "watching %s\n", opts.config)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !files[filepath.Clean(ev.Name)] || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			fmt.Fprintf(out, "%s changed\n", ev.Name)
			if err := fn(); err != nil {
				printError(out, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			if !errors.Is(err, fsnotify.ErrEventOverflow) {
				return fmt.Errorf("watch: %w", err)
			}
		}
	}
}

func watchedFiles(opts *options) (map[string]bool, error) {
	path, err := filepath.Abs(opts.config)
	if err != nil {
		return nil, err
	}
	files := map[string]bool{
		path: true,
		filepath.Join(filepath.Dir(path), ".env"): true,
	}
	p, err := opts.project()
	if err != nil {
		return files, nil
	}
	if s := p.file.Schema; s != "" {
		if s, err = filepath.Abs(s); err == nil {
			files[s] = true
		}
	}
	return files, nil
}

func printResult(out io.Writer, res *gen.Result) {
	for _, d := range res.Diagnostics {
		fmt.Fprintf(out, "%s %s\n", color.YellowString("warning:"), d.Message)
	}
}

func printError(out io.Writer, err error) {
	fmt.Fprintf(out, "%s %v\n", color.RedString("error:"), err)
}
