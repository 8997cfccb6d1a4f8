package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/logicaldelete/compiler/gen"
)

var errDiagnostics = errors.New("diagnostics reported")

func newCheckCmd(opts *options) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the logical-delete configuration of every table",
		Long: `check resolves and validates the configuration of every table without
writing files. Diagnostics are printed as warnings; with --strict they fail
the command.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := opts.project()
			if err != nil {
				return err
			}
			tables, err := p.file.LoadTables(cmd.Context())
			if err != nil {
				return err
			}
			res, err := gen.NewGenerator(p.config).Run(cmd.Context(), tables)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printResult(out, res)
			mark := color.GreenString("✓")
			if len(res.Diagnostics) > 0 {
				mark = color.YellowString("!")
			}
			fmt.Fprintf(out, "%s %d valid, %d invalid, %d disabled\n", mark,
				res.Count(gen.Valid), res.Count(gen.Invalid), res.Count(gen.Disabled))
			if strict && len(res.Diagnostics) > 0 {
				return fmt.Errorf("%w: %d", errDiagnostics, len(res.Diagnostics))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when any diagnostic is reported")
	return cmd
}
