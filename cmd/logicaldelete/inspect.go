package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/syssam/logicaldelete/compiler/load"
	"github.com/syssam/logicaldelete/schema"
)

func newInspectCmd(opts *options) *cobra.Command {
	var (
		asYAML bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the tables and column categories of the configured database",
		Long: `inspect introspects the database at the configured dsn (or reads the
configured schema file) and prints every table with its columns and their
type categories. With --yaml, a schema file is printed instead, suitable for
the schema option of the configuration.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, err := load.LoadConfig(opts.config)
			if err != nil {
				return err
			}
			tables, err := file.LoadTables(cmd.Context())
			if err != nil {
				return err
			}
			if !asYAML && output == "" {
				return printTables(cmd.OutOrStdout(), tables)
			}
			b, err := load.MarshalSchema(tables)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = cmd.OutOrStdout().Write(b)
				return err
			}
			if err := os.WriteFile(output, b, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s wrote %d tables to %s\n", color.GreenString("✓"), len(tables), output)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print a schema file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the schema file to the given path")
	return cmd
}

func printTables(out io.Writer, tables []*schema.Table) error {
	bold := color.New(color.Bold)
	for i, t := range tables {
		if i > 0 {
			fmt.Fprintln(out)
		}
		header := t.Name
		if t.HasPrimaryKey() {
			header += " (pk: " + strings.Join(t.PrimaryKey, ", ") + ")"
		}
		bold.Fprintln(out, header)
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, c := range t.Columns {
			null := ""
			if c.Nullable {
				null = "null"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", c.Name, c.NativeType, c.Category, null)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
