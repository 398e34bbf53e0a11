package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/edusense/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a generated session to disk",
	Long: `Generate a lecture session and write it out.

json and sqlite write a single file. csv and parquet write a directory with
one file per table (timeline, peaks, heatmap, roster).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(name)
		if err != nil {
			return err
		}
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = export.DefaultPath(format)
		}

		g, seed := newGenerator()
		ds := export.NewDataset(g, seed, "")
		files, err := export.Write(cmd.Context(), ds, format, out)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "Exported session %s (seed %d)\n", ds.SessionID, seed)
		for _, f := range files {
			fmt.Fprintf(w, "  %s\n", f)
		}
		return nil
	},
}

func init() {
	names := make([]string, 0, len(export.AllFormats()))
	for _, f := range export.AllFormats() {
		names = append(names, string(f))
	}
	exportCmd.Flags().String("format", string(export.FormatJSON), fmt.Sprintf("Output format: %s", strings.Join(names, ", ")))
	exportCmd.Flags().String("out", "", "Output file or directory (default depends on format)")
}
