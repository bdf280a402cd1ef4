package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/export"
)

var (
	exportRole string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write candidates to an xlsx workbook",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		d, err := buildDeps(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer d.close()

		items, err := d.store.List(ctx, candidate.Filter{AppliedRole: exportRole})
		if err != nil {
			return err
		}
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		if err := export.WriteWorkbook(f, items); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d candidates to %s\n", len(items), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportRole, "role", "r", candidate.AllRoles, "role key or all")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "candidates.xlsx", "output file")
	rootCmd.AddCommand(exportCmd)
}
