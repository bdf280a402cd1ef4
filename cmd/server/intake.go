package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artem13815/hrboard/pkg/intake"
)

var (
	intakeRole        string
	intakeConcurrency int
)

var intakeCmd = &cobra.Command{
	Use:   "intake FILE...",
	Short: "Evaluate resume files and add them to the board",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runIntake,
}

func init() {
	intakeCmd.Flags().StringVarP(&intakeRole, "role", "r", "", "role key to evaluate against (see roles.yaml)")
	intakeCmd.Flags().IntVarP(&intakeConcurrency, "concurrency", "c", 4, "files processed in parallel")
	_ = intakeCmd.MarkFlagRequired("role")
	rootCmd.AddCommand(intakeCmd)
}

func runIntake(cmd *cobra.Command, args []string) error {
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

	role, ok := d.catalog.Get(intakeRole)
	if !ok {
		return fmt.Errorf("unknown role %q", intakeRole)
	}

	items := make([]intake.BatchItem, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		items = append(items, intake.BatchItem{
			Upload: intake.Upload{Filename: filepath.Base(path), Data: data},
			Role:   role.Key,
		})
	}

	failed := 0
	for _, res := range d.intake.IntakeBatch(ctx, items, intakeConcurrency) {
		if res.Err != nil {
			failed++
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.String())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(items))
	}
	return nil
}
