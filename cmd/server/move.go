package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/artem13815/hrboard/pkg/candidate"
	"github.com/artem13815/hrboard/pkg/pipeline"
)

var moveRole string

var moveCmd = &cobra.Command{
	Use:   "move ID STAGE",
	Short: "Move a candidate to another board stage and print the board",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid candidate id %q", args[0])
		}
		stage, err := candidate.ParseStage(args[1])
		if err != nil {
			return err
		}

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
		return moveCandidate(ctx, d.pipeline, candidate.Filter{AppliedRole: moveRole}, id, stage, cmd.OutOrStdout())
	},
}

func init() {
	moveCmd.Flags().StringVarP(&moveRole, "role", "r", candidate.AllRoles, "board role filter")
	rootCmd.AddCommand(moveCmd)
}

// moveCandidate applies the move on a fresh board and prints the resulting columns.
// A rejected write leaves the printed board as it was before the move.
func moveCandidate(ctx context.Context, svc *pipeline.Service, filter candidate.Filter, id int64, stage candidate.Stage, w io.Writer) error {
	board := pipeline.NewBoard(svc, filter)
	if err := board.Refresh(ctx); err != nil {
		return err
	}
	moveErr := board.Move(ctx, id, stage)
	for _, col := range board.Columns() {
		fmt.Fprintf(w, "%-16s %d\n", col.Title, len(col.Candidates))
	}
	return moveErr
}
