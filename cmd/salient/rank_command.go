package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"salient/internal/summary"
)

const rankPreviewWidth = 60

type rankRow struct {
	Rank     int    `json:"rank"`
	Index    int    `json:"index"`
	Score    int    `json:"score"`
	Selected bool   `json:"selected"`
	Text     string `json:"text"`
}

func newRankCommand(ctx *commandContext) *cobra.Command {
	var flags inputFlags

	cmd := &cobra.Command{
		Use:   "rank [TEXT]",
		Short: "Show every unit of TEXT with its score, best first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			in, err := flags.resolve(cmd, cfg, args)
			if err != nil {
				return err
			}
			res, err := summary.New(logger).RunResult(cmd.Context(), in.exclusion, in.body, in.mode, in.take)
			if err != nil {
				return err
			}

			rows := rankRows(res)
			if ctx.jsonMode() {
				return writeJSON(cmd, rows)
			}
			table := make([][]string, 0, len(rows))
			for _, row := range rows {
				table = append(table, []string{
					strconv.Itoa(row.Rank),
					strconv.Itoa(row.Index),
					strconv.Itoa(row.Score),
					yesNo(row.Selected),
					preview(row.Text, rankPreviewWidth),
				})
			}
			return writeRows(cmd.OutOrStdout(),
				[]string{"Rank", "Unit", "Score", "Selected", "Text"},
				table,
				[]columnAlignment{alignRight, alignRight, alignRight, alignLeft, alignLeft},
			)
		},
	}

	flags.register(cmd, true)
	return cmd
}

func rankRows(res *summary.Result) []rankRow {
	selected := make(map[int]bool, len(res.Selected))
	for _, d := range res.Selected {
		selected[d.Index] = true
	}
	rows := make([]rankRow, 0, len(res.Ranked))
	for i, d := range res.Ranked {
		rows = append(rows, rankRow{
			Rank:     i + 1,
			Index:    d.Index,
			Score:    d.Score,
			Selected: selected[d.Index],
			Text:     d.Text,
		})
	}
	return rows
}
