package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"salient/internal/logging"
	"salient/internal/summary"
)

func newFreqCommand(ctx *commandContext) *cobra.Command {
	var flags inputFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "freq [TEXT]",
		Short: "List the most frequent words of TEXT after exclusions",
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
			exclude, text, err := summary.ReadSources(cmd.Context(), in.exclusion, in.body)
			if err != nil {
				return err
			}

			table := summary.BuildFrequencyTable(text)
			table.RemoveExcluded(exclude)
			words := summary.TopWords(table, limit)
			logging.NewComponentLogger(logger, "freq").Debug("frequency table ready",
				logging.Int("distinct_tokens", len(table)),
				logging.Int("listed", len(words)),
			)

			if ctx.jsonMode() {
				return writeJSON(cmd, words)
			}
			rows := make([][]string, 0, len(words))
			for _, w := range words {
				rows = append(rows, []string{w.Word, strconv.Itoa(w.Count)})
			}
			return writeRows(cmd.OutOrStdout(), []string{"Word", "Count"}, rows, []columnAlignment{alignLeft, alignRight})
		},
	}

	flags.register(cmd, false)
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Number of words to list (0 lists all)")
	return cmd
}
