package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"salient/internal/config"
	"salient/internal/fileutil"
	"salient/internal/history"
	"salient/internal/logging"
	"salient/internal/summary"
)

func newSummarizeCommand(ctx *commandContext) *cobra.Command {
	var flags inputFlags
	var outputPath string
	var noHistory bool

	cmd := &cobra.Command{
		Use:   "summarize [TEXT]",
		Short: "Print the highest scoring units of TEXT in their original order",
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

			runID := uuid.NewString()
			runCtx := logging.WithRunID(cmd.Context(), runID)
			res, err := summary.New(logger).RunResult(runCtx, in.exclusion, in.body, in.mode, in.take)
			if err != nil {
				return err
			}

			if target := strings.TrimSpace(outputPath); target != "" {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve output path: %w", err)
				}
				if err := fileutil.WriteFileAtomic(expanded, []byte(res.Summary), 0o644); err != nil {
					return fmt.Errorf("write summary: %w", err)
				}
			} else if ctx.jsonMode() {
				res.Ranked = nil
				if err := writeJSON(cmd, res); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
			}

			if cfg.History.Enabled && !noHistory {
				recordRun(runCtx, logger, cfg, history.Run{
					ID:            runID,
					ExcludeSource: in.exclusion.Name(),
					TextSource:    in.body.Name(),
					Mode:          res.Mode,
					Pattern:       in.mode.Separator(),
					Take:          res.Take,
					UnitCount:     res.UnitCount,
					Selected:      selectedIndexes(res.Selected),
					Summary:       res.Summary,
				})
			}
			return nil
		},
	}

	flags.register(cmd, true)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the summary to a file instead of stdout")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	return cmd
}

// recordRun stores a finished run and trims old entries. Failures are logged
// and never change the command's outcome.
func recordRun(ctx context.Context, logger *slog.Logger, cfg *config.Config, run history.Run) {
	logger = logging.WithContext(ctx, logging.NewComponentLogger(logger, "history"))
	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		logger.Warn("history unavailable", logging.Error(err))
		return
	}
	defer store.Close()

	if _, err := store.Record(ctx, run); err != nil {
		logger.Warn("record run failed", logging.String("path", store.Path()), logging.Error(err))
		return
	}
	logger.Debug("run recorded", logging.String("path", store.Path()))
	if cfg.History.Keep > 0 {
		removed, err := store.Prune(ctx, cfg.History.Keep)
		if err != nil {
			logger.Warn("prune history failed", logging.Error(err))
			return
		}
		if removed > 0 {
			logger.Debug("history pruned", logging.Int64("removed", removed))
		}
	}
}

func selectedIndexes(digests []summary.Digest) []int {
	out := make([]int, 0, len(digests))
	for _, d := range digests {
		out = append(out, d.Index)
	}
	return out
}
