package main

import (
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"tri-ca/internal/automaton"
	"tri-ca/internal/survey"
)

func newSurveyCmd(c *cli) *cobra.Command {
	opts := survey.Options{From: 0, To: automaton.MaxRule, Workers: runtime.NumCPU()}
	top := 10
	sortKey := "entropy"

	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Evolve a range of rules from one random row and rank them",
		Long: `Evolve every rule in [--from, --to] from the same seeded row of --length
cells for --time steps and print the --top rules ranked by --sort (entropy,
activity, period or rule).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := survey.ValidateSortKey(sortKey); err != nil {
				return err
			}
			opts.Length = c.cfg.Length
			opts.Time = c.cfg.Time
			opts.Seed = c.cfg.Seed
			c.log.Info("surveying rules",
				slog.Int("from", opts.From),
				slog.Int("to", opts.To),
				slog.Int("workers", opts.Workers),
			)
			start := time.Now()
			results, err := survey.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := survey.SortBy(results, sortKey); err != nil {
				return err
			}
			c.log.Debug("survey finished", slog.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

			out := cmd.OutOrStdout()
			for i := 0; i < len(results) && (top <= 0 || i < top); i++ {
				if _, err := fmt.Fprintf(out, "%2d) %s\n", i+1, results[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.From, "from", opts.From, "first rule number")
	cmd.Flags().IntVar(&opts.To, "to", opts.To, "last rule number")
	cmd.Flags().IntVar(&opts.Workers, "workers", opts.Workers, "number of worker goroutines")
	cmd.Flags().IntVar(&top, "top", top, "number of results to print (0 prints all)")
	cmd.Flags().StringVar(&sortKey, "sort", sortKey, "ranking: entropy, activity, period or rule")
	return cmd
}
