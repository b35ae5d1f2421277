package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/spf13/cobra"

	"github.com/you/skyfinder/internal/log"
	"github.com/you/skyfinder/internal/models"
	"github.com/you/skyfinder/internal/present"
	"github.com/you/skyfinder/internal/providers"
	"github.com/you/skyfinder/internal/service"
	"github.com/you/skyfinder/internal/tui"
)

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search and print the offers",
		Example: `  skyfinder search --from NYC --to LAX --date 2024-06-01
  skyfinder search --from NYC --to LAX --sort price-low`,
		Args: cobra.NoArgs,
		RunE: runSearch,
	}

	f := cmd.Flags()
	f.String("from", "", "origin city")
	f.String("to", "", "destination city")
	f.String("date", "", "travel date, YYYY-MM-DD (default today)")
	f.String("sort", string(present.SortRelevance), "relevance, price-low, price-high or duration")
	f.Int("width", 80, "output width in columns")

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd, "")
	if err != nil {
		return err
	}
	// results go to stdout, so debug output can use stderr
	if cfg.LogFile == "" && strings.EqualFold(strings.TrimSpace(cfg.LogLevel), "debug") {
		if err := log.Setup(cfg.LogLevel, "stderr"); err != nil {
			return errors.Wrap(err, "setup logger")
		}
	}

	f := cmd.Flags()
	from, _ := f.GetString("from")
	to, _ := f.GetString("to")
	date, _ := f.GetString("date")
	sortFlag, _ := f.GetString("sort")
	width, _ := f.GetInt("width")

	key, err := present.ParseSortKey(sortFlag)
	if err != nil {
		return err
	}
	if date == "" {
		date = time.Now().In(cfg.Location).Format(models.DateLayout)
	}

	s := service.NewSession(providers.NewEndpoint(cfg))
	s.SetCriteria(models.Criteria{Origin: from, Destination: to, Date: date})
	s.SetSortKey(key)

	submitErr := s.Submit(cmd.Context())

	out := s.Outcome()
	if out.Phase == service.PhaseFailed {
		if submitErr != nil {
			log.Logger.Debug("search command failed",
				zap.String("message", out.Message),
				zap.Error(submitErr))
		}
		return errors.New(out.Message)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), tui.RenderResults(s.Records(cfg.Location), key, width))
	return errors.Wrap(err, "write results")
}
