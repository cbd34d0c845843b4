package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	appctx "paydash/internal/core/context"
	"paydash/internal/domain/dashboard"
	"paydash/pkg/logger"
)

func projectCmd(a *app) *cobra.Command {
	var (
		view  string
		input string
		sets  []string
		page  int
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a captured list response into table rows",
		Long: `Project a captured list response (JSON envelope with data) into the
rows the view's table would show.

Examples:
  dashctl project --view customers --input customers.json
  DASH_COLUMNS_FILE=columns.yaml dashctl project --view offers --input offers.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()

			env, err := dashboard.DecodeEnvelope(f)
			if err != nil {
				return err
			}

			fetcher := dashboard.NewStaticFetcher()
			svc, err := a.service(fetcher)
			if err != nil {
				return err
			}
			v, err := svc.View(view)
			if err != nil {
				return err
			}
			fetcher.Set(v.Resource, env)

			if err := applySets(svc, view, sets, a.cfg.DateLayout); err != nil {
				return err
			}

			ctx := appctx.WithTrace(context.Background(), appctx.NewTraceContext())
			ctx = logger.WithLogger(ctx, a.log)

			result, err := svc.Load(ctx, view, dashboard.PageRequest{Page: page})
			if err != nil {
				return err
			}
			logger.Info(ctx, "projected", "view", view, "rows", len(result.Rows))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&view, "view", "v", "", "view name")
	cmd.Flags().StringVarP(&input, "input", "i", "", "captured JSON response")
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "filter value as key=value, repeatable")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	_ = cmd.MarkFlagRequired("view")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
