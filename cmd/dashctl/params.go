package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"paydash/internal/domain/dashboard"
	"paydash/internal/domain/filter"
)

func paramsCmd(a *app) *cobra.Command {
	var (
		view  string
		sets  []string
		page  int
		limit int
		query bool
	)

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Print the query params a page request would send",
		Long: `Print the query params a page request would send for a view.

Examples:
  dashctl params --view transactions
  dashctl params --view transactions --set status=FAILED,REVERSED --set created_at=2024-01-01,2024-01-31
  dashctl params --view customers --set verified=true --query`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.service(dashboard.NewStaticFetcher())
			if err != nil {
				return err
			}
			if err := applySets(svc, view, sets, a.cfg.DateLayout); err != nil {
				return err
			}

			params, err := svc.Params(view, dashboard.PageRequest{Page: page, Limit: limit})
			if err != nil {
				return err
			}

			if query {
				fmt.Fprintln(cmd.OutOrStdout(), filter.Encode(params))
				return nil
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(params)
		},
	}

	cmd.Flags().StringVarP(&view, "view", "v", "", "view name (merchants, customers, transactions, offers)")
	cmd.Flags().StringArrayVarP(&sets, "set", "s", nil, "filter value as key=value, repeatable")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size (default from DASH_PAGE_SIZE)")
	cmd.Flags().BoolVarP(&query, "query", "q", false, "print as URL query string")
	_ = cmd.MarkFlagRequired("view")

	return cmd
}
