// Package main is the entry point of dashctl, a command line front end to
// the dashboard core: it inspects filter categories, previews the query
// params a page would send and projects captured API responses into rows.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"paydash/internal/config"
	"paydash/internal/domain/dashboard"
	"paydash/internal/domain/filter"
	"paydash/internal/domain/table"
	"paydash/pkg/logger"
)

var Version = "dev"

// app carries what every subcommand needs once config is loaded.
type app struct {
	cfg   config.Config
	log   *logger.Logger
	store *filter.Store
	views []dashboard.View
}

func main() {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "dashctl",
		Short:         "Inspect dashboard filters and table projections",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}

	rootCmd.AddCommand(categoriesCmd(a))
	rootCmd.AddCommand(paramsCmd(a))
	rootCmd.AddCommand(projectCmd(a))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	a.store = filter.NewStore(filter.DashboardRegistry(),
		filter.WithLogger(log),
		filter.WithDateLayout(cfg.DateLayout),
	)

	a.views = dashboard.DefaultViews(a.formatOptions())
	if cfg.ColumnsFile != "" {
		spec, err := loadColumns(cfg.ColumnsFile, a.formatOptions())
		if err != nil {
			return err
		}
		a.views = dashboard.Override(a.views, spec)
		log.Debugw("column spec loaded", "file", cfg.ColumnsFile, "views", len(spec))
	}
	return nil
}

func (a *app) formatOptions() table.FormatOptions {
	return table.FormatOptions{
		Currency:   a.cfg.Currency,
		Locale:     a.cfg.Locale,
		DateLayout: a.cfg.DateLayout,
	}
}

func (a *app) service(fetcher dashboard.Fetcher) (*dashboard.Service, error) {
	return dashboard.NewService(dashboard.ServiceConfig{
		Store:    a.store,
		Fetcher:  fetcher,
		Views:    a.views,
		PageSize: a.cfg.PageSize,
		Logger:   a.log,
	})
}

func loadColumns(path string, opts table.FormatOptions) (table.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open column spec: %w", err)
	}
	defer f.Close()

	return table.LoadSpec(f, table.DefaultFormatters(opts))
}

// applySets parses key=value flags for the view's category and stores them.
func applySets(svc *dashboard.Service, viewName string, sets []string, dateLayout string) error {
	view, err := svc.View(viewName)
	if err != nil {
		return err
	}
	reg := svc.Store().Registry()

	for _, set := range sets {
		key, raw, ok := strings.Cut(set, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: want key=value", set)
		}
		val, err := reg.ParseParam(view.Category, filter.Key(key), raw, dateLayout)
		if err != nil {
			return err
		}
		if err := svc.SetFilter(viewName, filter.Key(key), val); err != nil {
			return err
		}
	}
	return nil
}
