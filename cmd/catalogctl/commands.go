package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/url"
	"strings"
	"text/tabwriter"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-CharterService/internal/config"
	"github.com/m04kA/SMC-CharterService/internal/domain"
	"github.com/m04kA/SMC-CharterService/internal/infra/dataset"
	yachtRepo "github.com/m04kA/SMC-CharterService/internal/infra/storage/yacht"
	listYachtsUC "github.com/m04kA/SMC-CharterService/internal/usecase/list_yachts"
	"github.com/m04kA/SMC-CharterService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CharterService/pkg/logger"
	"github.com/m04kA/SMC-CharterService/pkg/metrics"
	"github.com/m04kA/SMC-CharterService/pkg/txmanager"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dataset>",
		Short: "Check a YAML or JSON dataset against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.OutOrStdout(), args[0])
		},
	}
}

func runValidate(w io.Writer, path string) error {
	yachts, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	published := 0
	for _, y := range yachts {
		if y.IsPublished {
			published++
		}
	}
	fmt.Fprintf(w, "%s: %d yachts, %d published\n", path, len(yachts), published)
	return nil
}

type filterOptions struct {
	query      string
	page       int
	perPage    int
	maxPerPage int
}

func newFilterCmd() *cobra.Command {
	opts := filterOptions{}

	cmd := &cobra.Command{
		Use:   "filter <dataset>",
		Short: "Run a listing page query against a dataset",
		Example: `  catalogctl filter fleet.yaml --query 'location=miami&amenities=jacuzzi' --page 2
  catalogctl filter fleet.json --query 'passengers=10%2B' --per-page 6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.query, "query", "q", "", "listing page query string")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")
	cmd.Flags().IntVar(&opts.perPage, "per-page", domain.DefaultItemsPerPage, "yachts per page")
	cmd.Flags().IntVar(&opts.maxPerPage, "max-per-page", 100, "upper bound for --per-page")
	return cmd
}

func runFilter(ctx context.Context, w io.Writer, path string, opts filterOptions) error {
	source, err := dataset.NewSource(path)
	if err != nil {
		return err
	}

	query, err := url.ParseQuery(strings.TrimPrefix(opts.query, "?"))
	if err != nil {
		return fmt.Errorf("invalid --query: %w", err)
	}

	var nilMetrics *metrics.Metrics
	uc := listYachtsUC.NewUseCase(
		source,
		config.SourceDataset,
		listYachtsUC.Settings{ItemsPerPage: opts.perPage, MaxPerPage: opts.maxPerPage},
		nilMetrics,
		logger.NewNop(),
	)

	resp, err := uc.Execute(ctx, &listYachtsUC.Request{
		Query:        query,
		Page:         opts.page,
		ItemsPerPage: opts.perPage,
	})
	if err != nil {
		return err
	}

	printPage(w, resp)
	return nil
}

func printPage(w io.Writer, resp *listYachtsUC.Response) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tLOCATION\tFEET\tGUESTS\tFROM")
	for _, y := range resp.Yachts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%g\t%d\t%.2f\n",
			y.ID, y.Name, formatLocation(y.Location), y.LengthFeet, y.GuestCapacity, y.StartingPrice())
	}
	_ = tw.Flush()

	win := resp.Window
	pages := make([]string, len(win.Pages))
	for i, p := range win.Pages {
		if !p.Ellipsis && p.Number == win.CurrentPage {
			pages[i] = "[" + p.String() + "]"
			continue
		}
		pages[i] = p.String()
	}

	fmt.Fprintf(w, "\n%d of %d yachts, page %d of %d\n", win.EndIndex-win.StartIndex, win.TotalItems, win.CurrentPage, win.TotalPages)
	if win.NeedsPagination {
		fmt.Fprintf(w, "pages: %s\n", strings.Join(pages, " "))
	}
	if resp.Query != "" {
		fmt.Fprintf(w, "query: ?%s\n", resp.Query)
	}
	if active := resp.Filters.ActiveDimensions(); len(active) > 0 {
		names := make([]string, len(active))
		for i, d := range active {
			names[i] = string(d)
		}
		fmt.Fprintf(w, "active filters: %s\n", strings.Join(names, ", "))
	}
}

func formatLocation(l domain.Location) string {
	switch {
	case l.City != "" && l.Country != "":
		return l.City + ", " + l.Country
	case l.City != "":
		return l.City
	case l.Country != "":
		return l.Country
	}
	return "-"
}

func newImportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import <dataset>",
		Short: "Upsert every yacht of a dataset into Postgres by slug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd.OutOrStdout(), args[0], configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "config.toml", "path to config file")
	return cmd
}

// yachtUpserter сохраняет яхту по slug
type yachtUpserter interface {
	Upsert(ctx context.Context, y *domain.Yacht) (*domain.Yacht, error)
}

func runImport(ctx context.Context, w io.Writer, path, configPath string) error {
	yachts, err := dataset.LoadFile(path)
	if err != nil {
		return err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	wrapped := dbmetrics.Wrap(db, nil)
	return importYachts(ctx, w, txmanager.NewTransactionManager(wrapped), yachtRepo.NewRepository(wrapped), yachts)
}

type transactor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// importYachts сохраняет весь датасет в одной транзакции
func importYachts(ctx context.Context, w io.Writer, tx transactor, repo yachtUpserter, yachts []domain.Yacht) error {
	return tx.Do(ctx, func(ctx context.Context) error {
		for i := range yachts {
			saved, err := repo.Upsert(ctx, &yachts[i])
			if err != nil {
				return fmt.Errorf("import %s: %w", yachts[i].Slug, err)
			}
			fmt.Fprintf(w, "%-24s id=%d\n", saved.Slug, saved.ID)
		}
		fmt.Fprintf(w, "imported %d yachts\n", len(yachts))
		return nil
	})
}
