package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wichananm65/product-catalogue/internal/catalogue"
	"github.com/wichananm65/product-catalogue/internal/config"
	"github.com/wichananm65/product-catalogue/internal/product"
)

type browseOptions struct {
	search   string
	category string
	maxPrice string
	ratings  []int
	page     int
}

func newBrowseCmd(v *viper.Viper) *cobra.Command {
	opts := &browseOptions{}
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Fetch the catalogue once and print one page of it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, config.Load(v), opts)
		},
	}
	cmd.Flags().StringVar(&opts.search, "search", "", "case-insensitive title search")
	cmd.Flags().StringVar(&opts.category, "category", product.CategoryAll, "category, or All")
	cmd.Flags().StringVar(&opts.maxPrice, "max-price", fmt.Sprint(catalogue.MaxPriceCeiling), "price ceiling (inclusive)")
	cmd.Flags().IntSliceVar(&opts.ratings, "rating", nil, "star buckets to keep, repeatable (1-5)")
	cmd.Flags().IntVar(&opts.page, "page", 1, "page number")
	return cmd
}

func runBrowse(cmd *cobra.Command, cfg config.Config, opts *browseOptions) error {
	ceiling, err := decimal.NewFromString(opts.maxPrice)
	if err != nil {
		return errors.Errorf("invalid --max-price %q", opts.maxPrice)
	}
	criteria, err := catalogue.NewCriteria(opts.search, opts.category, ceiling, opts.ratings)
	if err != nil {
		return err
	}
	if opts.page < 1 {
		return errors.New("--page must be a positive integer")
	}

	source, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	repo := product.NewInMemoryRepository(nil)
	loader := product.NewLoader(source, repo)
	loader.Load(cmd.Context())

	view, _ := catalogue.BuildView(product.NewService(repo, loader).Snapshot(), criteria, opts.page)
	if view.Error != "" {
		return errors.New(view.Error)
	}
	return printView(cmd.OutOrStdout(), view)
}

func printView(w io.Writer, view catalogue.View) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tRATING")
	for _, p := range view.Products {
		fmt.Fprintf(tw, "%d\t%s\t%s\t$%s\t%.1f★\n", p.ID, p.Title, p.Category, p.Price.StringFixed(2), p.Rating.Rate)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if view.Pagination != nil {
		fmt.Fprintf(w, "page %d of %d (%d products)\n", view.Pagination.Page, view.Pagination.TotalPages, view.Total)
	}
	return nil
}
