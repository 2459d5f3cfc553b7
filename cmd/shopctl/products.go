package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront/internal/core/domain"
)

func newProductsCmd(opts *rootOptions) *cobra.Command {
	var (
		filter   domain.ProductFilter
		featured bool
	)
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Browse the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("featured") {
				filter.Featured = &featured
			}
			a := opts.app
			products, err := a.catalog.ListProducts(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return a.print(products, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tSLUG\tNAME\tPRICE\tSTOCK")
				for _, p := range products {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%d\n", p.ID, p.Slug, p.Name, p.Price, p.StockQuantity)
				}
				_ = tw.Flush()
			})
		},
	}
	f := cmd.Flags()
	f.Int64Var(&filter.CategoryID, "category", 0, "category id")
	f.BoolVar(&featured, "featured", false, "only featured products")
	f.StringVar(&filter.Search, "search", "", "search in product names")
	f.IntVar(&filter.Skip, "skip", 0, "offset")
	f.IntVar(&filter.Limit, "limit", 0, "page size")

	show := &cobra.Command{
		Use:   "show SLUG",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := opts.app
			p, err := a.catalog.ProductBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(p, func(w io.Writer) {
				fmt.Fprintf(w, "%s (#%d)\n%.2f  stock: %d\n", p.Name, p.ID, p.Price, p.StockQuantity)
				if p.Description != "" {
					fmt.Fprintln(w, p.Description)
				}
			})
		},
	}
	cmd.AddCommand(show)
	return cmd
}

func newCategoriesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			categories, err := a.catalog.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(categories, func(w io.Writer) {
				for _, c := range categories {
					fmt.Fprintf(w, "%d\t%s\t%s\n", c.ID, c.Slug, c.Name)
				}
			})
		},
	}
}
