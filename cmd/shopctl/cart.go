package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront/internal/core/domain"
)

func newCartCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			if err := a.cart.FetchCart(cmd.Context()); err != nil {
				return err
			}
			return a.printCart()
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			if err := a.cart.AddToCart(cmd.Context(), id, quantity); err != nil {
				return err
			}
			return a.printCart()
		},
	}
	add.Flags().IntVarP(&quantity, "quantity", "q", 1, "units to add")

	update := &cobra.Command{
		Use:   "update ITEM_ID QUANTITY",
		Short: "Set the quantity of a cart line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q is not a number", args[1])
			}
			a := opts.app
			if err := a.cart.UpdateCartItem(cmd.Context(), id, qty); err != nil {
				return err
			}
			return a.printCart()
		},
	}

	remove := &cobra.Command{
		Use:   "remove ITEM_ID",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			if err := a.cart.RemoveFromCart(cmd.Context(), id); err != nil {
				return err
			}
			return a.printCart()
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.app.cart.ClearCart(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}

	cmd.AddCommand(add, update, remove, clearCmd)
	return cmd
}

func (a *app) printCart() error {
	items := a.cart.Items()
	view := struct {
		Items []domain.CartItem `json:"items"`
		Count int               `json:"count"`
		Total float64           `json:"total"`
	}{items, a.cart.Count(), a.cart.Total()}

	return a.print(view, func(w io.Writer) {
		if len(items) == 0 {
			fmt.Fprintln(w, "Cart is empty")
			return
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ITEM\tPRODUCT\tQTY\tPRICE\tSUBTOTAL")
		for _, it := range items {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%.2f\t%.2f\n", it.ID, it.Product.Name, it.Quantity, it.Product.Price, it.Subtotal())
		}
		fmt.Fprintf(tw, "\t\t%d\t\t%.2f\n", view.Count, view.Total)
		_ = tw.Flush()
	})
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q is not a number", raw)
	}
	return id, nil
}
