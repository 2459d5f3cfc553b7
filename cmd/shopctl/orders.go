package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront/internal/core/domain"
)

func newCheckoutCmd(opts *rootOptions) *cobra.Command {
	var ship domain.ShippingDetails
	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Place an order for the current cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			ctx := cmd.Context()

			a.auth.Hydrate(ctx)
			if user := a.auth.User(); user != nil {
				if ship.CustomerName == "" {
					ship.CustomerName = user.FullName
				}
				if ship.CustomerEmail == "" {
					ship.CustomerEmail = user.Email
				}
			}
			if err := a.cart.FetchCart(ctx); err != nil {
				return err
			}
			order, err := a.orders.Checkout(ctx, a.cart, ship)
			if err != nil {
				return err
			}
			return a.print(order, func(w io.Writer) {
				fmt.Fprintf(w, "Order %s placed: %.2f (%s)\n", order.OrderNumber, order.TotalAmount, order.Status)
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&ship.ShippingAddress, "address", "", "street address")
	f.StringVar(&ship.ShippingCity, "city", "", "city")
	f.StringVar(&ship.ShippingPostalCode, "postal-code", "", "postal code")
	f.StringVar(&ship.ShippingCountry, "country", "", "country")
	f.StringVar(&ship.CustomerName, "name", "", "customer name (defaults to the account name)")
	f.StringVar(&ship.CustomerEmail, "email", "", "customer email (defaults to the account email)")
	f.StringVar(&ship.CustomerPhone, "phone", "", "customer phone")
	f.StringVar(&ship.Notes, "notes", "", "delivery notes")
	return cmd
}

func newOrdersCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List your orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			if err := a.orders.FetchOrders(cmd.Context()); err != nil {
				return err
			}
			orders := a.orders.Orders()
			return a.print(orders, func(w io.Writer) {
				if len(orders) == 0 {
					fmt.Fprintln(w, "No orders yet")
					return
				}
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNUMBER\tSTATUS\tTOTAL\tPLACED")
				for _, o := range orders {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%.2f\t%s\n", o.ID, o.OrderNumber, o.Status, o.TotalAmount, o.CreatedAt.Format("2006-01-02 15:04"))
				}
				_ = tw.Flush()
			})
		},
	}

	show := &cobra.Command{
		Use:   "show ORDER_ID",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			a := opts.app
			order, err := a.orders.FetchOrder(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(order, func(w io.Writer) {
				fmt.Fprintf(w, "Order %s (%s)\nShip to: %s, %s %s, %s\n", order.OrderNumber, order.Status,
					order.ShippingAddress, order.ShippingPostalCode, order.ShippingCity, order.ShippingCountry)
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "PRODUCT\tQTY\tPRICE")
				for _, it := range order.OrderItems {
					fmt.Fprintf(tw, "%s\t%d\t%.2f\n", it.Product.Name, it.Quantity, it.Price)
				}
				fmt.Fprintf(tw, "TOTAL\t\t%.2f\n", order.TotalAmount)
				_ = tw.Flush()
			})
		},
	}
	cmd.AddCommand(show)
	return cmd
}
