package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/api"
	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Manage customer orders",
	}
	cmd.AddCommand(newOrdersListCmd(), newOrdersShowCmd(), newOrdersSetStatusCmd(), newOrdersDeleteCmd())
	return cmd
}

func orderListConfig(tok api.TokenSource) listview.Config[model.Order] {
	return listview.Config[model.Order]{
		Fetch: func(ctx context.Context) ([]model.Order, error) {
			return client.ListOrders(ctx, tok)
		},
		ID: func(o model.Order) string { return o.ID },
		SearchText: func(o model.Order) []string {
			return []string{o.ID, o.CustomerName, o.Email, o.Status.String(), strconv.FormatFloat(o.Total, 'f', 2, 64)}
		},
	}
}

func newOrdersListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := fmt.Sprintf("%-26s  %-22s  %10s  %5s  %-10s  %s", "ID", "CUSTOMER", "TOTAL", "ITEMS", "STATUS", "CREATED")
			return runList(cmd, orderListConfig(adminToken()), opts, header, func(o model.Order) string {
				return fmt.Sprintf("%-26s  %-22s  %10s  %5d  %-10s  %s", o.ID, truncate(o.CustomerName, 22), money(o.Total), o.ItemCount, o.Status, o.CreatedAt)
			})
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func newOrdersShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := client.GetOrder(cmd.Context(), adminToken(), args[0])
			if err != nil {
				return fmt.Errorf("get order: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order:    %s\n", o.ID)
			fmt.Fprintf(out, "Customer: %s <%s>\n", o.CustomerName, o.Email)
			fmt.Fprintf(out, "Total:    %s (%d items)\n", money(o.Total), o.ItemCount)
			fmt.Fprintf(out, "Status:   %s\n", o.Status)
			fmt.Fprintf(out, "Created:  %s\n", o.CreatedAt)
			return nil
		},
	}
}

func newOrdersSetStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Move an order to a new status",
		Long:  "Valid statuses: Pending, Processing, Shipped, Delivered, Cancelled, Refunded.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := model.ParseStatus(args[1])
			if err := client.UpdateOrderStatus(cmd.Context(), adminToken(), args[0], status); err != nil {
				return fmt.Errorf("set status: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %s moved to %s\n", args[0], status)
			return nil
		},
	}
}

func newOrdersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <order-id>",
		Short: "Delete an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteOrder(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("delete order: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted order %s\n", args[0])
			return nil
		},
	}
}

func newTransactionsCmd() *cobra.Command {
	var opts listOpts

	list := &cobra.Command{
		Use:   "list",
		Short: "List payment transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Transaction]{
				Fetch: func(ctx context.Context) ([]model.Transaction, error) {
					return client.ListTransactions(ctx, tok)
				},
				ID: func(t model.Transaction) string { return t.ID },
				SearchText: func(t model.Transaction) []string {
					return []string{t.ID, t.OrderID, t.Method, t.Status.String(), strconv.FormatFloat(t.Amount, 'f', 2, 64)}
				},
			}
			header := fmt.Sprintf("%-26s  %-26s  %10s  %-10s  %-8s  %s", "ID", "ORDER", "AMOUNT", "METHOD", "STATUS", "CREATED")
			return runList(cmd, cfg, opts, header, func(t model.Transaction) string {
				return fmt.Sprintf("%-26s  %-26s  %10s  %-10s  %-8s  %s", t.ID, t.OrderID, money(t.Amount), t.Method, t.Status, t.CreatedAt)
			})
		},
	}
	addListFlags(list, &opts)

	cmd := &cobra.Command{
		Use:   "transactions",
		Short: "Inspect payment transactions",
	}
	cmd.AddCommand(list)
	return cmd
}

func newShippingCmd() *cobra.Command {
	var opts listOpts

	list := &cobra.Command{
		Use:   "list",
		Short: "List shipping zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.ShippingZone]{
				Fetch: func(ctx context.Context) ([]model.ShippingZone, error) {
					return client.ListShippingZones(ctx, tok)
				},
				ID: func(z model.ShippingZone) string { return z.ID },
				SearchText: func(z model.ShippingZone) []string {
					return append([]string{z.Name, z.Status.String()}, z.Regions...)
				},
			}
			header := fmt.Sprintf("%-26s  %-20s  %10s  %6s  %s", "ID", "NAME", "RATE", "DAYS", "STATUS")
			return runList(cmd, cfg, opts, header, func(z model.ShippingZone) string {
				return fmt.Sprintf("%-26s  %-20s  %10s  %6d  %s", z.ID, truncate(z.Name, 20), money(z.Rate), z.DeliveryDays, z.Status)
			})
		},
	}
	addListFlags(list, &opts)

	cmd := &cobra.Command{
		Use:   "shipping",
		Short: "Inspect shipping zones",
	}
	cmd.AddCommand(list)
	return cmd
}
