package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

func newProductsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Manage catalog products",
	}
	cmd.AddCommand(newProductsListCmd(), newProductsSetStockCmd(), newProductsDeleteCmd())
	return cmd
}

func newProductsListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Product]{
				Fetch: func(ctx context.Context) ([]model.Product, error) {
					return client.ListProducts(ctx, tok)
				},
				ID: func(p model.Product) string { return p.ID },
				SearchText: func(p model.Product) []string {
					return []string{p.Name, p.Category, p.Status.String(), strconv.FormatFloat(p.Price, 'f', 2, 64)}
				},
			}
			header := fmt.Sprintf("%-26s  %-30s  %-14s  %10s  %5s  %s", "ID", "NAME", "CATEGORY", "PRICE", "STOCK", "STATUS")
			return runList(cmd, cfg, opts, header, func(p model.Product) string {
				return fmt.Sprintf("%-26s  %-30s  %-14s  %10s  %5d  %s", p.ID, truncate(p.Name, 30), truncate(p.Category, 14), money(p.Price), p.Stock, p.Status)
			})
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func newProductsSetStockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-stock <product-id> <quantity>",
		Short: "Set the stock count of a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			qty, err := strconv.Atoi(args[1])
			if err != nil || qty < 0 {
				return fmt.Errorf("quantity must be a non-negative integer")
			}
			if err := client.UpdateProductStock(cmd.Context(), adminToken(), args[0], qty); err != nil {
				return fmt.Errorf("set stock: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stock for %s set to %d (%s)\n", args[0], qty, model.StockStatus(qty))
			return nil
		},
	}
}

func newProductsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <product-id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteProduct(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("delete product: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted product %s\n", args[0])
			return nil
		},
	}
}

func newCategoriesCmd() *cobra.Command {
	var opts listOpts

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Category]{
				Fetch: func(ctx context.Context) ([]model.Category, error) {
					return client.ListCategories(ctx, tok)
				},
				ID:         func(c model.Category) string { return c.ID },
				SearchText: func(c model.Category) []string { return []string{c.Name, c.Slug} },
			}
			header := fmt.Sprintf("%-26s  %-24s  %-24s  %s", "ID", "NAME", "SLUG", "PRODUCTS")
			return runList(cmd, cfg, opts, header, func(c model.Category) string {
				return fmt.Sprintf("%-26s  %-24s  %-24s  %d", c.ID, truncate(c.Name, 24), truncate(c.Slug, 24), c.ProductCount)
			})
		},
	}
	addListFlags(list, &opts)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage product categories",
	}
	cmd.AddCommand(list)
	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
