package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

func newDiscountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discounts",
		Short: "Manage discount codes",
	}
	cmd.AddCommand(newDiscountsListCmd(), newDiscountsDeleteCmd())
	return cmd
}

func newDiscountsListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discounts with their derived status",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			now := time.Now()
			cfg := listview.Config[model.Discount]{
				Fetch: func(ctx context.Context) ([]model.Discount, error) {
					return client.ListDiscounts(ctx, tok)
				},
				ID: func(d model.Discount) string { return d.ID },
				SearchText: func(d model.Discount) []string {
					return []string{d.Code, d.Status(now).String(), strconv.FormatFloat(d.Percent, 'f', -1, 64)}
				},
			}
			header := fmt.Sprintf("%-26s  %-16s  %7s  %-12s  %-12s  %s", "ID", "CODE", "PCT", "START", "END", "STATUS")
			return runList(cmd, cfg, opts, header, func(d model.Discount) string {
				return fmt.Sprintf("%-26s  %-16s  %6.1f%%  %-12s  %-12s  %s",
					d.ID, d.Code, d.Percent, dateOrDash(d.StartDate), dateOrDash(d.EndDate), d.Status(now))
			})
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func newDiscountsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <discount-id>",
		Short: "Delete a discount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteDiscount(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("delete discount: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted discount %s\n", args[0])
			return nil
		},
	}
}

func newPlansCmd() *cobra.Command {
	var opts listOpts

	list := &cobra.Command{
		Use:   "list",
		Short: "List subscription plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Plan]{
				Fetch: func(ctx context.Context) ([]model.Plan, error) {
					return client.ListPlans(ctx, tok)
				},
				ID: func(p model.Plan) string { return p.ID },
				SearchText: func(p model.Plan) []string {
					return []string{p.Name, p.Interval, p.Status.String(), strconv.FormatFloat(p.Price, 'f', 2, 64)}
				},
			}
			header := fmt.Sprintf("%-26s  %-20s  %10s  %-8s  %7s  %s", "ID", "NAME", "PRICE", "INTERVAL", "MEMBERS", "STATUS")
			return runList(cmd, cfg, opts, header, func(p model.Plan) string {
				return fmt.Sprintf("%-26s  %-20s  %10s  %-8s  %7d  %s", p.ID, truncate(p.Name, 20), money(p.Price), p.Interval, p.MembersCount, p.Status)
			})
		},
	}
	addListFlags(list, &opts)

	cmd := &cobra.Command{
		Use:   "plans",
		Short: "Inspect subscription plans",
	}
	cmd.AddCommand(list)
	return cmd
}

func newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members",
		Short: "Manage subscription members",
	}
	cmd.AddCommand(newMembersListCmd(), newMembersSendRenewalCmd(), newMembersDeleteCmd())
	return cmd
}

func newMembersListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Member]{
				Fetch: func(ctx context.Context) ([]model.Member, error) {
					return client.ListMembers(ctx, tok)
				},
				ID: func(m model.Member) string { return m.ID },
				SearchText: func(m model.Member) []string {
					return []string{m.Name, m.Email, m.PlanName, m.Status.String()}
				},
			}
			header := fmt.Sprintf("%-26s  %-22s  %-26s  %-14s  %-8s  %s", "ID", "NAME", "EMAIL", "PLAN", "STATUS", "RENEWAL")
			return runList(cmd, cfg, opts, header, func(m model.Member) string {
				return fmt.Sprintf("%-26s  %-22s  %-26s  %-14s  %-8s  %s", m.ID, truncate(m.Name, 22), truncate(m.Email, 26), truncate(m.PlanName, 14), m.Status, m.RenewalDate)
			})
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func newMembersSendRenewalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send-renewal <member-id>",
		Short: "Send a renewal reminder email to a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.SendRenewalEmail(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("send renewal: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renewal reminder sent to member %s\n", args[0])
			return nil
		},
	}
}

func newMembersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <member-id>",
		Short: "Delete a member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteMember(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("delete member: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted member %s\n", args[0])
			return nil
		},
	}
}

func dateOrDash(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
