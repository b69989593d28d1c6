package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/listview"
	"github.com/me/shopadmin/pkg/model"
)

func newToysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toys",
		Short: "Manage the toy lending library",
	}
	cmd.AddCommand(newToysListCmd(), newToysSetUnitsCmd(), newToysDeleteCmd())
	return cmd
}

func newToysListCmd() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List toys",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Toy]{
				Fetch: func(ctx context.Context) ([]model.Toy, error) {
					return client.ListToys(ctx, tok)
				},
				ID: func(t model.Toy) string { return t.ID },
				SearchText: func(t model.Toy) []string {
					return []string{t.Name, t.AgeRange, t.Status.String(), strconv.Itoa(t.AvailableUnits)}
				},
			}
			header := fmt.Sprintf("%-26s  %-26s  %-8s  %9s  %s", "ID", "NAME", "AGES", "UNITS", "STATUS")
			return runList(cmd, cfg, opts, header, func(t model.Toy) string {
				return fmt.Sprintf("%-26s  %-26s  %-8s  %4d/%-4d  %s", t.ID, truncate(t.Name, 26), t.AgeRange, t.AvailableUnits, t.TotalUnits, t.Status)
			})
		},
	}
	addListFlags(cmd, &opts)
	return cmd
}

func newToysSetUnitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-units <toy-id> <available-units>",
		Short: "Set the available unit count of a toy",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			units, err := strconv.Atoi(args[1])
			if err != nil || units < 0 {
				return fmt.Errorf("available-units must be a non-negative integer")
			}
			if err := client.UpdateToyAvailableUnits(cmd.Context(), adminToken(), args[0], units); err != nil {
				return fmt.Errorf("set units: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Toy %s now has %d units available (%s)\n", args[0], units, model.StockStatus(units))
			return nil
		},
	}
}

func newToysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <toy-id>",
		Short: "Delete a toy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteToy(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("delete toy: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted toy %s\n", args[0])
			return nil
		},
	}
}

func newCoursesCmd() *cobra.Command {
	var opts listOpts

	list := &cobra.Command{
		Use:   "list",
		Short: "List courses",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok := adminToken()
			cfg := listview.Config[model.Course]{
				Fetch: func(ctx context.Context) ([]model.Course, error) {
					return client.ListCourses(ctx, tok)
				},
				ID: func(c model.Course) string { return c.ID },
				SearchText: func(c model.Course) []string {
					return []string{c.Title, c.Instructor, c.Status.String(), strconv.FormatFloat(c.Price, 'f', 2, 64)}
				},
			}
			header := fmt.Sprintf("%-26s  %-30s  %-20s  %10s  %11s  %s", "ID", "TITLE", "INSTRUCTOR", "PRICE", "ENROLLMENTS", "STATUS")
			return runList(cmd, cfg, opts, header, func(c model.Course) string {
				return fmt.Sprintf("%-26s  %-30s  %-20s  %10s  %11d  %s", c.ID, truncate(c.Title, 30), truncate(c.Instructor, 20), money(c.Price), c.EnrollmentsCount, c.Status)
			})
		},
	}
	addListFlags(list, &opts)

	del := &cobra.Command{
		Use:   "delete <course-id>",
		Short: "Delete a course",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.DeleteCourse(cmd.Context(), adminToken(), args[0]); err != nil {
				return fmt.Errorf("delete course: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted course %s\n", args[0])
			return nil
		},
	}

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Manage courses",
	}
	cmd.AddCommand(list, del)
	return cmd
}
