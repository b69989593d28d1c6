package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/shopadmin/internal/token"
)

func newLoginCmd() *cobra.Command {
	var (
		email    string
		password string
		rawToken string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate with the platform API",
		Long:  "Log in with admin credentials and store the issued bearer token, or store a token directly with --token.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rawToken != "" {
				if err := token.Save(rawToken); err != nil {
					return err
				}
				p, _ := token.Path()
				fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", p)
				return nil
			}

			if email == "" {
				return fmt.Errorf("--email is required (or use --token)")
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				reader := bufio.NewReader(cmd.InOrStdin())
				line, err := reader.ReadString('\n')
				if err != nil {
					return fmt.Errorf("read password: %w", err)
				}
				password = strings.TrimSpace(line)
			}

			result, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return fmt.Errorf("login: %w", err)
			}

			if err := token.Save(result.Token); err != nil {
				return err
			}
			p, _ := token.Path()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s)\nToken saved to %s\n", result.User.Name, result.User.Email, p)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email address")
	cmd.Flags().StringVar(&password, "password", "", "Admin password (prompted if omitted)")
	cmd.Flags().StringVar(&rawToken, "token", "", "Store a bearer token directly instead of logging in")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := token.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			if os.Getenv(token.EnvToken) != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Note: %s is still set in the environment.\n", token.EnvToken)
			}
			return nil
		},
	}
}
