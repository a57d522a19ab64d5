// internal/cli/auth_cmd.go
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"medadmin/internal/auth"
)

func newAuthCmd(d *deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored admin session",
	}

	var email, password string
	login := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				fmt.Fprint(cmd.OutOrStdout(), "email: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				email = strings.TrimSpace(line)
			}
			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "password: ")
				reader := bufio.NewReader(os.Stdin)
				line, err := reader.ReadString('\n')
				if err != nil {
					return err
				}
				password = strings.TrimSpace(line)
			}
			if _, err := d.auth.Login(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged in.")
			return nil
		},
	}
	login.Flags().StringVar(&email, "email", "", "admin account email")
	login.Flags().StringVar(&password, "password", "", "admin account password")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := d.auth.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show whether a token is stored and when it expires",
		RunE: func(cmd *cobra.Command, args []string) error {
			token := d.tokens.Token()
			if token == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in.")
				return nil
			}
			if exp, ok := auth.TokenExpiry(token); ok {
				state := "valid"
				if time.Now().After(exp) {
					state = "expired"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Token stored, %s (expires %s).\n", state, exp.Format(time.RFC3339))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token stored (opaque, no expiry claim).")
			return nil
		},
	}

	cmd.AddCommand(login, logout, status)
	return cmd
}
