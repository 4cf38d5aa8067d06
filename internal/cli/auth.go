package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"sevent-cli/internal/api"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd(app *App) *cobra.Command {
	var password string

	cmd := &cobra.Command{
		Use:   "login <email>",
		Short: "Log in and store the session token locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email := strings.TrimSpace(args[0])
			if email == "" {
				return errors.New("email is required")
			}

			pass := password
			if pass == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Mật khẩu: ")
				raw, err := term.ReadPassword(int(syscall.Stdin))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				pass = string(raw)
			}
			if pass == "" {
				return errors.New("password is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), app.cfg.Timeout)
			defer cancel()
			tok, err := app.api.Login(ctx, email, pass)
			if err != nil {
				if errors.Is(err, api.ErrUnauthorized) {
					return errors.New("email hoặc mật khẩu không đúng")
				}
				return err
			}
			if err := app.sess.SetToken(tok); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Đã đăng nhập:", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&password, "password", os.Getenv("SEVENT_PASSWORD"), "Password (prompts when empty)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Drop the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.sess.Token() == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Chưa đăng nhập")
				return nil
			}
			if err := app.sess.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Đã đăng xuất")
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the identity in the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := app.sess.Session()
			if !sess.LoggedIn {
				fmt.Fprintln(cmd.OutOrStdout(), "Chưa đăng nhập")
				return nil
			}
			if sess.Claims == nil {
				// Token present but undecodable; the server will reject it on
				// the next request anyway.
				fmt.Fprintln(cmd.OutOrStdout(), "Đã đăng nhập (token không đọc được)")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID:  ", sess.Claims.ID)
			fmt.Fprintln(cmd.OutOrStdout(), "Role:", sess.Claims.Role)
			return nil
		},
	}
}
