package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront/internal/core/domain"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := readSecret(cmd, password, "Password: ")
			if err != nil {
				return err
			}
			a := opts.app
			if err := a.auth.Login(cmd.Context(), email, pw); err != nil {
				return err
			}
			user := a.auth.User()
			return a.print(user, func(w io.Writer) {
				fmt.Fprintf(w, "Logged in as %s (%s)\n", user.Email, user.Role)
				if !user.IsVerified {
					fmt.Fprintln(w, "Email not verified yet: cart and checkout stay locked until it is.")
				}
			})
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the persisted session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.app.auth.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}

func newWhoamiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Restore the session and show the current user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			a.auth.Hydrate(cmd.Context())
			if !a.auth.IsAuthenticated() {
				return fmt.Errorf("not logged in")
			}
			session := a.auth.Session()
			exp, hasExp := a.auth.TokenExpiry(cmd.Context())
			return a.print(session.User, func(w io.Writer) {
				u := session.User
				fmt.Fprintf(w, "%s <%s>\nrole: %s  verified: %t  active: %t\n", u.FullName, u.Email, u.Role, u.IsVerified, u.IsActive)
				if hasExp {
					fmt.Fprintf(w, "access token expires %s (in %s)\n", exp.Local().Format(time.RFC1123), time.Until(exp).Round(time.Second))
				}
			})
		},
	}
}

func newRegisterCmd(opts *rootOptions) *cobra.Command {
	var email, name, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (a verification mail is sent)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := readSecret(cmd, password, "Password: ")
			if err != nil {
				return err
			}
			if err := opts.app.auth.Register(cmd.Context(), email, name, pw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registered. Check your inbox to verify the email, then log in.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&name, "name", "n", "", "full name")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (read from stdin when omitted)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newVerifyEmailCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify-email TOKEN",
		Short: "Confirm an email address with the token from the verification mail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.auth.VerifyEmail(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Email verified")
			return nil
		},
	}
}

func newResendVerificationCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resend-verification EMAIL",
		Short: "Send a new verification mail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.auth.ResendVerification(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Verification email sent")
			return nil
		},
	}
}

func newForgotPasswordCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password EMAIL",
		Short: "Request a password reset mail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.app.auth.RequestPasswordReset(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "If the email exists, a reset link will be sent")
			return nil
		},
	}
}

func newResetPasswordCmd(opts *rootOptions) *cobra.Command {
	var password string
	cmd := &cobra.Command{
		Use:   "reset-password TOKEN",
		Short: "Set a new password with a reset token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := readSecret(cmd, password, "New password: ")
			if err != nil {
				return err
			}
			if err := opts.app.auth.ResetPassword(cmd.Context(), args[0], pw); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password reset")
			return nil
		},
	}
	cmd.Flags().StringVarP(&password, "password", "p", "", "new password (read from stdin when omitted)")
	return cmd
}

func newChangePasswordCmd(opts *rootOptions) *cobra.Command {
	var current, next string
	cmd := &cobra.Command{
		Use:   "change-password",
		Short: "Change the password of the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.app.auth.ChangePassword(cmd.Context(), current, next); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password changed")
			return nil
		},
	}
	cmd.Flags().StringVar(&current, "current", "", "current password")
	cmd.Flags().StringVar(&next, "new", "", "new password")
	_ = cmd.MarkFlagRequired("current")
	_ = cmd.MarkFlagRequired("new")
	return cmd
}

func newProfileCmd(opts *rootOptions) *cobra.Command {
	var update domain.ProfileUpdate
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Update the name or email of the logged-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := opts.app
			if err := a.auth.UpdateProfile(cmd.Context(), update); err != nil {
				return err
			}
			user := a.auth.User()
			return a.print(user, func(w io.Writer) {
				fmt.Fprintf(w, "Profile updated: %s <%s>\n", user.FullName, user.Email)
			})
		},
	}
	cmd.Flags().StringVar(&update.FullName, "name", "", "new full name")
	cmd.Flags().StringVar(&update.Email, "email", "", "new email")
	return cmd
}

func newRefreshCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Rotate the persisted token pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.app.auth.RefreshSession(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Session refreshed")
			return nil
		},
	}
}
