package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/99minutos/storefront/internal/pkg/config"
)

type rootOptions struct {
	apiURL string
	json   bool
	app    *app
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "shopctl",
		Short:         "Storefront client: session, cart, orders and catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadClient(cmd.Context())
			if err != nil {
				return err
			}
			if opts.apiURL != "" {
				cfg.APIURL = opts.apiURL
			}
			a, err := newApp(cmd.Context(), cfg, cmd.OutOrStdout(), opts.json)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.app.close(cmd.Context())
		},
	}
	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "storefront API base URL (overrides STOREFRONT_API_URL)")
	cmd.PersistentFlags().BoolVar(&opts.json, "json", false, "print JSON instead of text")

	cmd.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newRegisterCmd(opts),
		newVerifyEmailCmd(opts),
		newResendVerificationCmd(opts),
		newForgotPasswordCmd(opts),
		newResetPasswordCmd(opts),
		newChangePasswordCmd(opts),
		newProfileCmd(opts),
		newRefreshCmd(opts),
		newCartCmd(opts),
		newCheckoutCmd(opts),
		newOrdersCmd(opts),
		newProductsCmd(opts),
		newCategoriesCmd(opts),
	)
	return cmd
}

// readSecret returns flag when set, otherwise the first line of the command's
// standard input.
func readSecret(cmd *cobra.Command, flag, prompt string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read %s: %w", strings.TrimSuffix(strings.ToLower(prompt), ": "), err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
