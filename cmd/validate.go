package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"prehrajto/internal/resolver"
	"prehrajto/internal/session"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configured credentials against the site",
	Long: `validate checks that both credential fields are present and that the
site answers the login with a session. It cannot detect a wrong
password: the site issues cookies to failed logins and fresh visitors
alike.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := resolver.New(cfg.Origin())
		cred := session.Credential{Username: cfg.Username, Password: cfg.Password}

		ok, err := r.ValidateConfig(cred)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("configuration is not usable for authenticated access")
		}

		fmt.Println("ok: credentials present and a session was obtained")
		return nil
	},
}
