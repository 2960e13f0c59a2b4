package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/storeops-gateway/internal/client/session"
)

func newLoginCmd(c *cli) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login --token <jwt|->",
		Short: "Store the bearer token used for gateway calls",
		Long:  "Store the bearer token used for gateway calls. Pass - to read it from stdin.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "-" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading token from stdin: %w", err)
				}
				token = strings.TrimSpace(line)
			}
			if token == "" {
				return errors.New("a token is required")
			}

			s, err := c.openSession()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.SetToken(token); err != nil {
				return fmt.Errorf("rejecting token: %w", err)
			}

			info, _ := session.Inspect(token)
			c.logger.Info("signed in", "subject", info.Subject)
			fmt.Fprintf(cmd.OutOrStdout(), "signed in as %s%s\n", orUnknown(info.Subject), expirySuffix(info, time.Now()))
			return nil
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "bearer token (JWT), or - to read from stdin")
	_ = cmd.MarkFlagRequired("token")
	return cmd
}

func newUseStoreCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "use-store <store-id>",
		Short: "Select the store that store-scoped views show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.openSession()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.SetStoreID(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "using store %s\n", args[0])
			return nil
		},
	}
}

func newLogoutCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored token and store selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.openSession()
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := s.Clear(); err != nil {
				return fmt.Errorf("clearing session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func orUnknown(s string) string {
	if s == "" {
		return "(no subject)"
	}
	return s
}

func expirySuffix(info session.TokenInfo, now time.Time) string {
	if info.ExpiresAt.IsZero() {
		return ""
	}
	return fmt.Sprintf(", expires %s (in %s)", info.ExpiresAt.Local().Format(time.RFC3339), info.ExpiresAt.Sub(now).Round(time.Minute))
}
