package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newOracleCommand(ctx *commandContext) *cobra.Command {
	oracleCmd := &cobra.Command{
		Use:   "oracle",
		Short: "Disambiguation oracle utilities",
	}
	oracleCmd.AddCommand(newOracleHealthCommand(ctx))
	return oracleCmd
}

func newOracleHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Verify the oracle API key and model before a long run",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := ctx.oracleClient()
			if err != nil {
				return err
			}
			if client == nil {
				return errors.New("oracle is disabled in configuration")
			}
			if err := client.HealthCheck(cmd.Context()); err != nil {
				return fmt.Errorf("oracle health check failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Oracle reachable and responding to the JSON contract")
			return nil
		},
	}
}
