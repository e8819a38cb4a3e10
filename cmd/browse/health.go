package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"web3dir/client"
	"web3dir/models"
	"web3dir/output"
)

type healthChecker interface {
	Health(ctx context.Context) (*models.HealthResponse, error)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the API can reach its database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		return healthRun(ctx, ui, newAPI())
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

func healthRun(ctx context.Context, ui *output.UI, api healthChecker) error {
	h, err := api.Health(ctx)
	if h == nil {
		var statusErr *client.StatusError
		if errors.As(err, &statusErr) {
			ui.Error("API answered %d without a health report", statusErr.StatusCode)
			return err
		}
		ui.Error("API unreachable")
		return err
	}

	if !h.Healthy() {
		ui.Error("%s (database %s): %s", output.Red(h.Status), h.Database, h.Error)
		return fmt.Errorf("api is %s", h.Status)
	}

	ui.Success("%s (database %s, %s)", output.Green(h.Status), h.Database, h.Mode)
	return nil
}
