package main

import (
	"context"

	"github.com/spf13/cobra"

	"web3dir/models"
	"web3dir/output"
)

type tagFetcher interface {
	FetchTags(ctx context.Context) ([]string, error)
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List every tag used by at least one project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		return tagsRun(ctx, ui, newAPI())
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func tagsRun(ctx context.Context, ui *output.UI, api tagFetcher) error {
	tags, err := api.FetchTags(ctx)
	if err != nil {
		ui.Error("Error loading tags")
		return err
	}

	if len(tags) == 0 {
		ui.Info("No tags yet.")
		return nil
	}

	table := ui.Table([]string{"Tag", "Vocabulary"})
	for _, tag := range tags {
		known := output.Yellow("no")
		if models.IsKnownTag(tag) {
			known = output.Green("yes")
		}
		_ = table.Append([]string{tag, known})
	}
	return table.Render()
}
