package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"web3dir/client"
	"web3dir/models"
	"web3dir/output"
)

var errLoadFailed = errors.New("could not load projects")

var (
	ui *output.UI

	searchTerm string
	filterTags []string
)

var rootCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the web3 project directory",
	Long: `browse fetches the project list once from the directory API and
filters it locally. --search matches the project link case-insensitively;
each --tag adds a category, and a project is shown if it has any of them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext(cmd)
		defer cancel()
		return browseRun(ctx, ui, newAPI(), searchTerm, filterTags)
	},
}

func init() {
	cobra.OnInitialize(initConfig, initDeps)

	rootCmd.PersistentFlags().String("url", "http://localhost:8080", "Directory API base URL")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")
	_ = viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.Flags().StringVarP(&searchTerm, "search", "s", "", "Only show projects whose link contains this text")
	rootCmd.Flags().StringArrayVarP(&filterTags, "tag", "t", nil, "Only show projects with this tag (repeatable)")
}

func initConfig() {
	viper.SetEnvPrefix("WEB3DIR")
	viper.AutomaticEnv()

	viper.SetDefault("url", "http://localhost:8080")
	viper.SetDefault("timeout", 10*time.Second)
}

func initDeps() {
	ui = output.New()
	ui.Verbose = viper.GetBool("verbose")
}

func newAPI() *client.Client {
	return client.New(viper.GetString("url"), nil)
}

func commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, viper.GetDuration("timeout"))
}

func browseRun(ctx context.Context, ui *output.UI, api client.ProjectFetcher, search string, tags []string) error {
	view := client.NewView(api)
	defer view.Close()

	if err := view.Load(ctx); err != nil {
		if n := view.Snapshot().Notice; n != nil {
			ui.Notice(n.Message, n.IsError)
		}
		ui.VerboseLog("%v", err)
		return errLoadFailed
	}

	view.SetSearch(search)
	seen := map[string]bool{}
	for _, tag := range tags {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		if !models.IsKnownTag(tag) {
			ui.VerboseLog("tag %q is not in the reference vocabulary", tag)
		}
		view.ToggleFilter(tag)
	}

	renderProjects(ui, view.Snapshot())
	return nil
}

func renderProjects(ui *output.UI, s client.State) {
	if msg := s.EmptyMessage(); msg != "" {
		ui.Info("%s", msg)
		return
	}

	visible := s.Visible()
	table := ui.Table([]string{"Domain", "Link", "Discovered", "Tags", "Logo"})
	for _, p := range visible {
		domain, ok := client.DisplayDomain(p.Link)
		logo := "-"
		if ok {
			logo = client.LogoURL(domain)
		}
		_ = table.Append([]string{
			output.Cyan(domain),
			client.LinkURL(p.Link),
			p.Date.String(),
			output.Tags(p.Tags, s.ActiveFilters.Has),
			logo,
		})
	}
	_ = table.Render()

	ui.Info("%d of %d projects", len(visible), len(s.Projects))
}
