package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"folio/internal/bootstrap"
	"folio/internal/modules/showcase/dto"
	"folio/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	site     string
	config   string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "folio",
		Short:         "Filter, sort and render event timelines and project portfolios",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.site, "site", ".", "site root holding the data directory")
	root.PersistentFlags().StringVar(&opts.config, "config", "", "config file (default <site>/folio.yaml when present)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: none|normal|debug")

	root.AddCommand(newPagesCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newControlsCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newReindexCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	return root
}

// withApp loads config, wires the app and closes it after run.
func withApp(opts *rootOptions, run func(app *bootstrap.App) error) error {
	return withConfiguredApp(opts, nil, run)
}

// withConfiguredApp is withApp with a last adjustment of the loaded config.
func withConfiguredApp(opts *rootOptions, adjust func(config.Config) config.Config, run func(app *bootstrap.App) error) (err error) {
	cfg, err := config.Load(opts.site, opts.config)
	if err != nil {
		return err
	}
	if strings.TrimSpace(opts.logLevel) != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if adjust != nil {
		cfg = adjust(cfg)
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := app.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	app.Log.Debug("Config loaded", zap.String("site", cfg.SiteRoot), zap.String("db", cfg.DBPath), zap.Int("pages", len(cfg.Pages)))
	return run(app)
}

func newPagesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List configured pages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				for _, p := range app.ShowcaseCLI.Pages(cmd.Context()) {
					featured := ""
					if p.Featured {
						featured = " featured"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s%s\n", p.Name, p.Kind, p.Title, featured)
				}
				return nil
			})
		},
	}
}

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var format, category, tag, sort string
	var featured, document bool

	cmd := &cobra.Command{
		Use:   "render <page>",
		Short: "Render a page under a selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out := cmd.OutOrStdout()
				view, err := app.ShowcaseCLI.Render(cmd.Context(), args[0], format, category, tag, sort, document)
				if err != nil {
					if view.Markup != "" {
						_, _ = fmt.Fprintln(out, view.Markup)
					}
					return err
				}
				if featured && view.FeaturedVisible && !document {
					_, _ = fmt.Fprintln(out, view.Featured)
				}
				_, _ = fmt.Fprintln(out, view.Markup)
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), view.Summary)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&format, "format", string(dto.FormatHTML), "output format: html|text")
	cmd.Flags().StringVar(&category, "category", "", "category (event type or project status), or all")
	cmd.Flags().StringVar(&tag, "tag", "", "tag, or all")
	cmd.Flags().StringVar(&sort, "sort", "", "sort order: newest|oldest")
	cmd.Flags().BoolVar(&featured, "featured", false, "print the featured section before the list")
	cmd.Flags().BoolVar(&document, "document", false, "render the whole page with its controls")
	return cmd
}

func newControlsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "controls <page>",
		Short: "List the control groups of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				groups, err := app.ShowcaseCLI.Controls(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				printControls(cmd.OutOrStdout(), groups)
				return nil
			})
		},
	}
}

func printControls(w io.Writer, groups []dto.ControlGroupOutput) {
	for _, g := range groups {
		_, _ = fmt.Fprintf(w, "%s (%s)\n", g.Group, g.Axis)
		for _, c := range g.Controls {
			mark := " "
			if c.Active {
				mark = "*"
			}
			_, _ = fmt.Fprintf(w, "  %s %-28s %s\n", mark, c.ID, c.Label)
		}
	}
}

func newExportCmd(opts *rootOptions) *cobra.Command {
	var outDir string
	var pages []string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every selection state of each page as static HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				out, err := app.ShowcaseCLI.Export(cmd.Context(), outDir, pages)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d files to %s\n", len(out.Written), outDir)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "dist", "output directory")
	cmd.Flags().StringSliceVar(&pages, "page", nil, "pages to export (default all)")
	return cmd
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse pages in the terminal",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withConfiguredApp(opts, config.Config.InteractiveLogging, bootstrap.RunTUI)
		},
	}
}

func newReindexCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex [page...]",
		Short: "Reload pages and rebuild the record index",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				names := args
				if len(names) == 0 {
					for _, p := range app.ShowcaseCLI.Pages(cmd.Context()) {
						names = append(names, p.Name)
					}
				}
				for _, name := range names {
					out, err := app.ShowcaseCLI.Reindex(cmd.Context(), name)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %s: %d records from %s\n", out.Page, out.Records, out.Source)
				}
				return nil
			})
		},
	}
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats <page>",
		Short: "Show indexed counts per category and tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(app *bootstrap.App) error {
				stats, err := app.ShowcaseCLI.Stats(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				if stats.Total == 0 {
					_, _ = fmt.Fprintf(w, "%s: no indexed records (run folio reindex)\n", args[0])
					return nil
				}
				_, _ = fmt.Fprintf(w, "%s: %d records\n", stats.Page, stats.Total)
				_, _ = fmt.Fprintln(w, "categories:")
				for _, c := range stats.Categories {
					_, _ = fmt.Fprintf(w, "  %-20s %d\n", c.Value, c.Count)
				}
				_, _ = fmt.Fprintln(w, "tags:")
				for _, c := range stats.Tags {
					_, _ = fmt.Fprintf(w, "  %-20s %d\n", c.Value, c.Count)
				}
				return nil
			})
		},
	}
}
