package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pagimos/portfolio/assets"
	"github.com/pagimos/portfolio/internal/config"
	"github.com/pagimos/portfolio/internal/site"
)

// app is what every subcommand gets once the root pre-run has loaded
// configuration and content.
type app struct {
	cfg    config.Config
	site   *site.Site
	assets fs.FS
	log    *slog.Logger
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile     string
		contentFile string
	)
	a := &app{}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Serves or renders a one-page personal portfolio",
		Long: `portfolio renders a single page with a hero section, project cards,
and recent post links. Content comes from the built-in defaults or a YAML
file given with --content, and is fixed for the life of the process.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := v.BindPFlag("content", cmd.Flags().Lookup("content")); err != nil {
				return err
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = newLogger(cmd.ErrOrStderr(), cfg)
			slog.SetDefault(a.log)

			s, err := site.Load(cfg.Content)
			if err != nil {
				return err
			}
			a.site = s

			a.assets = assets.FS()
			if cfg.AssetsDir != "" {
				a.assets = os.DirFS(cfg.AssetsDir)
			}

			source := cfg.Content
			if source == "" {
				source = "built-in"
			}
			a.log.Debug("content loaded",
				"source", source,
				"social_links", len(s.SocialLinks),
				"projects", len(s.Projects),
				"posts", len(s.Posts))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./portfolio.yaml)")
	root.PersistentFlags().StringVar(&contentFile, "content", "", "YAML content file (default is the built-in content)")

	root.AddCommand(newServeCmd(a), newRenderCmd(a))
	return root
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}

	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}
