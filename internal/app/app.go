package app

import (
	"context"
	"fmt"

	"github.com/julietavg/carfind/internal/api"
	"github.com/julietavg/carfind/internal/config"
	"github.com/julietavg/carfind/internal/creds"
	"github.com/julietavg/carfind/internal/favorites"
	"github.com/julietavg/carfind/internal/inventory"
	"github.com/julietavg/carfind/internal/logging"
	"github.com/julietavg/carfind/internal/prefs"
	"github.com/julietavg/carfind/internal/session"
	"github.com/julietavg/carfind/internal/ui"
)

// Options configure the CarFinder application. Empty paths use the
// per-package defaults under ~/.config/carfind.
type Options struct {
	ConfigPath string
	APIBaseURL string // overrides the config file when set
	LogDir     string // overrides the config file when set
	PrefsPath  string
	CredsPath  string
	SavedPath  string
}

// Run boots the CarFinder TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIBaseURL != "" {
		cfg.APIBaseURL = opts.APIBaseURL
	}
	if opts.LogDir != "" {
		cfg.LogDir = opts.LogDir
	}

	logger := logging.New(cfg.LogPath())
	logger.WithField("api", cfg.APIBaseURL).Info("starting carfind")

	credStore := creds.Load(opts.CredsPath)
	userPrefs := prefs.Load(opts.PrefsPath)
	saved := favorites.Load(opts.SavedPath)

	client, err := api.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, credStore)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	controller := session.NewController(client, credStore, logger)

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Session:   controller,
		Inventory: &inventory.Store{},
		Favorites: saved,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		SortName:  userPrefs.Sort,
		PrefsPath: opts.PrefsPath,
	})
}
