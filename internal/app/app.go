package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tapedeck/greenroom/internal/aigen"
	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/config"
	"github.com/tapedeck/greenroom/internal/logging"
	"github.com/tapedeck/greenroom/internal/mediahost"
	"github.com/tapedeck/greenroom/internal/notify"
	"github.com/tapedeck/greenroom/internal/prefs"
	"github.com/tapedeck/greenroom/internal/session"
	"github.com/tapedeck/greenroom/internal/store"
	"github.com/tapedeck/greenroom/internal/ui"
)

// Options configure the greenroom application.
type Options struct {
	ConfigPath  string
	PrefsPath   string // empty uses default ~/.config/greenroom/prefs.toml
	SessionPath string // empty uses default ~/.config/greenroom/session.toml
	PollEvery   int    // seconds; zero uses default
}

// Run boots the greenroom console until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	logger, err := logging.New(cfg.LogPath())
	if err != nil {
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	center := notify.NewCenter()

	sess := session.NewManager(opts.SessionPath, session.DemoConfig{
		Enabled:      cfg.Demo.Enabled,
		Username:     cfg.Demo.Username,
		PasswordHash: cfg.Demo.PasswordHash,
	})

	client, err := api.NewClient(cfg.APIBaseURL, sess, center)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	sess.SetAuth(client.Auth())

	media, err := mediahost.NewClient(mediahost.Config{
		CloudName:   cfg.Media.CloudName,
		ImagePreset: cfg.Media.ImagePreset,
		AudioPreset: cfg.Media.AudioPreset,
		AudioFolder: cfg.Media.AudioFolder,
	}, center)
	if err != nil {
		return fmt.Errorf("init media client: %w", err)
	}

	generator := aigen.New(aigen.Keys{
		Gemini:     cfg.AI.GeminiKey,
		Perplexity: cfg.AI.PerplexityKey,
	})

	st := store.NewSized(userPrefs.PageSize)

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}

	// Restore a persisted session before the UI decides which view to show.
	if err := sess.VerifyStartup(ctx); err != nil {
		logger.Warn("session restore failed", zap.Error(err))
	}

	// Start background dashboard refresher
	StartPoller(ctx, st, client, logger, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		API:       client,
		Media:     media,
		Session:   sess,
		Store:     st,
		Notify:    center,
		AI:        generator,
		Logger:    logger,
		PollTick:  interval,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		LogPath:   cfg.LogPath(),
	}
	return ui.Run(uiOpts)
}
