package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tapedeck/greenroom/internal/aigen"
	"github.com/tapedeck/greenroom/internal/api"
	"github.com/tapedeck/greenroom/internal/mediahost"
	"github.com/tapedeck/greenroom/internal/notify"
	"github.com/tapedeck/greenroom/internal/session"
	"github.com/tapedeck/greenroom/internal/store"
)

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	API       *api.Client
	Media     *mediahost.Client
	Session   *session.Manager
	Store     *store.Store
	Notify    *notify.Center
	AI        *aigen.Generator
	Logger    *zap.Logger
	PollTick  time.Duration
	ThemeName string
	PrefsPath string
	LogPath   string
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a data store")
	}
	if opts.API == nil {
		return fmt.Errorf("ui requires an api client")
	}
	if opts.Session == nil {
		return fmt.Errorf("ui requires a session manager")
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	program := tea.NewProgram(
		newModel(opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := program.Run()
	if err == tea.ErrProgramKilled && ctx.Err() != nil {
		// Context cancellation (signal) is a normal shutdown.
		return nil
	}
	return err
}
