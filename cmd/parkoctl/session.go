package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"parkospace/config"
	"parkospace/internal/client/app"
	"parkospace/internal/client/gateway"
	"parkospace/internal/client/state"
	"parkospace/internal/client/viewport"
	"parkospace/internal/domain/entity"
	logs "parkospace/internal/infra/log"
)

// session is the client wiring shared by the subcommands.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	api      *gateway.Client
	store    *state.Store
	screen   *terminalMap
	viewport *viewport.Controller
	notifier *stderrNotifier
	in       *bufio.Reader

	assumeYes bool
}

func newSession(common commonFlags) (*session, error) {
	cfg, err := config.New()
	if err != nil {
		cfg = config.Default()
	}
	if *common.baseURL != "" {
		cfg.Client.BaseURL = *common.baseURL
	}

	cfg.Env.Log.Pretty = true
	if *common.verbose {
		cfg.Env.Log.Level = "debug"
	} else {
		cfg.Env.Log.Level = "warn"
	}
	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	screen := &terminalMap{}
	reference, err := defaultReference(cfg.Listing)
	if err != nil {
		return nil, err
	}

	return &session{
		cfg:      cfg,
		logger:   logger,
		api:      gateway.New(cfg.Client, nil, logger),
		store:    state.NewStore(state.Initial(reference, cfg.Listing.DefaultRadiusKm)),
		screen:   screen,
		viewport: viewport.NewController(screen, cfg.Client),
		notifier: &stderrNotifier{w: os.Stderr},
		in:       bufio.NewReader(os.Stdin),
	}, nil
}

func (s *session) explorer(locator app.Locator) *app.Explorer {
	return app.NewExplorer(app.ExplorerParams{
		Store:    s.store,
		Listings: s.api,
		Geocode:  s.api,
		Locator:  locator,
		Viewport: s.viewport,
		Notifier: s.notifier,
		Client:   s.cfg.Client,
		Listing:  s.cfg.Listing,
		Logger:   s.logger,
	})
}

func (s *session) dashboard(refresher app.Refresher) *app.Dashboard {
	return app.NewDashboard(app.DashboardParams{
		Store:     s.store,
		Listings:  s.api,
		Geocode:   s.api,
		Auth:      s.api,
		Notifier:  s.notifier,
		Confirmer: app.ConfirmFunc(s.confirm),
		Refresher: refresher,
		Pricing:   s.cfg.Pricing,
		Client:    s.cfg.Client,
		Logger:    s.logger,
	})
}

// moveTo replaces the reference point used for new listings.
func (s *session) moveTo(p entity.GeoPoint) {
	s.store.Dispatch(state.LocationChanged{Point: p})
}

func (s *session) prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (s *session) confirm(question string) bool {
	if s.assumeYes {
		return true
	}
	answer, err := s.prompt(question + " [y/N] ")
	if err != nil {
		return false
	}

	return strings.EqualFold(answer, "y") || strings.EqualFold(answer, "yes")
}

type stderrNotifier struct {
	w io.Writer
}

func (n *stderrNotifier) Notify(level app.NoticeLevel, message string) {
	if level == app.NoticeError {
		fmt.Fprintf(n.w, "! %s\n", message)

		return
	}
	fmt.Fprintf(n.w, "%s\n", message)
}
