// Package dashboard turns a city selection into render state: it runs the
// geocode then fetch pipeline and keeps the newest result on a Board.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"weather-dashboard/internal/config"
	"weather-dashboard/internal/geocode"
	"weather-dashboard/internal/weather"
)

type Service interface {
	// Load runs one request without touching the board
	Load(ctx context.Context, req Request) View
	// Refresh runs a request and commits it unless a newer one began meanwhile.
	// The returned flag reports whether the view was committed.
	Refresh(ctx context.Context, req Request) (View, bool)
	// Latest returns the committed view, if any
	Latest() (View, bool)
}

type dashboardService struct {
	geocoder geocode.Service
	fetcher  weather.Service
	board    *Board
	cfg      *config.Config
	now      func() time.Time
	logger   *slog.Logger
}

// NewService creates the pipeline over a geocoder and a weather fetcher
func NewService(geocoder geocode.Service, fetcher weather.Service, cfg *config.Config, logger *slog.Logger) Service {
	return &dashboardService{
		geocoder: geocoder,
		fetcher:  fetcher,
		board:    NewBoard(),
		cfg:      cfg,
		now:      time.Now,
		logger:   logger.With("component", "dashboard"),
	}
}

func (s *dashboardService) Load(ctx context.Context, req Request) View {
	req = s.normalize(req)

	loc, err := s.geocoder.Resolve(ctx, req.City)
	if err != nil {
		timedOut := errors.Is(err, geocode.ErrTimeout)
		s.logger.Info("city lookup failed", "city", req.City, "timedOut", timedOut, "error", err)
		return CityNotFoundView(req, timedOut, err.Error(), s.now())
	}

	result := s.fetcher.FetchFrom(ctx, *loc, req.Source)
	return NewView(req, *loc, result, s.now())
}

func (s *dashboardService) Refresh(ctx context.Context, req Request) (View, bool) {
	ticket := s.board.Begin()

	view := s.Load(ctx, req)

	if !s.board.Commit(ticket, view) {
		s.logger.Debug("discarding stale result",
			"city", view.Request.City,
			"ticket", ticket,
			"newest", s.board.Sequence(),
		)
		return view, false
	}
	view.Sequence = ticket
	return view, true
}

func (s *dashboardService) Latest() (View, bool) {
	return s.board.Latest()
}

func (s *dashboardService) normalize(req Request) Request {
	req.City = strings.TrimSpace(req.City)
	req.Source = strings.ToLower(strings.TrimSpace(req.Source))
	if req.Source == "" {
		req.Source = s.cfg.App.PrimarySource
	}
	return req
}
