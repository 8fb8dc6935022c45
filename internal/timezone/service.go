package timezone

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ringsaturn/tzf"
)

// Service provides timezone lookup functionality
type Service interface {
	GetTimezone(latitude, longitude float64) (string, error)
}

// service implements timezone lookup using tzf
type service struct {
	finder tzf.F
	mu     sync.RWMutex
}

var (
	instance *service
	initErr  error
	once     sync.Once
)

// NewService creates or returns the singleton timezone service
// Uses singleton pattern because tzf.Finder loads timezone data into memory
func NewService() (Service, error) {
	once.Do(func() {
		finder, findErr := tzf.NewDefaultFinder()
		if findErr != nil {
			initErr = fmt.Errorf("failed to initialize timezone finder: %w", findErr)
			return
		}
		instance = &service{
			finder: finder,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return instance, nil
}

// GetTimezone returns the IANA timezone name for the given coordinates
// Returns timezone names like "America/Denver", "Europe/London", etc.
func (s *service) GetTimezone(latitude, longitude float64) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	timezone := s.finder.GetTimezoneName(longitude, latitude)
	if timezone == "" {
		return "", fmt.Errorf("could not determine timezone for coordinates lat=%f, lon=%f", latitude, longitude)
	}

	return timezone, nil
}

// ParseInZone turns a wall-clock reading such as "06:45 AM" on date
// "2025-01-15" into an instant in the named IANA zone
func ParseInZone(zone, date, clock string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to load timezone %q: %w", zone, err)
	}

	value := strings.TrimSpace(date) + " " + strings.ToUpper(strings.TrimSpace(clock))
	t, err := time.ParseInLocation("2006-01-02 03:04 PM", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse local time %q: %w", value, err)
	}
	return t, nil
}
