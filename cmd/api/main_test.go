package main

import (
	"testing"
	"time"
)

// The binary embeds time/tzdata so local sunrise/sunset survive images
// that ship without a zoneinfo database.
func TestZoneDatabaseAvailable(t *testing.T) {
	for _, zone := range []string{"Europe/Paris", "Asia/Tokyo", "America/New_York", "Australia/Sydney"} {
		t.Run(zone, func(t *testing.T) {
			loc, err := time.LoadLocation(zone)
			if err != nil {
				t.Fatalf("LoadLocation(%q) unexpected error = %v", zone, err)
			}
			if loc.String() != zone {
				t.Errorf("location = %q, want %q", loc.String(), zone)
			}
		})
	}
}
