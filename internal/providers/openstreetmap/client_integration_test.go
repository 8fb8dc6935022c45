//go:build integration

package openstreetmap

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"
)

func TestClient_Search_Integration(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client := NewClient(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Logf("Making API call to OpenStreetMap Nominatim API...")

	resp, err := client.Search(ctx, "Paris", 1)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(resp) == 0 {
		t.Fatal("No results for Paris")
	}

	first := resp[0]
	t.Logf("Location Details:")
	t.Logf("  Place ID: %d", first.PlaceId)
	t.Logf("  Display Name: %s", first.DisplayName)
	t.Logf("  Country: %s", first.Address.Country)

	lat, lon, err := first.Coordinates()
	if err != nil {
		t.Fatalf("Invalid coordinates: %v", err)
	}
	t.Logf("  Returned Coordinates: lat=%f, lon=%f", lat, lon)

	if first.DisplayName == "" {
		t.Error("DisplayName is empty")
	}

	t.Log("✓ API call successful, response structure valid")
}
