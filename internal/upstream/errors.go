// Package upstream classifies failures of outbound calls to the public
// weather and geocoding services.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrTimeout means the call did not finish within its deadline
	ErrTimeout = errors.New("network timeout")
	// ErrNetwork covers connection, DNS and transport failures
	ErrNetwork = errors.New("network error")
	// ErrStatus means the service answered with a non-200 status
	ErrStatus = errors.New("unexpected status")
	// ErrSchemaMismatch means the payload did not have the expected shape
	ErrSchemaMismatch = errors.New("schema mismatch")
)

// Classify wraps a transport error with ErrTimeout or ErrNetwork
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrTimeout) || errors.Is(err, ErrNetwork) {
		return err
	}
	if IsTimeout(err) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %w", ErrNetwork, err)
}

// IsTimeout reports whether err is a deadline or net timeout
func IsTimeout(err error) bool {
	if errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// SchemaError wraps a decode or validation failure with ErrSchemaMismatch
func SchemaError(err error) error {
	return fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
}
