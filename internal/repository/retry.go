package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"wayfare/internal/models"

	"github.com/cenkalti/backoff/v4"
)

// withRetry re-runs an idempotent operation on transient database errors
// with exponential backoff. Only operations whose redundant re-execution
// is harmless (edge upserts, conditional deletes) go through here.
func withRetry(ctx context.Context, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(50*time.Millisecond),
		backoff.WithMaxInterval(500*time.Millisecond),
	), 3), ctx)

	return backoff.Retry(func() error {
		err := op()
		if err == nil {
			return nil
		}
		if isTransient(err) {
			return err
		}
		return backoff.Permanent(err)
	}, policy)
}

// isTransient reports whether the error looks like a retryable database
// condition such as a serialization failure, deadlock or dropped
// connection.
func isTransient(err error) bool {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Err != nil {
		err = appErr.Err
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range []string{
		"deadlock",
		"serialization failure",
		"could not serialize",
		"connection reset",
		"connection refused",
		"database is locked",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
