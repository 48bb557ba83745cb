package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go"
)

// Ping probes the backend health endpoint with exponential backoff. Only the
// explicit status command uses it; the CRUD paths never retry.
func (client *Client) Ping(ctx context.Context, maxRetryAttempts uint) error {
	return retry.Do(
		func() error {
			response, err := client.request(ctx).Get("/health")
			if err != nil {
				return fmt.Errorf("httpClient.Get > %w", err)
			}
			if response.IsError() {
				responseErr := newError(response)
				if response.StatusCode() < http.StatusInternalServerError {
					return retry.Unrecoverable(responseErr)
				}
				return responseErr
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}
