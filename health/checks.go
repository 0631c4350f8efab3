package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// Pinger is the subset of a database handle needed for health checking.
// *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// DatabaseChecker creates a health check that pings a database.
func DatabaseChecker(db Pinger) Checker {
	return CheckFunc(func(ctx context.Context) (Result, error) {
		if err := db.PingContext(ctx); err != nil {
			return Result{}, fmt.Errorf("database ping: %w", err)
		}
		return Healthy("database reachable"), nil
	})
}

// RedisChecker creates a health check that pings a Redis client.
// An unexpected reply degrades the check instead of failing it.
func RedisChecker(client redis.UniversalClient) Checker {
	return CheckFunc(func(ctx context.Context) (Result, error) {
		reply, err := client.Ping(ctx).Result()
		if err != nil {
			return Result{}, fmt.Errorf("redis ping: %w", err)
		}
		if reply != "PONG" {
			return Degraded(fmt.Sprintf("unexpected ping reply: %q", reply)), nil
		}
		return Healthy("redis reachable"), nil
	})
}

// HTTPChecker creates a health check against an HTTP endpoint.
// 5xx responses are unhealthy, 4xx degraded, anything else healthy. The
// response status code is reported in the result details.
func HTTPChecker(url string, client *http.Client) Checker {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}

	return CheckFunc(func(ctx context.Context) (Result, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return Result{}, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return Result{}, err
		}
		defer resp.Body.Close()

		result := Healthy("endpoint reachable")
		switch {
		case resp.StatusCode >= 500:
			result = Unhealthy(fmt.Sprintf("endpoint returned %d", resp.StatusCode))
		case resp.StatusCode >= 400:
			result = Degraded(fmt.Sprintf("endpoint returned %d", resp.StatusCode))
		}

		return result.WithDetails(map[string]any{
			"status_code": resp.StatusCode,
		}), nil
	})
}
