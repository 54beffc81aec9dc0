// Package cache holds the Redis-backed helpers of the dispatcher.
package cache

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const dispatchKeyPrefix = "dispatch:"

type redisDispatchGuard struct {
	client   redis.Cmdable
	claimTTL time.Duration
	dedupTTL time.Duration
}

// NewRedisDispatchGuard claims dispatch ids with SET NX so a redelivered message is pushed once.
// A claim lives for claimTTL until Complete stretches it to dedupTTL.
func NewRedisDispatchGuard(client redis.Cmdable, claimTTL, dedupTTL time.Duration) service.DispatchGuard {
	return &redisDispatchGuard{client: client, claimTTL: claimTTL, dedupTTL: dedupTTL}
}

func (g *redisDispatchGuard) Acquire(ctx context.Context, dispatchID string) (bool, error) {
	acquired, err := g.client.SetNX(ctx, dispatchKeyPrefix+dispatchID, time.Now().UTC().Format(time.RFC3339), g.claimTTL).Result()
	if err != nil {
		return false, errors.Wrapf(err, "claim dispatch %s", dispatchID)
	}

	return acquired, nil
}

func (g *redisDispatchGuard) Complete(ctx context.Context, dispatchID string) error {
	if err := g.client.Expire(ctx, dispatchKeyPrefix+dispatchID, g.dedupTTL).Err(); err != nil {
		return errors.Wrapf(err, "complete dispatch %s", dispatchID)
	}

	return nil
}

func (g *redisDispatchGuard) Release(ctx context.Context, dispatchID string) error {
	if err := g.client.Del(ctx, dispatchKeyPrefix+dispatchID).Err(); err != nil {
		return errors.Wrapf(err, "release dispatch %s", dispatchID)
	}

	return nil
}

// noopDispatchGuard lets every delivery through.
type noopDispatchGuard struct{}

func (noopDispatchGuard) Acquire(context.Context, string) (bool, error) { return true, nil }

func (noopDispatchGuard) Complete(context.Context, string) error { return nil }

func (noopDispatchGuard) Release(context.Context, string) error { return nil }

// GuardParams holds the dependencies of NewDispatchGuard.
type GuardParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewDispatchGuard connects to Redis when configured. Without Redis, duplicates are not filtered.
func NewDispatchGuard(params GuardParams) service.DispatchGuard {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Address == "" {
		params.Logger.Warn("Redis not configured, dispatch de-duplication disabled")

		return noopDispatchGuard{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisDispatchGuard(client, params.Config.Dispatch.ClaimTTL, params.Config.Dispatch.DedupTTL)
}
