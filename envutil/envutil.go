// Package envutil reads typed configuration values from the environment.
// Every reader consults the context first (see WithEnvOverride), then the
// process environment.
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

var ErrNotAllowed = errors.New("value not allowed")

// get returns a Reader for the given environment variable key.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), func(s string) (bool, error) {
		return strconv.ParseBool(strings.TrimSpace(s))
	}), opts)
}

func Int(ctx context.Context, key string, opts ...Option[int]) Reader[int] {
	return apply(Map(get(ctx, key), func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	}), opts)
}

func Duration(ctx context.Context, key string, opts ...Option[time.Duration]) Reader[time.Duration] {
	return apply(Map(get(ctx, key), func(s string) (time.Duration, error) {
		return time.ParseDuration(strings.TrimSpace(s))
	}), opts)
}

// SlogLevel returns a Reader for the given environment variable key.
// Accepts the names slog understands (debug, info, warn, error) with
// optional offsets such as "info+2".
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	return apply(Map(get(ctx, key), func(s string) (slog.Level, error) {
		var level slog.Level

		err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s))))

		return level, err
	}), opts)
}

// OneOf returns a Reader whose value must be one of allowed. Matching is
// case-insensitive and the canonical spelling from allowed is returned.
func OneOf(ctx context.Context, key string, allowed []string, opts ...Option[string]) Reader[string] {
	return apply(Map(get(ctx, key), func(s string) (string, error) {
		idx := slices.IndexFunc(allowed, func(a string) bool {
			return strings.EqualFold(a, strings.TrimSpace(s))
		})
		if idx < 0 {
			return s, fmt.Errorf("%w: %q (allowed: %s)", ErrNotAllowed, s, strings.Join(allowed, ", "))
		}

		return allowed[idx], nil
	}), opts)
}
