package envutil

import (
	"context"
	"maps"
	"os"
)

type envContextKey struct{}

// WithOverrides returns a context whose values take precedence over the process
// environment for every reader in this package. Overrides stack: later calls win
// for the keys they set and inherit the rest.
func WithOverrides(ctx context.Context, env map[string]string) context.Context {
	if len(env) == 0 {
		return ctx
	}

	merged := make(map[string]string, len(env))
	maps.Copy(merged, overrides(ctx))
	maps.Copy(merged, env)

	return context.WithValue(ctx, envContextKey{}, merged)
}

// WithOverride is WithOverrides for a single key.
func WithOverride(ctx context.Context, key, value string) context.Context {
	return WithOverrides(ctx, map[string]string{key: value})
}

func overrides(ctx context.Context) map[string]string {
	if ctx == nil {
		return nil
	}

	env, _ := ctx.Value(envContextKey{}).(map[string]string)

	return env
}

// lookup checks the context overrides first, then the process environment.
func lookup(ctx context.Context, key string) (string, bool) {
	if val, ok := overrides(ctx)[key]; ok {
		return val, true
	}

	return os.LookupEnv(key)
}
