package pkglog

import "context"

type runIDContextKey struct{}

// GetRunID returns the invocation run ID stored in the context, or "".
func GetRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDContextKey{}).(string)
	return id
}

// SetRunID stores a run ID into the context so every record logged with that
// context can be correlated to a single command invocation.
func SetRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDContextKey{}, id)
}
