package ports

import "context"

// PermissionResolver flattens a set of roles into the effective permission
// set. Unknown roles contribute nothing; an unavailable mapping source
// degrades to an empty set rather than an error.
type PermissionResolver interface {
	Resolve(ctx context.Context, roles []string) []string
}
