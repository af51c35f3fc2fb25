package ports

import "context"

// RoleRepository loads the role→permission mapping. The mapping is owned by
// external configuration; Load reads it fresh on every call so role edits
// take effect without a restart.
type RoleRepository interface {
	Load(ctx context.Context) (map[string][]string, error)
}
