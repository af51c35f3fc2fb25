package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/rbacdash/rbac-api/internal/core/ports"
)

// PermissionResolver flattens roles into the effective permission set by
// unioning each role's permission list from the external mapping. The
// mapping is loaded fresh on every call so edits take effect immediately.
type PermissionResolver struct {
	roles ports.RoleRepository
	log   zerolog.Logger
}

func NewPermissionResolver(roles ports.RoleRepository, log zerolog.Logger) *PermissionResolver {
	return &PermissionResolver{roles: roles, log: log}
}

// Resolve returns the deduplicated union of permissions across the given
// roles. Unknown roles contribute nothing. If the mapping source is
// unavailable, resolution degrades to "no access" rather than failing the
// request pipeline.
func (r *PermissionResolver) Resolve(ctx context.Context, roles []string) []string {
	mapping, err := r.roles.Load(ctx)
	if err != nil {
		r.log.Warn().Err(err).Msg("role mapping unavailable, resolving to empty permission set")
		return []string{}
	}

	seen := make(map[string]struct{})
	perms := make([]string, 0)
	for _, role := range roles {
		for _, p := range mapping[role] {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, p)
		}
	}
	return perms
}
