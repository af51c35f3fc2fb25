package jsonfile

import (
	"context"
	"fmt"
)

// RoleRepository reads the role→permission mapping from a JSON object file
// (role name → array of permission strings). The file is externally owned
// configuration; Load reads it fresh on every call.
type RoleRepository struct {
	path string
}

func NewRoleRepository(path string) *RoleRepository {
	return &RoleRepository{path: path}
}

func (r *RoleRepository) Load(_ context.Context) (map[string][]string, error) {
	var mapping map[string][]string
	ok, err := readInto(r.path, &mapping)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("role mapping %s: file not found", r.path)
	}
	return mapping, nil
}
