// Package permissions holds the route table that decides which api routes are public and
// which roles may call the rest. Paths are chi route patterns, e.g. "/api/rooms/{id}".
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"grandhotel/shared/constant"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Public routes are served without a token.
func (p Permission) Public() bool {
	return p.Skip
}

// Allows reports whether role may call the route. Superadmin may call everything; other roles
// must be listed.
func (p Permission) Allows(role string) bool {
	if role == constant.RoleSuperAdmin {
		return true
	}

	return slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

// key ignores a trailing slash, so "/api/rooms" and "/api/rooms/" share one entry.
func key(path, method string) string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}

	return method + " " + path
}

// FindPermissions returns the entry for the route. ok is false when the route is not listed.
func (r *PermissionData) FindPermissions(path, method string) (Permission, bool) {
	p, ok := r.index[key(path, method)]

	return p, ok
}

// Load parses a permissions table and rejects duplicate routes.
func Load(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	data.index = make(map[string]Permission, len(data.Endpoints))

	for _, endpoint := range data.Endpoints {
		k := key(endpoint.Path, endpoint.Method)
		if _, dup := data.index[k]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", k)
		}

		data.index[k] = endpoint
	}

	return &data, nil
}

// Get loads the embedded table. A broken table yields nil, which makes RBAC refuse every
// protected route.
func Get() *PermissionData {
	data, err := Load(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("Loaded embedded permissions")

	return data
}
