package auth

import (
	"fmt"
	"os"

	"gearguard-backend/internal/database/models"

	"gopkg.in/yaml.v3"
)

// Policy action names used by the route layer
const (
	ActionEquipmentWrite = "equipment_write"
	ActionTeamWrite      = "team_write"
	ActionRequestStatus  = "request_status"
	ActionUserAdmin      = "user_admin"
)

// Policy maps named actions to the roles allowed to perform them
type Policy struct {
	Actions map[string][]models.UserRole `yaml:"actions"`
}

// DefaultPolicy returns the built-in authorization rules: managers own the
// registries, managers and technicians move requests through the workflow.
func DefaultPolicy() *Policy {
	return &Policy{
		Actions: map[string][]models.UserRole{
			ActionEquipmentWrite: {models.UserRoleManager},
			ActionTeamWrite:      {models.UserRoleManager},
			ActionRequestStatus:  {models.UserRoleManager, models.UserRoleTechnician},
			ActionUserAdmin:      {models.UserRoleManager},
		},
	}
}

// LoadPolicy reads authorization rules from a YAML file. A missing file
// falls back to the defaults; entries in the file override the default for
// that action only.
func LoadPolicy(path string) (*Policy, error) {
	policy := DefaultPolicy()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return policy, nil
		}
		return nil, fmt.Errorf("failed to read policy file: %w", err)
	}

	var loaded Policy
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse policy file: %w", err)
	}

	for action, roles := range loaded.Actions {
		for _, role := range roles {
			if !role.IsValid() {
				return nil, fmt.Errorf("policy action %q lists unknown role %q", action, role)
			}
		}
		policy.Actions[action] = roles
	}

	return policy, nil
}

// RolesFor returns the roles allowed to perform the named action
func (p *Policy) RolesFor(action string) []models.UserRole {
	return p.Actions[action]
}

// Allows reports whether the role may perform the named action
func (p *Policy) Allows(action string, role models.UserRole) bool {
	for _, allowed := range p.Actions[action] {
		if allowed == role {
			return true
		}
	}
	return false
}
