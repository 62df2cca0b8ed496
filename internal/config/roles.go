package config

import (
	"github.com/DANNY1169/resume-role-classifier/internal/types"
)

// Built-in reference descriptions for the four roles. Role vectors are
// computed from these paragraphs, so edits here shift every classification.
const (
	defaultBuilderDescription = "Creates innovative solutions and drives strategic vision. " +
		"Architects scalable systems and establishes technical direction. " +
		"Focuses on long-term product thinking and builds foundational infrastructure."

	defaultEnablerDescription = "Facilitates collaboration across cross-functional teams. " +
		"Coordinates stakeholders and executes complex plans. " +
		"Bridges technical and business teams, enabling collective success."

	defaultThriverDescription = "Performs exceptionally under tight deadlines and high pressure. " +
		"Adapts rapidly to changing requirements and priorities. " +
		"Thrives in fast-paced, dynamic environments with uncertainty."

	defaultSupporteeDescription = "Ensures reliability and maintains critical systems. " +
		"Documents processes and establishes quality standards. " +
		"Provides consistent support and operational excellence."
)

// applyRoleDescriptionDefaults fills in the built-in catalog for any role
// whose description was not configured
func applyRoleDescriptionDefaults(roles *RolesConfig) {
	if roles.Builder.Description == "" {
		roles.Builder.Description = defaultBuilderDescription
	}
	if roles.Enabler.Description == "" {
		roles.Enabler.Description = defaultEnablerDescription
	}
	if roles.Thriver.Description == "" {
		roles.Thriver.Description = defaultThriverDescription
	}
	if roles.Supportee.Description == "" {
		roles.Supportee.Description = defaultSupporteeDescription
	}
}

// RoleDescription returns the reference description for a role
func (c *Config) RoleDescription(role types.Role) string {
	switch role {
	case types.RoleBuilder:
		return c.Roles.Builder.Description
	case types.RoleEnabler:
		return c.Roles.Enabler.Description
	case types.RoleThriver:
		return c.Roles.Thriver.Description
	case types.RoleSupportee:
		return c.Roles.Supportee.Description
	default:
		return ""
	}
}

// RoleDefinitions returns the full role catalog in priority order
func (c *Config) RoleDefinitions() []types.RoleDefinition {
	defs := make([]types.RoleDefinition, 0, len(types.Roles))
	for _, role := range types.Roles {
		defs = append(defs, types.RoleDefinition{
			Role:        role,
			Description: c.RoleDescription(role),
		})
	}
	return defs
}
