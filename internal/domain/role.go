package domain

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Role is a permission tag granted to a driver credential.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole accepts only known role tags.
func ParseRole(tag string) (Role, error) {
	switch Role(tag) {
	case RoleUser, RoleAdmin:
		return Role(tag), nil
	default:
		return "", fmt.Errorf("unknown role %q", tag)
	}
}

// RoleSet is an order-independent set of roles, kept sorted and deduplicated.
type RoleSet []Role

// NewRoleSet normalizes the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, 0, len(roles))
	for _, role := range roles {
		if !slices.Contains(set, role) {
			set = append(set, role)
		}
	}
	slices.Sort(set)
	return set
}

// ParseRoleSet converts raw tags, failing on the first unknown one.
func ParseRoleSet(tags []string) (RoleSet, error) {
	roles := make([]Role, 0, len(tags))
	for _, tag := range tags {
		role, err := ParseRole(tag)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return NewRoleSet(roles...), nil
}

// Has reports whether role is part of the set.
func (s RoleSet) Has(role Role) bool {
	return slices.Contains(s, role)
}

// Strings returns the role tags.
func (s RoleSet) Strings() []string {
	out := make([]string, len(s))
	for i, role := range s {
		out[i] = string(role)
	}
	return out
}

// MarshalRoles serializes roles the way they are stored in the drivers table.
func MarshalRoles(s RoleSet) (string, error) {
	raw, err := json.Marshal(s.Strings())
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// UnmarshalRoles parses the stored JSON list, rejecting unknown tags.
func UnmarshalRoles(raw string) (RoleSet, error) {
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("decode roles: %w", err)
	}
	return ParseRoleSet(tags)
}
