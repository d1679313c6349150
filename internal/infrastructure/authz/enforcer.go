// Package authz provides capability-based access control backed by casbin.
package authz

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"sips/internal/shared/logger"
)

// rbacModel is an RBAC model with role inheritance. Policies are seeded in
// code at startup; there is no persistent policy storage.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	e := &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}

	if err := e.seedPolicies(); err != nil {
		return nil, err
	}

	return e, nil
}

// seedPolicies installs the role capability matrix. Admin inherits every
// user capability plus moderation and account management.
func (e *Enforcer) seedPolicies() error {
	policies := [][]string{
		{"user", "recipe", "create"},
		{"user", "recipe", "update_own"},
		{"user", "recipe", "delete_own"},
		{"user", "engagement", "vote"},
		{"user", "engagement", "favorite"},
		{"user", "token", "read_own"},
		{"user", "ai", "generate"},
		{"user", "billing", "checkout"},
		{"user", "ticket", "create"},

		{"admin", "recipe", "moderate"},
		{"admin", "recipe", "delete_any"},
		{"admin", "user", "list"},
		{"admin", "user", "grant_tokens"},
		{"admin", "ticket", "manage"},
		{"admin", "stats", "read"},
	}

	for _, policy := range policies {
		if _, err := e.enforcer.AddPolicy(policy); err != nil {
			e.logger.Errorw("failed to add policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if _, err := e.enforcer.AddGroupingPolicy("admin", "user"); err != nil {
		return fmt.Errorf("failed to add role inheritance: %w", err)
	}

	return nil
}

// Enforce reports whether the given role may perform action on resource.
func (e *Enforcer) Enforce(role string, resource string, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, resource, action)
	if err != nil {
		e.logger.Errorw("capability check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("capability check failed: %w", err)
	}

	return allowed, nil
}
