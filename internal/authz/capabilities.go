// Package authz maps roles to capability sets. The role hierarchy lives in a
// casbin RBAC model built at startup; requests only consult the resolved sets.
package authz

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
)

type Capability string

const (
	QuizSubmit          Capability = "quiz:submit"
	QuizCreate          Capability = "quiz:create"
	RecommendationsRead Capability = "recommendations:read"
	InterestsCreate     Capability = "interests:create"
	InterestsManageOwn  Capability = "interests:manage_own"
	InterestsManageAny  Capability = "interests:manage_any"
	EventsTrack         Capability = "events:track"
)

var allCapabilities = []Capability{
	QuizSubmit, QuizCreate, RecommendationsRead,
	InterestsCreate, InterestsManageOwn, InterestsManageAny, EventsTrack,
}

const rbacModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act
`

var defaultPolicies = [][]string{
	{models.RoleStudent, string(QuizSubmit)},
	{models.RoleStudent, string(RecommendationsRead)},
	{models.RoleStudent, string(InterestsManageOwn)},
	{models.RoleStudent, string(EventsTrack)},
	{models.RoleSocietyAdmin, string(QuizCreate)},
	{models.RoleSocietyAdmin, string(InterestsCreate)},
	{models.RoleUniversityAdmin, string(InterestsManageAny)},
}

// role inherits from parent
var defaultGroupings = [][]string{
	{models.RoleSocietyAdmin, models.RoleStudent},
	{models.RoleUniversityAdmin, models.RoleSocietyAdmin},
}

// CapabilitySet is the resolved permission set of one role.
type CapabilitySet map[Capability]struct{}

func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Resolver holds the capability set of every known role.
type Resolver struct {
	sets map[string]CapabilitySet
}

func NewResolver() (*Resolver, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("parse rbac model: %w", err)
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	for _, p := range defaultPolicies {
		if _, err := enforcer.AddPolicy(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("add policy %v: %w", p, err)
		}
	}
	for _, g := range defaultGroupings {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, fmt.Errorf("add grouping %v: %w", g, err)
		}
	}

	roles := []string{models.RoleStudent, models.RoleSocietyAdmin, models.RoleUniversityAdmin}
	sets := make(map[string]CapabilitySet, len(roles))
	for _, role := range roles {
		set := CapabilitySet{}
		for _, c := range allCapabilities {
			ok, err := enforcer.Enforce(role, string(c))
			if err != nil {
				return nil, fmt.Errorf("enforce %s %s: %w", role, c, err)
			}
			if ok {
				set[c] = struct{}{}
			}
		}
		sets[role] = set
	}
	return &Resolver{sets: sets}, nil
}

// For returns the capability set of role. Unknown roles get an empty set.
func (r *Resolver) For(role string) CapabilitySet {
	if set, ok := r.sets[role]; ok {
		return set
	}
	return CapabilitySet{}
}
