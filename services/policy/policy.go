// Package policy decides which principals may perform which actions.
package policy

import (
	"sync"

	"dentalcare/models"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

type Action string

const (
	ActionListUsers      Action = "users:list"
	ActionGrantAdmin     Action = "admin:grant"
	ActionCheckAdmin     Action = "admin:check"
	ActionReadBookings   Action = "bookings:read"
	ActionPayBooking     Action = "booking:pay"
	ActionCreatePayment  Action = "payment:create"
	ActionManageDoctors  Action = "doctors:manage"
	ActionManageCatalog  Action = "catalog:manage"
	ActionReadAnyBooking Action = "bookings:read-any"
)

type Decision int

const (
	Deny Decision = iota
	Allow
)

func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Principal is the authenticated caller.
type Principal struct {
	Email string
	Role  string
}

func (p Principal) Authenticated() bool { return p.Email != "" }

func (p Principal) IsAdmin() bool { return p.Authenticated() && p.Role == models.RoleAdmin }

// Casbin subjects. Admins inherit every member permission.
const (
	subjectAnonymous = "anonymous"
	subjectMember    = "member"
	subjectAdmin     = "admin"
)

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

var rbacPolicies = [][]string{
	{subjectMember, string(ActionListUsers)},
	{subjectMember, string(ActionCheckAdmin)},
	{subjectMember, string(ActionReadBookings)},
	{subjectMember, string(ActionPayBooking)},
	{subjectMember, string(ActionCreatePayment)},
	{subjectAdmin, string(ActionGrantAdmin)},
	{subjectAdmin, string(ActionManageDoctors)},
	{subjectAdmin, string(ActionManageCatalog)},
	{subjectAdmin, string(ActionReadAnyBooking)},
}

var (
	enforcerOnce sync.Once
	enforcer     *casbin.Enforcer
	enforcerErr  error
)

// NewEnforcer builds the in-memory RBAC enforcer for the clinic roles.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(rbacPolicies); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(subjectAdmin, subjectMember); err != nil {
		return nil, err
	}
	return e, nil
}

func sharedEnforcer() (*casbin.Enforcer, error) {
	enforcerOnce.Do(func() {
		enforcer, enforcerErr = NewEnforcer()
	})
	return enforcer, enforcerErr
}

func subject(p Principal) string {
	switch {
	case p.IsAdmin():
		return subjectAdmin
	case p.Authenticated():
		return subjectMember
	default:
		return subjectAnonymous
	}
}

// Authorize returns Allow when p may perform action. Unknown actions are denied,
// as is everything when the enforcer cannot be evaluated.
func Authorize(p Principal, action Action) Decision {
	e, err := sharedEnforcer()
	if err != nil {
		zap.L().Error("policy: enforcer unavailable", zap.Error(err))
		return Deny
	}
	ok, err := e.Enforce(subject(p), string(action))
	if err != nil {
		zap.L().Error("policy: enforce failed", zap.String("action", string(action)), zap.Error(err))
		return Deny
	}
	if !ok {
		return Deny
	}
	return Allow
}
