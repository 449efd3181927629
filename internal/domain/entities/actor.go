package entities

// ActorRole is the authenticated caller's role as asserted by the upstream
// identity layer. The workflow-service trusts the assertion and only decides
// whether the role may perform a given operation.

type ActorRole string

const (
	RoleCustomer ActorRole = "customer"
	RoleMechanic ActorRole = "mechanic"
	RoleAdmin    ActorRole = "admin"
)

func (r ActorRole) Valid() bool {
	switch r {
	case RoleCustomer, RoleMechanic, RoleAdmin:
		return true
	}
	return false
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	ID   string    `json:"id"`
	Role ActorRole `json:"role"`
}

// Is reports whether the actor holds any of the given roles. Admin passes
// every role check; ownership checks still apply separately.
func (a Actor) Is(roles ...ActorRole) bool {
	if a.Role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}
