package domain

import "fmt"

// IdentityKind tags which variant an Identity holds.
type IdentityKind int

const (
	IdentityAnonymous IdentityKind = iota
	IdentityAuthenticated
	IdentityGuest
)

func (k IdentityKind) String() string {
	switch k {
	case IdentityAuthenticated:
		return "authenticated"
	case IdentityGuest:
		return "guest"
	default:
		return "anonymous"
	}
}

// Identity is the caller on whose behalf a request runs.
// Exactly one of UserID or GuestID is set, according to Kind.
type Identity struct {
	kind    IdentityKind
	userID  string
	guestID string
}

func Authenticated(userID string) Identity {
	return Identity{kind: IdentityAuthenticated, userID: userID}
}

func Guest(guestID string) Identity {
	return Identity{kind: IdentityGuest, guestID: guestID}
}

func Anonymous() Identity {
	return Identity{kind: IdentityAnonymous}
}

func (i Identity) Kind() IdentityKind { return i.kind }

// UserID returns the authenticated user's id and whether the identity is authenticated.
func (i Identity) UserID() (string, bool) {
	return i.userID, i.kind == IdentityAuthenticated
}

// GuestID returns the guest id and whether the identity is a guest.
func (i Identity) GuestID() (string, bool) {
	return i.guestID, i.kind == IdentityGuest
}

// IsAnonymous reports whether no user or guest could be resolved.
func (i Identity) IsAnonymous() bool {
	return i.kind == IdentityAnonymous
}

// DistinctID is a stable key for analytics and logging.
func (i Identity) DistinctID() string {
	switch i.kind {
	case IdentityAuthenticated:
		return i.userID
	case IdentityGuest:
		return "guest:" + i.guestID
	default:
		return ""
	}
}

func (i Identity) String() string {
	switch i.kind {
	case IdentityAuthenticated:
		return fmt.Sprintf("user(%s)", i.userID)
	case IdentityGuest:
		return fmt.Sprintf("guest(%s)", i.guestID)
	default:
		return "anonymous"
	}
}
