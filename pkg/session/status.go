package session

// Status is the controller's position in the session lifecycle.
type Status string

const (
	// StatusUninitialized is the state before Start is called.
	StatusUninitialized Status = "uninitialized"

	// StatusLoading covers the single initial-resolution window.
	StatusLoading Status = "loading"

	// StatusAuthenticated means a profile is loaded and tokens are stored.
	StatusAuthenticated Status = "authenticated"

	// StatusUnauthenticated means no valid session exists.
	StatusUnauthenticated Status = "unauthenticated"
)

// validTransitions is the legal-transition table. Loading is entered exactly
// once; self-loops cover re-entrant operations (refreshing an authenticated
// session, logging out twice).
var validTransitions = map[Status][]Status{
	StatusUninitialized:   {StatusLoading, StatusUnauthenticated},
	StatusLoading:         {StatusAuthenticated, StatusUnauthenticated},
	StatusAuthenticated:   {StatusAuthenticated, StatusUnauthenticated},
	StatusUnauthenticated: {StatusAuthenticated, StatusUnauthenticated},
}

// CanTransition reports whether moving from s to next is legal.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsResolved reports whether the initial resolution has completed.
func (s Status) IsResolved() bool {
	return s == StatusAuthenticated || s == StatusUnauthenticated
}
