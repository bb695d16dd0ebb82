package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/betracked/sessionkit/pkg/session"
)

func TestStatus_CanTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		from session.Status
		to   session.Status
		want bool
	}{
		{"start enters loading", session.StatusUninitialized, session.StatusLoading, true},
		{"logout before start", session.StatusUninitialized, session.StatusUnauthenticated, true},
		{"loading resolves authenticated", session.StatusLoading, session.StatusAuthenticated, true},
		{"loading resolves unauthenticated", session.StatusLoading, session.StatusUnauthenticated, true},
		{"session invalidated", session.StatusAuthenticated, session.StatusUnauthenticated, true},
		{"login succeeds", session.StatusUnauthenticated, session.StatusAuthenticated, true},
		{"refresh keeps authentication", session.StatusAuthenticated, session.StatusAuthenticated, true},
		{"loading is never re-entered", session.StatusAuthenticated, session.StatusLoading, false},
		{"loading is never re-entered after logout", session.StatusUnauthenticated, session.StatusLoading, false},
		{"cannot authenticate before start", session.StatusUninitialized, session.StatusAuthenticated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.from.CanTransition(tt.to))
		})
	}
}

func TestStatus_IsResolved(t *testing.T) {
	t.Parallel()

	assert.False(t, session.StatusUninitialized.IsResolved())
	assert.False(t, session.StatusLoading.IsResolved())
	assert.True(t, session.StatusAuthenticated.IsResolved())
	assert.True(t, session.StatusUnauthenticated.IsResolved())
}
