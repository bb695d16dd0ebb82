package tokenstore_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betracked/sessionkit/pkg/tokenstore"
)

// fakeEdge records mirror calls and can be told to fail them.
type fakeEdge struct {
	mu          sync.Mutex
	setCalls    int
	clearCalls  int
	access      string
	refresh     string
	failWrites  bool
	checkResult bool
}

func (f *fakeEdge) SetTokens(ctx context.Context, access, refresh string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failWrites {
		return errors.New("edge down")
	}
	f.access, f.refresh = access, refresh
	return nil
}

func (f *fakeEdge) ClearTokens(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	if f.failWrites {
		return errors.New("edge down")
	}
	f.access, f.refresh = "", ""
	return nil
}

func (f *fakeEdge) Tokens(ctx context.Context) (string, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.access, f.refresh, nil
}

func (f *fakeEdge) Check(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.checkResult, nil
}

func TestManager_SetTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("writes locally and mirrors to edge", func(t *testing.T) {
		t.Parallel()
		edge := &fakeEdge{}
		m := tokenstore.New(tokenstore.WithEdgeSyncer(edge))

		m.SetTokens(ctx, "access-1", "refresh-1")

		access, ok := m.AccessToken()
		require.True(t, ok)
		assert.Equal(t, "access-1", access)

		refresh, ok := m.RefreshToken()
		require.True(t, ok)
		assert.Equal(t, "refresh-1", refresh)

		assert.Equal(t, 1, edge.setCalls)
		assert.Equal(t, "access-1", edge.access)
	})

	t.Run("mirror failure does not affect local copy", func(t *testing.T) {
		t.Parallel()
		edge := &fakeEdge{failWrites: true}
		m := tokenstore.New(tokenstore.WithEdgeSyncer(edge))

		m.SetTokens(ctx, "access-1", "refresh-1")

		access, ok := m.AccessToken()
		require.True(t, ok)
		assert.Equal(t, "access-1", access)
		assert.Equal(t, 1, edge.setCalls)
	})

	t.Run("works without an edge syncer", func(t *testing.T) {
		t.Parallel()
		m := tokenstore.New()

		m.SetTokens(ctx, "access-1", "refresh-1")

		access, ok := m.AccessToken()
		require.True(t, ok)
		assert.Equal(t, "access-1", access)
	})
}

func TestManager_ClearTokens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("removes both tokens and clears the edge", func(t *testing.T) {
		t.Parallel()
		edge := &fakeEdge{}
		m := tokenstore.New(tokenstore.WithEdgeSyncer(edge))

		m.SetTokens(ctx, "access-1", "refresh-1")
		m.ClearTokens(ctx)

		_, ok := m.AccessToken()
		assert.False(t, ok)
		_, ok = m.RefreshToken()
		assert.False(t, ok)
		assert.Equal(t, 1, edge.clearCalls)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		m := tokenstore.New()

		m.SetTokens(ctx, "access-1", "refresh-1")
		m.ClearTokens(ctx)
		m.ClearTokens(ctx)

		_, ok := m.AccessToken()
		assert.False(t, ok)
		_, ok = m.RefreshToken()
		assert.False(t, ok)
	})

	t.Run("clear failure still clears local copy", func(t *testing.T) {
		t.Parallel()
		edge := &fakeEdge{failWrites: true}
		m := tokenstore.New(tokenstore.WithEdgeSyncer(edge))

		m.SetTokens(ctx, "access-1", "refresh-1")
		m.ClearTokens(ctx)

		_, ok := m.AccessToken()
		assert.False(t, ok)
	})
}

func TestManager_EdgeHelpers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("read-back", func(t *testing.T) {
		t.Parallel()
		edge := &fakeEdge{checkResult: true}
		m := tokenstore.New(tokenstore.WithEdgeSyncer(edge))

		m.SetTokens(ctx, "access-1", "refresh-1")

		access, refresh, err := m.EdgeTokens(ctx)
		require.NoError(t, err)
		assert.Equal(t, "access-1", access)
		assert.Equal(t, "refresh-1", refresh)

		ok, err := m.EdgeCheck(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("no edge configured", func(t *testing.T) {
		t.Parallel()
		m := tokenstore.New()

		_, _, err := m.EdgeTokens(ctx)
		assert.ErrorIs(t, err, tokenstore.ErrEdgeUnavailable)

		_, err = m.EdgeCheck(ctx)
		assert.ErrorIs(t, err, tokenstore.ErrEdgeUnavailable)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	s := tokenstore.NewMemoryStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	s.Set("key", "value")
	v, ok := s.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	s.Delete("key")
	_, ok = s.Get("key")
	assert.False(t, ok)

	// Deleting an absent key is a no-op
	s.Delete("key")
}
