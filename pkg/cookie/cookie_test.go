package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betracked/sessionkit/pkg/cookie"
)

func TestManager_SetDefaults(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	m.Set(w, "token", "abc")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Equal(t, "abc", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.Empty(t, c.Domain, "cookies must stay host-only")
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.False(t, c.Secure)
}

func TestManager_SetOverrides(t *testing.T) {
	t.Parallel()
	m := cookie.New(cookie.WithSecure(true))

	w := httptest.NewRecorder()
	m.Set(w, "token", "abc",
		cookie.WithMaxAge(300),
		cookie.WithPath("/api"),
		cookie.WithSameSite(http.SameSiteStrictMode),
	)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, 300, c.MaxAge)
	assert.Equal(t, "/api", c.Path)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.True(t, c.Secure, "manager default carries over")
}

func TestManager_Get(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: "abc"})

		value, err := m.Get(r, "token")
		require.NoError(t, err)
		assert.Equal(t, "abc", value)
		assert.True(t, m.Has(r, "token"))
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.Get(r, "token")
		assert.ErrorIs(t, err, cookie.ErrCookieNotFound)
		assert.False(t, m.Has(r, "token"))
	})

	t.Run("empty value", func(t *testing.T) {
		t.Parallel()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "token", Value: ""})

		assert.False(t, m.Has(r, "token"))
	})
}

func TestManager_Delete(t *testing.T) {
	t.Parallel()
	m := cookie.New()

	w := httptest.NewRecorder()
	m.Delete(w, "token")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "token", c.Name)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
}
