package middlewares

import (
	"net/http"
	"net/http/httptest"
	"recipeserver/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestThrough(t *testing.T, cookie *http.Cookie) models.Unlocks {
	t.Helper()

	var got models.Unlocks
	handler := Unlocks(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestUnlocks(r)
	}))

	req := httptest.NewRequest("GET", "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestUnlocksMiddlewareParsesCookie(t *testing.T) {
	unlocks := requestThrough(t, &http.Cookie{
		Name:  UnlocksCookieName,
		Value: "%5B%22pasta-carbonara%22%5D",
	})
	assert.True(t, unlocks.Contains("pasta-carbonara"))
}

func TestUnlocksMiddlewareToleratesAbsence(t *testing.T) {
	unlocks := requestThrough(t, nil)
	assert.Empty(t, unlocks.IDs())
}

func TestUnlocksMiddlewareToleratesGarbage(t *testing.T) {
	unlocks := requestThrough(t, &http.Cookie{Name: UnlocksCookieName, Value: "%zz"})
	assert.Empty(t, unlocks.IDs())
}

func TestWriteUnlocksRoundTrip(t *testing.T) {
	var unlocks models.Unlocks
	unlocks.Add("vegetable-stir-fry")

	rec := httptest.NewRecorder()
	WriteUnlocks(rec, unlocks)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, UnlocksCookieName, cookies[0].Name)
	assert.Equal(t, "/", cookies[0].Path)

	restored := requestThrough(t, cookies[0])
	assert.Equal(t, []string{"vegetable-stir-fry"}, restored.IDs())
}
