package middlewares

import (
	"encoding/json"
	"net/http"
	"net/url"
	"recipeserver/models"

	"github.com/gorilla/context"
)

// UnlocksCookieName is the single client-persisted entry holding the JSON
// array of unlocked recipe ids. The server holds no copy and performs no
// verification that a charge completed; the cookie is trusted as-is.
const UnlocksCookieName = "paidRecipes"

const (
	unlocksContextKey   = "unlocks"
	unlocksCookieMaxAge = 365 * 24 * 60 * 60
)

// Unlocks parses the unlock cookie once per request and makes the resulting
// set available to handlers via RequestUnlocks.
func Unlocks(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		context.Set(r, unlocksContextKey, readUnlocks(r))
		next.ServeHTTP(w, r)
	})
}

// A missing or unreadable cookie is an empty set, never an error.
func readUnlocks(r *http.Request) models.Unlocks {
	cookie, err := r.Cookie(UnlocksCookieName)
	if err != nil {
		return models.Unlocks{}
	}

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return models.Unlocks{}
	}

	return models.ParseUnlocks(raw)
}

func RequestUnlocks(r *http.Request) models.Unlocks {
	if unlocks, ok := context.Get(r, unlocksContextKey).(models.Unlocks); ok {
		return unlocks
	}
	return models.Unlocks{}
}

// WriteUnlocks persists the unlock set back to the client. The JSON array is
// query-escaped because cookie values cannot carry quotes or commas raw.
func WriteUnlocks(w http.ResponseWriter, unlocks models.Unlocks) {
	raw, _ := json.Marshal(unlocks)

	http.SetCookie(w, &http.Cookie{
		Name:     UnlocksCookieName,
		Value:    url.QueryEscape(string(raw)),
		Path:     "/",
		MaxAge:   unlocksCookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}
