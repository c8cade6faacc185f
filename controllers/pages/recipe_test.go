package pageController

import (
	"net/http"
	"net/http/httptest"
	"recipeserver/common"
	"recipeserver/middlewares"
	"testing"

	stripeCheckoutController "recipeserver/controllers/stripe/checkout"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func pageRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(middlewares.Unlocks)
	r.HandleFunc("/recipes/{id}", HandleRecipe).Methods("GET")
	r.HandleFunc("/recipes/{id}/checkout", HandleCheckout).Methods("POST")
	return r
}

func TestRecipePageLocked(t *testing.T) {
	req := httptest.NewRequest("GET", "/recipes/vegetable-stir-fry", nil)
	rec := httptest.NewRecorder()
	pageRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Quick Vegetable Stir-Fry")
	assert.Contains(t, body, "Unlock Full Recipe")
	assert.NotContains(t, body, "Step 1:")
}

func TestRecipePageUnlocked(t *testing.T) {
	req := httptest.NewRequest("GET", "/recipes/vegetable-stir-fry", nil)
	req.AddCookie(&http.Cookie{
		Name:  middlewares.UnlocksCookieName,
		Value: "%5B%22vegetable-stir-fry%22%5D",
	})
	rec := httptest.NewRecorder()
	pageRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Step 1:")
	assert.Contains(t, body, "Step 6:")
	assert.Contains(t, body, "Download Recipe PDF")
	assert.NotContains(t, body, "Unlock Full Recipe")
}

func TestRecipePageUnknownID(t *testing.T) {
	req := httptest.NewRequest("GET", "/recipes/missing-recipe", nil)
	rec := httptest.NewRecorder()
	pageRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutPageRedirectsToProcessor(t *testing.T) {
	orig := common.Config
	common.Config = &common.Config_T{BaseURL: "http://localhost:3000", Currency: "usd"}
	t.Cleanup(func() { common.Config = orig })

	origNew := stripeCheckoutController.NewStripeSession
	stripeCheckoutController.NewStripeSession = func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return &stripe.CheckoutSession{ID: "sess_1", URL: "https://checkout.stripe.com/pay/sess_1"}, nil
	}
	t.Cleanup(func() { stripeCheckoutController.NewStripeSession = origNew })

	req := httptest.NewRequest("POST", "/recipes/vegetable-stir-fry/checkout", nil)
	rec := httptest.NewRecorder()
	pageRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "https://checkout.stripe.com/pay/sess_1", rec.Header().Get("Location"))
}

func TestCheckoutPageFailureKeepsButtonActive(t *testing.T) {
	orig := common.Config
	common.Config = &common.Config_T{BaseURL: "http://localhost:3000", Currency: "usd"}
	t.Cleanup(func() { common.Config = orig })

	origNew := stripeCheckoutController.NewStripeSession
	stripeCheckoutController.NewStripeSession = func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
		return nil, assert.AnError
	}
	t.Cleanup(func() { stripeCheckoutController.NewStripeSession = origNew })

	req := httptest.NewRequest("POST", "/recipes/vegetable-stir-fry/checkout", nil)
	rec := httptest.NewRecorder()
	pageRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, assert.AnError.Error())
	// The unlock form must survive a failed initiation.
	assert.Contains(t, body, "Unlock Full Recipe")
}
