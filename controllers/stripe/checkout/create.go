package stripeCheckoutController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"recipeserver/common"
	"recipeserver/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
)

type createCheckoutPayload struct {
	RecipeID string `json:"recipeId"`
}

type createCheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// NewStripeSession points at the live processor. Tests install a stub so no
// real session is ever created.
var NewStripeSession = session.New

// NewSession creates a one-time-payment checkout session for a recipe. The
// line item is derived from the catalog record; the success URL carries the
// recipe id plus a session placeholder the processor resolves at redirect
// time, and the cancel URL points back at the recipe detail page. Each call
// gets a fresh idempotency key since session creation is not safe to retry
// blindly.
func NewSession(recipe models.Recipe) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(common.Config.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Unlock Recipe: " + recipe.Name),
						Description: stripe.String("Access to full recipe steps."),
					},
					UnitAmount: stripe.Int64(recipe.PriceInCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(common.Config.BaseURL + "/recipes/success?session_id={CHECKOUT_SESSION_ID}&recipe_id=" + recipe.ID),
		CancelURL:  stripe.String(common.Config.BaseURL + "/recipes/" + recipe.ID),
		Metadata: map[string]string{
			"recipeId": recipe.ID,
		},
	}
	params.IdempotencyKey = stripe.String(uuid.New().String())

	return NewStripeSession(params)
}

func HandleCreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var payload createCheckoutPayload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		writeMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	recipe, err := models.FindRecipe(payload.RecipeID)
	if err != nil {
		writeMessage(w, "Recipe not found", http.StatusNotFound)
		return
	}

	sess, err := NewSession(recipe)
	if err != nil {
		// Processor failures are surfaced with the processor's message and
		// not retried.
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error": %s}`, quote(err.Error()))
		return
	}

	rawResponse, err := json.Marshal(createCheckoutResponse{SessionID: sess.ID, URL: sess.URL})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(rawResponse)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message": %s}`, quote(message))
}

func quote(s string) string {
	raw, _ := json.Marshal(s)
	return string(raw)
}
