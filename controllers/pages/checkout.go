package pageController

import (
	"log"
	"net/http"
	"recipeserver/middlewares"
	"recipeserver/models"

	stripeCheckoutController "recipeserver/controllers/stripe/checkout"

	"github.com/gorilla/mux"
)

// HandleCheckout is the page-flow unlock action: it creates the checkout
// session and hands the browser over to the processor's hosted page. On
// failure the detail page re-renders with the error inline and the unlock
// button stays active.
func HandleCheckout(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	recipe, err := models.FindRecipe(vars["id"])
	if err != nil {
		renderNotFound(w)
		return
	}

	sess, err := stripeCheckoutController.NewSession(recipe)
	if err != nil {
		log.Printf("creating checkout session for %s: %v", recipe.ID, err)
		unlocks := middlewares.RequestUnlocks(r)
		render(w, http.StatusOK, "recipe.html", recipePageData{
			Recipe:   recipe,
			Unlocked: unlocks.Contains(recipe.ID),
			Error:    err.Error(),
		})
		return
	}

	http.Redirect(w, r, sess.URL, http.StatusSeeOther)
}
