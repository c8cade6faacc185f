package pageController

import (
	"net/http"
	"recipeserver/middlewares"
	"recipeserver/models"
)

// HandleSuccess is the return route the processor redirects to after a
// completed payment. Which recipe was paid for is learned solely from the
// recipe_id query parameter; a visit without one is treated as a direct hit
// and bounced to the catalog. The unlock cookie is only rewritten when the
// set actually changed, so reloading or back-buttoning onto this page is a
// no-op. No charge happens here; the charge already happened upstream.
func HandleSuccess(w http.ResponseWriter, r *http.Request) {
	recipeID := r.URL.Query().Get("recipe_id")
	if recipeID == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	recipe, err := models.FindRecipe(recipeID)
	if err != nil {
		renderNotFound(w)
		return
	}

	unlocks := middlewares.RequestUnlocks(r)
	if unlocks.Add(recipe.ID) {
		middlewares.WriteUnlocks(w, unlocks)
	}

	render(w, http.StatusOK, "success.html", struct {
		Recipe models.Recipe
	}{recipe})
}
