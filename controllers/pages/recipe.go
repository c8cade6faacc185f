package pageController

import (
	"net/http"
	"recipeserver/middlewares"
	"recipeserver/models"

	"github.com/gorilla/mux"
)

type recipePageData struct {
	Recipe   models.Recipe
	Unlocked bool
	Error    string
}

// HandleRecipe shows the detail page: the full recipe when the unlock set
// already holds the id, otherwise the locked view with the unlock button.
func HandleRecipe(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	recipe, err := models.FindRecipe(vars["id"])
	if err != nil {
		renderNotFound(w)
		return
	}

	unlocks := middlewares.RequestUnlocks(r)

	render(w, http.StatusOK, "recipe.html", recipePageData{
		Recipe:   recipe,
		Unlocked: unlocks.Contains(recipe.ID),
	})
}
