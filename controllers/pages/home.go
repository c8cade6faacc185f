package pageController

import (
	"net/http"
	"recipeserver/models"
)

func HandleHome(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "home.html", struct {
		Recipes []models.Recipe
	}{models.Recipes()})
}
