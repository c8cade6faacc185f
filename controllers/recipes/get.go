package recipeController

import (
	"encoding/json"
	"fmt"
	"net/http"
	"recipeserver/models"
)

// HandleGetRecipeData serves the full recipe record by id. The return page
// may be a fresh navigation context with no catalog in memory, so it re-reads
// everything from here. No entitlement check is performed: unlock state is
// client-held by design, so any caller who knows an id can read its content.
func HandleGetRecipeData(w http.ResponseWriter, r *http.Request) {
	recipeID := r.URL.Query().Get("recipe_id")
	if recipeID == "" {
		writeMessage(w, "Recipe ID is required", http.StatusBadRequest)
		return
	}

	recipe, err := models.FindRecipe(recipeID)
	if err != nil {
		writeMessage(w, "Recipe not found", http.StatusNotFound)
		return
	}

	jsonData, err := json.Marshal(recipe)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

func HandleGetRecipes(w http.ResponseWriter, r *http.Request) {
	jsonData, err := json.Marshal(models.Recipes())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(jsonData)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	raw, _ := json.Marshal(message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"message": %s}`, raw)
}
