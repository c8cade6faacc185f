package recipeController

import (
	"fmt"
	"log"
	"net/http"
	"recipeserver/common"
	"recipeserver/export"
	"recipeserver/models"
)

// Renderer is installed with the live Chrome rasterizer; tests swap in a
// fake so no browser is launched.
var Renderer = &export.Renderer{Rasterizer: &export.ChromeRasterizer{}}

// HandleExportRecipe streams the recipe as a styled single-page PDF.
// Rendered documents are cached in Redis when a cache is configured, since a
// headless-Chrome render is the most expensive operation in the server.
func HandleExportRecipe(w http.ResponseWriter, r *http.Request) {
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

	if common.Rdb != nil {
		if cached, err := common.Rdb.Get(common.Ctx, "export:"+recipe.ID).Bytes(); err == nil {
			writePDF(w, cached, export.FileName(recipe.Name))
			return
		}
	}

	doc, filename, err := Renderer.Render(r.Context(), recipe)
	if err != nil {
		log.Printf("exporting recipe %s: %v", recipe.ID, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if common.Rdb != nil {
		if err := common.Rdb.Set(common.Ctx, "export:"+recipe.ID, doc, 0).Err(); err != nil {
			log.Printf("caching export for %s: %v", recipe.ID, err)
		}
	}

	writePDF(w, doc, filename)
}

func writePDF(w http.ResponseWriter, doc []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(doc)
}
