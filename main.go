package main

import (
	"log"
	"net/http"
	"recipeserver/common"
	"recipeserver/middlewares"

	pageController "recipeserver/controllers/pages"
	recipeController "recipeserver/controllers/recipes"
	stripeCheckoutController "recipeserver/controllers/stripe/checkout"

	"github.com/gorilla/mux"
)

func newRouter() *mux.Router {
	r := mux.NewRouter()

	r.Use(middlewares.Cors)
	r.Use(middlewares.Unlocks)

	r.HandleFunc("/api/create-checkout-session", stripeCheckoutController.HandleCreateCheckoutSession).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/get-recipe-data", recipeController.HandleGetRecipeData).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/recipes", recipeController.HandleGetRecipes).Methods("GET", "OPTIONS")
	r.HandleFunc("/api/export-recipe", recipeController.HandleExportRecipe).Methods("GET", "OPTIONS")

	r.HandleFunc("/", pageController.HandleHome).Methods("GET")
	r.HandleFunc("/recipes/success", pageController.HandleSuccess).Methods("GET")
	r.HandleFunc("/recipes/cancel", pageController.HandleCancel).Methods("GET")
	r.HandleFunc("/recipes/{id}", pageController.HandleRecipe).Methods("GET")
	r.HandleFunc("/recipes/{id}/checkout", pageController.HandleCheckout).Methods("POST")

	return r
}

func main() {
	common.Load()

	r := newRouter()

	log.Printf("Server starting on :%s", common.Config.Port)
	log.Fatal(http.ListenAndServe(":"+common.Config.Port, r))
}
