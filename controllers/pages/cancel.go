package pageController

import (
	"net/http"
)

// HandleCancel is purely informational; nothing is mutated on cancellation.
func HandleCancel(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, "cancel.html", nil)
}
