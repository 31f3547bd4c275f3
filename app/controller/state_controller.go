package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"bolajon-kids/catalog"
	"bolajon-kids/models"
	"bolajon-kids/selection"
)

// StateController resolves the shareable-link parameters into view-state
type StateController struct {
	catalog *catalog.Catalog
}

// NewStateController creates a new StateController
func NewStateController(cat *catalog.Catalog) *StateController {
	return &StateController{catalog: cat}
}

// GetState handles GET /api/state
// Reads the five link parameters (product, color, size, lang, slide),
// applies defaults for missing or invalid values and returns the resolved
// selection plus its canonical serialization.
// Example request:
// GET /api/state?product=kids-sportswear-set&color=gray&size=120&lang=en&slide=2
func (c *StateController) GetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sel, fresh := selection.FromLinkParams(r.URL.Query(), c.catalog)

	resp := models.StateResponse{
		Product:        sel.Product.Slug,
		Color:          sel.ColorID,
		Size:           sel.Size,
		Lang:           sel.Lang,
		Slide:          sel.Slide,
		Images:         sel.Images(),
		CanonicalQuery: sel.ToLinkParams().Encode(),
		Fresh:          fresh,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("❌ GetState: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
