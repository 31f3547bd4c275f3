package controller

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"bolajon-kids/catalog"
)

// ProductController serves the read-only catalog
type ProductController struct {
	catalog *catalog.Catalog
}

// NewProductController creates a new ProductController
func NewProductController(cat *catalog.Catalog) *ProductController {
	return &ProductController{catalog: cat}
}

// ListProducts handles GET /api/products
func (c *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, c.catalog.Products())
}

// GetProduct handles GET /api/products/:slug
// The slug segment also accepts the product id.
func (c *ProductController) GetProduct(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	slug := strings.TrimPrefix(r.URL.Path, "/api/products/")
	product := c.catalog.ProductBySlug(slug)
	if product == nil {
		log.Printf("❌ GetProduct: Product not found: %s", slug)
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	writeJSON(w, product)
}

// GetSizeGuide handles GET /api/size-guides/:id
func (c *ProductController) GetSizeGuide(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/size-guides/")
	guide := c.catalog.SizeGuideByID(id)
	if guide == nil {
		log.Printf("❌ GetSizeGuide: Size guide not found: %s", id)
		http.Error(w, "Size guide not found", http.StatusNotFound)
		return
	}

	writeJSON(w, guide)
}

// writeJSON writes a JSON response with status 200
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ writeJSON: Error encoding response: %v", err)
	}
}
