package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"bolajon-kids/catalog"
	"bolajon-kids/models"
	"bolajon-kids/repository"
	"bolajon-kids/selection"
	"bolajon-kids/service"
)

// OrderController handles order submissions from the landing page form
type OrderController struct {
	catalog   *catalog.Catalog
	submitter service.OrderSubmitterInterface
	archive   repository.OrderRepositoryInterface
	baseURL   string
}

// NewOrderController creates a new OrderController. archive may be nil
// when no database is configured.
func NewOrderController(
	cat *catalog.Catalog,
	submitter service.OrderSubmitterInterface,
	archive repository.OrderRepositoryInterface,
	baseURL string,
) *OrderController {
	return &OrderController{
		catalog:   cat,
		submitter: submitter,
		archive:   archive,
		baseURL:   baseURL,
	}
}

// SubmitOrder handles POST /api/orders
// The body carries the selection (same fields as the shareable link) plus
// the contact form. Name and phone are mandatory; everything else is
// optional. The response mirrors the pipeline result:
// {"success": true} or {"success": false, "error": "Failed to submit order"}.
// Example request:
// POST /api/orders
// {
//   "product": "kids-sportswear-set",
//   "color": "gray",
//   "size": 120,
//   "lang": "en",
//   "slide": 0,
//   "customerName": "Aziz Karimov",
//   "customerPhone": "+998901234567",
//   "customerDistrict": "Chilonzor",
//   "customerAddress": "12-kvartal, 5-uy",
//   "comment": ""
// }
func (c *OrderController) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SubmitOrder: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		log.Printf("❌ SubmitOrder: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SubmitOrder: Failed to decode request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	// The form layer validates these too, but never trust the client
	if strings.TrimSpace(req.CustomerName) == "" {
		log.Printf("❌ SubmitOrder: customerName is required")
		http.Error(w, "customerName is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		log.Printf("❌ SubmitOrder: customerPhone is required")
		http.Error(w, "customerPhone is required", http.StatusBadRequest)
		return
	}

	record := c.buildOrderRecord(&req)
	result := c.submitter.SubmitOrder(r.Context(), record)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Printf("❌ SubmitOrder: Error encoding response: %v", err)
	}
}

// buildOrderRecord assembles the immutable order snapshot from the
// request's selection fields and contact fields. The selection goes
// through the same resolution as GET /api/state, so an order built from a
// stale or hand-edited link still references real catalog entries.
func (c *OrderController) buildOrderRecord(req *models.CreateOrderRequest) *models.OrderRecord {
	params := url.Values{
		selection.ParamProduct: {req.Product},
		selection.ParamColor:   {req.Color},
		selection.ParamSize:    {strconv.Itoa(req.Size)},
		selection.ParamLang:    {string(req.Lang)},
		selection.ParamSlide:   {strconv.Itoa(req.Slide)},
	}
	sel, _ := selection.FromLinkParams(params, c.catalog)

	product := sel.Product
	color := sel.Color()
	images := sel.Images()

	ageLabel := ""
	if sv := sel.SizeVariant(); sv != nil {
		ageLabel = sv.AgeLabel.Get(sel.Lang)
	}

	return &models.OrderRecord{
		ProductID:            product.ID,
		ProductName:          product.Name.Get(sel.Lang),
		Price:                product.Price,
		Currency:             product.Currency,
		SelectedColorID:      color.ID,
		SelectedColorLabel:   color.Label.Get(sel.Lang),
		SelectedSize:         sel.Size,
		SelectedSizeAgeLabel: ageLabel,
		CurrentImageURL:      c.baseURL + images[sel.Slide],
		Language:             sel.Lang,
		CustomerName:         strings.TrimSpace(req.CustomerName),
		CustomerPhone:        strings.TrimSpace(req.CustomerPhone),
		CustomerDistrict:     strings.TrimSpace(req.CustomerDistrict),
		CustomerAddress:      strings.TrimSpace(req.CustomerAddress),
		Comment:              strings.TrimSpace(req.Comment),
		Timestamp:            time.Now().UTC().Format(time.RFC3339),
	}
}

// ListOrders handles GET /admin/orders
// Returns the most recent archived orders. Responds 503 when the archive
// database is not configured.
func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if c.archive == nil {
		http.Error(w, "Order archive not configured", http.StatusServiceUnavailable)
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	orders, err := c.archive.List(context.Background(), limit)
	if err != nil {
		log.Printf("❌ ListOrders: Error listing orders: %v", err)
		http.Error(w, "Failed to list orders", http.StatusInternalServerError)
		return
	}

	writeJSON(w, models.ArchivedOrderListResponse{Orders: orders})
}
