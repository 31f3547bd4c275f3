package router

import (
	"net/http"
	"strings"

	"bolajon-kids/app/controller"
)

type Controllers struct {
	State    *controller.StateController
	Product  *controller.ProductController
	Order    *controller.OrderController
	Telegram *controller.TelegramController
	Image    *controller.ImageController
	Lookbook *controller.LookbookController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// View-state resolution for the landing page
	http.HandleFunc("/api/state", controllers.State.GetState)

	// Catalog routes
	http.HandleFunc("/api/products", controllers.Product.ListProducts)
	http.HandleFunc("/api/products/", controllers.Product.GetProduct)
	http.HandleFunc("/api/size-guides/", controllers.Product.GetSizeGuide)

	// Order submission
	http.HandleFunc("/api/orders", controllers.Order.SubmitOrder)

	// Telegram intermediary (credentials stay server-side)
	http.HandleFunc("/api/telegram", controllers.Telegram.Notify)

	// Optimized product photos
	http.HandleFunc("/images/", controllers.Image.GetImage)

	// Lookbook render page used by headless Chrome
	http.HandleFunc("/lookbook/render", controllers.Lookbook.Render)

	// Admin routes
	http.HandleFunc("/admin/orders", controllers.Order.ListOrders)
	http.HandleFunc("/admin/lookbook.pdf", controllers.Lookbook.GetPDF)

	// Static assets for the lookbook template
	http.HandleFunc("/static/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		// Serve from the working directory, but never above it
		if strings.Contains(r.URL.Path, "..") {
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, "."+r.URL.Path)
	})
}
