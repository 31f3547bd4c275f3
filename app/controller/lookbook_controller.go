package controller

import (
	"log"
	"net/http"

	"bolajon-kids/models"
	"bolajon-kids/service"
)

// LookbookController serves the printable product lookbook
type LookbookController struct {
	lookbook *service.LookbookService
}

// NewLookbookController creates a new LookbookController
func NewLookbookController(lookbook *service.LookbookService) *LookbookController {
	return &LookbookController{lookbook: lookbook}
}

// Render handles GET /lookbook/render?lang=uz|ru|en
// Serves the lookbook as HTML; headless Chrome loads this page when
// printing the PDF.
func (c *LookbookController) Render(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := models.Language(r.URL.Query().Get("lang"))
	html, err := c.lookbook.RenderLookbookHTML(lang)
	if err != nil {
		log.Printf("❌ Render: Failed to render lookbook: %v", err)
		http.Error(w, "Failed to render lookbook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

// GetPDF handles GET /admin/lookbook.pdf?lang=uz|ru|en
func (c *LookbookController) GetPDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := models.Language(r.URL.Query().Get("lang"))
	if !lang.IsValid() {
		lang = models.LanguageRu
	}

	log.Printf("📄 GetPDF: Generating lookbook PDF (lang=%s)", lang)

	pdf, err := c.lookbook.GeneratePDF(r.Context(), lang)
	if err != nil {
		log.Printf("❌ GetPDF: Failed to generate PDF: %v", err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="lookbook.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}
