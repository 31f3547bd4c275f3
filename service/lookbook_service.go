package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"bolajon-kids/catalog"
	"bolajon-kids/models"
	"bolajon-kids/utils"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// LookbookService renders a printable one-pager per product (photos,
// color swatches, sizes, price) for sharing with resellers and for the
// offline showroom binder.
type LookbookService struct {
	catalog *catalog.Catalog
	baseURL string // Base URL for image endpoints (e.g., "http://localhost:8080")
}

// NewLookbookService creates a new LookbookService
func NewLookbookService(cat *catalog.Catalog, baseURL string) *LookbookService {
	return &LookbookService{
		catalog: cat,
		baseURL: baseURL,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// lookbookColor is one color row in the template
type lookbookColor struct {
	Label    string
	Hex      string
	ImageURL string
}

// lookbookProduct is one product page in the template
type lookbookProduct struct {
	Name        string
	ID          string
	Price       string
	Description string
	Fabric      string
	Quality     string
	Sizes       []string
	Colors      []lookbookColor
}

// RenderLookbookHTML renders the lookbook HTML for the given language
func (s *LookbookService) RenderLookbookHTML(lang models.Language) (string, error) {
	if !lang.IsValid() {
		lang = models.LanguageRu
	}

	var pages []lookbookProduct
	for _, p := range s.catalog.Products() {
		lp := lookbookProduct{
			Name:        p.Name.Get(lang),
			ID:          p.ID,
			Price:       fmt.Sprintf("%s %s", utils.FormatUZS(p.Price), p.Currency),
			Description: p.Description.General.Get(lang),
			Fabric:      p.Description.Fabric.Get(lang),
			Quality:     p.Description.Quality.Get(lang),
		}
		for _, sz := range p.Sizes {
			lp.Sizes = append(lp.Sizes, fmt.Sprintf("%d sm — %s", sz.Value, sz.AgeLabel.Get(lang)))
		}
		for _, c := range p.Colors {
			img := c.Images[0]
			if c.Thumbnail != "" {
				img = c.Thumbnail
			}
			lp.Colors = append(lp.Colors, lookbookColor{
				Label:    c.Label.Get(lang),
				Hex:      c.Hex,
				ImageURL: s.baseURL + img,
			})
		}
		pages = append(pages, lp)
	}

	templateData := struct {
		Lang     string
		Products []lookbookProduct
	}{
		Lang:     string(lang),
		Products: pages,
	}

	templatePath := filepath.Join("templates", "lookbook.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// GeneratePDF renders the lookbook page in headless Chrome and prints it
// to an A4 PDF. lang selects the language of the rendered page.
func (s *LookbookService) GeneratePDF(ctx context.Context, lang models.Language) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Detect Chrome/Chromium path and configure chromedp
	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("enable-print-preview", true),
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/lookbook/render?lang=%s", s.baseURL, lang)

	var pdfBuf []byte

	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(1500*time.Millisecond), // Wait for product photos to load
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69", page breaks handled by CSS
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return pdfBuf, nil
}
