package controller

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"bolajon-kids/service"
)

// staticImageDir is where the original product photos live on disk
const staticImageDir = "static/images"

// ImageController serves product photos, optimized and cached on demand
type ImageController struct{}

// NewImageController creates a new ImageController
func NewImageController() *ImageController {
	return &ImageController{}
}

// GetImage handles GET /images/:slug/:file?size=thumb|medium
// Without a size param the original file is served as-is. With one, the
// photo is converted to a resized JPEG once and then served from the
// disk cache.
func (c *ImageController) GetImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rel := strings.TrimPrefix(r.URL.Path, "/images/")
	// Reject anything trying to escape the image directory
	if rel == "" || strings.Contains(rel, "..") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	srcPath := filepath.Join(staticImageDir, filepath.FromSlash(rel))

	size := r.URL.Query().Get("size")
	if size == "" {
		http.ServeFile(w, r, srcPath)
		return
	}

	// Cache key: slug_file_size.jpg
	cachePath := service.GetCachePath(
		strings.ReplaceAll(filepath.Dir(rel), "/", "_"),
		strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel)),
		size,
	)

	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Header().Set("Cache-Control", "public, max-age=86400")
			w.Write(data)
			return
		}
		log.Printf("⚠️  GetImage: Cache read failed, regenerating: %v", err)
	}

	original, err := os.ReadFile(srcPath)
	if err != nil {
		log.Printf("❌ GetImage: Image not found: %s", srcPath)
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	optimized, err := service.OptimizeImage(original, size)
	if err != nil {
		log.Printf("❌ GetImage: Failed to optimize image %s: %v", srcPath, err)
		http.Error(w, "Failed to process image", http.StatusInternalServerError)
		return
	}

	if err := service.SaveToCache(cachePath, optimized); err != nil {
		// Serve the result anyway, only caching failed
		log.Printf("⚠️  GetImage: Failed to cache image: %v", err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(optimized)
}
