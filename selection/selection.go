// Package selection implements the view-state of the landing page: the
// current choice of product, color, size, language and slide, kept in
// bidirectional sync with the shareable-link query parameters
// (product, color, size, lang, slide).
package selection

import (
	"net/url"
	"strconv"

	"bolajon-kids/catalog"
	"bolajon-kids/models"
)

const (
	// DefaultSize is the size value used when the link has no valid size param
	DefaultSize = 110
	// DefaultLanguage is the language used when the link has no valid lang param
	DefaultLanguage = models.LanguageRu
)

// Link parameter names
const (
	ParamProduct = "product"
	ParamColor   = "color"
	ParamSize    = "size"
	ParamLang    = "lang"
	ParamSlide   = "slide"
)

// Selection is the current view-state. It is owned by a single session;
// the shareable link is its only persistence.
type Selection struct {
	Product *models.Product
	ColorID string
	Size    int
	Lang    models.Language
	Slide   int
}

// FromLinkParams reconstructs a Selection from link query parameters,
// applying defaults for every missing or invalid value: default product,
// its first color, size 110, Russian, slide 0. The slide index is clamped
// against the resolved image sequence so a stale link can never point out
// of bounds.
//
// The second return value is true when the link carried neither product
// nor color — a fresh session. The caller is expected to write the fully
// resolved params back into the link exactly once in that case, so the
// link becomes shareable with explicit state.
func FromLinkParams(params url.Values, cat *catalog.Catalog) (Selection, bool) {
	fresh := !params.Has(ParamProduct) && !params.Has(ParamColor)

	product := cat.ProductBySlug(params.Get(ParamProduct))
	if product == nil {
		product = cat.DefaultProduct()
	}

	colorID := params.Get(ParamColor)
	if product.ColorByID(colorID) == nil {
		colorID = product.Colors[0].ID
	}

	size := DefaultSize
	if v, err := strconv.Atoi(params.Get(ParamSize)); err == nil && product.SizeByValue(v) != nil {
		size = v
	}

	lang := models.Language(params.Get(ParamLang))
	if !lang.IsValid() {
		lang = DefaultLanguage
	}

	slide := 0
	if v, err := strconv.Atoi(params.Get(ParamSlide)); err == nil && v > 0 {
		slide = v
	}

	sel := Selection{
		Product: product,
		ColorID: colorID,
		Size:    size,
		Lang:    lang,
		Slide:   slide,
	}

	// Clamp slide against the active image sequence
	if n := len(sel.Images()); sel.Slide >= n {
		sel.Slide = n - 1
	}

	return sel, fresh
}

// ToLinkParams serializes the full selection back into link parameters.
// FromLinkParams(sel.ToLinkParams(), cat) always reproduces sel.
func (s *Selection) ToLinkParams() url.Values {
	return url.Values{
		ParamProduct: {s.Product.Slug},
		ParamColor:   {s.ColorID},
		ParamSize:    {strconv.Itoa(s.Size)},
		ParamLang:    {string(s.Lang)},
		ParamSlide:   {strconv.Itoa(s.Slide)},
	}
}

// Color returns the selected color variant. Falls back to the first color
// so derived state is always resolvable.
func (s *Selection) Color() *models.ProductColor {
	if c := s.Product.ColorByID(s.ColorID); c != nil {
		return c
	}
	return &s.Product.Colors[0]
}

// SizeVariant returns the selected size variant, or nil when the size
// value does not exist on the product
func (s *Selection) SizeVariant() *models.ProductSize {
	return s.Product.SizeByValue(s.Size)
}

// Images returns the active slide sequence: the color's size-specific
// override when one exists for the selected size, otherwise the color's
// default sequence. Never empty.
func (s *Selection) Images() []string {
	return s.Color().ImagesForSize(s.Size)
}

// ChangeColor selects a new color and resets the slide to 0 — the image
// sequence is keyed by color, so a stale index could point at an unrelated
// image. Returns the params to write to the link. The colorID must come
// from the same product's color list.
func (s *Selection) ChangeColor(colorID string) url.Values {
	s.ColorID = colorID
	s.Slide = 0
	return url.Values{
		ParamColor: {colorID},
		ParamSlide: {"0"},
	}
}

// ChangeSize selects a new size. The slide resets only when the active
// color defines a size-specific image sequence for the new size — switching
// size changes the images only in that case.
func (s *Selection) ChangeSize(size int) url.Values {
	s.Size = size
	params := url.Values{ParamSize: {strconv.Itoa(size)}}
	if s.Color().HasSizeImages(size) {
		s.Slide = 0
		params.Set(ParamSlide, "0")
	}
	return params
}

// ChangeLanguage switches the UI language. Images and slide are untouched.
func (s *Selection) ChangeLanguage(lang models.Language) url.Values {
	s.Lang = lang
	return url.Values{ParamLang: {string(lang)}}
}

// ChangeSlide moves the carousel. The caller is responsible for bounds;
// the carousel handlers already clamp to [0, len-1].
func (s *Selection) ChangeSlide(slide int) url.Values {
	s.Slide = slide
	return url.Values{ParamSlide: {strconv.Itoa(slide)}}
}
