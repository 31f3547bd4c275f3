package models

// Language is one of the supported UI languages
type Language string

const (
	LanguageUz Language = "uz"
	LanguageRu Language = "ru"
	LanguageEn Language = "en"
)

// IsValid reports whether the language is one of the supported values
func (l Language) IsValid() bool {
	return l == LanguageUz || l == LanguageRu || l == LanguageEn
}

// LocalizedString holds a text in every supported language
type LocalizedString struct {
	Uz string `json:"uz"`
	Ru string `json:"ru"`
	En string `json:"en"`
}

// Get returns the text for the given language (falls back to Russian)
func (s LocalizedString) Get(lang Language) string {
	switch lang {
	case LanguageUz:
		return s.Uz
	case LanguageEn:
		return s.En
	default:
		return s.Ru
	}
}

// StructuredDescription is the localized product description split into sections
type StructuredDescription struct {
	General LocalizedString `json:"general"`
	Fabric  LocalizedString `json:"fabric"`
	Quality LocalizedString `json:"quality"`
}

// ProductColor is a color variant of a product
// Images is the default slide sequence for this color; SizeImages (optional)
// overrides it for specific size values
type ProductColor struct {
	ID         string           `json:"id"`
	Label      LocalizedString  `json:"label"`
	Hex        string           `json:"hex"`
	Thumbnail  string           `json:"thumbnail,omitempty"`
	Images     []string         `json:"images"`
	SizeImages map[int][]string `json:"sizeImages,omitempty"`
}

// ImagesForSize returns the slide sequence for the given size value.
// If the color defines a size-specific override it wins, otherwise the
// default sequence is returned. Never empty: every color carries at least
// one default image.
func (c *ProductColor) ImagesForSize(size int) []string {
	if imgs, ok := c.SizeImages[size]; ok && len(imgs) > 0 {
		return imgs
	}
	return c.Images
}

// HasSizeImages reports whether the color defines a size-specific slide
// sequence for the given size value
func (c *ProductColor) HasSizeImages(size int) bool {
	imgs, ok := c.SizeImages[size]
	return ok && len(imgs) > 0
}

// ProductSize is a size variant: the garment height in cm plus an age range label
type ProductSize struct {
	Value    int             `json:"value"`
	AgeLabel LocalizedString `json:"ageLabel"`
}

// Product is an immutable catalog entry, loaded once at startup
type Product struct {
	ID          string                `json:"id"`
	Slug        string                `json:"slug"`
	Name        LocalizedString       `json:"name"`
	Colors      []ProductColor        `json:"colors"`
	Sizes       []ProductSize         `json:"sizes"`
	Description StructuredDescription `json:"description"`
	Price       int64                 `json:"price"`
	Currency    string                `json:"currency"`
	SizeGuideID string                `json:"sizeGuideId,omitempty"`
}

// ColorByID returns the color with the given id, or nil
func (p *Product) ColorByID(id string) *ProductColor {
	for i := range p.Colors {
		if p.Colors[i].ID == id {
			return &p.Colors[i]
		}
	}
	return nil
}

// SizeByValue returns the size variant with the given value, or nil
func (p *Product) SizeByValue(value int) *ProductSize {
	for i := range p.Sizes {
		if p.Sizes[i].Value == value {
			return &p.Sizes[i]
		}
	}
	return nil
}
