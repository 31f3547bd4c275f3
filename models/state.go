package models

// StateResponse is the resolved view-state returned by GET /api/state.
// CanonicalQuery is the full serialization of the resolved selection;
// when Fresh is true the client replaces its URL with it once, so the
// link becomes shareable with explicit state.
// Example:
// {
//   "product": "kids-sportswear-set",
//   "color": "gray",
//   "size": 120,
//   "lang": "en",
//   "slide": 0,
//   "images": ["/images/kids-sportswear-set/gray-120.webp"],
//   "canonicalQuery": "color=gray&lang=en&product=kids-sportswear-set&size=120&slide=0",
//   "fresh": false
// }
type StateResponse struct {
	Product        string   `json:"product"`
	Color          string   `json:"color"`
	Size           int      `json:"size"`
	Lang           Language `json:"lang"`
	Slide          int      `json:"slide"`
	Images         []string `json:"images"`
	CanonicalQuery string   `json:"canonicalQuery"`
	Fresh          bool     `json:"fresh"`
}
