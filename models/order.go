package models

// OrderRecord is the immutable snapshot sent to every sink when an order
// is submitted. It is assembled once from the current selection plus the
// contact fields and never mutated afterwards.
// Example:
// {
//   "productId": "kids-set-001",
//   "productName": "Premium Winter Jacket",
//   "price": 495000,
//   "currency": "UZS",
//   "selectedColorId": "gray",
//   "selectedColorLabel": "Grey",
//   "selectedSize": 120,
//   "selectedSizeAgeLabel": "6–7 years",
//   "currentImageUrl": "https://bolajon.uz/images/kids-sportswear-set/gray-1.webp",
//   "language": "en",
//   "customerName": "Aziz Karimov",
//   "customerPhone": "+998901234567",
//   "customerDistrict": "Chilonzor",
//   "customerAddress": "12-kvartal, 5-uy",
//   "comment": "",
//   "timestamp": "2026-01-15T10:30:00Z"
// }
type OrderRecord struct {
	ProductID            string   `json:"productId"`
	ProductName          string   `json:"productName"`
	Price                int64    `json:"price"`
	Currency             string   `json:"currency"`
	SelectedColorID      string   `json:"selectedColorId"`
	SelectedColorLabel   string   `json:"selectedColorLabel"`
	SelectedSize         int      `json:"selectedSize"`
	SelectedSizeAgeLabel string   `json:"selectedSizeAgeLabel"`
	CurrentImageURL      string   `json:"currentImageUrl"`
	Language             Language `json:"language"`
	CustomerName         string   `json:"customerName"`
	CustomerPhone        string   `json:"customerPhone"`
	CustomerDistrict     string   `json:"customerDistrict"`
	CustomerAddress      string   `json:"customerAddress"`
	Comment              string   `json:"comment"`
	Timestamp            string   `json:"timestamp"`
}

// SubmitResult is what the order pipeline reports back to the form
type SubmitResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CreateOrderRequest is the request body for POST /api/orders.
// The selection part mirrors the shareable-link parameters; the contact
// part comes from the order form. Name and phone are mandatory.
// Example: {"product": "kids-sportswear-set", "color": "gray", "size": 120,
//           "lang": "en", "slide": 1, "customerName": "Aziz",
//           "customerPhone": "+998901234567", "customerDistrict": "Chilonzor",
//           "customerAddress": "12-kvartal", "comment": "call after 6pm"}
type CreateOrderRequest struct {
	Product          string   `json:"product"`
	Color            string   `json:"color"`
	Size             int      `json:"size"`
	Lang             Language `json:"lang"`
	Slide            int      `json:"slide"`
	CustomerName     string   `json:"customerName"`
	CustomerPhone    string   `json:"customerPhone"`
	CustomerDistrict string   `json:"customerDistrict"`
	CustomerAddress  string   `json:"customerAddress"`
	Comment          string   `json:"comment"`
}

// ArchivedOrder is a stored copy of a submitted order (orders table)
type ArchivedOrder struct {
	ID               int64  `json:"id"`
	ProductID        string `json:"productId"`
	ColorID          string `json:"colorId"`
	Size             int    `json:"size"`
	Language         string `json:"language"`
	Price            int64  `json:"price"`
	Currency         string `json:"currency"`
	CustomerName     string `json:"customerName"`
	CustomerPhone    string `json:"customerPhone"`
	CustomerDistrict string `json:"customerDistrict,omitempty"`
	CustomerAddress  string `json:"customerAddress,omitempty"`
	Comment          string `json:"comment,omitempty"`
	CreatedAt        string `json:"createdAt"`
}

// ArchivedOrderListResponse is the response for GET /admin/orders
type ArchivedOrderListResponse struct {
	Orders []ArchivedOrder `json:"orders"`
}
