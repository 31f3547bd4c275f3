// Package catalog holds the static product data for the storefront.
// The catalog is loaded once at process start and never mutated.
package catalog

import "bolajon-kids/models"

// Catalog is the read-only set of products served by the landing page
type Catalog struct {
	products []models.Product
}

// New returns the catalog with the built-in product data
func New() *Catalog {
	return &Catalog{products: products}
}

// FromProducts builds a catalog from an explicit product list
func FromProducts(list []models.Product) *Catalog {
	return &Catalog{products: list}
}

// Products returns all catalog entries
func (c *Catalog) Products() []models.Product {
	return c.products
}

// ProductBySlug finds a product by slug or id, or returns nil
func (c *Catalog) ProductBySlug(slug string) *models.Product {
	for i := range c.products {
		if c.products[i].Slug == slug || c.products[i].ID == slug {
			return &c.products[i]
		}
	}
	return nil
}

// DefaultProduct returns the product shown when no product param is present
func (c *Catalog) DefaultProduct() *models.Product {
	return &c.products[0]
}

var products = []models.Product{
	{
		ID:          "kids-set-001",
		Slug:        "kids-sportswear-set",
		Price:       495000,
		Currency:    "UZS",
		SizeGuideID: "110-150",
		Name: models.LocalizedString{
			Uz: "Qishgi mavsum uchun premium sifatdagi kurtka",
			Ru: "Премиальная куртка для зимнего сезона",
			En: "Premium Winter Jacket",
		},
		Description: models.StructuredDescription{
			General: models.LocalizedString{
				Uz: "Sovuq kunlar uchun maxsus yaratilgan qishki sport to'plami. Kundalik yurish, bog‘cha va maktabga borish, sayr va aktiv o‘yinlar uchun juda qulay. Yengil, ammo issiq ushlab turadi. Premium mato va Italiyaning zamonaviy dizayni bolangizni ham issiq, ham stilida saqlaydi.",
				Ru: "Зимний спортивный комплект, созданный специально для холодной погоды. Идеален для прогулок, сада, школы и активных игр. Лёгкий, но хорошо сохраняет тепло. Премиальные ткани и современный итальянский дизайн обеспечат вашему ребёнку и тепло, и стиль.",
				En: "Winter sportswear set designed especially for cold days. Perfect for daily walks, kindergarten or school, and active outdoor play. Lightweight yet warm and insulating. Premium fabrics and modern Italian design keep your child both cozy and stylish.",
			},
			Fabric: models.LocalizedString{
				Uz: "Premium darajadagi issiq ushlab turuvchi mato va yumshoq astar. Teri uchun xavfsiz, allergiya chaqirmaydi. Namlikni o‘tkazmaydigan va shamolni yaxshi to‘sadigan tuzilma. Mashinada 30°C da yumshoq rejimda yuvish tavsiya etiladi, dazmollash shart emas.",
				Ru: "Премиальные утепляющие материалы и мягкая подкладка. Безопасно для кожи, не вызывает аллергии. Ткань с водоотталкивающей пропиткой и хорошей ветрозащитой. Рекомендуется деликатная машинная стирка при 30°C, глажка не требуется.",
				En: "Premium insulating materials with a soft inner lining. Skin-safe and hypoallergenic. Fabric has water-repellent and wind-resistant properties. Recommended gentle machine wash at 30°C; no ironing required.",
			},
			Quality: models.LocalizedString{
				Uz: "Italiya dizayniga ega yuqori sifatli tikuv va ishlov berish. Mustahkam choklar uzoq muddat xizmat qiladi, shaklini yo‘qotmaydi. Fermuar va aksessuarlar ishonchli va bardoshli. Har bir model sifat nazoratidan o‘tgan.",
				Ru: "Высокое качество пошива и обработки в стиле итальянского дизайна. Прочные швы служат долго и не теряют форму. Надёжная фурнитура и молнии. Каждый комплект проходит тщательный контроль качества.",
				En: "High-quality craftsmanship with Italian-inspired design. Strong seams retain their shape and last long. Reliable zippers and hardware. Each set passes strict quality control.",
			},
		},
		Colors: []models.ProductColor{
			{
				ID:        "pinkrose",
				Hex:       "#FFB6C1",
				Label:     models.LocalizedString{Uz: "Pushti atirgul", Ru: "Розовый роуз", En: "Pink Rose"},
				Thumbnail: "/images/kids-sportswear-set/pinkrose-thumb.webp",
				Images: []string{
					"/images/kids-sportswear-set/pinkrose-1.webp",
					"/images/kids-sportswear-set/pinkrose-2.webp",
				},
			},
			{
				ID:        "gray",
				Hex:       "#B0B0B0",
				Label:     models.LocalizedString{Uz: "Kulrang", Ru: "Серый", En: "Grey"},
				Thumbnail: "/images/kids-sportswear-set/gray-thumb.webp",
				Images: []string{
					"/images/kids-sportswear-set/gray-1.webp",
					"/images/kids-sportswear-set/gray-2.webp",
					"/images/kids-sportswear-set/gray-3.webp",
				},
				SizeImages: map[int][]string{
					110: {"/images/kids-sportswear-set/gray-110.webp"},
					120: {"/images/kids-sportswear-set/gray-120.webp"},
					130: {"/images/kids-sportswear-set/gray-130.webp"},
					140: {"/images/kids-sportswear-set/gray-140.webp"},
					150: {"/images/kids-sportswear-set/gray-150.webp"},
				},
			},
			{
				ID:        "limon",
				Hex:       "#FFD54F",
				Label:     models.LocalizedString{Uz: "Limon", Ru: "Лимонный", En: "Lemon"},
				Thumbnail: "/images/kids-sportswear-set/limon-thumb.webp",
				Images: []string{
					"/images/kids-sportswear-set/limon-1.webp",
					"/images/kids-sportswear-set/limon-2.webp",
				},
			},
			{
				ID:        "lavender",
				Hex:       "#E6E6FA",
				Label:     models.LocalizedString{Uz: "Lavanda", Ru: "Лавандовый", En: "Lavender"},
				Thumbnail: "/images/kids-sportswear-set/lavender-thumb.webp",
				Images: []string{
					"/images/kids-sportswear-set/lavender-1.webp",
					"/images/kids-sportswear-set/lavender-2.webp",
				},
			},
			{
				ID:        "qaymoq",
				Hex:       "#FFF5E1",
				Label:     models.LocalizedString{Uz: "Qaymoq rang", Ru: "Кремовый", En: "Cream"},
				Thumbnail: "/images/kids-sportswear-set/cream-thumb.webp",
				Images: []string{
					"/images/kids-sportswear-set/cream-1.webp",
					"/images/kids-sportswear-set/cream-2.webp",
				},
			},
		},
		Sizes: []models.ProductSize{
			{Value: 110, AgeLabel: models.LocalizedString{Uz: "4–5 yosh", Ru: "4–5 года", En: "4–5 years"}},
			{Value: 120, AgeLabel: models.LocalizedString{Uz: "6–7 yosh", Ru: "6–7 лет", En: "6–7 years"}},
			{Value: 130, AgeLabel: models.LocalizedString{Uz: "8–9 yosh", Ru: "8–9 лет", En: "8–9 years"}},
			{Value: 140, AgeLabel: models.LocalizedString{Uz: "10–11 yosh", Ru: "10–11 лет", En: "10–11 years"}},
			{Value: 150, AgeLabel: models.LocalizedString{Uz: "12–13 yosh", Ru: "12–13 лет", En: "12–13 years"}},
		},
	},
}
