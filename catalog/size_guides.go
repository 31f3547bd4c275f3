package catalog

import "bolajon-kids/models"

// SizeGuide explains which garment height fits which age range
type SizeGuide struct {
	ID          string                   `json:"id"`
	Title       models.LocalizedString   `json:"title"`
	Description models.LocalizedString   `json:"description"`
	Ranges      []models.LocalizedString `json:"ranges"`
}

// SizeGuideByID returns the size guide with the given id, or nil
func (c *Catalog) SizeGuideByID(id string) *SizeGuide {
	for i := range sizeGuides {
		if sizeGuides[i].ID == id {
			return &sizeGuides[i]
		}
	}
	return nil
}

var sizeGuides = []SizeGuide{
	{
		ID:          "80-120",
		Title:       models.LocalizedString{Uz: "80–120 sm", Ru: "80–120 см", En: "80–120 cm"},
		Description: models.LocalizedString{Uz: "Odatda 1,5 yoshdan 5 yoshgacha bo'lgan bolalar.", Ru: "Обычно для детей от 1,5 до 5 лет.", En: "Usually for children aged 1.5 to 5 years."},
		Ranges: []models.LocalizedString{
			{Uz: "80–90 sm → 1,5–2 yosh", Ru: "80–90 см → 1,5–2 года", En: "80–90 cm → 1.5–2 years"},
			{Uz: "90–100 sm → 2–3 yosh", Ru: "90–100 см → 2–3 года", En: "90–100 cm → 2–3 years"},
			{Uz: "100–110 sm → 3–4 yosh", Ru: "100–110 см → 3–4 года", En: "100–110 cm → 3–4 years"},
			{Uz: "110–120 sm → 4–5 yosh", Ru: "110–120 см → 4–5 лет", En: "110–120 cm → 4–5 years"},
		},
	},
	{
		ID:          "90-130",
		Title:       models.LocalizedString{Uz: "90–130 sm", Ru: "90–130 см", En: "90–130 cm"},
		Description: models.LocalizedString{Uz: "2 yoshdan 7 yoshgacha bo'lganlar.", Ru: "Для детей от 2 до 7 лет.", En: "For children aged 2 to 7 years."},
		Ranges: []models.LocalizedString{
			{Uz: "90–100 sm → 2–3 yosh", Ru: "90–100 см → 2–3 года", En: "90–100 cm → 2–3 years"},
			{Uz: "100–110 sm → 3–4 yosh", Ru: "100–110 см → 3–4 года", En: "100–110 cm → 3–4 years"},
			{Uz: "110–120 sm → 5–6 yosh", Ru: "110–120 см → 5–6 лет", En: "110–120 cm → 5–6 years"},
			{Uz: "120–130 sm → 6–7 yosh", Ru: "120–130 см → 6–7 лет", En: "120–130 cm → 6–7 years"},
		},
	},
	{
		ID:          "120-150",
		Title:       models.LocalizedString{Uz: "120–150 sm", Ru: "120–150 см", En: "120–150 cm"},
		Description: models.LocalizedString{Uz: "6 yoshdan 12 yoshgacha.", Ru: "Для детей от 6 до 12 лет.", En: "For children aged 6 to 12 years."},
		Ranges: []models.LocalizedString{
			{Uz: "120–130 sm → 6–7 yosh", Ru: "120–130 см → 6–7 лет", En: "120–130 cm → 6–7 years"},
			{Uz: "130–140 sm → 8–10 yosh", Ru: "130–140 см → 8–10 лет", En: "130–140 cm → 8–10 years"},
			{Uz: "140–150 sm → 10–12 yosh", Ru: "140–150 см → 10–12 лет", En: "140–150 cm → 10–12 years"},
		},
	},
	{
		ID:          "110-150",
		Title:       models.LocalizedString{Uz: "110–150 sm", Ru: "110–150 см", En: "110–150 cm"},
		Description: models.LocalizedString{Uz: "4,5 yoshdan 12 yoshgacha.", Ru: "Для детей от 4,5 до 12 лет.", En: "For children aged 4.5 to 12 years."},
		Ranges: []models.LocalizedString{
			{Uz: "110–120 sm → 4,5–6 yosh", Ru: "110–120 см → 4,5–6 лет", En: "110–120 cm → 4.5–6 years"},
			{Uz: "120–130 sm → 6–7 yosh", Ru: "120–130 см → 6–7 лет", En: "120–130 cm → 6–7 years"},
			{Uz: "130–140 sm → 8–10 yosh", Ru: "130–140 см → 8–10 лет", En: "130–140 cm → 8–10 years"},
			{Uz: "140–150 sm → 10–12 yosh", Ru: "140–150 см → 10–12 лет", En: "140–150 cm → 10–12 years"},
		},
	},
}
