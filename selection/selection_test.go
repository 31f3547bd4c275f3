package selection

import (
	"net/url"
	"strconv"
	"testing"

	"bolajon-kids/catalog"
	"bolajon-kids/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCatalog builds a two-color product where "gray" has a size-specific
// image override for size 110 only
func testCatalog() *catalog.Catalog {
	return catalog.FromProducts([]models.Product{
		{
			ID:       "kids-set-001",
			Slug:     "kids-sportswear-set",
			Price:    495000,
			Currency: "UZS",
			Colors: []models.ProductColor{
				{
					ID:     "pinkrose",
					Label:  models.LocalizedString{Uz: "Pushti", Ru: "Розовый", En: "Pink"},
					Images: []string{"/images/p-1.webp", "/images/p-2.webp"},
				},
				{
					ID:     "gray",
					Label:  models.LocalizedString{Uz: "Kulrang", Ru: "Серый", En: "Grey"},
					Images: []string{"/images/g-1.webp", "/images/g-2.webp", "/images/g-3.webp"},
					SizeImages: map[int][]string{
						110: {"/images/g-110.webp"},
					},
				},
			},
			Sizes: []models.ProductSize{
				{Value: 110, AgeLabel: models.LocalizedString{En: "4–5 years"}},
				{Value: 120, AgeLabel: models.LocalizedString{En: "6–7 years"}},
			},
		},
	})
}

func TestFromLinkParamsDefaults(t *testing.T) {
	cat := testCatalog()

	sel, fresh := FromLinkParams(url.Values{}, cat)

	assert.True(t, fresh, "empty link is a fresh session")
	assert.Equal(t, "kids-sportswear-set", sel.Product.Slug)
	assert.Equal(t, "pinkrose", sel.ColorID, "first color is the default")
	assert.Equal(t, DefaultSize, sel.Size)
	assert.Equal(t, DefaultLanguage, sel.Lang)
	assert.Equal(t, 0, sel.Slide)
}

func TestFromLinkParamsInvalidValuesFallBack(t *testing.T) {
	cat := testCatalog()

	sel, fresh := FromLinkParams(url.Values{
		"product": {"no-such-product"},
		"color":   {"neon"},
		"size":    {"999"},
		"lang":    {"de"},
		"slide":   {"not-a-number"},
	}, cat)

	assert.False(t, fresh, "link carried product/color params")
	assert.Equal(t, "kids-sportswear-set", sel.Product.Slug)
	assert.Equal(t, "pinkrose", sel.ColorID)
	assert.Equal(t, DefaultSize, sel.Size)
	assert.Equal(t, DefaultLanguage, sel.Lang)
	assert.Equal(t, 0, sel.Slide)
}

func TestFromLinkParamsFreshOnlyWithoutProductAndColor(t *testing.T) {
	cat := testCatalog()

	_, fresh := FromLinkParams(url.Values{"lang": {"en"}}, cat)
	assert.True(t, fresh)

	_, fresh = FromLinkParams(url.Values{"color": {"gray"}}, cat)
	assert.False(t, fresh)
}

func TestRoundTrip(t *testing.T) {
	cat := testCatalog()

	for _, colorID := range []string{"pinkrose", "gray"} {
		for _, size := range []int{110, 120} {
			for _, lang := range []models.Language{models.LanguageUz, models.LanguageRu, models.LanguageEn} {
				sel, _ := FromLinkParams(url.Values{
					"product": {"kids-sportswear-set"},
					"color":   {colorID},
					"size":    {strconv.Itoa(size)},
					"lang":    {string(lang)},
					"slide":   {"0"},
				}, cat)

				restored, fresh := FromLinkParams(sel.ToLinkParams(), cat)
				assert.False(t, fresh)
				assert.Equal(t, sel, restored, "color=%s size=%d lang=%s", colorID, size, lang)
			}
		}
	}
}

func TestProductLookupBySlugOrID(t *testing.T) {
	cat := testCatalog()

	bySlug, _ := FromLinkParams(url.Values{"product": {"kids-sportswear-set"}}, cat)
	byID, _ := FromLinkParams(url.Values{"product": {"kids-set-001"}}, cat)

	assert.Equal(t, bySlug.Product, byID.Product)
}

func TestImagesSizeOverride(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{
		"product": {"kids-sportswear-set"},
		"color":   {"gray"},
		"size":    {"110"},
	}, cat)
	assert.Equal(t, []string{"/images/g-110.webp"}, sel.Images(), "size override wins")

	sel.ChangeSize(120)
	assert.Equal(t, []string{"/images/g-1.webp", "/images/g-2.webp", "/images/g-3.webp"}, sel.Images(),
		"no override for 120, default sequence")
	assert.NotEmpty(t, sel.Images())
}

func TestChangeColorAlwaysResetsSlide(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{
		"product": {"kids-sportswear-set"},
		"color":   {"gray"},
		"size":    {"120"},
		"slide":   {"2"},
	}, cat)
	require.Equal(t, 2, sel.Slide)

	written := sel.ChangeColor("pinkrose")

	assert.Equal(t, "pinkrose", sel.ColorID)
	assert.Equal(t, 0, sel.Slide)
	assert.Equal(t, "pinkrose", written.Get("color"))
	assert.Equal(t, "0", written.Get("slide"))
}

func TestChangeSizeResetsSlideOnlyWithOverride(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{
		"product": {"kids-sportswear-set"},
		"color":   {"gray"},
		"size":    {"120"},
		"slide":   {"2"},
	}, cat)
	require.Equal(t, 2, sel.Slide)

	// gray has an override for 110 → slide resets and is written
	written := sel.ChangeSize(110)
	assert.Equal(t, 0, sel.Slide)
	assert.Equal(t, "110", written.Get("size"))
	assert.Equal(t, "0", written.Get("slide"))

	// back to 120: no override → slide untouched and omitted from the write
	sel.Slide = 1
	written = sel.ChangeSize(120)
	assert.Equal(t, 1, sel.Slide)
	assert.Equal(t, "120", written.Get("size"))
	assert.False(t, written.Has("slide"))
}

func TestChangeLanguageLeavesImagesAlone(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{
		"product": {"kids-sportswear-set"},
		"color":   {"gray"},
		"size":    {"120"},
		"slide":   {"1"},
	}, cat)
	before := sel.Images()

	written := sel.ChangeLanguage(models.LanguageEn)

	assert.Equal(t, models.LanguageEn, sel.Lang)
	assert.Equal(t, 1, sel.Slide)
	assert.Equal(t, before, sel.Images())
	assert.Equal(t, "en", written.Get("lang"))
	assert.False(t, written.Has("slide"))
}

func TestChangeSlide(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{"product": {"kids-sportswear-set"}, "color": {"gray"}, "size": {"120"}}, cat)

	written := sel.ChangeSlide(2)

	assert.Equal(t, 2, sel.Slide)
	assert.Equal(t, "2", written.Get("slide"))
	assert.Len(t, written, 1, "slide changes write only the slide param")
}

// Shared link scenario: gray at size 120 has no override, its default
// sequence has 3 images, so slide index 2 is valid and resolves to the
// third image.
func TestSharedLinkSlideWithinDefaultSequence(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{
		"product": {"kids-set-001"},
		"color":   {"gray"},
		"size":    {"120"},
		"lang":    {"en"},
		"slide":   {"2"},
	}, cat)

	require.Len(t, sel.Images(), 3)
	assert.Equal(t, 2, sel.Slide)
	assert.Equal(t, "/images/g-3.webp", sel.Images()[sel.Slide])
}

// A stale slide index against a shorter size-override sequence clamps
// into bounds instead of pointing past the end.
func TestSharedLinkSlideClampsAgainstOverride(t *testing.T) {
	cat := testCatalog()

	sel, _ := FromLinkParams(url.Values{
		"product": {"kids-set-001"},
		"color":   {"gray"},
		"size":    {"110"},
		"slide":   {"2"},
	}, cat)

	require.Len(t, sel.Images(), 1)
	assert.Equal(t, 0, sel.Slide)
}
