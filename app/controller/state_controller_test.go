package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"bolajon-kids/catalog"
	"bolajon-kids/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getState(t *testing.T, query string) models.StateResponse {
	t.Helper()
	ctrl := NewStateController(catalog.New())
	req := httptest.NewRequest(http.MethodGet, "/api/state"+query, nil)
	w := httptest.NewRecorder()
	ctrl.GetState(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.StateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestGetStateFreshSession(t *testing.T) {
	resp := getState(t, "")

	assert.True(t, resp.Fresh, "no product/color params → fresh session, client writes the link back")
	assert.Equal(t, "kids-sportswear-set", resp.Product)
	assert.Equal(t, "pinkrose", resp.Color)
	assert.Equal(t, 110, resp.Size)
	assert.Equal(t, models.LanguageRu, resp.Lang)
	assert.Equal(t, 0, resp.Slide)
	assert.NotEmpty(t, resp.Images)
	assert.NotEmpty(t, resp.CanonicalQuery)
}

func TestGetStateCanonicalQueryRoundTrips(t *testing.T) {
	resp := getState(t, "?product=kids-sportswear-set&color=limon&size=130&lang=uz&slide=1")

	assert.False(t, resp.Fresh)

	params, err := url.ParseQuery(resp.CanonicalQuery)
	require.NoError(t, err)
	assert.Equal(t, "kids-sportswear-set", params.Get("product"))
	assert.Equal(t, "limon", params.Get("color"))
	assert.Equal(t, "130", params.Get("size"))
	assert.Equal(t, "uz", params.Get("lang"))
	assert.Equal(t, "1", params.Get("slide"))

	again := getState(t, "?"+resp.CanonicalQuery)
	again.Fresh = resp.Fresh
	assert.Equal(t, resp, again, "reloading the canonical link reproduces the state")
}

func TestGetStateSizeOverrideImages(t *testing.T) {
	resp := getState(t, "?product=kids-sportswear-set&color=gray&size=120&lang=en")

	// gray defines a single-image override for size 120
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "/images/kids-sportswear-set/gray-120.webp", resp.Images[0])
	assert.Equal(t, 0, resp.Slide)
}

func TestGetStateClampsStaleSlide(t *testing.T) {
	// pinkrose has 2 default images; a stale slide=7 clamps to the last one
	resp := getState(t, "?product=kids-sportswear-set&color=pinkrose&slide=7")

	require.Len(t, resp.Images, 2)
	assert.Equal(t, 1, resp.Slide)
}
