package portfolio_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioLifecycle(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	_, bobTok := app.CreateUser(t, "bob@example.com", "Bob")

	create := func(body map[string]string) *models.PortfolioItem {
		rec := app.Do(t, http.MethodPost, "/portfolio/me", aliceTok, body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		var item models.PortfolioItem
		testutil.DecodeData(t, rec, &item)
		return &item
	}
	project := create(map[string]string{"title": "Budget app", "item_type": "project", "link_url": "https://example.com/budget"})
	create(map[string]string{"title": "AWS cert", "item_type": "certificate"})

	rec := app.Do(t, http.MethodPost, "/portfolio/me", aliceTok, map[string]string{"title": "x", "item_type": "poem"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = app.Do(t, http.MethodPost, "/portfolio/me", aliceTok, map[string]string{"item_type": "project"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.Do(t, http.MethodGet, "/portfolio/me?item_type=project", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.PortfolioItem
	testutil.DecodeData(t, rec, &items)
	require.Len(t, items, 1)
	assert.Equal(t, "Budget app", items[0].Title)

	rec = app.Do(t, http.MethodGet, fmt.Sprintf("/portfolio/user/%d", aliceID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.DecodeData(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "AWS cert", items[0].Title, "newest first")

	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodGet, "/portfolio/user/999", "", nil).Code)

	path := fmt.Sprintf("/portfolio/%d", project.ID)
	assert.Equal(t, http.StatusForbidden, app.Do(t, http.MethodPut, path, bobTok, map[string]string{"title": "mine now"}).Code)

	rec = app.Do(t, http.MethodPut, path, aliceTok, map[string]string{"link_url": "not a url"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	rec = app.Do(t, http.MethodPut, path, aliceTok, map[string]string{"title": "Budget app v2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.PortfolioItem
	testutil.DecodeData(t, rec, &updated)
	assert.Equal(t, "Budget app v2", updated.Title)
	assert.Equal(t, "project", updated.ItemType)

	assert.Equal(t, http.StatusForbidden, app.Do(t, http.MethodDelete, path, bobTok, nil).Code)
	assert.Equal(t, http.StatusNoContent, app.Do(t, http.MethodDelete, path, aliceTok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodDelete, path, aliceTok, nil).Code)
}
