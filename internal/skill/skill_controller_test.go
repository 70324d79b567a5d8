package skill_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/skill"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSkill(t *testing.T) {
	app := testutil.NewApp(t)
	_, adminTok := app.CreateUser(t, "admin@example.com", "Admin")
	_, userTok := app.CreateUser(t, "user@example.com", "User")

	tests := []struct {
		name       string
		token      string
		body       map[string]string
		wantStatus int
	}{
		{name: "anonymous", token: "", body: map[string]string{"name": "Guitar"}, wantStatus: http.StatusUnauthorized},
		{name: "not a superuser", token: userTok, body: map[string]string{"name": "Guitar"}, wantStatus: http.StatusForbidden},
		{name: "created", token: adminTok, body: map[string]string{"name": "  Guitar ", "category": "music"}, wantStatus: http.StatusCreated},
		{name: "duplicate after normalization", token: adminTok, body: map[string]string{"name": "GUITAR"}, wantStatus: http.StatusBadRequest},
		{name: "blank", token: adminTok, body: map[string]string{"name": "   "}, wantStatus: http.StatusBadRequest},
		{name: "missing name", token: adminTok, body: map[string]string{"category": "music"}, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.Do(t, http.MethodPost, "/skills", tt.token, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	var stored models.Skill
	require.NoError(t, app.DB.Where("name = ?", "guitar").First(&stored).Error)
	assert.Equal(t, "music", stored.Category)
}

func TestDeleteAndReactivateSkill(t *testing.T) {
	app := testutil.NewApp(t)
	_, adminTok := app.CreateUser(t, "admin@example.com", "Admin")

	rec := app.Do(t, http.MethodPost, "/skills", adminTok, map[string]string{"name": "Piano", "category": "music"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.Skill
	testutil.DecodeData(t, rec, &created)

	path := fmt.Sprintf("/skills/%d", created.ID)
	require.Equal(t, http.StatusNoContent, app.Do(t, http.MethodDelete, path, adminTok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodGet, path, "", nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodDelete, path, adminTok, nil).Code)

	var count int64
	app.DB.Unscoped().Model(&models.Skill{}).Where("name = ?", "piano").Count(&count)
	assert.Equal(t, int64(1), count, "soft delete keeps the row")

	rec = app.Do(t, http.MethodPost, "/skills", adminTok, map[string]string{"name": "piano", "category": "keys"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var revived models.Skill
	testutil.DecodeData(t, rec, &revived)
	assert.Equal(t, created.ID, revived.ID)
	assert.Equal(t, "keys", revived.Category)

	assert.Equal(t, http.StatusOK, app.Do(t, http.MethodGet, path, "", nil).Code)
}

func TestListSkillsCategoriesAndSuggestions(t *testing.T) {
	app := testutil.NewApp(t)
	app.CreateSkill(t, "guitar", "music")
	app.CreateSkill(t, "bass guitar", "music")
	app.CreateSkill(t, "python", "programming")
	app.CreateSkill(t, "knitting", "")

	rec := app.Do(t, http.MethodGet, "/skills?category=MUS", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var skills []models.Skill
	testutil.DecodeData(t, rec, &skills)
	require.Len(t, skills, 2)
	assert.Equal(t, "bass guitar", skills[0].Name, "ordered by name")

	rec = app.Do(t, http.MethodGet, "/skills/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []string
	testutil.DecodeData(t, rec, &categories)
	assert.Equal(t, []string{"music", "programming"}, categories)

	rec = app.Do(t, http.MethodGet, "/skills/suggestions?query=gui", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	testutil.DecodeData(t, rec, &skills)
	require.Len(t, skills, 2)
	assert.Equal(t, "guitar", skills[0].Name, "prefix match first")

	rec = app.Do(t, http.MethodGet, "/skills/suggestions?query=gui&limit=1", "", nil)
	testutil.DecodeData(t, rec, &skills)
	assert.Len(t, skills, 1)

	rec = app.Do(t, http.MethodGet, "/skills/suggestions", "", nil)
	testutil.DecodeData(t, rec, &skills)
	assert.Empty(t, skills)

	for _, q := range []string{"/skills/suggestions?query=%25", "/skills?skill=_"} {
		rec = app.Do(t, http.MethodGet, q, "", nil)
		require.Equal(t, http.StatusOK, rec.Code, q)
		testutil.DecodeData(t, rec, &skills)
		assert.Empty(t, skills, "wildcards match literally: %s", q)
	}
}

func TestToggleFollow(t *testing.T) {
	app := testutil.NewApp(t)
	_, tok := app.CreateUser(t, "a@example.com", "A")
	chess := app.CreateSkill(t, "chess", "games")

	toggle := func() bool {
		rec := app.Do(t, http.MethodPost, fmt.Sprintf("/skills/%d/follow", chess.ID), tok, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp skill.FollowToggleResponse
		testutil.DecodeData(t, rec, &resp)
		return resp.Following
	}
	followed := func() []models.Skill {
		rec := app.Do(t, http.MethodGet, "/skills/followed", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var skills []models.Skill
		testutil.DecodeData(t, rec, &skills)
		return skills
	}

	assert.True(t, toggle())
	require.Len(t, followed(), 1)
	assert.False(t, toggle())
	assert.Empty(t, followed())

	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodPost, "/skills/999/follow", tok, nil).Code)
}
