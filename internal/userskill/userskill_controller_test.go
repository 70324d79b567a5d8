package userskill_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserSkill(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, _ := app.CreateUser(t, "bob@example.com", "Bob")
	guitar := app.CreateSkill(t, "guitar", "music")

	tests := []struct {
		name       string
		path       string
		body       map[string]interface{}
		wantStatus int
	}{
		{name: "created", path: "/user-skills", body: map[string]interface{}{"skill_id": guitar.ID, "role": "teach"}, wantStatus: http.StatusCreated},
		{name: "same skill other role", path: "/users/me/skills", body: map[string]interface{}{"skill_id": guitar.ID, "role": "learn"}, wantStatus: http.StatusCreated},
		{name: "duplicate", path: "/user-skills", body: map[string]interface{}{"skill_id": guitar.ID, "role": "teach"}, wantStatus: http.StatusBadRequest},
		{name: "explicit own user id", path: "/user-skills", body: map[string]interface{}{"user_id": aliceID, "skill_id": guitar.ID, "role": "teach"}, wantStatus: http.StatusBadRequest},
		{name: "other user id", path: "/user-skills", body: map[string]interface{}{"user_id": bobID, "skill_id": guitar.ID, "role": "teach"}, wantStatus: http.StatusForbidden},
		{name: "unknown skill", path: "/user-skills", body: map[string]interface{}{"skill_id": 999, "role": "teach"}, wantStatus: http.StatusNotFound},
		{name: "bad role", path: "/user-skills", body: map[string]interface{}{"skill_id": guitar.ID, "role": "mentor"}, wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.Do(t, http.MethodPost, tt.path, aliceTok, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	rec := app.Do(t, http.MethodGet, "/user-skills/me?role=learn", aliceTok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.UserSkill
	testutil.DecodeData(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, models.RoleLearn, mine[0].Role)
	require.NotNil(t, mine[0].Skill)
	assert.Equal(t, "guitar", mine[0].Skill.Name)

	rec = app.Do(t, http.MethodGet, fmt.Sprintf("/user-skills/user/%d", aliceID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var teach []models.UserSkill
	testutil.DecodeData(t, rec, &teach)
	require.Len(t, teach, 1)
	assert.Equal(t, models.RoleTeach, teach[0].Role)
}

func TestUpdateAndDeleteUserSkill(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	_, bobTok := app.CreateUser(t, "bob@example.com", "Bob")
	chess := app.CreateSkill(t, "chess", "games")
	teach := app.AddUserSkill(t, aliceID, chess.ID, models.RoleTeach)
	learn := app.AddUserSkill(t, aliceID, chess.ID, models.RoleLearn)

	path := fmt.Sprintf("/user-skills/%d", teach.ID)

	rec := app.Do(t, http.MethodPut, path, bobTok, map[string]string{"teaching_style": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = app.Do(t, http.MethodPut, path, aliceTok, map[string]string{"role": "learn"})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "role change would collide")

	rec = app.Do(t, http.MethodPut, path, aliceTok, map[string]string{"teaching_style": "hands-on"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.UserSkill
	testutil.DecodeData(t, rec, &updated)
	assert.Equal(t, "hands-on", updated.TeachingStyle)
	assert.Equal(t, models.RoleTeach, updated.Role)

	assert.Equal(t, http.StatusForbidden, app.Do(t, http.MethodDelete, path, bobTok, nil).Code)
	require.Equal(t, http.StatusNoContent, app.Do(t, http.MethodDelete, fmt.Sprintf("/user-skills/%d", learn.ID), aliceTok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodDelete, fmt.Sprintf("/user-skills/%d", learn.ID), aliceTok, nil).Code)

	rec = app.Do(t, http.MethodPut, path, aliceTok, map[string]string{"role": "learn"})
	assert.Equal(t, http.StatusOK, rec.Code, "no collision once the learn row is gone")
}

func TestListMentors(t *testing.T) {
	app := testutil.NewApp(t)
	aliceID, aliceTok := app.CreateUser(t, "alice@example.com", "Alice")
	bobID, _ := app.CreateUser(t, "bob@example.com", "Bob")
	carolID, _ := app.CreateUser(t, "carol@example.com", "Carol")
	guitar := app.CreateSkill(t, "guitar", "music")
	piano := app.CreateSkill(t, "piano", "music")

	rec := app.Do(t, http.MethodPut, "/users/me", aliceTok, map[string]string{"location_city": "Pune"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	app.AddUserSkill(t, aliceID, guitar.ID, models.RoleTeach)
	app.AddUserSkill(t, bobID, guitar.ID, models.RoleTeach)
	app.AddUserSkill(t, bobID, piano.ID, models.RoleLearn)
	app.AddUserSkill(t, carolID, piano.ID, models.RoleTeach)
	require.NoError(t, app.DB.Model(&models.User{}).Where("id = ?", carolID).Update("is_active", false).Error)

	mentors := func(query string) ([]models.UserSkill, int64) {
		rec := app.Do(t, http.MethodGet, "/user-skills/mentors"+query, "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var rows []models.UserSkill
		testutil.DecodeData(t, rec, &rows)
		return rows, testutil.Decode(t, rec).Pagination.TotalItems
	}

	rows, total := mentors("")
	assert.Len(t, rows, 2)
	assert.Equal(t, int64(2), total)

	rows, _ = mentors(fmt.Sprintf("?skill_id=%d", piano.ID))
	assert.Empty(t, rows, "inactive teachers and learners are excluded")

	rows, _ = mentors(fmt.Sprintf("?skill_id=%d&city=pun", guitar.ID))
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].User)
	assert.Equal(t, "Alice", rows[0].User.Name)

	rows, total = mentors("?pageSize=1&page=2")
	assert.Len(t, rows, 1)
	assert.Equal(t, int64(2), total)
}
