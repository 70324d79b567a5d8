package user_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/DhavalSuthar-24/skillswap/internal/models"
	"github.com/DhavalSuthar-24/skillswap/internal/testutil"
	"github.com/DhavalSuthar-24/skillswap/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateMe(t *testing.T) {
	app := testutil.NewApp(t)
	_, tok := app.CreateUser(t, "a@example.com", "A")

	rec := app.Do(t, http.MethodPut, "/users/me", tok, map[string]string{
		"intro_line":    "I teach chess",
		"location_city": "Pune",
		"password":      "brand-new-password",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got models.User
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, "I teach chess", got.IntroLine)
	assert.Equal(t, "Pune", got.LocationCity)
	assert.Equal(t, "A", got.Name)

	rec = app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@example.com", "password": "brand-new-password"})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@example.com", "password": testutil.Password})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.Do(t, http.MethodPut, "/users/me", tok, map[string]string{"password": "short"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAvailability(t *testing.T) {
	app := testutil.NewApp(t)
	_, tok := app.CreateUser(t, "a@example.com", "A")

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "valid",
			body:       map[string]interface{}{"availability": map[string][]string{"Monday": {"09:00-11:00"}}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "bad weekday",
			body:       map[string]interface{}{"availability": map[string][]string{"someday": {"09:00-11:00"}}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "inverted range",
			body:       map[string]interface{}{"availability": map[string][]string{"friday": {"18:00-09:00"}}},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing body field",
			body:       map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.Do(t, http.MethodPut, "/users/me/availability", tok, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}

	rec := app.Do(t, http.MethodGet, "/users/me", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.User
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, models.Availability{"monday": {"09:00-11:00"}}, got.Availability.Data())
}

func TestDeactivateMe(t *testing.T) {
	app := testutil.NewApp(t)
	id, tok := app.CreateUser(t, "a@example.com", "A")

	rec := app.Do(t, http.MethodDelete, "/users/me", tok, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	var stored models.User
	require.NoError(t, app.DB.First(&stored, id).Error)
	assert.False(t, stored.IsActive)

	assert.Equal(t, http.StatusUnauthorized, app.Do(t, http.MethodGet, "/users/me", tok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodGet, fmt.Sprintf("/users/%d", id), "", nil).Code)

	rec = app.Do(t, http.MethodPost, "/auth/login", "", map[string]string{"email": "a@example.com", "password": testutil.Password})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompletion(t *testing.T) {
	app := testutil.NewApp(t)
	id, tok := app.CreateUser(t, "a@example.com", "A")

	rec := app.Do(t, http.MethodGet, "/users/me/completion", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got user.CompletionResponse
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, 0, got.Percentage)
	assert.Len(t, got.Missing, 5)

	skill := app.CreateSkill(t, "chess", "games")
	app.AddUserSkill(t, id, skill.ID, models.RoleTeach)
	app.Do(t, http.MethodPut, "/users/me", tok, map[string]string{"intro_line": "hi", "location_country": "IN"})

	rec = app.Do(t, http.MethodGet, "/users/me/completion", tok, nil)
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, 60, got.Percentage)
	assert.ElementsMatch(t, []string{"profile_photo", "whatsapp"}, got.Missing)
}

func TestSuggestedMentors(t *testing.T) {
	app := testutil.NewApp(t)
	learner, tok := app.CreateUser(t, "learner@example.com", "Learner")
	mentor, _ := app.CreateUser(t, "mentor@example.com", "Mentor")
	inactive, _ := app.CreateUser(t, "inactive@example.com", "Inactive")
	other, _ := app.CreateUser(t, "other@example.com", "Other")

	guitar := app.CreateSkill(t, "guitar", "music")
	piano := app.CreateSkill(t, "piano", "music")

	app.AddUserSkill(t, learner, guitar.ID, models.RoleLearn)
	app.AddUserSkill(t, learner, guitar.ID, models.RoleTeach)
	app.AddUserSkill(t, mentor, guitar.ID, models.RoleTeach)
	app.AddUserSkill(t, inactive, guitar.ID, models.RoleTeach)
	app.AddUserSkill(t, other, piano.ID, models.RoleTeach)
	require.NoError(t, app.DB.Model(&models.User{}).Where("id = ?", inactive).Update("is_active", false).Error)

	rec := app.Do(t, http.MethodGet, "/users/me/suggested-mentors", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var mentors []models.User
	testutil.DecodeData(t, rec, &mentors)
	require.Len(t, mentors, 1)
	assert.Equal(t, mentor, mentors[0].ID)
}

func TestProfileViewsAndConnectionStatus(t *testing.T) {
	app := testutil.NewApp(t)
	a, tokA := app.CreateUser(t, "a@example.com", "A")
	b, tokB := app.CreateUser(t, "b@example.com", "B")

	profile := func(token string, id uint) user.ProfileResponse {
		rec := app.Do(t, http.MethodGet, fmt.Sprintf("/users/%d/profile", id), token, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var p user.ProfileResponse
		testutil.DecodeData(t, rec, &p)
		return p
	}

	assert.Equal(t, user.StatusNone, profile("", a).ConnectionStatus)
	assert.Equal(t, user.StatusSelf, profile(tokA, a).ConnectionStatus)
	assert.Equal(t, user.StatusNone, profile(tokB, a).ConnectionStatus)

	var views int64
	app.DB.Model(&models.ProfileView{}).Where("viewed_id = ?", a).Count(&views)
	assert.Equal(t, int64(1), views, "only the other user's authenticated view counts")

	conn := models.Connection{RequesterID: b, RecipientID: a, PairKey: models.PairKey(a, b), Status: models.ConnectionPending}
	require.NoError(t, app.DB.Create(&conn).Error)

	assert.Equal(t, user.StatusPendingSent, profile(tokB, a).ConnectionStatus)
	assert.Equal(t, user.StatusPendingReceived, profile(tokA, b).ConnectionStatus)

	require.NoError(t, app.DB.Model(&conn).Update("status", models.ConnectionAccepted).Error)
	p := profile(tokB, a)
	assert.Equal(t, "accepted", p.ConnectionStatus)
	assert.Equal(t, int64(1), p.Stats.Connections)
	assert.Equal(t, int64(3), p.Stats.Views)

	rec := app.Do(t, http.MethodGet, "/users/me/profile-views", tokA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var recent []models.ProfileView
	testutil.DecodeData(t, rec, &recent)
	require.Len(t, recent, 3)
	require.NotNil(t, recent[0].Viewer)
	assert.Equal(t, b, recent[0].Viewer.ID)

	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodGet, "/users/999/profile", "", nil).Code)
}

func TestToggleSave(t *testing.T) {
	app := testutil.NewApp(t)
	a, tok := app.CreateUser(t, "a@example.com", "A")
	b, _ := app.CreateUser(t, "b@example.com", "B")

	assert.Equal(t, http.StatusBadRequest, app.Do(t, http.MethodPost, fmt.Sprintf("/users/%d/save", a), tok, nil).Code)
	assert.Equal(t, http.StatusNotFound, app.Do(t, http.MethodPost, "/users/999/save", tok, nil).Code)

	toggle := func() bool {
		rec := app.Do(t, http.MethodPost, fmt.Sprintf("/users/%d/save", b), tok, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		var resp user.SaveToggleResponse
		testutil.DecodeData(t, rec, &resp)
		return resp.Saved
	}
	listSaved := func() []models.SavedUser {
		rec := app.Do(t, http.MethodGet, "/users/me/saved", tok, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var saved []models.SavedUser
		testutil.DecodeData(t, rec, &saved)
		return saved
	}

	assert.True(t, toggle())
	saved := listSaved()
	require.Len(t, saved, 1)
	assert.Equal(t, b, saved[0].SavedUserID)

	assert.False(t, toggle())
	assert.Empty(t, listSaved())

	assert.True(t, toggle(), "the pair can be saved again after unsaving")
}

func TestListAndSearchUsers(t *testing.T) {
	app := testutil.NewApp(t)
	_, tokA := app.CreateUser(t, "alice@example.com", "Alice Smith")
	bob, tokB := app.CreateUser(t, "bob@example.com", "Bob Stone")
	_, _ = app.CreateUser(t, "carol@example.com", "Carol Smith")

	app.Do(t, http.MethodPut, "/users/me", tokA, map[string]string{"location_city": "Berlin"})
	app.Do(t, http.MethodPut, "/users/me", tokB, map[string]string{"location_city": "Bern"})
	chess := app.CreateSkill(t, "chess", "games")
	app.AddUserSkill(t, bob, chess.ID, models.RoleTeach)

	rec := app.Do(t, http.MethodGet, "/users?pageSize=2", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	env := testutil.Decode(t, rec)
	assert.Equal(t, int64(3), env.Pagination.TotalItems)
	assert.Equal(t, 2, env.Pagination.TotalPages)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "name", query: "name=SMITH", want: []string{"Alice Smith", "Carol Smith"}},
		{name: "city", query: "city=ber", want: []string{"Alice Smith", "Bob Stone"}},
		{name: "skill", query: fmt.Sprintf("skill_id=%d", chess.ID), want: []string{"Bob Stone"}},
		{name: "combined", query: "name=smith&city=berlin", want: []string{"Alice Smith"}},
		{name: "no match", query: "name=zed", want: []string{}},
		{name: "percent is literal", query: "name=%25", want: []string{}},
		{name: "underscore is literal", query: "city=b_r", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := app.Do(t, http.MethodGet, "/users/search?"+tt.query, "", nil)
			require.Equal(t, http.StatusOK, rec.Code)
			var users []models.User
			testutil.DecodeData(t, rec, &users)
			names := []string{}
			for _, u := range users {
				names = append(names, u.Name)
			}
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestDashboard(t *testing.T) {
	app := testutil.NewApp(t)
	a, tokA := app.CreateUser(t, "a@example.com", "A")
	b, _ := app.CreateUser(t, "b@example.com", "B")
	c, _ := app.CreateUser(t, "c@example.com", "C")
	skill := app.CreateSkill(t, "yoga", "fitness")

	require.NoError(t, app.DB.Create(&models.Connection{RequesterID: b, RecipientID: a, PairKey: models.PairKey(a, b), Status: models.ConnectionPending}).Error)
	require.NoError(t, app.DB.Create(&models.Connection{RequesterID: a, RecipientID: c, PairKey: models.PairKey(a, c), Status: models.ConnectionAccepted}).Error)
	start := time.Now().UTC().Add(24 * time.Hour)
	require.NoError(t, app.DB.Create(&models.Session{RequesterID: b, ProviderID: a, SkillID: skill.ID, StartTime: start, EndTime: start.Add(time.Hour), Status: models.SessionAccepted}).Error)
	require.NoError(t, app.DB.Create(&models.Notification{UserID: a, Type: "test", Content: "hello"}).Error)

	rec := app.Do(t, http.MethodGet, "/users/me/dashboard", tokA, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var got user.DashboardResponse
	testutil.DecodeData(t, rec, &got)
	assert.Equal(t, int64(1), got.PendingRequests)
	assert.Equal(t, int64(1), got.Connections)
	assert.Equal(t, int64(1), got.UpcomingSessions)
	assert.Equal(t, int64(1), got.UnreadNotifications)
	assert.Equal(t, int64(0), got.ProfileViews)
	assert.Empty(t, got.SuggestedMentors)
}
