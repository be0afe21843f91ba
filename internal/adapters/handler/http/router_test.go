package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	handler "github.com/vncsmyrnk/manifesto/internal/adapters/handler/http"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
	"github.com/vncsmyrnk/manifesto/internal/storetest"
	"go.uber.org/zap/zaptest"
)

const secret = "test-secret"

type testApp struct {
	server *httptest.Server
	users  ports.UserService
	gov    ports.GovernmentService
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()

	store := storetest.NewSQLite(t)
	log := zaptest.NewLogger(t)
	opts := []services.Option{services.WithLogger(log)}

	composer := services.NewComposerService(store, opts...)
	users := services.NewUserService(store, opts...)
	gov := services.NewGovernmentService(store, opts...)
	router := handler.NewHandler(handler.Handlers{
		Posts:      handler.NewPostHandler(services.NewFeedService(store, nil, opts...), log),
		Debates:    handler.NewDebateHandler(services.NewDebateService(store, nil, opts...), composer, log),
		Polls:      handler.NewPollHandler(services.NewPollService(store, nil, opts...), composer, log),
		Petitions:  handler.NewPetitionHandler(services.NewPetitionService(store, nil, opts...), composer, log),
		Users:      handler.NewUserHandler(users, log),
		Government: handler.NewGovernmentHandler(gov, log),
	}, handler.RouterConfig{
		JWTSecret:   []byte(secret),
		CORSOrigins: []string{"*"},
		Log:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testApp{server: server, users: users, gov: gov}
}

func (app *testApp) createUserAndToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	user := &domain.User{Email: fmt.Sprintf("user-%s@example.com", uuid.NewString()), Name: "Test User"}
	_, err := app.users.Import(context.Background(), []*domain.User{user})
	require.NoError(t, err)

	return user.ID, signToken(t, user.ID.String(), time.Now().Add(15*time.Minute))
}

func signToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": sub,
		"exp": exp.Unix(),
		"iat": time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func (app *testApp) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, app.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

type created struct {
	EntityID uuid.UUID `json:"entity_id"`
	PostID   uuid.UUID `json:"post_id"`
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func TestHealthAndWelcome(t *testing.T) {
	app := setupTestApp(t)

	status, body := app.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	status, body = app.do(t, http.MethodGet, "/api/", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "welcome", string(body))
}

func TestGetMe(t *testing.T) {
	app := setupTestApp(t)
	userID, token := app.createUserAndToken(t)

	status, body := app.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	me := decode[domain.User](t, body)
	assert.Equal(t, userID, me.ID)
	assert.Equal(t, "Test User", me.Name)

	status, _ = app.do(t, http.MethodGet, "/api/me", signToken(t, uuid.NewString(), time.Now().Add(time.Minute)), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAuthentication(t *testing.T) {
	app := setupTestApp(t)
	_, token := app.createUserAndToken(t)

	t.Run("cookie", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, app.server.URL+"/api/me", nil)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})

		resp, err := app.server.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	tests := []struct {
		name  string
		token string
	}{
		{"expired", signToken(t, uuid.NewString(), time.Now().Add(-time.Minute))},
		{"wrong secret", func() string {
			s, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"sub": uuid.NewString(),
				"exp": time.Now().Add(time.Minute).Unix(),
			}).SignedString([]byte("other"))
			return s
		}()},
		{"subject is not a uuid", signToken(t, "alice", time.Now().Add(time.Minute))},
		{"garbage", "not-a-jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := app.do(t, http.MethodGet, "/api/me", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, status)
			assert.Equal(t, "unauthorized", decode[map[string]any](t, body)["error"])
		})
	}
}

func TestPollFlow(t *testing.T) {
	app := setupTestApp(t)
	_, token := app.createUserAndToken(t)
	_, other := app.createUserAndToken(t)

	status, body := app.do(t, http.MethodPost, "/api/polls", token, map[string]any{
		"title":   "Where should the new park go?",
		"options": []string{"North", "South"},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	poll := decode[created](t, body)

	status, body = app.do(t, http.MethodPost, "/api/polls/"+poll.EntityID.String()+"/votes", token, map[string]any{"option_ids": []string{"option-1"}})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.JSONEq(t, `{"ok":true}`, string(body))

	status, _ = app.do(t, http.MethodPost, "/api/polls/"+poll.EntityID.String()+"/votes", token, map[string]any{"option_ids": []string{"option-0"}})
	assert.Equal(t, http.StatusConflict, status)

	status, body = app.do(t, http.MethodGet, "/api/polls/"+poll.EntityID.String()+"/my-vote", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"option-1"}, decode[domain.PollVote](t, body).OptionIDs)

	status, _ = app.do(t, http.MethodGet, "/api/polls/"+poll.EntityID.String()+"/my-vote", other, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = app.do(t, http.MethodGet, "/api/polls/"+poll.EntityID.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	view := decode[domain.PollView](t, body)
	assert.Equal(t, int64(1), view.Entity.TotalVotes)
	assert.Equal(t, int64(1), view.Entity.Options[1].VoteCount)
	require.NotNil(t, view.Author)
	assert.Equal(t, "Test User", view.Author.Name)
	assert.Equal(t, poll.PostID, view.Post.ID)

	status, body = app.do(t, http.MethodGet, "/api/polls?active_only=true&limit=10", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]domain.PollView](t, body), 1)
}

func TestDebateFlow(t *testing.T) {
	app := setupTestApp(t)
	_, token := app.createUserAndToken(t)

	status, body := app.do(t, http.MethodPost, "/api/debates", token, map[string]any{
		"title": "Four-day school week",
		"topic": "Education",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	debate := decode[created](t, body)
	path := "/api/debates/" + debate.EntityID.String() + "/reactions"

	status, body = app.do(t, http.MethodPost, path, token, map[string]string{"reaction": "agree"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true,"kind":"created"}`, string(body))

	status, body = app.do(t, http.MethodPost, path, token, map[string]string{"reaction": "disagree"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true,"kind":"changed"}`, string(body))

	status, body = app.do(t, http.MethodGet, "/api/debates?topic=EDUCATION", "", nil)
	require.Equal(t, http.StatusOK, status)
	views := decode[[]domain.DebateView](t, body)
	require.Len(t, views, 1)
	assert.Equal(t, int64(0), views[0].Entity.AgreeCount)
	assert.Equal(t, int64(1), views[0].Entity.DisagreeCount)

	status, body = app.do(t, http.MethodGet, "/api/posts?type=debate", "", nil)
	require.Equal(t, http.StatusOK, status)
	posts := decode[[]domain.Post](t, body)
	require.Len(t, posts, 1)
	assert.Equal(t, []string{"Education"}, posts[0].Tags)

	status, body = app.do(t, http.MethodPost, "/api/posts/"+debate.PostID.String()+"/like", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), decode[domain.Post](t, body).Likes)
}

func TestPetitionFlow(t *testing.T) {
	app := setupTestApp(t)
	_, token := app.createUserAndToken(t)
	_, other := app.createUserAndToken(t)

	status, body := app.do(t, http.MethodPost, "/api/petitions", token, map[string]any{
		"title":           "Longer library hours",
		"goal":            1,
		"target_deadline": time.Now().Add(24 * time.Hour).UTC(),
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	petition := decode[created](t, body)
	path := "/api/petitions/" + petition.EntityID.String() + "/signatures"

	status, body = app.do(t, http.MethodPost, path, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"ok":true,"current_signatures":1,"status":"successful"}`, string(body))

	status, _ = app.do(t, http.MethodPost, path, other, nil)
	assert.Equal(t, http.StatusConflict, status)

	status, body = app.do(t, http.MethodGet, "/api/petitions?status=successful", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]domain.PetitionView](t, body), 1)
}

func TestPostFlow(t *testing.T) {
	app := setupTestApp(t)
	userID, token := app.createUserAndToken(t)

	status, body := app.do(t, http.MethodPost, "/api/posts", token, map[string]any{
		"type":       "media",
		"title":      "Flooded underpass",
		"tags":       []string{"Roads"},
		"media_urls": []string{"https://cdn.example.org/underpass.jpg"},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	post := decode[domain.FeedPost](t, body)
	assert.Equal(t, domain.PostTypeMedia, post.Type)
	assert.Equal(t, userID, post.AuthorID)
	require.NotNil(t, post.Author)
	assert.Equal(t, "Test User", post.Author.Name)

	status, body = app.do(t, http.MethodGet, "/api/posts?type=media", "", nil)
	require.Equal(t, http.StatusOK, status)
	feed := decode[[]domain.FeedPost](t, body)
	require.Len(t, feed, 1)
	assert.Equal(t, post.ID, feed[0].ID)
	assert.Equal(t, []string{"https://cdn.example.org/underpass.jpg"}, feed[0].MediaURLs)

	status, body = app.do(t, http.MethodPost, "/api/posts/"+post.ID.String()+"/like", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(1), decode[domain.FeedPost](t, body).Likes)

	status, _ = app.do(t, http.MethodPost, "/api/posts", "", map[string]any{"type": "update", "title": "Hi"})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestErrorResponses(t *testing.T) {
	app := setupTestApp(t)
	_, token := app.createUserAndToken(t)

	status, body := app.do(t, http.MethodPost, "/api/polls", token, map[string]any{
		"title":   "Pick one",
		"options": []string{"Yes", "No"},
	})
	require.Equal(t, http.StatusCreated, status)
	poll := decode[created](t, body)
	votes := "/api/polls/" + poll.EntityID.String() + "/votes"

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{"missing_token", http.MethodPost, votes, "", map[string]any{"option_ids": []string{"option-0"}}, http.StatusUnauthorized},
		{"invalid_option", http.MethodPost, votes, token, map[string]any{"option_ids": []string{"option-0", "option-7"}}, http.StatusBadRequest},
		{"single_choice", http.MethodPost, votes, token, map[string]any{"option_ids": []string{"option-0", "option-1"}}, http.StatusBadRequest},
		{"poll_not_found", http.MethodGet, "/api/polls/" + uuid.Nil.String(), "", nil, http.StatusNotFound},
		{"invalid_id", http.MethodGet, "/api/debates/42", "", nil, http.StatusBadRequest},
		{"invalid_reaction", http.MethodPost, "/api/debates/" + uuid.Nil.String() + "/reactions", token, map[string]string{"reaction": "love"}, http.StatusBadRequest},
		{"invalid_limit", http.MethodGet, "/api/petitions?limit=many", "", nil, http.StatusBadRequest},
		{"media_without_urls", http.MethodPost, "/api/posts", token, map[string]any{"type": "media", "title": "Look"}, http.StatusBadRequest},
		{"project_not_found", http.MethodGet, "/api/projects/" + uuid.Nil.String(), "", nil, http.StatusNotFound},
		{"unknown_project_stage", http.MethodGet, "/api/projects?stage=dreaming", "", nil, http.StatusBadRequest},
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := app.do(t, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, status)
			g.Assert(t, tt.name, body)
		})
	}
}

func TestGovernmentFlow(t *testing.T) {
	app := setupTestApp(t)
	department, leader, project := uuid.New(), uuid.New(), uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, app.gov.Import(context.Background(), ports.GovernmentRecords{
		Departments: []*domain.Department{{ID: department, Name: "Water", Type: domain.DepartmentProvincial,
			LeaderIDs: []uuid.UUID{leader}, ProjectIDs: []uuid.UUID{project}}},
		Leaders: []*domain.Leader{{ID: leader, Name: "Dina", Position: "MEC", Party: "Blue",
			DepartmentIDs: []uuid.UUID{department}}},
		Projects: []*domain.Project{{ID: project, Title: "Dam upgrade", Stage: domain.StagePlanning,
			DepartmentID: department, LeaderIDs: []uuid.UUID{leader}, StartDate: start}},
		Parliament: []*domain.ParliamentItem{{Title: "Water bill", Type: domain.ParliamentBill,
			Status: domain.ParliamentDebating, SessionDate: start}},
	}))

	status, body := app.do(t, http.MethodGet, "/api/leaders?party=Blue&position=MEC", "", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	leaders := decode[[]domain.Leader](t, body)
	require.Len(t, leaders, 1)
	assert.Equal(t, "Dina", leaders[0].Name)

	status, body = app.do(t, http.MethodGet, "/api/leaders?party=Green", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(body))

	status, body = app.do(t, http.MethodGet, "/api/leaders/"+leader.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	var leaderDetail struct {
		Name        string              `json:"name"`
		Departments []domain.Department `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(body, &leaderDetail))
	assert.Equal(t, "Dina", leaderDetail.Name)
	require.Len(t, leaderDetail.Departments, 1)
	assert.Equal(t, "Water", leaderDetail.Departments[0].Name)

	status, body = app.do(t, http.MethodGet, "/api/departments?type=provincial", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]domain.Department](t, body), 1)

	status, body = app.do(t, http.MethodGet, "/api/departments/"+department.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	var departmentDetail struct {
		Leaders  []domain.Leader  `json:"leaders"`
		Projects []domain.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(body, &departmentDetail))
	assert.Len(t, departmentDetail.Leaders, 1)
	assert.Len(t, departmentDetail.Projects, 1)

	status, body = app.do(t, http.MethodGet, "/api/projects?stage=planning&department_id="+department.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	projects := decode[[]domain.Project](t, body)
	require.Len(t, projects, 1)
	assert.Equal(t, project, projects[0].ID)

	status, body = app.do(t, http.MethodGet, "/api/projects/"+project.String(), "", nil)
	require.Equal(t, http.StatusOK, status)
	var projectDetail struct {
		Department *domain.Department `json:"department"`
	}
	require.NoError(t, json.Unmarshal(body, &projectDetail))
	require.NotNil(t, projectDetail.Department)
	assert.Equal(t, department, projectDetail.Department.ID)

	status, body = app.do(t, http.MethodGet, "/api/parliament?type=bill&status=debating", "", nil)
	require.Equal(t, http.StatusOK, status)
	items := decode[[]domain.ParliamentItem](t, body)
	require.Len(t, items, 1)
	assert.Equal(t, "Water bill", items[0].Title)

	status, _ = app.do(t, http.MethodGet, "/api/projects?department_id=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = app.do(t, http.MethodGet, "/api/leaders/"+uuid.Nil.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
