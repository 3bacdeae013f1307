package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/clowiiza1/pukkeconnect-backend/internal/authz"
	"github.com/clowiiza1/pukkeconnect-backend/internal/config"
	"github.com/clowiiza1/pukkeconnect-backend/internal/database"
	"github.com/clowiiza1/pukkeconnect-backend/internal/models"
	"github.com/clowiiza1/pukkeconnect-backend/internal/services"
	"github.com/clowiiza1/pukkeconnect-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	auth   *services.AuthService
	hub    *ws.Hub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := database.Open(&config.Config{
		DBDriver: "sqlite",
		DBPath:   fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	resolver, err := authz.NewResolver()
	if err != nil {
		t.Fatal(err)
	}
	auth := services.NewAuthService("handler-test-secret")
	hub := ws.NewHub(zerolog.Nop())
	store := services.NewGormRecommendationStore(db, database.Capabilities{SocietyCampus: true})

	r := gin.New()
	RegisterRoutes(r, Deps{
		Auth:        auth,
		Resolver:    resolver,
		Matchmaker:  services.NewMatchmakerService(db, 10, zerolog.Nop()),
		Recommender: services.NewRecommendationService(store, config.DefaultRecommendConfig(), time.UTC, zerolog.Nop()),
		Interests:   services.NewInterestService(db),
		Quizzes:     services.NewQuizService(db),
		Tracking:    services.NewTrackingService(db),
		Hub:         hub,
	})
	return &testEnv{db: db, router: r, auth: auth, hub: hub}
}

func (e *testEnv) user(t *testing.T, email, role, campus string) (models.User, string) {
	t.Helper()
	u := models.User{Email: email, PasswordHash: "x", Role: role, Campus: campus}
	if err := e.db.Create(&u).Error; err != nil {
		t.Fatal(err)
	}
	tok, err := e.auth.GenerateToken(u)
	if err != nil {
		t.Fatal(err)
	}
	return u, tok
}

func (e *testEnv) interest(t *testing.T, name string) models.Interest {
	t.Helper()
	i := models.Interest{Name: name}
	if err := e.db.Create(&i).Error; err != nil {
		t.Fatal(err)
	}
	return i
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			if err := json.NewEncoder(&buf).Encode(b); err != nil {
				t.Fatal(err)
			}
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

type recordingConn struct {
	messages [][]byte
}

func (c *recordingConn) WriteMessage(_ int, data []byte) error {
	c.messages = append(c.messages, data)
	return nil
}

func (c *recordingConn) SetWriteDeadline(time.Time) error { return nil }

func (c *recordingConn) Close() error { return nil }

func TestIDJSON(t *testing.T) {
	t.Parallel()
	b, _ := json.Marshal(struct {
		ID  ID   `json:"id"`
		Opt *ID  `json:"opt"`
		IDs []ID `json:"ids"`
	}{ID: 42, IDs: []ID{1, 2}})
	if string(b) != `{"id":"42","opt":null,"ids":["1","2"]}` {
		t.Errorf("marshal = %s", b)
	}

	var in struct {
		A ID   `json:"a"`
		B ID   `json:"b"`
		C *ID  `json:"c"`
		R Ref  `json:"r"`
		S Ref  `json:"s"`
		L []ID `json:"l"`
	}
	if err := json.Unmarshal([]byte(`{"a":"7","b":8,"c":null,"r":12,"s":"abc","l":[1,"2"]}`), &in); err != nil {
		t.Fatal(err)
	}
	if in.A != 7 || in.B != 8 || in.C != nil || in.R != "12" || in.S != "abc" || len(in.L) != 2 || in.L[1] != 2 {
		t.Errorf("unmarshal = %+v", in)
	}

	var bad struct {
		A ID `json:"a"`
	}
	for _, raw := range []string{`{"a":"x"}`, `{"a":-1}`, `{"a":1.5}`} {
		if err := json.Unmarshal([]byte(raw), &bad); err == nil {
			t.Errorf("unmarshal %s succeeded", raw)
		}
	}
}

func TestRespondError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err    error
		status int
		msg    string
	}{
		{&services.ValidationError{Message: "Unknown question 9"}, http.StatusBadRequest, "Unknown question 9"},
		{fmt.Errorf("interest 3: %w", services.ErrInvalidReference), http.StatusBadRequest, "interest 3: invalid reference"},
		{fmt.Errorf("load: %w", services.ErrNotConfigured), http.StatusNotFound, "matchmaker quiz not configured"},
		{fmt.Errorf("quiz 3: %w", services.ErrNotFound), http.StatusNotFound, "quiz 3: not found"},
		{services.ErrConflict, http.StatusConflict, "conflict"},
		{services.ErrForbidden, http.StatusForbidden, "forbidden"},
		{errors.New("connection reset"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		respondError(c, tt.err)
		if w.Code != tt.status {
			t.Errorf("%v: status = %d, want %d", tt.err, w.Code, tt.status)
		}
		var body ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &body)
		if body.Error != tt.msg {
			t.Errorf("%v: error = %q, want %q", tt.err, body.Error, tt.msg)
		}
	}
}

func TestMatchmakerEndpoints(t *testing.T) {
	env := newTestEnv(t)
	student, tok := env.user(t, "mm@nwu.test", models.RoleStudent, "")

	if w := env.do(t, http.MethodGet, "/api/v1/matchmaker/quiz", tok, nil); w.Code != http.StatusNotFound {
		t.Fatalf("quiz before setup: status = %d, want 404", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/v1/matchmaker/quiz", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", w.Code)
	}

	tech := env.interest(t, "Tech")
	quiz, err := services.NewQuizService(env.db).CreateQuiz(context.Background(), "admin", services.QuizInput{
		Title: "Matchmaker",
		Questions: []services.QuestionInput{{
			Prompt: "Pick one",
			Kind:   models.QuestionKindSingle,
			Options: []services.OptionInput{
				{Label: "Code", Interests: []services.OptionInterestInput{{InterestID: tech.ID}}},
				{Label: "Sleep"},
			},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	q := quiz.Questions[0]
	code := q.Options[0]

	w := env.do(t, http.MethodGet, "/api/v1/matchmaker/quiz", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET quiz: status = %d body %s", w.Code, w.Body)
	}
	if strings.Contains(w.Body.String(), `"interests"`) {
		t.Errorf("matchmaker quiz leaks option interest links: %s", w.Body)
	}
	if body := decode(t, w); body["id"] != fmt.Sprint(quiz.ID) {
		t.Errorf("quiz id = %#v, want string %d", body["id"], quiz.ID)
	}

	conn := &recordingConn{}
	env.hub.AddConnection(student.ID, conn)

	w = env.do(t, http.MethodPost, "/api/v1/matchmaker/submit", tok, map[string]any{
		"answers": []map[string]any{{"questionId": fmt.Sprint(q.ID), "optionIds": []uint{code.ID}}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: status = %d body %s", w.Code, w.Body)
	}
	var res SubmissionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.StudentID != student.ID || res.TotalInterests != 1 || len(res.InterestsAdded) != 1 || res.InterestsAdded[0].Name != "Tech" {
		t.Errorf("submission = %+v", res)
	}
	if len(res.DerivedInterestIDs) != 1 || uint(res.DerivedInterestIDs[0]) != tech.ID {
		t.Errorf("derived = %v, want [%d]", res.DerivedInterestIDs, tech.ID)
	}
	if len(conn.messages) != 1 || !strings.Contains(string(conn.messages[0]), ws.TypeInterestsSynced) {
		t.Errorf("websocket messages = %q", conn.messages)
	}

	w = env.do(t, http.MethodPost, "/api/v1/matchmaker/submit", tok, map[string]any{
		"answers": []map[string]any{{"questionId": q.ID, "optionIds": []uint{9999}}},
	})
	want := fmt.Sprintf("Invalid option 9999 for question %d", q.ID)
	if w.Code != http.StatusBadRequest || decode(t, w)["error"] != want {
		t.Errorf("invalid option: status = %d body %s, want 400 %q", w.Code, w.Body, want)
	}

	if w := env.do(t, http.MethodPost, "/api/v1/matchmaker/submit", tok, `{"answers":`); w.Code != http.StatusBadRequest {
		t.Errorf("malformed body: status = %d, want 400", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/v1/matchmaker/response", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET response: status = %d body %s", w.Code, w.Body)
	}
	var resp QuizResponseDTO
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.ID != res.ResponseID || len(resp.Answers) != 1 || resp.Answers[0].OptionID == nil || uint(*resp.Answers[0].OptionID) != code.ID {
		t.Errorf("response = %+v", resp)
	}
}

func TestRecommendationsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	student, tok := env.user(t, "rec@nwu.test", models.RoleStudent, "Vaal")

	tests := []struct {
		query string
		want  string
	}{
		{"?limit=abc", "limit must be an integer"},
		{"?limit=0", "limit must be between 1 and 50"},
		{"?limit=51", "limit must be between 1 and 50"},
	}
	for _, tt := range tests {
		w := env.do(t, http.MethodGet, "/api/v1/recommendations"+tt.query, tok, nil)
		if w.Code != http.StatusBadRequest || decode(t, w)["error"] != tt.want {
			t.Errorf("%s: status = %d body %s", tt.query, w.Code, w.Body)
		}
	}

	w := env.do(t, http.MethodGet, "/api/v1/recommendations", tok, nil)
	if w.Code != http.StatusOK || strings.TrimSpace(w.Body.String()) != `{"rails":[]}` {
		t.Errorf("no interests: status = %d body %s", w.Code, w.Body)
	}

	tech := env.interest(t, "Tech")
	if err := services.NewInterestService(env.db).UpsertStudentInterest(context.Background(), student.ID, tech.ID, 5); err != nil {
		t.Fatal(err)
	}
	campus := "Vaal"
	society := models.Society{Name: "Robotics", Campus: &campus}
	env.db.Create(&society)
	env.db.Create(&models.SocietyInterest{SocietyID: society.ID, InterestID: tech.ID, Weight: 2})

	w = env.do(t, http.MethodGet, "/api/v1/recommendations?limit=5&seed=abc", tok, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", w.Code, w.Body)
	}
	var out RecommendationsResponse
	json.Unmarshal(w.Body.Bytes(), &out)
	if len(out.Rails) < 2 || out.Rails[0].Title != services.RailTopPicks {
		t.Fatalf("rails = %+v", out.Rails)
	}
	item := out.Rails[0].Items[0]
	if uint(item.SocietyID) != society.ID || !item.CampusMatch || item.MatchScore != 1 {
		t.Errorf("item = %+v", item)
	}
	if !strings.Contains(w.Body.String(), fmt.Sprintf(`"societyId":"%d"`, society.ID)) {
		t.Errorf("society id not serialised as a string: %s", w.Body)
	}
}

func TestStudentInterestEndpoints(t *testing.T) {
	env := newTestEnv(t)
	_, aTok := env.user(t, "a@nwu.test", models.RoleStudent, "")
	b, _ := env.user(t, "b@nwu.test", models.RoleStudent, "")
	_, socTok := env.user(t, "soc@nwu.test", models.RoleSocietyAdmin, "")
	_, uniTok := env.user(t, "uni@nwu.test", models.RoleUniversityAdmin, "")
	tech := env.interest(t, "Tech")
	art := env.interest(t, "Art")

	w := env.do(t, http.MethodPut, "/api/v1/students/me/interests", aTok, map[string]any{
		"interestIds": []any{fmt.Sprint(tech.ID), art.ID},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("PUT me: status = %d body %s", w.Code, w.Body)
	}
	var got StudentInterestsResponse
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got.Interests) != 2 || got.Interests[0].Name != "Art" || got.Interests[1].Name != "Tech" {
		t.Errorf("interests = %+v", got.Interests)
	}

	path := "/api/v1/students/" + b.ID + "/interests"
	if w := env.do(t, http.MethodPut, path, aTok, map[string]any{"interestIds": []uint{tech.ID}}); w.Code != http.StatusForbidden {
		t.Errorf("student editing another: status = %d, want 403", w.Code)
	}
	if w := env.do(t, http.MethodGet, path, socTok, nil); w.Code != http.StatusForbidden {
		t.Errorf("society admin reading another: status = %d, want 403", w.Code)
	}
	if w := env.do(t, http.MethodPut, path, uniTok, map[string]any{"interestIds": []uint{tech.ID}}); w.Code != http.StatusOK {
		t.Errorf("university admin: status = %d body %s", w.Code, w.Body)
	}
	if w := env.do(t, http.MethodGet, "/api/v1/students/nobody/interests", uniTok, nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown student: status = %d, want 404", w.Code)
	}
	if w := env.do(t, http.MethodPut, "/api/v1/students/me/interests", aTok, map[string]any{"interestIds": []uint{4242}}); w.Code != http.StatusBadRequest {
		t.Errorf("unknown interest: status = %d, want 400", w.Code)
	}

	del := fmt.Sprintf("/api/v1/students/me/interests/%d", tech.ID)
	w = env.do(t, http.MethodDelete, del, aTok, nil)
	json.Unmarshal(w.Body.Bytes(), &got)
	if w.Code != http.StatusOK || len(got.Interests) != 1 || got.Interests[0].Name != "Art" {
		t.Errorf("DELETE: status = %d body %s", w.Code, w.Body)
	}
	if w := env.do(t, http.MethodDelete, del, aTok, nil); w.Code != http.StatusNotFound {
		t.Errorf("second DELETE: status = %d, want 404", w.Code)
	}
	if w := env.do(t, http.MethodDelete, "/api/v1/students/me/interests/abc", aTok, nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad interest id: status = %d, want 400", w.Code)
	}
}

func TestInterestCatalogEndpoints(t *testing.T) {
	env := newTestEnv(t)
	_, stuTok := env.user(t, "s@nwu.test", models.RoleStudent, "")
	_, socTok := env.user(t, "soc@nwu.test", models.RoleSocietyAdmin, "")

	if w := env.do(t, http.MethodPost, "/api/v1/interests", stuTok, map[string]string{"name": "Chess"}); w.Code != http.StatusForbidden {
		t.Errorf("student create: status = %d, want 403", w.Code)
	}
	w := env.do(t, http.MethodPost, "/api/v1/interests", socTok, map[string]string{"name": "Chess"})
	if w.Code != http.StatusCreated || decode(t, w)["name"] != "Chess" {
		t.Errorf("create: status = %d body %s", w.Code, w.Body)
	}
	if w := env.do(t, http.MethodPost, "/api/v1/interests", socTok, map[string]string{"name": "Chess"}); w.Code != http.StatusConflict {
		t.Errorf("duplicate: status = %d, want 409", w.Code)
	}
	if w := env.do(t, http.MethodPost, "/api/v1/interests", socTok, map[string]string{"name": " "}); w.Code != http.StatusBadRequest {
		t.Errorf("blank: status = %d, want 400", w.Code)
	}

	w = env.do(t, http.MethodGet, "/api/v1/interests", stuTok, nil)
	var list []InterestDTO
	json.Unmarshal(w.Body.Bytes(), &list)
	if w.Code != http.StatusOK || len(list) != 1 || list[0].Name != "Chess" {
		t.Errorf("list: status = %d body %s", w.Code, w.Body)
	}
}

func TestQuizEndpoints(t *testing.T) {
	env := newTestEnv(t)
	_, stuTok := env.user(t, "s@nwu.test", models.RoleStudent, "")
	_, socTok := env.user(t, "soc@nwu.test", models.RoleSocietyAdmin, "")
	tech := env.interest(t, "Tech")

	body := map[string]any{
		"title": "Matchmaker",
		"questions": []map[string]any{{
			"prompt": "Pick",
			"kind":   "multi",
			"options": []map[string]any{
				{"label": "Code", "interests": []map[string]any{{"interestId": tech.ID, "weight": 15}}},
				{"label": "Sleep"},
			},
		}},
	}

	if w := env.do(t, http.MethodPost, "/api/v1/quizzes", stuTok, body); w.Code != http.StatusForbidden {
		t.Errorf("student: status = %d, want 403", w.Code)
	}

	w := env.do(t, http.MethodPost, "/api/v1/quizzes", socTok, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: status = %d body %s", w.Code, w.Body)
	}
	var quiz QuizDTO
	json.Unmarshal(w.Body.Bytes(), &quiz)
	if quiz.SocietyID != nil || len(quiz.Questions) != 1 || len(quiz.Questions[0].Options[0].Interests) != 1 {
		t.Errorf("quiz = %+v", quiz)
	}

	if w := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/quizzes/%d", quiz.ID), stuTok, nil); w.Code != http.StatusOK {
		t.Errorf("GET: status = %d", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/v1/quizzes/abc", stuTok, nil); w.Code != http.StatusBadRequest {
		t.Errorf("GET abc: status = %d, want 400", w.Code)
	}
	if w := env.do(t, http.MethodGet, "/api/v1/quizzes/999", stuTok, nil); w.Code != http.StatusNotFound {
		t.Errorf("GET 999: status = %d, want 404", w.Code)
	}

	body["questions"] = []map[string]any{{"prompt": "Rate", "kind": "scale"}}
	w = env.do(t, http.MethodPost, "/api/v1/quizzes", socTok, body)
	if w.Code != http.StatusBadRequest || !strings.Contains(decode(t, w)["error"].(string), "unknown question kind") {
		t.Errorf("bad kind: status = %d body %s", w.Code, w.Body)
	}
}

func TestTrackEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, tok := env.user(t, "t@nwu.test", models.RoleStudent, "")

	w := env.do(t, http.MethodPost, "/api/v1/track", tok, map[string]any{"event": "dismiss", "entity": "society", "id": 12})
	if w.Code != http.StatusAccepted || strings.TrimSpace(w.Body.String()) != `{"accepted":true}` {
		t.Errorf("dismiss: status = %d body %s", w.Code, w.Body)
	}
	var stored models.RecommendationEvent
	if err := env.db.First(&stored).Error; err != nil || stored.EntityID != "12" {
		t.Errorf("stored = %+v, %v", stored, err)
	}

	w = env.do(t, http.MethodPost, "/api/v1/track", tok, map[string]any{"event": "like", "entity": "society", "id": "12"})
	if w.Code != http.StatusBadRequest || decode(t, w)["error"] != "Unsupported event type: like" {
		t.Errorf("like: status = %d body %s", w.Code, w.Body)
	}
	if w := env.do(t, http.MethodPost, "/api/v1/track", "", map[string]any{"event": "dismiss"}); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: status = %d, want 401", w.Code)
	}
}
