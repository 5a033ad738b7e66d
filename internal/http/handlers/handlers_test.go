package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- scriptable service stubs ---

type stubChoreService struct {
	create func(ctx context.Context, name string, points int) (*domain.Chore, error)
	list   func(ctx context.Context, skip, limit int) ([]domain.Chore, error)
	get    func(ctx context.Context, id uint) (*domain.Chore, error)
	update func(ctx context.Context, id uint, upd services.ChoreUpdate) (*domain.Chore, error)
	del    func(ctx context.Context, id uint) error
}

func (s *stubChoreService) Create(ctx context.Context, name string, points int) (*domain.Chore, error) {
	return s.create(ctx, name, points)
}
func (s *stubChoreService) List(ctx context.Context, skip, limit int) ([]domain.Chore, error) {
	return s.list(ctx, skip, limit)
}
func (s *stubChoreService) Get(ctx context.Context, id uint) (*domain.Chore, error) {
	return s.get(ctx, id)
}
func (s *stubChoreService) Update(ctx context.Context, id uint, upd services.ChoreUpdate) (*domain.Chore, error) {
	return s.update(ctx, id, upd)
}
func (s *stubChoreService) Delete(ctx context.Context, id uint) error {
	return s.del(ctx, id)
}

type stubKidService struct {
	create   func(ctx context.Context, name string) (*domain.Kid, error)
	list     func(ctx context.Context, skip, limit int) ([]domain.Kid, error)
	complete func(ctx context.Context, kidID, choreID uint) (*domain.KidChore, error)
}

func (s *stubKidService) Create(ctx context.Context, name string) (*domain.Kid, error) {
	return s.create(ctx, name)
}
func (s *stubKidService) List(ctx context.Context, skip, limit int) ([]domain.Kid, error) {
	return s.list(ctx, skip, limit)
}
func (s *stubKidService) CompleteChore(ctx context.Context, kidID, choreID uint) (*domain.KidChore, error) {
	return s.complete(ctx, kidID, choreID)
}

type stubRewardService struct {
	create func(ctx context.Context, name string, points int) (*domain.Reward, error)
	list   func(ctx context.Context, skip, limit int) ([]domain.Reward, error)
	award  func(ctx context.Context, kidID, rewardID uint) (*domain.KidReward, error)
}

func (s *stubRewardService) Create(ctx context.Context, name string, points int) (*domain.Reward, error) {
	return s.create(ctx, name, points)
}
func (s *stubRewardService) List(ctx context.Context, skip, limit int) ([]domain.Reward, error) {
	return s.list(ctx, skip, limit)
}
func (s *stubRewardService) Award(ctx context.Context, kidID, rewardID uint) (*domain.KidReward, error) {
	return s.award(ctx, kidID, rewardID)
}

type stubUserService struct {
	register func(ctx context.Context, username, password string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	return s.register(ctx, username, password)
}

type stubAuthService struct {
	login func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.login(ctx, username, password)
}

// --- request helpers ---

func newRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/token", h.Login)
	r.POST("/users", h.CreateUser)
	r.POST("/chores", h.CreateChore)
	r.GET("/chores", h.ListChores)
	r.GET("/chores/:id", h.GetChore)
	r.PUT("/chores/:id", h.UpdateChore)
	r.DELETE("/chores/:id", h.DeleteChore)
	r.POST("/rewards", h.CreateReward)
	r.GET("/rewards", h.ListRewards)
	r.POST("/kids", h.CreateKid)
	r.GET("/kids", h.ListKids)
	r.POST("/kids/:kid_id/chores/:chore_id", h.CompleteChore)
	r.POST("/kids/:kid_id/rewards", h.AwardReward)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(t *testing.T, r http.Handler, target, form string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v (body %s)", err, w.Body.String())
	}
	return resp.Detail
}
