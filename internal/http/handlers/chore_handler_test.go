package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/services"
)

func choreHandlers(choreSvc ChoreService) *Handlers {
	return New(choreSvc, nil, nil, nil, nil)
}

func TestCreateChore_OK(t *testing.T) {
	h := choreHandlers(&stubChoreService{
		create: func(_ context.Context, name string, points int) (*domain.Chore, error) {
			return &domain.Chore{ID: 1, Name: name, Points: points}, nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodPost, "/chores", map[string]any{"name": "Dishes", "points": 5})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp ChoreResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 1 || resp.Name != "Dishes" || resp.Points != 5 {
		t.Fatalf("response unexpected: %+v", resp)
	}
}

func TestCreateChore_ZeroValuesAccepted(t *testing.T) {
	var gotName string
	var gotPoints int
	h := choreHandlers(&stubChoreService{
		create: func(_ context.Context, name string, points int) (*domain.Chore, error) {
			gotName, gotPoints = name, points
			return &domain.Chore{ID: 1, Name: name, Points: points}, nil
		},
	})
	r := newRouter(h)

	// Present-but-zero fields pass the required binding.
	w := doJSON(t, r, http.MethodPost, "/chores", map[string]any{"name": "", "points": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	if gotName != "" || gotPoints != 0 {
		t.Fatalf("service got (%q, %d); want (\"\", 0)", gotName, gotPoints)
	}
}

func TestCreateChore_MissingFields(t *testing.T) {
	h := choreHandlers(&stubChoreService{})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodPost, "/chores", map[string]any{"name": "Dishes"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if d := decodeDetail(t, w); d == "" {
		t.Fatalf("expected a detail message")
	}
}

func TestListChores_PassesWindow(t *testing.T) {
	var gotSkip, gotLimit int
	h := choreHandlers(&stubChoreService{
		list: func(_ context.Context, skip, limit int) ([]domain.Chore, error) {
			gotSkip, gotLimit = skip, limit
			return []domain.Chore{}, nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodGet, "/chores?skip=2&limit=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if gotSkip != 2 || gotLimit != 3 {
		t.Fatalf("window = (%d, %d); want (2, 3)", gotSkip, gotLimit)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("empty list should serialize as [], got %s", body)
	}
}

func TestListChores_DefaultWindow(t *testing.T) {
	var gotSkip, gotLimit int
	h := choreHandlers(&stubChoreService{
		list: func(_ context.Context, skip, limit int) ([]domain.Chore, error) {
			gotSkip, gotLimit = skip, limit
			return nil, nil
		},
	})
	r := newRouter(h)

	doJSON(t, r, http.MethodGet, "/chores", nil)
	if gotSkip != 0 || gotLimit != 100 {
		t.Fatalf("window = (%d, %d); want (0, 100)", gotSkip, gotLimit)
	}
}

func TestGetChore_NotFound(t *testing.T) {
	h := choreHandlers(&stubChoreService{
		get: func(_ context.Context, _ uint) (*domain.Chore, error) {
			return nil, services.ErrChoreNotFound
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodGet, "/chores/42", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	if d := decodeDetail(t, w); d != "Chore not found" {
		t.Fatalf("detail = %q; want %q", d, "Chore not found")
	}
}

func TestGetChore_NonNumericID(t *testing.T) {
	h := choreHandlers(&stubChoreService{})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodGet, "/chores/abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
	if d := decodeDetail(t, w); d != "id must be an integer" {
		t.Fatalf("detail = %q", d)
	}
}

func TestUpdateChore_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantDetail string
	}{
		{"missing chore", services.ErrChoreNotFound, http.StatusNotFound, "Chore not found"},
		{"invalid kid", services.ErrInvalidKid, http.StatusBadRequest, "Invalid kid_id"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			h := choreHandlers(&stubChoreService{
				update: func(_ context.Context, _ uint, _ services.ChoreUpdate) (*domain.Chore, error) {
					return nil, tc.svcErr
				},
			})
			r := newRouter(h)

			w := doJSON(t, r, http.MethodPut, "/chores/1", map[string]any{"points": 20})
			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d", w.Code, tc.wantStatus)
			}
			if d := decodeDetail(t, w); d != tc.wantDetail {
				t.Fatalf("detail = %q; want %q", d, tc.wantDetail)
			}
		})
	}
}

func TestUpdateChore_ForwardsPartialFields(t *testing.T) {
	var gotUpd services.ChoreUpdate
	h := choreHandlers(&stubChoreService{
		update: func(_ context.Context, _ uint, upd services.ChoreUpdate) (*domain.Chore, error) {
			gotUpd = upd
			return &domain.Chore{ID: 1, Name: "Dishes", Points: 20}, nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodPut, "/chores/1", map[string]any{"points": 20})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	if gotUpd.Name != nil || gotUpd.KidID != nil {
		t.Fatalf("absent fields must stay nil: %+v", gotUpd)
	}
	if gotUpd.Points == nil || *gotUpd.Points != 20 {
		t.Fatalf("points pointer unexpected: %+v", gotUpd.Points)
	}
}

func TestDeleteChore(t *testing.T) {
	h := choreHandlers(&stubChoreService{
		del: func(_ context.Context, id uint) error {
			if id != 7 {
				t.Fatalf("id = %d; want 7", id)
			}
			return nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodDelete, "/chores/7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	var resp MessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Chore deleted successfully" {
		t.Fatalf("message = %q", resp.Message)
	}
}

func TestDeleteChore_NotFound(t *testing.T) {
	h := choreHandlers(&stubChoreService{
		del: func(_ context.Context, _ uint) error {
			return services.ErrChoreNotFound
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodDelete, "/chores/7", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d; want 404", w.Code)
	}
	if d := decodeDetail(t, w); d != "Chore not found" {
		t.Fatalf("detail = %q", d)
	}
}
