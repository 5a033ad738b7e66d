package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

func rewardHandlers(rewardSvc RewardService) *Handlers {
	return New(nil, nil, rewardSvc, nil, nil)
}

func TestCreateReward_OK(t *testing.T) {
	h := rewardHandlers(&stubRewardService{
		create: func(_ context.Context, name string, points int) (*domain.Reward, error) {
			return &domain.Reward{ID: 1, Name: name, Points: points}, nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodPost, "/rewards", map[string]any{"name": "Ice cream", "points": 15})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp RewardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 1 || resp.Name != "Ice cream" || resp.Points != 15 {
		t.Fatalf("response unexpected: %+v", resp)
	}
}

func TestCreateReward_MissingPoints(t *testing.T) {
	h := rewardHandlers(&stubRewardService{})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodPost, "/rewards", map[string]any{"name": "Ice cream"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestListRewards_EmptyIsArray(t *testing.T) {
	h := rewardHandlers(&stubRewardService{
		list: func(_ context.Context, _, _ int) ([]domain.Reward, error) {
			return nil, nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodGet, "/rewards", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if body := w.Body.String(); body != "[]" {
		t.Fatalf("empty list should serialize as [], got %s", body)
	}
}

func TestAwardReward_OK(t *testing.T) {
	awardedAt := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	h := rewardHandlers(&stubRewardService{
		award: func(_ context.Context, kidID, rewardID uint) (*domain.KidReward, error) {
			return &domain.KidReward{ID: 4, KidID: kidID, RewardID: rewardID, AwardedAt: awardedAt}, nil
		},
	})
	r := newRouter(h)

	w := doJSON(t, r, http.MethodPost, "/kids/2/rewards?reward_id=6", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (body %s)", w.Code, w.Body.String())
	}
	var resp KidRewardResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.ID != 4 || resp.KidID != 2 || resp.RewardID != 6 || !resp.AwardedAt.Equal(awardedAt) {
		t.Fatalf("response unexpected: %+v", resp)
	}
}

func TestAwardReward_BadRewardID(t *testing.T) {
	h := rewardHandlers(&stubRewardService{})
	r := newRouter(h)

	for _, target := range []string{"/kids/2/rewards", "/kids/2/rewards?reward_id=abc"} {
		w := doJSON(t, r, http.MethodPost, target, nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: status = %d; want 400", target, w.Code)
		}
		if d := decodeDetail(t, w); d != "reward_id must be an integer" {
			t.Fatalf("%s: detail = %q", target, d)
		}
	}
}
