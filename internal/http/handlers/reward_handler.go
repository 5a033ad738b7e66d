// Reward HTTP handlers.
//
// This file exposes REST endpoints for reward resources and award events:
//   - POST /rewards                             (create)
//   - GET  /rewards                             (list with skip/limit)
//   - POST /kids/{kid_id}/rewards?reward_id=    (record an award)
package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// CreateRewardRequest is the JSON payload for creating a reward.
type CreateRewardRequest struct {
	Name   *string `json:"name"   binding:"required" example:"Ice cream"`
	Points *int    `json:"points" binding:"required" example:"10"`
}

// RewardResponse is the wire shape of a reward.
type RewardResponse struct {
	ID     uint   `json:"id"     example:"1"`
	Name   string `json:"name"   example:"Ice cream"`
	Points int    `json:"points" example:"10"`
}

// KidRewardResponse is the wire shape of one award event.
type KidRewardResponse struct {
	ID        uint      `json:"id"        example:"1"`
	KidID     uint      `json:"kid_id"    example:"1"`
	RewardID  uint      `json:"reward_id" example:"3"`
	AwardedAt time.Time `json:"awarded_at"`
}

// toRewardResponse maps a persisted reward row to its wire shape.
func toRewardResponse(r *domain.Reward) RewardResponse {
	return RewardResponse{ID: r.ID, Name: r.Name, Points: r.Points}
}

func toRewardResponses(rs []domain.Reward) []RewardResponse {
	out := make([]RewardResponse, 0, len(rs))
	for i := range rs {
		out = append(out, toRewardResponse(&rs[i]))
	}
	return out
}

// toKidRewardResponse maps an award row to its wire shape.
func toKidRewardResponse(kr *domain.KidReward) KidRewardResponse {
	return KidRewardResponse{
		ID:        kr.ID,
		KidID:     kr.KidID,
		RewardID:  kr.RewardID,
		AwardedAt: kr.AwardedAt,
	}
}

// CreateReward godoc
// @ID          createReward
// @Summary     Create a reward
// @Tags        Rewards
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateRewardRequest  true  "Create reward payload"
//
// @Success     200  {object}  handlers.RewardResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /rewards [post]
func (h *Handlers) CreateReward(c *gin.Context) {
	var req CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and points are required")
		return
	}

	r, err := h.rewardSvc.Create(c.Request.Context(), *req.Name, *req.Points)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toRewardResponse(r))
}

// ListRewards godoc
// @ID          listRewards
// @Summary     List rewards
// @Tags        Rewards
// @Produce     json
// @Security    BearerAuth
//
// @Param       skip   query  int  false  "Rows to skip"  minimum(0) default(0)
// @Param       limit  query  int  false  "Maximum rows"  minimum(1) default(100)
//
// @Success     200  {array}   handlers.RewardResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /rewards [get]
func (h *Handlers) ListRewards(c *gin.Context) {
	skip, limit := skipLimit(c)
	items, err := h.rewardSvc.List(c.Request.Context(), skip, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toRewardResponses(items))
}

// AwardReward godoc
// @ID          awardReward
// @Summary     Award a reward to a kid
// @Description Appends a timestamped award event for (kid, reward). reward_id is passed as a query parameter. The ids are not checked against their tables.
// @Tags        Rewards
// @Produce     json
// @Security    BearerAuth
//
// @Param       kid_id     path   int  true  "Kid ID"
// @Param       reward_id  query  int  true  "Reward ID"
//
// @Success     200  {object}  handlers.KidRewardResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /kids/{kid_id}/rewards [post]
func (h *Handlers) AwardReward(c *gin.Context) {
	kidID, okKid := pathID(c, "kid_id")
	if !okKid {
		return
	}
	rewardID, err := strconv.ParseUint(c.Query("reward_id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "reward_id must be an integer")
		return
	}

	kr, err := h.rewardSvc.Award(c.Request.Context(), kidID, uint(rewardID))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toKidRewardResponse(kr))
}
