// Kid HTTP handlers.
//
// This file exposes REST endpoints for kid resources and completion events:
//   - POST /kids                              (create)
//   - GET  /kids                              (list with skip/limit)
//   - POST /kids/{kid_id}/chores/{chore_id}   (record a completion)
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/choreboard/go-chore-backend/internal/domain"
)

// CreateKidRequest is the JSON payload for creating a kid.
type CreateKidRequest struct {
	Name *string `json:"name" binding:"required" example:"Alice"`
}

// KidResponse is the wire shape of a kid.
type KidResponse struct {
	ID   uint   `json:"id"   example:"1"`
	Name string `json:"name" example:"Alice"`
}

// KidChoreResponse is the wire shape of one completion event.
type KidChoreResponse struct {
	ID          uint      `json:"id"           example:"1"`
	KidID       uint      `json:"kid_id"       example:"1"`
	ChoreID     uint      `json:"chore_id"     example:"2"`
	CompletedAt time.Time `json:"completed_at"`
}

// toKidResponse maps a persisted kid row to its wire shape.
func toKidResponse(k *domain.Kid) KidResponse {
	return KidResponse{ID: k.ID, Name: k.Name}
}

func toKidResponses(ks []domain.Kid) []KidResponse {
	out := make([]KidResponse, 0, len(ks))
	for i := range ks {
		out = append(out, toKidResponse(&ks[i]))
	}
	return out
}

// toKidChoreResponse maps a completion row to its wire shape.
func toKidChoreResponse(kc *domain.KidChore) KidChoreResponse {
	return KidChoreResponse{
		ID:          kc.ID,
		KidID:       kc.KidID,
		ChoreID:     kc.ChoreID,
		CompletedAt: kc.CompletedAt,
	}
}

// CreateKid godoc
// @ID          createKid
// @Summary     Create a kid
// @Tags        Kids
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateKidRequest  true  "Create kid payload"
//
// @Success     200  {object}  handlers.KidResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /kids [post]
func (h *Handlers) CreateKid(c *gin.Context) {
	var req CreateKidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name is required")
		return
	}

	k, err := h.kidSvc.Create(c.Request.Context(), *req.Name)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toKidResponse(k))
}

// ListKids godoc
// @ID          listKids
// @Summary     List kids
// @Tags        Kids
// @Produce     json
// @Security    BearerAuth
//
// @Param       skip   query  int  false  "Rows to skip"  minimum(0) default(0)
// @Param       limit  query  int  false  "Maximum rows"  minimum(1) default(100)
//
// @Success     200  {array}   handlers.KidResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /kids [get]
func (h *Handlers) ListKids(c *gin.Context) {
	skip, limit := skipLimit(c)
	items, err := h.kidSvc.List(c.Request.Context(), skip, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toKidResponses(items))
}

// CompleteChore godoc
// @ID          completeChore
// @Summary     Record a chore completion
// @Description Appends a timestamped completion event for (kid, chore). The same pair may be recorded many times. The ids are not checked against their tables.
// @Tags        Kids
// @Produce     json
// @Security    BearerAuth
//
// @Param       kid_id    path  int  true  "Kid ID"
// @Param       chore_id  path  int  true  "Chore ID"
//
// @Success     200  {object}  handlers.KidChoreResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /kids/{kid_id}/chores/{chore_id} [post]
func (h *Handlers) CompleteChore(c *gin.Context) {
	kidID, okKid := pathID(c, "kid_id")
	if !okKid {
		return
	}
	choreID, okChore := pathID(c, "chore_id")
	if !okChore {
		return
	}

	kc, err := h.kidSvc.CompleteChore(c.Request.Context(), kidID, choreID)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toKidChoreResponse(kc))
}
