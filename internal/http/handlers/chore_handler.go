// Chore HTTP handlers.
//
// This file exposes REST endpoints for chore resources:
//   - POST   /chores        (create)
//   - GET    /chores        (list with skip/limit)
//   - GET    /chores/{id}   (read)
//   - PUT    /chores/{id}   (partial update)
//   - DELETE /chores/{id}   (delete)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses. It also declares the
// service contracts and wiring shared by the other handler files.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/services"
	"github.com/choreboard/go-chore-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// ChoreService defines chore lifecycle operations consumed by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type ChoreService interface {
	// Create inserts a new chore.
	Create(ctx context.Context, name string, points int) (*domain.Chore, error)
	// List returns chores in insertion order with skip/limit applied.
	List(ctx context.Context, skip, limit int) ([]domain.Chore, error)
	// Get fetches a chore by id.
	Get(ctx context.Context, id uint) (*domain.Chore, error)
	// Update applies a partial update and returns the updated chore.
	Update(ctx context.Context, id uint, upd services.ChoreUpdate) (*domain.Chore, error)
	// Delete removes a chore by id.
	Delete(ctx context.Context, id uint) error
}

// KidService defines kid and completion operations consumed by HTTP handlers.
type KidService interface {
	// Create inserts a new kid.
	Create(ctx context.Context, name string) (*domain.Kid, error)
	// List returns kids in insertion order with skip/limit applied.
	List(ctx context.Context, skip, limit int) ([]domain.Kid, error)
	// CompleteChore records a completion event.
	CompleteChore(ctx context.Context, kidID, choreID uint) (*domain.KidChore, error)
}

// RewardService defines reward and award operations consumed by HTTP handlers.
type RewardService interface {
	// Create inserts a new reward.
	Create(ctx context.Context, name string, points int) (*domain.Reward, error)
	// List returns rewards in insertion order with skip/limit applied.
	List(ctx context.Context, skip, limit int) ([]domain.Reward, error)
	// Award records an award event.
	Award(ctx context.Context, kidID, rewardID uint) (*domain.KidReward, error)
}

// UserService defines account registration consumed by HTTP handlers.
type UserService interface {
	// Register creates an account with a hashed password.
	Register(ctx context.Context, username, password string) (*domain.User, error)
}

// AuthService defines credential verification and token issuance.
type AuthService interface {
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for chores, kids, rewards, users, and
// token issuance. It depends on abstract service interfaces to keep transport
// concerns separate from business logic.
type Handlers struct {
	choreSvc  ChoreService
	kidSvc    KidService
	rewardSvc RewardService
	userSvc   UserService
	authSvc   AuthService
}

// New constructs and returns a Handlers instance bound to the given services.
func New(choreSvc ChoreService, kidSvc KidService, rewardSvc RewardService, userSvc UserService, authSvc AuthService) *Handlers {
	return &Handlers{
		choreSvc:  choreSvc,
		kidSvc:    kidSvc,
		rewardSvc: rewardSvc,
		userSvc:   userSvc,
		authSvc:   authSvc,
	}
}

//
// DTOs and row→wire converters
//

// CreateChoreRequest is the JSON payload for creating a chore. KidID is
// accepted by the schema for compatibility but is not persisted by this
// handler; the legacy surface behaved the same way.
type CreateChoreRequest struct {
	Name   *string `json:"name"   binding:"required" example:"Dishes"`
	Points *int    `json:"points" binding:"required" example:"5"`
	KidID  *uint   `json:"kid_id" example:"1"`
}

// UpdateChoreRequest is the JSON payload for a partial chore update. Absent
// fields keep their stored values; kid_id, when present, must reference an
// existing kid.
type UpdateChoreRequest struct {
	Name   *string `json:"name"   example:"Dishes"`
	Points *int    `json:"points" example:"20"`
	KidID  *uint   `json:"kid_id" example:"1"`
}

// ChoreResponse is the wire shape of a chore.
type ChoreResponse struct {
	ID     uint   `json:"id"     example:"1"`
	Name   string `json:"name"   example:"Dishes"`
	Points int    `json:"points" example:"5"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message" example:"Chore deleted successfully"`
}

// toChoreResponse maps a persisted chore row to its wire shape.
func toChoreResponse(c *domain.Chore) ChoreResponse {
	return ChoreResponse{ID: c.ID, Name: c.Name, Points: c.Points}
}

// toChoreResponses maps a slice of chore rows, always yielding a non-nil
// slice so empty results serialize as [].
func toChoreResponses(cs []domain.Chore) []ChoreResponse {
	out := make([]ChoreResponse, 0, len(cs))
	for i := range cs {
		out = append(out, toChoreResponse(&cs[i]))
	}
	return out
}

//
// Helpers
//

// pathID parses a numeric path parameter. On failure it writes a 400 response
// and returns ok=false; callers must return immediately.
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, name+" must be an integer")
		return 0, false
	}
	return uint(v), true
}

// skipLimit parses the skip/limit query parameters with the reference
// defaults (skip=0, limit=100).
func skipLimit(c *gin.Context) (skip, limit int) {
	skip = utils.AtoiDefault(c.Query("skip"), 0)
	limit = utils.AtoiDefault(c.Query("limit"), 100)
	return
}

//
// Handlers
//

// CreateChore godoc
// @ID          createChore
// @Summary     Create a chore
// @Description Creates a chore with a name and point value and returns the stored row.
// @Tags        Chores
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       body  body  handlers.CreateChoreRequest  true  "Create chore payload"
//
// @Success     200  {object}  handlers.ChoreResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Bad request"
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chores [post]
func (h *Handlers) CreateChore(c *gin.Context) {
	var req CreateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name and points are required")
		return
	}

	ch, err := h.choreSvc.Create(c.Request.Context(), *req.Name, *req.Points)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toChoreResponse(ch))
}

// ListChores godoc
// @ID          listChores
// @Summary     List chores
// @Description Returns chores in creation order. Supports skip/limit windowing.
// @Tags        Chores
// @Produce     json
// @Security    BearerAuth
//
// @Param       skip   query  int  false  "Rows to skip"      minimum(0) default(0)
// @Param       limit  query  int  false  "Maximum rows"      minimum(1) default(100)
//
// @Success     200  {array}   handlers.ChoreResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /chores [get]
func (h *Handlers) ListChores(c *gin.Context) {
	skip, limit := skipLimit(c)
	items, err := h.choreSvc.List(c.Request.Context(), skip, limit)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toChoreResponses(items))
}

// GetChore godoc
// @ID          getChore
// @Summary     Read a chore
// @Tags        Chores
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Chore ID"
//
// @Success     200  {object}  handlers.ChoreResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Chore not found"
// @Router      /chores/{id} [get]
func (h *Handlers) GetChore(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	ch, err := h.choreSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrChoreNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "Chore not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, toChoreResponse(ch))
}

// UpdateChore godoc
// @ID          updateChore
// @Summary     Update a chore (partial)
// @Description Applies only the fields present in the body. A kid_id, when supplied, must reference an existing kid.
// @Tags        Chores
// @Accept      json
// @Produce     json
// @Security    BearerAuth
//
// @Param       id    path  int                           true  "Chore ID"
// @Param       body  body  handlers.UpdateChoreRequest  true  "Fields to update"
//
// @Success     200  {object}  handlers.ChoreResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid kid_id"
// @Failure     404  {object}  handlers.ErrorResponse  "Chore not found"
// @Router      /chores/{id} [put]
func (h *Handlers) UpdateChore(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}

	var req UpdateChoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	ch, err := h.choreSvc.Update(c.Request.Context(), id, services.ChoreUpdate{
		Name:   req.Name,
		Points: req.Points,
		KidID:  req.KidID,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChoreNotFound):
			fail(c, http.StatusNotFound, ErrCodeNotFound, "Chore not found")
		case errors.Is(err, services.ErrInvalidKid):
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Invalid kid_id")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeUpdateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, toChoreResponse(ch))
}

// DeleteChore godoc
// @ID          deleteChore
// @Summary     Delete a chore
// @Description Removes the chore row. Completion records referencing it are kept.
// @Tags        Chores
// @Produce     json
// @Security    BearerAuth
//
// @Param       id  path  int  true  "Chore ID"
//
// @Success     200  {object}  handlers.MessageResponse
// @Failure     404  {object}  handlers.ErrorResponse  "Chore not found"
// @Router      /chores/{id} [delete]
func (h *Handlers) DeleteChore(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		return
	}
	if err := h.choreSvc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrChoreNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "Chore not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeDeleteFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, MessageResponse{Message: "Chore deleted successfully"})
}
