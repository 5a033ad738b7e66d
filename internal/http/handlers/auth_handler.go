// Auth HTTP handlers.
//
// This file exposes the two unauthenticated endpoints:
//   - POST /token   (OAuth2 password-grant shaped login, form-encoded)
//   - POST /users   (account registration, JSON)
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/choreboard/go-chore-backend/internal/domain"
	"github.com/choreboard/go-chore-backend/internal/services"
)

// TokenRequest is the form-encoded login payload.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// TokenResponse is the successful login payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}

// CreateUserRequest is the JSON payload for account registration.
type CreateUserRequest struct {
	Username *string `json:"username" binding:"required,max=50" example:"parent1"`
	Password *string `json:"password" binding:"required" example:"hunter2"`
}

// UserResponse is the wire shape of an account. The password hash is never
// exposed.
type UserResponse struct {
	ID       uint   `json:"id"       example:"1"`
	Username string `json:"username" example:"parent1"`
}

// toUserResponse maps a persisted user row to its wire shape.
func toUserResponse(u *domain.User) UserResponse {
	return UserResponse{ID: u.ID, Username: u.Username}
}

// Login godoc
// @ID          login
// @Summary     Obtain an access token
// @Description Verifies a username/password pair and returns a signed, time-limited bearer token.
// @Tags        Auth
// @Accept      x-www-form-urlencoded
// @Produce     json
//
// @Param       username  formData  string  true  "Username"
// @Param       password  formData  string  true  "Password"
//
// @Success     200  {object}  handlers.TokenResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Incorrect username or password"
// @Router      /token [post]
func (h *Handlers) Login(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBind(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username and password are required")
		return
	}

	token, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			fail(c, http.StatusBadRequest, ErrCodeLoginFailed, "Incorrect username or password")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
}

// CreateUser godoc
// @ID          createUser
// @Summary     Register an account
// @Description Creates an account with a bcrypt-hashed password. Usernames are unique and at most 50 characters.
// @Tags        Auth
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateUserRequest  true  "Registration payload"
//
// @Success     200  {object}  handlers.UserResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Username already registered"
// @Router      /users [post]
func (h *Handlers) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "username (max 50 chars) and password are required")
		return
	}

	u, err := h.userSvc.Register(c.Request.Context(), *req.Username, *req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Username already registered")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, toUserResponse(u))
}
