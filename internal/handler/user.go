package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/auth"
	"github.com/talentflow/talentflow/pkg"
	"github.com/talentflow/talentflow/pkg/model"
	"github.com/talentflow/talentflow/pkg/response"
)

// SignUp creates a new account and returns a token so the client can log
// straight in.
func (h *Handler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("signup bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	pwHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		h.Logger.Sugar().Errorw("failed to hash password", "err", err)
		response.InternalError(c, "")
		return
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: pwHash,
		Role:         req.Role,
		Phone:        req.Phone,
		Organization: req.Organization,
	}

	userID, err := h.Repository.CreateUser(ctx, user)
	if err != nil {
		h.repoError(c, err, "user create")
		return
	}
	user.UserID = userID

	token, err := h.issueToken(user)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "")
		return
	}
	response.Created(c, token)
}

// Login verifies credentials and returns a JWT.
func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Sugar().Warnw("login bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.Repository.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.Logger.Sugar().Warnw("login user not found", "email", req.Email)
		response.Unauthorized(c, "invalid credentials")
		return
	}
	if err := pkg.ComparePassword(user.PasswordHash, req.Password); err != nil {
		h.Logger.Sugar().Warnw("login password mismatch", "email", req.Email)
		response.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := h.issueToken(&user)
	if err != nil {
		h.Logger.Sugar().Errorw("error creating token", "err", err)
		response.InternalError(c, "")
		return
	}
	response.OK(c, token)
}

// Me returns the current user's profile.
func (h *Handler) Me(c *gin.Context) {
	claims := h.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return
	}

	user, err := h.Repository.GetUserByID(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Unauthorized(c, "")
		return
	}
	response.OK(c, userResponse(&user))
}

func (h *Handler) issueToken(user *model.User) (model.TokenResponse, error) {
	ttl := h.Config.JWT.AccessTokenTTL
	token, err := auth.GenerateToken(h.Config.JWT.Secret, user.UserID, user.Role, ttl)
	if err != nil {
		return model.TokenResponse{}, err
	}
	return model.TokenResponse{
		AccessToken: token,
		ExpiresAt:   time.Now().Add(ttl).Unix(),
		User:        userResponse(user),
	}, nil
}

func userResponse(u *model.User) model.UserResponse {
	return model.UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         u.Role,
		Organization: u.Organization,
	}
}
