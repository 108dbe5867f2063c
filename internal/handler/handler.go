package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/talentflow/talentflow/internal/ai"
	"github.com/talentflow/talentflow/internal/auth"
	"github.com/talentflow/talentflow/internal/cache"
	"github.com/talentflow/talentflow/internal/config"
	"github.com/talentflow/talentflow/internal/repository"
	"github.com/talentflow/talentflow/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	Logger     *zap.Logger
	Repository *repository.Repository
	AI         *ai.Gateway
	QuizCache  *cache.QuizCache
	Config     *config.Config
}

// GetClaimsFromContext retrieves the authenticated user's claims, set by the
// auth middleware.
func (h *Handler) GetClaimsFromContext(c *gin.Context) *auth.Claims {
	contextClaims, exists := c.Get("claims")
	if !exists {
		return nil
	}

	claims, ok := contextClaims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// repoError maps repository sentinel errors onto HTTP responses and logs
// everything else as a server error.
func (h *Handler) repoError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, "")
	case errors.Is(err, repository.ErrDuplicate):
		response.Conflict(c, err.Error())
	default:
		h.Logger.Sugar().Errorw(op+" failed", "err", err)
		response.InternalError(c, "")
	}
}
