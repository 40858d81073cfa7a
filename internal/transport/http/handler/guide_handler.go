package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/core/cache"
	"github.com/UnicAcademy-01/stemgurukul-backend/internal/guides"
	resp "github.com/UnicAcademy-01/stemgurukul-backend/internal/transport/http/response"
)

// GuideHandler lists the PDF study guides available for download. The
// catalog comes from a directory scan, cached in redis when one is wired.
type GuideHandler struct {
	cache     *cache.Cache // nil when redis is disabled
	publicDir string
	subjects  []string
	ttl       time.Duration
	log       *zap.Logger
}

func NewGuideHandler(c *cache.Cache, publicDir string, subjects []string, ttl time.Duration, log *zap.Logger) *GuideHandler {
	return &GuideHandler{cache: c, publicDir: publicDir, subjects: subjects, ttl: ttl, log: log}
}

func (h *GuideHandler) List(c *gin.Context) {
	out, err := cache.GetOrLoadJSON(h.cache, c.Request.Context(), "guides:catalog", h.ttl,
		func(ctx context.Context) (*[]guides.Guide, error) {
			gs, err := guides.Scan(h.publicDir, h.subjects)
			if err != nil {
				return nil, err
			}
			return &gs, nil
		})
	if err != nil {
		h.log.Error("guide catalog", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	list := []guides.Guide{}
	if out != nil && *out != nil {
		list = *out
	}
	resp.OK(c, "OK", "data", list)
}
