package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/domain"
	resp "github.com/UnicAcademy-01/stemgurukul-backend/internal/transport/http/response"
)

type SubscribeHandler struct {
	subs domain.SubscriptionRepository
	log  *zap.Logger
}

func NewSubscribeHandler(subs domain.SubscriptionRepository, log *zap.Logger) *SubscribeHandler {
	return &SubscribeHandler{subs: subs, log: log}
}

type subscribeIn struct {
	EmailID string `json:"emailid"`
	// pointer so an absent field is distinguishable from an explicit false
	Subscribers *bool `json:"subscribers"`
}

func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var in subscribeIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(in.EmailID) == "" {
		resp.Err(c, http.StatusBadRequest, "EmailID is required")
		return
	}

	subscribed := true
	if in.Subscribers != nil {
		subscribed = *in.Subscribers
	}

	rec, err := h.subs.Upsert(c.Request.Context(), in.EmailID, subscribed)
	if err != nil {
		h.log.Error("subscribe", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	resp.OK(c, "Subscription saved successfully", "data", rec)
}
