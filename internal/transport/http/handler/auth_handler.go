package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/domain"
	resp "github.com/UnicAcademy-01/stemgurukul-backend/internal/transport/http/response"
	"github.com/UnicAcademy-01/stemgurukul-backend/pkg/utils"
)

// AuthHandler serves signup and login. Each login is a stateless one-shot
// credential check; no session or token is issued.
type AuthHandler struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewAuthHandler(users domain.UserRepository, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: log}
}

type signupIn struct {
	Name     string `json:"name" binding:"required"`
	MobileNo string `json:"mobileNo" binding:"required"`
	EmailID  string `json:"emailID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var in signupIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		h.log.Error("signup hash", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	u := &domain.User{
		Name:         in.Name,
		Mobile:       in.MobileNo,
		Email:        in.EmailID,
		PasswordHash: hash,
	}
	if err := h.users.Create(c.Request.Context(), u); err != nil {
		if errors.Is(err, domain.ErrEmailExists) {
			resp.Err(c, http.StatusConflict, "Email exists")
			return
		}
		h.log.Error("signup", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	h.log.Info("user registered", zap.String("user_id", u.UserID))
	resp.OK(c, "Registered", "user", gin.H{"user_id": u.UserID})
}

type loginIn struct {
	EmailID  string `json:"emailid" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Err(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.FindByEmail(c.Request.Context(), in.EmailID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			resp.Err(c, http.StatusNotFound, "User not found")
			return
		}
		h.log.Error("login lookup", zap.Error(err))
		resp.Err(c, http.StatusInternalServerError, "Server error")
		return
	}

	if !utils.CheckPassword(in.Password, u.PasswordHash) {
		resp.Err(c, http.StatusUnauthorized, "Incorrect password")
		return
	}

	resp.OK(c, "Login success", "user", gin.H{
		"user_id": u.UserID,
		"name":    u.Name,
		"emailid": u.Email,
	})
}
