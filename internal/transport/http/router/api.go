package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/UnicAcademy-01/stemgurukul-backend/internal/core/cache"
	"github.com/UnicAcademy-01/stemgurukul-backend/internal/core/config"
	"github.com/UnicAcademy-01/stemgurukul-backend/internal/repo"
	"github.com/UnicAcademy-01/stemgurukul-backend/internal/transport/http/handler"
	mdw "github.com/UnicAcademy-01/stemgurukul-backend/internal/transport/http/middleware"
)

// NewAPIEngine assembles the full HTTP surface: the three JSON endpoints,
// the guide catalog, prometheus metrics, the subject-guide statics and the
// SPA fallback.
func NewAPIEngine(l *zap.Logger, db *gorm.DB, c *cache.Cache, cfg *config.Config) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		mdw.MaxBodyBytes(1<<20),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		mdw.AssetHeaders(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	users := repo.NewUserRepo(db)
	subs := repo.NewSubscriptionRepo(db)

	auth := handler.NewAuthHandler(users, l)
	subscribe := handler.NewSubscribeHandler(subs, l)
	guideList := handler.NewGuideHandler(
		c,
		cfg.Static.PublicDir,
		cfg.Static.Guides,
		time.Duration(cfg.Cache.GuideTTLSec)*time.Second,
		l,
	)

	api := r.Group("/api")
	{
		api.POST("/signup", auth.Signup)
		api.POST("/login", auth.Login)
		api.POST("/subscribe", subscribe.Subscribe)
		api.GET("/guides", guideList.List)
	}

	// One static mount per subject folder, same layout as the public dir.
	for _, g := range cfg.Static.Guides {
		r.Static("/"+g, filepath.Join(cfg.Static.PublicDir, g))
	}

	mountSPA(r, cfg.Static.BuildDir, cfg.Static.PublicDir)

	return r
}

// mountSPA serves build/ and public/ files for unmatched paths and falls
// back to the app shell for anything else, so client-side routes deep-link.
func mountSPA(r *gin.Engine, buildDir, publicDir string) {
	index := filepath.Join(buildDir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		rel := filepath.Clean(c.Request.URL.Path)
		for _, dir := range []string{buildDir, publicDir} {
			p := filepath.Join(dir, rel)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				c.File(p)
				return
			}
		}
		c.File(index)
	})
}
