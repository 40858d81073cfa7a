package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// AssetHeaders sets the content type and permissive cross-origin resource
// headers on PDF and JSON assets, so the guides stay embeddable from the
// frontend origin.
func AssetHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := strings.ToLower(c.Request.URL.Path)
		switch {
		case strings.HasSuffix(p, ".pdf"):
			c.Header("Content-Type", "application/pdf")
			setCrossOrigin(c)
		case strings.HasSuffix(p, ".json"):
			c.Header("Content-Type", "application/json")
			setCrossOrigin(c)
		}
		c.Next()
	}
}

func setCrossOrigin(c *gin.Context) {
	c.Header("Cross-Origin-Embedder-Policy", "unsafe-none")
	c.Header("Cross-Origin-Resource-Policy", "cross-origin")
}
