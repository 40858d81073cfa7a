package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resp "github.com/UnicAcademy-01/stemgurukul-backend/internal/transport/http/response"
)

// MaxBodyBytes caps request body size. The API only takes small JSON
// bodies, so 1MiB is generous.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			resp.Err(c, http.StatusBadRequest, "request body too large")
		}
	}
}
