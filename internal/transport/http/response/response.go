// Package response holds the two JSON body shapes every endpoint uses:
// a success body carrying a message plus payload, and {"error": msg} with
// the real HTTP status for failures.
package response

import "github.com/gin-gonic/gin"

// OK writes a 200 with a message and a named payload field ("user" for the
// auth endpoints, "data" for subscribe).
func OK(c *gin.Context, message, field string, payload any) {
	body := gin.H{"message": message}
	if field != "" {
		body[field] = payload
	}
	c.JSON(200, body)
}

// Err writes {"error": msg} with the given status and stops the chain.
func Err(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
