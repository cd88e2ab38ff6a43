package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wongco/jobly/internal/appcontext"
	"github.com/wongco/jobly/internal/utils"
)

// tokenField is the reserved meta key carrying the bearer credential in a
// query string or JSON body.
const tokenField = "_token"

// RequireAuth verifies the token and stores the claims on the gin context.
// Every failure mode responds an identical 401; the reason is never leaked.
func RequireAuth(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := authenticate(c, ctx); !ok {
			return
		}
		c.Next()
	}
}

// RequireSameUser additionally requires the token subject to equal the
// :username path parameter. A mismatch is a 401, not a 403, so an attacker
// cannot confirm that other usernames exist.
func RequireSameUser(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := authenticate(c, ctx)
		if !ok {
			return
		}
		if username != c.Param("username") {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

// RequireAdmin additionally requires the subject's admin flag to be set.
func RequireAdmin(ctx *appcontext.Context) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := authenticate(c, ctx)
		if !ok {
			return
		}
		isAdmin, err := ctx.Users.IsAdmin(c.Request.Context(), username)
		if err != nil || !isAdmin {
			unauthorized(c)
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, ctx *appcontext.Context) (string, bool) {
	tokenString := tokenFromRequest(c)
	if tokenString == "" {
		unauthorized(c)
		return "", false
	}

	claims, err := utils.ValidateJWT(tokenString, ctx.JWTSecret)
	if err != nil {
		unauthorized(c)
		return "", false
	}

	c.Set("claims", claims)
	return claims.Username, true
}

// tokenFromRequest pulls the credential from the query string or, failing
// that, from a JSON body. The body is restored so handlers can still bind it.
func tokenFromRequest(c *gin.Context) string {
	if token := c.Query(tokenField); token != "" {
		return token
	}

	if c.Request.Body == nil {
		return ""
	}
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewBuffer(body))

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	token, _ := payload[tokenField].(string)
	return token
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"status": http.StatusUnauthorized, "message": "Unauthorized"},
	})
}
