package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"onboarding/src/common"
	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func abortUnauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized"})
}

// AuthMiddleware validates the bearer token and loads the caller from the
// database. Authorization decisions use the loaded user, never the claims.
func AuthMiddleware(db *gorm.DB, issuer *lib.TokenIssuer, revoker *lib.TokenRevoker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bearerToken := ctx.Request.Header.Get("Authorization")
		reqToken, ok := strings.CutPrefix(bearerToken, "Bearer ")
		if !ok || strings.TrimSpace(reqToken) == "" {
			abortUnauthorized(ctx)
			return
		}
		claims, err := issuer.Parse(strings.TrimSpace(reqToken))
		if err != nil {
			log.Printf("token error: %s\n", err.Error())
			abortUnauthorized(ctx)
			return
		}
		revoked, err := revoker.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Printf("[redis] Error checking revocation: %s\n", err.Error())
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Session store unavailable"})
			return
		}
		if revoked {
			abortUnauthorized(ctx)
			return
		}

		uid, err := lib.UserID(claims)
		if err != nil {
			log.Println("error parsing claims:", err.Error())
			abortUnauthorized(ctx)
			return
		}
		user, err := common.GetUser(db, uid)
		if err != nil {
			if !errors.Is(err, types.ErrNotFound) {
				log.Printf("Error loading user [%d]: %s\n", uid, err.Error())
			}
			abortUnauthorized(ctx)
			return
		}

		ctx.Set("id", user.ID)
		ctx.Set("manager", user.IsManager())
		ctx.Set("user", user)
		ctx.Set("claims", claims)
	}
}

// CurrentUser returns the caller loaded by AuthMiddleware.
func CurrentUser(ctx *gin.Context) *models.User {
	if v, ok := ctx.Get("user"); ok {
		return v.(*models.User)
	}
	return nil
}

func RequireManager(ctx *gin.Context) {
	if !ctx.GetBool("manager") {
		ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Manager role required"})
		return
	}
}

// RequireSelfOrManager lets managers through, and other callers only when the
// path parameter param names themselves.
func RequireSelfOrManager(param string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.GetBool("manager") {
			return
		}
		id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
		if err != nil || uint(id) != ctx.GetUint("id") {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "Access denied"})
			return
		}
	}
}
