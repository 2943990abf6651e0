package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"onboarding/src/common"
	"onboarding/src/lib"
	"onboarding/src/models"
	"onboarding/src/types"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthLogin checks email and password and issues a session token. Unknown
// emails and wrong passwords fail the same way.
func AuthLogin(ctx *gin.Context, db *gorm.DB, issuer *lib.TokenIssuer) (*types.LoginResponse, int, error) {
	var body types.LoginRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		log.Printf("[AuthLogin] invalid body: %s\n", err.Error())
		return nil, http.StatusBadRequest, types.ErrInvalidRequest
	}

	user, err := common.FindUserByEmail(db, body.Email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, http.StatusInternalServerError, err
		}
		lib.BurnPasswordCheck(body.Password)
		return nil, http.StatusUnauthorized, types.ErrUnauthorized
	}
	ok, err := lib.VerifyPassword(body.Password, user.PasswordHash)
	if err != nil {
		log.Printf("Error verifying password for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusUnauthorized, types.ErrUnauthorized
	}
	if !ok {
		return nil, http.StatusUnauthorized, types.ErrUnauthorized
	}

	token, claims, err := issuer.Issue(user.ID, user.Email, user.Role.RoleName)
	if err != nil {
		log.Printf("Error signing token for user [%d]: %s\n", user.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}
	return &types.LoginResponse{
		Success:   true,
		ID:        user.ID,
		Email:     user.Email,
		RoleID:    user.RoleID,
		RoleName:  user.Role.RoleName,
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, http.StatusOK, nil
}

// AuthLogout denies the presented token for the rest of its lifetime.
func AuthLogout(ctx *gin.Context, revoker *lib.TokenRevoker) (int, error) {
	claims, ok := ctx.Get("claims")
	if !ok {
		return http.StatusUnauthorized, types.ErrUnauthorized
	}
	c := claims.(*types.Claims)
	if !revoker.Enabled() {
		log.Println("Token revocation disabled: token stays valid until expiry")
		return http.StatusOK, nil
	}
	ttl := time.Until(c.ExpiresAt.Time)
	if err := revoker.Revoke(ctx, c.ID, ttl); err != nil {
		log.Printf("Error revoking token: %s\n", err.Error())
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func AuthMe(ctx *gin.Context) (*models.User, int, error) {
	user, ok := ctx.Get("user")
	if !ok {
		return nil, http.StatusUnauthorized, types.ErrUnauthorized
	}
	return user.(*models.User), http.StatusOK, nil
}
