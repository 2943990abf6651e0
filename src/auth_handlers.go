package main

import (
	"log"
	"net/http"

	"onboarding/src/controllers"

	"github.com/gin-gonic/gin"
)

func authHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		POST("/auth/login", func(ctx *gin.Context) {
			res, status, err := controllers.AuthLogin(ctx, a.db, a.issuer)
			if err != nil {
				log.Printf("[AuthLogin] error: %s\n", err.Error())
				msg := err.Error()
				if status >= http.StatusInternalServerError {
					msg = http.StatusText(status)
				}
				ctx.JSON(status, gin.H{"success": false, "error": msg})
				return
			}
			ctx.JSON(http.StatusOK, res)
		})
	return g
}

func sessionHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		POST("/auth/logout", func(ctx *gin.Context) {
			status, err := controllers.AuthLogout(ctx, a.revoker)
			if err != nil {
				log.Printf("[AuthLogout] error: %s\n", err.Error())
				ctx.JSON(status, gin.H{"success": false, "error": http.StatusText(status)})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
		}).
		GET("/auth/me", func(ctx *gin.Context) {
			user, status, err := controllers.AuthMe(ctx)
			if err != nil {
				ctx.JSON(status, gin.H{"success": false, "error": err.Error()})
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user.Summary()})
		})
	return g
}
