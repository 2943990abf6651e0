package main

import (
	"net/http"

	"onboarding/src/common"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

func roleHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/roles", func(ctx *gin.Context) {
			roles, err := common.ListRoles(a.db)
			if err != nil {
				utils.RespondError(ctx, "fetching roles", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "roles": roles})
		})
	return g
}
