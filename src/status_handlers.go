package main

import (
	"net/http"

	"onboarding/src/common"
	"onboarding/src/middlewares"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

func statusHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/status/:projectId", middlewares.RequireManager, func(ctx *gin.Context) {
			projectID, err := utils.ParseIDParam(ctx, "projectId")
			if err != nil {
				utils.RespondError(ctx, "fetching project status", err)
				return
			}
			report, err := common.ProjectStatusReport(a.db, projectID)
			if err != nil {
				utils.RespondError(ctx, "fetching project status", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{
				"success":       true,
				"projectStatus": report.ProjectStatus,
				"userProgress":  report.UserProgress,
			})
		})
	return g
}
