package main

import (
	"log"
	"net/http"
	"strings"

	"onboarding/src/common"
	"onboarding/src/controllers"
	"onboarding/src/middlewares"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

func uploadRoutes(router *gin.Engine, a *app) {
	router.GET("/uploads/*name", func(ctx *gin.Context) {
		a.storage.Serve(ctx.Writer, ctx.Request, strings.TrimPrefix(ctx.Param("name"), "/"))
	})
}

func resourceHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/resources/:projectId", func(ctx *gin.Context) {
			projectID, err := utils.ParseIDParam(ctx, "projectId")
			if err != nil {
				utils.RespondError(ctx, "fetching resources", err)
				return
			}
			roleID, err := utils.ParseOptionalID(ctx.Query("roleId"))
			if err != nil {
				utils.RespondError(ctx, "fetching resources", err)
				return
			}
			resources, err := common.ListResources(a.db, middlewares.CurrentUser(ctx), projectID, roleID)
			if err != nil {
				utils.RespondError(ctx, "fetching resources", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "resources": resources})
		})

	manager := g.Group("", middlewares.RequireManager)
	manager.
		POST("/resources", func(ctx *gin.Context) {
			in, file, size, status, err := controllers.ResourceFromForm(ctx, a.limits)
			if err != nil {
				log.Printf("Error reading resource form: %s\n", err.Error())
				ctx.JSON(status, gin.H{"success": false, "error": utils.ErrorMessage(status, err)})
				return
			}
			if file != nil {
				defer file.Close()
			}
			resource, err := common.CreateResource(ctx, a.db, a.storage, *in, file, size)
			if err != nil {
				utils.RespondError(ctx, "creating resource", err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "resource": resource})
		}).
		DELETE("/resources/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "deleting resource", err)
				return
			}
			if err := common.DeleteResource(ctx, a.db, a.storage, id); err != nil {
				utils.RespondError(ctx, "deleting resource", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Resource deleted successfully"})
		})
	return g
}
