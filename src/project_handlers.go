package main

import (
	"net/http"

	"onboarding/src/common"
	"onboarding/src/middlewares"
	"onboarding/src/types"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func projectHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/projects", func(ctx *gin.Context) {
			projects, err := common.ListProjects(a.db)
			if err != nil {
				utils.RespondError(ctx, "fetching projects", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
		}).
		GET("/users/:userId/projects", middlewares.RequireSelfOrManager("userId"), func(ctx *gin.Context) {
			userID, err := utils.ParseIDParam(ctx, "userId")
			if err != nil {
				utils.RespondError(ctx, "fetching user projects", err)
				return
			}
			projects, err := common.ListUserProjects(a.db, userID)
			if err != nil {
				utils.RespondError(ctx, "fetching user projects", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "projects": projects})
		})

	manager := g.Group("", middlewares.RequireManager)
	manager.
		POST("/projects", func(ctx *gin.Context) {
			var body types.ProjectRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Project name is required"})
				return
			}
			project, err := common.CreateProject(a.db, body)
			if err != nil {
				utils.RespondError(ctx, "creating project", err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "project": project})
		}).
		PUT("/projects/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "updating project", err)
				return
			}
			var body types.ProjectRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Project name is required"})
				return
			}
			project, err := common.UpdateProject(a.db, id, body)
			if err != nil {
				utils.RespondError(ctx, "updating project", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "project": project, "message": "Project updated successfully"})
		}).
		DELETE("/projects/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "deleting project", err)
				return
			}
			if err := common.DeleteProject(ctx, a.db, a.storage, id); err != nil {
				utils.RespondError(ctx, "deleting project", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Project deleted successfully"})
		}).
		POST("/projects/user", func(ctx *gin.Context) {
			var body types.AssignProjectRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "userId and projectId are required"})
				return
			}
			err := a.db.Transaction(func(tx *gorm.DB) error {
				return common.AssignProject(tx, body.UserID, body.ProjectID, ctx.GetUint("id"))
			})
			if err != nil {
				utils.RespondError(ctx, "assigning project", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Project assigned successfully"})
		}).
		DELETE("/projects/:id/users/:userId", func(ctx *gin.Context) {
			projectID, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "removing project assignment", err)
				return
			}
			userID, err := utils.ParseIDParam(ctx, "userId")
			if err != nil {
				utils.RespondError(ctx, "removing project assignment", err)
				return
			}
			err = a.db.Transaction(func(tx *gorm.DB) error {
				return common.UnassignProject(tx, userID, projectID)
			})
			if err != nil {
				utils.RespondError(ctx, "removing project assignment", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Project removed from user"})
		})
	return g
}
