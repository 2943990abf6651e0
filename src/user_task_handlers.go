package main

import (
	"net/http"

	"onboarding/src/common"
	"onboarding/src/middlewares"
	"onboarding/src/types"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

func updateChecklistItem(a *app, action string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := utils.ParseIDParam(ctx, "taskId")
		if err != nil {
			utils.RespondError(ctx, action, err)
			return
		}
		var body types.UpdateUserTaskRequestBody
		if err := ctx.ShouldBindJSON(&body); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status value"})
			return
		}
		item, err := common.UpdateChecklistItem(a.db, middlewares.CurrentUser(ctx), id, body.Status, body.Notes)
		if err != nil {
			utils.RespondError(ctx, action, err)
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"success": true, "task": item})
	}
}

func userTaskHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/user-tasks/:userId", middlewares.RequireSelfOrManager("userId"), func(ctx *gin.Context) {
			userID, err := utils.ParseIDParam(ctx, "userId")
			if err != nil {
				utils.RespondError(ctx, "fetching user tasks", err)
				return
			}
			tasks, err := common.ListUserTasks(a.db, userID)
			if err != nil {
				utils.RespondError(ctx, "fetching user tasks", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
		}).
		PUT("/user-tasks/:taskId", updateChecklistItem(a, "updating user task")).
		GET("/user-checklists/:userId/:projectId", middlewares.RequireSelfOrManager("userId"), func(ctx *gin.Context) {
			userID, err := utils.ParseIDParam(ctx, "userId")
			if err != nil {
				utils.RespondError(ctx, "fetching checklist", err)
				return
			}
			projectID, err := utils.ParseIDParam(ctx, "projectId")
			if err != nil {
				utils.RespondError(ctx, "fetching checklist", err)
				return
			}
			items, err := common.ListUserChecklist(a.db, userID, projectID)
			if err != nil {
				utils.RespondError(ctx, "fetching checklist", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": items})
		}).
		PUT("/user-checklists/:taskId", updateChecklistItem(a, "updating checklist item"))

	manager := g.Group("", middlewares.RequireManager)
	manager.
		GET("/user-tasks", func(ctx *gin.Context) {
			tasks, err := common.ListAllUserTasks(a.db)
			if err != nil {
				utils.RespondError(ctx, "fetching user tasks", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
		}).
		POST("/user-tasks", func(ctx *gin.Context) {
			var body types.CreateUserTaskRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "userId, projectId and taskDescription are required"})
				return
			}
			item, err := common.CreateUserTask(a.db, body, ctx.GetUint("id"))
			if err != nil {
				utils.RespondError(ctx, "creating user task", err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "task": item})
		}).
		DELETE("/user-tasks/:taskId", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "taskId")
			if err != nil {
				utils.RespondError(ctx, "deleting user task", err)
				return
			}
			if err := common.DeleteUserTask(a.db, id); err != nil {
				utils.RespondError(ctx, "deleting user task", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted successfully"})
		})
	return g
}
