package main

import (
	"net/http"

	"onboarding/src/common"
	"onboarding/src/middlewares"
	"onboarding/src/types"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

func taskFilterFromQuery(ctx *gin.Context) (common.TaskFilter, error) {
	projectID, err := utils.ParseID(ctx.Query("projectId"))
	if err != nil {
		return common.TaskFilter{}, err
	}
	roleID, err := utils.ParseOptionalID(ctx.Query("roleId"))
	if err != nil {
		return common.TaskFilter{}, err
	}
	return common.TaskFilter{ProjectID: projectID, RoleID: roleID}, nil
}

func checklistHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	g.
		GET("/checklist", func(ctx *gin.Context) {
			filter, err := taskFilterFromQuery(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "projectId is required"})
				return
			}
			caller := middlewares.CurrentUser(ctx)
			if err := common.RequireProjectAccess(a.db, caller, filter.ProjectID); err != nil {
				utils.RespondError(ctx, "fetching checklist", err)
				return
			}
			tasks, err := common.ListTasks(a.db, filter.ForCaller(caller))
			if err != nil {
				utils.RespondError(ctx, "fetching checklist", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
		}).
		PUT("/checklist/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "updating task", err)
				return
			}
			var body types.UpdateStatusRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid status value"})
				return
			}
			task, err := common.UpdateTaskStatus(a.db, middlewares.CurrentUser(ctx), id, body.Status)
			if err != nil {
				utils.RespondError(ctx, "updating task", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "task": task})
		})

	manager := g.Group("", middlewares.RequireManager)
	manager.
		GET("/checklist/manager", func(ctx *gin.Context) {
			filter, err := taskFilterFromQuery(ctx)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "projectId is required"})
				return
			}
			filter.Strict = true
			tasks, err := common.ListTasks(a.db, filter)
			if err != nil {
				utils.RespondError(ctx, "fetching checklist", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "tasks": tasks})
		}).
		POST("/checklist", func(ctx *gin.Context) {
			var body types.CreateTaskRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Task and projectId are required"})
				return
			}
			task, err := common.CreateTask(a.db, body)
			if err != nil {
				utils.RespondError(ctx, "creating task", err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "task": task})
		}).
		DELETE("/checklist/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "deleting task", err)
				return
			}
			if err := common.DeleteTask(a.db, id); err != nil {
				utils.RespondError(ctx, "deleting task", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Task deleted successfully"})
		})
	return g
}
