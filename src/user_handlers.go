package main

import (
	"net/http"

	"onboarding/src/common"
	"onboarding/src/middlewares"
	"onboarding/src/types"
	"onboarding/src/utils"

	"github.com/gin-gonic/gin"
)

func userHandlers(g *gin.RouterGroup, a *app) *gin.RouterGroup {
	users := g.Group("/users", middlewares.RequireManager)
	users.
		GET("", func(ctx *gin.Context) {
			list, err := common.ListUsers(a.db)
			if err != nil {
				utils.RespondError(ctx, "fetching users", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "users": list})
		}).
		POST("", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "All fields are required"})
				return
			}
			user, err := common.CreateUser(a.db, body, ctx.GetUint("id"))
			if err != nil {
				utils.RespondError(ctx, "creating user", err)
				return
			}
			ctx.JSON(http.StatusCreated, gin.H{"success": true, "user": user.Summary()})
		}).
		PUT("/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "updating user", err)
				return
			}
			var body types.UpdateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email and roleId are required"})
				return
			}
			user, err := common.UpdateUser(a.db, id, body, ctx.GetUint("id"))
			if err != nil {
				utils.RespondError(ctx, "updating user", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "user": user.Summary()})
		}).
		DELETE("/:id", func(ctx *gin.Context) {
			id, err := utils.ParseIDParam(ctx, "id")
			if err != nil {
				utils.RespondError(ctx, "deleting user", err)
				return
			}
			if err := common.DeleteUser(a.db, id, ctx.GetUint("id")); err != nil {
				utils.RespondError(ctx, "deleting user", err)
				return
			}
			ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
		})
	return g
}
