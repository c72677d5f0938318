package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/commerce-api/internal/httpx"
	"github.com/MikeMC777/commerce-api/internal/user"
)

// loginHandler godoc
// @Summary  Exchange credentials for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.Credentials true "credentials"
// @Success  200 {object} user.Token
// @Failure  401 {object} httpx.HTTPError
// @Router   /auth/login [post]
func loginHandler(svc userService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.Credentials
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "malformed request body")
			return
		}
		tok, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, tok)
	}
}

// meHandler godoc
// @Summary  Current user profile
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} user.Profile
// @Failure  401 {object} httpx.HTTPError
// @Router   /users/me [get]
func meHandler(svc userService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		me, err := svc.GetMe(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, me)
	}
}

// listCategoriesHandler godoc
// @Summary  List categories
// @Tags     categories
// @Produce  json
// @Success  200 {array} category.Category
// @Router   /categories [get]
func listCategoriesHandler(svc categoryService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.FindAll(c.Request.Context())
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
