package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/commerce-api/internal/apperr"
	"github.com/MikeMC777/commerce-api/internal/httpx"
	"github.com/MikeMC777/commerce-api/internal/product"
)

var errNoResource = apperr.NotFound("resource not found", nil)

// listProductsHandler godoc
// @Summary  List products by name
// @Tags     products
// @Produce  json
// @Param    name query string false "name contains"
// @Param    page query int false "zero-based page"
// @Param    size query int false "page size"
// @Success  200 {object} product.Page[product.Min]
// @Router   /products [get]
func listProductsHandler(svc productService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, size := httpx.Page(c)
		out, err := svc.FindAll(c.Request.Context(), c.Query("name"), page, size)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// getProductHandler godoc
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id path int true "product id"
// @Success  200 {object} product.Product
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(svc productService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ID(c, "id")
		if !ok {
			httpx.WriteError(c, log, errNoResource)
			return
		}
		p, err := svc.FindByID(c.Request.Context(), id)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// createProductHandler godoc
// @Summary  Create a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body product.Payload true "product"
// @Success  201 {object} product.Product
// @Failure  422 {object} httpx.HTTPError
// @Router   /products [post]
func createProductHandler(svc productService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in product.Payload
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "malformed request body")
			return
		}
		p, err := svc.Insert(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/products/%d", p.ID))
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary  Replace a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path int             true "product id"
// @Param    body body product.Payload true "product"
// @Success  200 {object} product.Product
// @Failure  404 {object} httpx.HTTPError
// @Failure  422 {object} httpx.HTTPError
// @Router   /products/{id} [put]
func updateProductHandler(svc productService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ID(c, "id")
		if !ok {
			httpx.WriteError(c, log, errNoResource)
			return
		}
		var in product.Payload
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "malformed request body")
			return
		}
		p, err := svc.Update(c.Request.Context(), id, in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// deleteProductHandler godoc
// @Summary  Delete a product
// @Tags     products
// @Security BearerAuth
// @Param    id path int true "product id"
// @Success  204
// @Failure  400 {object} httpx.HTTPError "referenced by orders"
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [delete]
func deleteProductHandler(svc productService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ID(c, "id")
		if !ok {
			httpx.WriteError(c, log, errNoResource)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
