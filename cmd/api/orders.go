package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/commerce-api/internal/httpx"
	"github.com/MikeMC777/commerce-api/internal/order"
)

// getOrderHandler godoc
// @Summary  Get an order (ADMIN or owner)
// @Tags     orders
// @Produce  json
// @Security BearerAuth
// @Param    id path int true "order id"
// @Success  200 {object} order.Order
// @Failure  403 {object} httpx.HTTPError
// @Failure  404 {object} httpx.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(svc orderService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := httpx.ID(c, "id")
		if !ok {
			httpx.WriteError(c, log, errNoResource)
			return
		}
		o, err := svc.FindByID(c.Request.Context(), id)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// createOrderHandler godoc
// @Summary  Place an order
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body order.Payload true "order"
// @Success  201 {object} order.Order
// @Failure  422 {object} httpx.HTTPError
// @Router   /orders [post]
func createOrderHandler(svc orderService, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in order.Payload
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "malformed request body")
			return
		}
		o, err := svc.Insert(c.Request.Context(), in)
		if err != nil {
			httpx.WriteError(c, log, err)
			return
		}
		c.Header("Location", fmt.Sprintf("/orders/%d", o.ID))
		c.JSON(http.StatusCreated, o)
	}
}
