package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/escrow"
	authMiddleware "github.com/openmarkets/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	escrow escrow.UseCase
}

func New(e *echo.Echo, escrowUC escrow.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{escrowUC}

	g := e.Group("/credits")
	g.GET("/:currency", h.getCredit, authMiddleware.Auth())
	g.POST("/:currency/withdraw", h.withdraw, authMiddleware.Auth())

	e.GET("/escrow/:currency/held", h.getHeld, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) getCredit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	currency := domain.Address(c.Param("currency"))

	credit, err := h.escrow.GetCredit(ctx, caller, currency)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, credit)
}

func (h *handler) getHeld(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	currency := domain.Address(c.Param("currency"))

	held, err := h.escrow.GetHeld(ctx, currency)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, held)
}

func (h *handler) withdraw(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)
	currency := domain.Address(c.Param("currency"))

	amount, err := h.escrow.WithdrawCredit(ctx, caller, currency)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, amount)
}
