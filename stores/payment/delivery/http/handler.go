package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/payment"
	authMiddleware "github.com/openmarkets/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	pay payment.Adapter
}

func New(e *echo.Echo, pay payment.Adapter, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{pay}

	g := e.Group("/payments")
	g.GET("/balance/:currency", h.balance, authMiddleware.Auth())
	g.POST("/approve", h.approve, authMiddleware.Auth())
	g.POST("/deposit", h.deposit, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) balance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)
	currency := domain.Address(c.Param("currency"))

	balance, err := h.pay.BalanceOf(ctx, owner, currency)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, balance.String())
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	type params struct {
		Currency domain.Address `json:"currency" validate:"required"`
		Amount   string         `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.pay.Approve(ctx, owner, p.Currency, amount); err != nil {
		if err == domain.ErrInvalidCurrency {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) deposit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner    domain.Address `json:"owner" validate:"required"`
		Currency domain.Address `json:"currency" validate:"required"`
		Amount   string         `json:"amount" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	amount, err := domain.ParseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.pay.Deposit(ctx, p.Owner, p.Currency, amount); err != nil {
		if err == domain.ErrInvalidCurrency {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}
