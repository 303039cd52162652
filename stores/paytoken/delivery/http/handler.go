package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/middleware"
	authMiddleware "github.com/openmarkets/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	paytokens domain.PayTokenRepo
}

func New(e *echo.Echo, paytokens domain.PayTokenRepo, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{paytokens}

	g := e.Group("/paytokens")
	g.GET("/:address", h.get, middleware.IsValidAddress("address"))
	g.POST("", h.register, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	payToken, err := h.paytokens.FindOne(ctx, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, payToken)
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &domain.PayToken{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.paytokens.Upsert(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, p)
}
