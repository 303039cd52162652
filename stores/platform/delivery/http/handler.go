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
	platform domain.PlatformUseCase
}

func New(e *echo.Echo, platform domain.PlatformUseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{platform}

	g := e.Group("/platform")
	g.GET("/fee", h.getFee)
	g.PUT("/fee", h.setFee, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.GET("/roles/:roleId/:address", h.hasRole, middleware.IsValidAddress("address"))
	g.POST("/roles/:roleId/grant", h.grantRole, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.POST("/roles/:roleId/revoke", h.revokeRole, authMiddleware.Auth(), authMiddleware.IsAdmin())
}

func (h *handler) getFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fee, err := h.platform.GetPlatformFee(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, fee)
}

func (h *handler) setFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &domain.FeeInfo{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.platform.SetPlatformFee(ctx, p); err != nil {
		if err == domain.ErrBadParamInput {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) hasRole(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	role := domain.RoleId(c.Param("roleId"))
	address := domain.Address(c.Param("address"))

	ok, err := h.platform.HasRole(ctx, role, address)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, ok)
}

func (h *handler) grantRole(c echo.Context) error {
	return h.changeRole(c, h.platform.GrantRole)
}

func (h *handler) revokeRole(c echo.Context) error {
	return h.changeRole(c, h.platform.RevokeRole)
}

func (h *handler) changeRole(c echo.Context, change func(ctx.Ctx, domain.RoleId, domain.Address) error) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	role := domain.RoleId(c.Param("roleId"))

	type params struct {
		Address domain.Address `json:"address" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := change(ctx, role, p.Address); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
