package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/account"
	"github.com/openmarkets/goapi/middleware"
)

type handler struct {
	au account.Usecase
}

// New registers account routes
func New(e *echo.Echo, au account.Usecase) {
	h := &handler{
		au: au,
	}
	g := e.Group("/account")
	g.GET("/:account", h.getAccount, middleware.IsValidAddress("account"))
}

func (h *handler) getAccount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("account"))
	info, err := h.au.Get(ctx, address)
	if err == domain.ErrNotFound {
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, info)
}
