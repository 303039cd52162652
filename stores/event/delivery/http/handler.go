package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/event"
)

type handler struct {
	events event.Repo
}

func New(e *echo.Echo, events event.Repo) {
	h := &handler{events}

	e.GET("/events", h.getAll)
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId *domain.ListingId `query:"listingId"`
		Type      *event.Type       `query:"type"`
		Offset    int32             `query:"offset"`
		Limit     int32             `query:"limit"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []event.FindAllOptionsFunc{}
	if p.ListingId != nil {
		opts = append(opts, event.WithListingId(*p.ListingId))
	}
	if p.Type != nil {
		opts = append(opts, event.WithType(*p.Type))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, event.WithPagination(p.Offset, p.Limit))
	}

	events, err := h.events.FindAll(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, events)
}
