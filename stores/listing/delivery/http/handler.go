package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/base/metrics"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/listing"
	"github.com/openmarkets/goapi/domain/trade"
	"github.com/openmarkets/goapi/middleware"
	authMiddleware "github.com/openmarkets/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	listing listing.UseCase
	trade   trade.UseCase
}

func New(
	e *echo.Echo,
	listingUC listing.UseCase,
	tradeUC trade.UseCase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("listing")

	h := &handler{listingUC, tradeUC}

	gs := e.Group("/listings")

	gs.GET("", h.getAll, middleware.CacheHttp(30*time.Second))

	gs.POST("", h.create, authMiddleware.Auth())

	g := e.Group("/listings/:listingId")

	g.GET("", h.get, h.listingRequestCount())

	g.PATCH("", h.update, authMiddleware.Auth())

	g.GET("/offers", h.getOffers)

	g.POST("/offers", h.offer, authMiddleware.Auth())

	g.DELETE("/offers", h.cancelOffer, authMiddleware.Auth())

	g.POST("/offers/accept", h.acceptOffer, authMiddleware.Auth())

	g.GET("/bid", h.getWinningBid)

	g.POST("/close", h.closeAuction, authMiddleware.Auth())
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	p := &listing.Params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.CreateListing(ctx, owner, p)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		listing.Params
		ListingId domain.ListingId `param:"listingId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	l, err := h.listing.UpdateListing(ctx, p.ListingId, caller, &p.Params)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, l)
}

func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	detail, err := h.listing.GetListing(ctx, p.ListingId)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, detail)
}

func (h *handler) getAll(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Owner         *domain.Address `query:"owner"`
		AssetContract *domain.Address `query:"assetContract"`
		TokenId       *domain.TokenId `query:"tokenId"`
		ListingType   *listing.Type   `query:"listingType"`
		OnlyOpen      bool            `query:"onlyOpen"`
		Offset        int32           `query:"offset"`
		Limit         int32           `query:"limit"`
		SortBy        string          `query:"sortBy"`
		SortDir       string          `query:"sortDir"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []listing.FindAllOptionsFunc{}
	if p.Owner != nil {
		opts = append(opts, listing.WithOwner(*p.Owner))
	}
	if p.AssetContract != nil {
		opts = append(opts, listing.WithAssetContract(*p.AssetContract))
	}
	if p.TokenId != nil {
		opts = append(opts, listing.WithTokenId(*p.TokenId))
	}
	if p.ListingType != nil {
		opts = append(opts, listing.WithListingType(*p.ListingType))
	}
	if p.OnlyOpen {
		opts = append(opts, listing.WithOpenAt(time.Now()))
	}
	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}
	if p.SortBy != "" {
		dir := domain.SortDir(domain.SortDirAsc)
		if p.SortDir == "desc" {
			dir = domain.SortDirDesc
		}
		opts = append(opts, listing.WithSort(p.SortBy, dir))
	}

	details, err := h.listing.FindAll(ctx, opts...)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, details)
}

func (h *handler) offer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	p := &trade.OfferParams{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.trade.Offer(ctx, caller, p); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, "ok")
}

func (h *handler) cancelOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.trade.CancelOffer(ctx, p.ListingId, caller); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) acceptOffer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		ListingId     domain.ListingId `param:"listingId"`
		Offeror       domain.Address   `json:"offeror" validate:"required"`
		Currency      domain.Address   `json:"currency" validate:"required"`
		PricePerToken string           `json:"pricePerToken" validate:"required"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.trade.AcceptOffer(ctx, p.ListingId, caller, p.Offeror, p.Currency, p.PricePerToken); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getOffers(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	offers, err := h.trade.GetOffers(ctx, p.ListingId)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, offers)
}

func (h *handler) getWinningBid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	bid, err := h.trade.GetWinningBid(ctx, p.ListingId)
	if err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bid)
}

func (h *handler) closeAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	caller := c.Get("address").(domain.Address)

	type params struct {
		ListingId domain.ListingId `param:"listingId"`
		Recipient domain.Address   `json:"recipient"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.trade.CloseAuction(ctx, p.ListingId, caller, p.Recipient); err != nil {
		return mapError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) listingRequestCount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			met.BumpSum("get.count", 1, "listingId", c.Param("listingId"))
			return next(c)
		}
	}
}

func mapError(c echo.Context, err error) error {
	switch err {
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrNotListingOwner, domain.ErrMissingRole:
		return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, err)
	case domain.ErrZeroQuantity, domain.ErrReserveExceedBuyout, domain.ErrInvalidTimeRange,
		domain.ErrStartTooLate, domain.ErrListingNotOpen, domain.ErrListingStarted,
		domain.ErrOfferExpired, domain.ErrAuctionNotEnded, domain.ErrBidTooLow,
		domain.ErrInsufficientBalance, domain.ErrInsufficientQuantity, domain.ErrValueMismatch,
		domain.ErrInvalidCurrency, domain.ErrBadParamInput:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}
