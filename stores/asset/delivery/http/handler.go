package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/middleware"
	authMiddleware "github.com/openmarkets/goapi/stores/auth/delivery/http/middleware"
)

type handler struct {
	contracts asset.ContractRepo
	holdings  asset.HoldingRepo
	approvals asset.ApprovalRepo
	// operator is the address approvals are granted to.
	operator domain.Address
}

func New(
	e *echo.Echo,
	contracts asset.ContractRepo,
	holdings asset.HoldingRepo,
	approvals asset.ApprovalRepo,
	operator domain.Address,
	authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{contracts, holdings, approvals, operator.ToLower()}

	g := e.Group("/assets")
	g.POST("/contracts", h.registerContract, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.GET("/contracts/:contract", h.getContract, middleware.IsValidAddress("contract"))
	g.GET("/:contract/:tokenId/holders", h.getHolders, middleware.IsValidAddress("contract"))
	g.POST("/mint", h.mint, authMiddleware.Auth(), authMiddleware.IsAdmin())
	g.POST("/approve", h.approve, authMiddleware.Auth())
}

func (h *handler) registerContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &asset.Contract{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if !p.Kind.IsValid() {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.contracts.Create(ctx, p); err != nil {
		if err == domain.ErrConflict {
			return delivery.MakeJsonResp(c, http.StatusConflict, err)
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, p)
}

func (h *handler) getContract(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))

	record, err := h.contracts.FindOne(ctx, contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, record)
}

func (h *handler) getHolders(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	contract := domain.Address(c.Param("contract"))
	tokenId := domain.TokenId(c.Param("tokenId"))

	holders, err := h.holdings.FindAll(ctx, contract, tokenId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, holders)
}

func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &asset.Holding{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if p.Balance <= 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrZeroQuantity)
	}

	record, err := h.contracts.FindOne(ctx, p.Contract)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
	}
	if record.Kind == asset.KindUnique && p.Balance != 1 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.holdings.Upsert(ctx, p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, p)
}

func (h *handler) approve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	owner := c.Get("address").(domain.Address)

	type params struct {
		Approved bool `json:"approved"`
	}
	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.approvals.Set(ctx, owner, h.operator, p.Approved); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
