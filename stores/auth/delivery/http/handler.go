package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/delivery"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/account"
)

type authHandler struct {
	auth               domain.AuthUsecase
	account            account.Usecase
	signingMsgTemplate string
}

func New(e *echo.Echo, auth domain.AuthUsecase, account account.Usecase, template string) {
	handler := &authHandler{
		auth:               auth,
		account:            account,
		signingMsgTemplate: template,
	}
	g := e.Group("/auth")
	g.POST("/nonce", handler.generateNonce)
	g.POST("/sign", handler.sign)
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
}

func (h *authHandler) generateNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address domain.Address `json:"address"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if nonce, err := h.account.GenerateNonce(ctx, p.Address); err != nil {
		ctx.WithField("err", err).Error("account.GenerateNonce failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, nonce)
	}
}

func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Address   domain.Address `json:"address"`
		Signature string         `json:"signature"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		ctx.WithField("err", err).Error("bind failed")
		return c.JSON(http.StatusUnprocessableEntity, err)
	}

	if err := h.account.ValidateSignature(ctx, p.Address, p.Signature); err != nil {
		return delivery.MakeJsonResp(c, http.StatusMethodNotAllowed, err)
	}

	if tkn, err := h.auth.SignToken(ctx, p.Address); err != nil {
		ctx.WithField("err", err).Error("auth.SignToken failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, tkn)
	}
}

func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.signingMsgTemplate,
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
