package pricefomatter

import (
	"math/big"

	"github.com/shopspring/decimal"
	bCtx "github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
)

type PriceFormatter interface {
	GetDisplayPrice(ctx bCtx.Ctx, currency domain.Address, value *big.Int) (decimal.Decimal, error)
	GetDisplayPriceFromString(ctx bCtx.Ctx, currency domain.Address, value string) (decimal.Decimal, error)
}
