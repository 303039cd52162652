package domain

import (
	"github.com/openmarkets/goapi/base/ctx"
)

// PayToken is a currency the marketplace accepts. The native currency is
// registered under NativeTokenAddress.
type PayToken struct {
	Name     string  `bson:"name"`
	Symbol   string  `bson:"symbol"`
	Decimals int32   `bson:"decimals"`
	Address  Address `bson:"address"`
}

type PayTokenRepo interface {
	FindOne(ctx.Ctx, Address) (*PayToken, error)
	Create(ctx.Ctx, *PayToken) error
	Upsert(ctx.Ctx, *PayToken) error
}
