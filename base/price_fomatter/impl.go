package pricefomatter

import (
	"math/big"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	bCtx "github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
)

// nativeDecimals applies to the native currency sentinel, which has no
// registry entry.
const nativeDecimals = int32(18)

type PriceFormatterCfg struct {
	Paytoken domain.PayTokenRepo
}

type impl struct {
	paytoken domain.PayTokenRepo

	// mutex protected members
	mutex         sync.Mutex
	payTokenCache map[domain.Address]*domain.PayToken
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	return &impl{
		paytoken:      cfg.Paytoken,
		payTokenCache: make(map[domain.Address]*domain.PayToken),
	}
}

func (f *impl) getDecimals(ctx bCtx.Ctx, currency domain.Address) (int32, error) {
	if currency.IsNative() {
		return nativeDecimals, nil
	}
	f.mutex.Lock()
	defer f.mutex.Unlock()
	key := currency.ToLower()
	if p, ok := f.payTokenCache[key]; ok {
		return p.Decimals, nil
	}
	p, err := f.paytoken.FindOne(ctx, currency)
	if err != nil {
		ctx.WithFields(log.Fields{
			"currency": currency,
			"err":      err,
		}).Error("paytoken.FindOne failed")
		return 0, xerrors.Errorf("failed to resolve pay token %s: %w", currency, err)
	}
	f.payTokenCache[key] = p
	return p.Decimals, nil
}

func (f *impl) GetDisplayPrice(ctx bCtx.Ctx, currency domain.Address, value *big.Int) (decimal.Decimal, error) {
	d, err := f.getDecimals(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromBigInt(value, -d), nil
}

func (f *impl) GetDisplayPriceFromString(ctx bCtx.Ctx, currency domain.Address, value string) (decimal.Decimal, error) {
	v, err := domain.ParseAmount(value)
	if err != nil {
		ctx.WithFields(log.Fields{
			"value": value,
			"err":   err,
		}).Error("domain.ParseAmount failed")
		return decimal.Zero, xerrors.Errorf("failed to parse amount %q: %w", value, err)
	}
	return f.GetDisplayPrice(ctx, currency, v)
}
