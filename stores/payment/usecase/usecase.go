package usecase

import (
	"math/big"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/payment"
)

type PaymentUseCaseCfg struct {
	BalanceRepo   payment.BalanceRepo
	AllowanceRepo payment.AllowanceRepo
	PayTokenRepo  domain.PayTokenRepo
	// Operator is the custody account funds are escrowed under.
	Operator domain.Address
}

type impl struct {
	balances   payment.BalanceRepo
	allowances payment.AllowanceRepo
	paytokens  domain.PayTokenRepo
	operator   domain.Address
}

// New creates the ledger-backed payment adapter.
func New(cfg *PaymentUseCaseCfg) payment.Adapter {
	return &impl{
		balances:   cfg.BalanceRepo,
		allowances: cfg.AllowanceRepo,
		paytokens:  cfg.PayTokenRepo,
		operator:   cfg.Operator.ToLower(),
	}
}

func (im *impl) checkCurrency(c ctx.Ctx, currency domain.Address) error {
	if currency.IsNative() {
		return nil
	}
	if _, err := im.paytokens.FindOne(c, currency); err == domain.ErrNotFound {
		return domain.ErrInvalidCurrency
	} else if err != nil {
		return err
	}
	return nil
}

func (im *impl) BalanceOf(c ctx.Ctx, owner, currency domain.Address) (*big.Int, error) {
	b, err := im.balances.FindOne(c, owner, currency)
	if err == domain.ErrNotFound {
		return new(big.Int), nil
	} else if err != nil {
		return nil, err
	}
	return b.AmountInt()
}

func (im *impl) Pull(c ctx.Ctx, payer, currency domain.Address, amount, attachedValue *big.Int) error {
	c = ctx.WithValues(c, map[string]interface{}{
		"payer":    payer,
		"currency": currency,
		"amount":   amount.String(),
	})

	if err := im.checkCurrency(c, currency); err != nil {
		return err
	}

	if amount.Sign() == 0 {
		if attachedValue.Sign() != 0 {
			return domain.ErrValueMismatch
		}
		return nil
	}

	if currency.IsNative() {
		if attachedValue.Cmp(amount) != 0 {
			return domain.ErrValueMismatch
		}
	} else {
		if attachedValue.Sign() != 0 {
			return domain.ErrValueMismatch
		}
		if err := im.spendAllowance(c, payer, currency, amount); err != nil {
			return err
		}
	}

	return im.move(c, payer, im.operator, currency, amount)
}

func (im *impl) Push(c ctx.Ctx, payee, currency domain.Address, amount *big.Int) error {
	if amount.Sign() == 0 {
		return nil
	}
	return im.move(c, im.operator, payee, currency, amount)
}

func (im *impl) Approve(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	if currency.IsNative() {
		return domain.ErrInvalidCurrency
	}
	if err := im.checkCurrency(c, currency); err != nil {
		return err
	}
	return im.allowances.Set(c, owner, im.operator, currency, amount)
}

func (im *impl) Deposit(c ctx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	if err := im.checkCurrency(c, currency); err != nil {
		return err
	}
	balance, err := im.BalanceOf(c, owner, currency)
	if err != nil {
		return err
	}
	return im.balances.Set(c, owner, currency, new(big.Int).Add(balance, amount))
}

func (im *impl) spendAllowance(c ctx.Ctx, payer, currency domain.Address, amount *big.Int) error {
	allowance, err := im.allowances.FindOne(c, payer, im.operator, currency)
	if err == domain.ErrNotFound {
		return domain.ErrInsufficientBalance
	} else if err != nil {
		return err
	}

	allowed, err := domain.ParseAmount(allowance.Amount)
	if err != nil {
		c.WithField("err", err).Error("malformed allowance amount")
		return err
	}
	if allowed.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	return im.allowances.Set(c, payer, im.operator, currency, new(big.Int).Sub(allowed, amount))
}

func (im *impl) move(c ctx.Ctx, from, to, currency domain.Address, amount *big.Int) error {
	fromBalance, err := im.BalanceOf(c, from, currency)
	if err != nil {
		return err
	}
	if fromBalance.Cmp(amount) < 0 {
		return domain.ErrInsufficientBalance
	}

	toBalance, err := im.BalanceOf(c, to, currency)
	if err != nil {
		return err
	}

	if err := im.balances.Set(c, from, currency, new(big.Int).Sub(fromBalance, amount)); err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"from": from,
		}).Error("balances.Set failed")
		return err
	}
	if err := im.balances.Set(c, to, currency, new(big.Int).Add(toBalance, amount)); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"to":  to,
		}).Error("balances.Set failed")
		return err
	}
	return nil
}
