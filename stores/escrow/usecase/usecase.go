package usecase

import (
	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/escrow"
	"github.com/openmarkets/goapi/domain/payment"
	"github.com/openmarkets/goapi/service/query"
)

type EscrowUseCaseCfg struct {
	Query      query.Mongo
	EscrowRepo escrow.Repo
	CreditRepo escrow.CreditRepo
	Payments   payment.Adapter
}

type impl struct {
	q       query.Mongo
	entries escrow.Repo
	credits escrow.CreditRepo
	pay     payment.Adapter
}

// New creates escrow usecase
func New(cfg *EscrowUseCaseCfg) escrow.UseCase {
	return &impl{
		q:       cfg.Query,
		entries: cfg.EscrowRepo,
		credits: cfg.CreditRepo,
		pay:     cfg.Payments,
	}
}

func (im *impl) GetCredit(c ctx.Ctx, payee, currency domain.Address) (*escrow.Credit, error) {
	return im.credits.FindOne(c, payee, currency)
}

func (im *impl) GetHeld(c ctx.Ctx, currency domain.Address) (string, error) {
	held, err := im.entries.SumHeld(c, currency)
	if err != nil {
		c.WithField("err", err).Error("entries.SumHeld failed")
		return "", err
	}
	return held.String(), nil
}

func (im *impl) WithdrawCredit(c ctx.Ctx, caller, currency domain.Address) (string, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"caller":   caller,
		"currency": currency,
	})

	credit, err := im.credits.FindOne(c, caller, currency)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithField("err", err).Error("credits.FindOne failed")
		}
		return "", err
	}

	amount, err := domain.ParseAmount(credit.Amount)
	if err != nil {
		c.WithField("err", err).Error("malformed credit amount")
		return "", err
	}

	if err := im.q.RunWithTransaction(c, func(c ctx.Ctx) error {
		if err := im.credits.Remove(c, caller, currency); err != nil {
			return err
		}
		return im.pay.Push(c, caller, currency, amount)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"amount": credit.Amount,
		}).Error("withdraw failed")
		return "", err
	}

	return amount.String(), nil
}
