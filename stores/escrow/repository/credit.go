package repository

import (
	"math/big"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/escrow"
	"github.com/openmarkets/goapi/service/query"
)

type creditRepoImpl struct {
	q query.Mongo
}

func NewCreditRepo(q query.Mongo) escrow.CreditRepo {
	return &creditRepoImpl{q}
}

func (im *creditRepoImpl) FindOne(ctx ctx.Ctx, payee, currency domain.Address) (*escrow.Credit, error) {
	res := &escrow.Credit{}
	qry := bson.M{"payee": payee.ToLowerStr(), "currency": currency.ToLowerStr()}
	err := im.q.FindOne(ctx, domain.TableCredits, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"payee":    payee,
			"currency": currency,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *creditRepoImpl) Add(ctx ctx.Ctx, payee, currency domain.Address, amount *big.Int) error {
	cur, err := im.FindOne(ctx, payee, currency)
	if err != nil && err != domain.ErrNotFound {
		return err
	}

	total := new(big.Int).Set(amount)
	if cur != nil {
		held, err := domain.ParseAmount(cur.Amount)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":   err,
				"payee": payee,
			}).Error("malformed credit amount")
			return err
		}
		total.Add(total, held)
	}

	selector := bson.M{"payee": payee.ToLowerStr(), "currency": currency.ToLowerStr()}
	credit := &escrow.Credit{
		Payee:     payee.ToLower(),
		Currency:  currency.ToLower(),
		Amount:    total.String(),
		UpdatedAt: time.Now(),
	}
	if err := im.q.Upsert(ctx, domain.TableCredits, selector, credit); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"payee":    payee,
			"currency": currency,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *creditRepoImpl) Remove(ctx ctx.Ctx, payee, currency domain.Address) error {
	selector := bson.M{"payee": payee.ToLowerStr(), "currency": currency.ToLowerStr()}
	if err := im.q.Remove(ctx, domain.TableCredits, selector); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":      err,
			"payee":    payee,
			"currency": currency,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
