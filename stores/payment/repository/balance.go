package repository

import (
	"math/big"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/payment"
	"github.com/openmarkets/goapi/service/query"
)

type balanceRepoImpl struct {
	q query.Mongo
}

func NewBalanceRepo(q query.Mongo) payment.BalanceRepo {
	return &balanceRepoImpl{q}
}

func (im *balanceRepoImpl) FindOne(ctx ctx.Ctx, owner, currency domain.Address) (*payment.Balance, error) {
	res := &payment.Balance{}
	qry := bson.M{"owner": owner.ToLowerStr(), "currency": currency.ToLowerStr()}
	err := im.q.FindOne(ctx, domain.TableBalances, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"currency": currency,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *balanceRepoImpl) Set(ctx ctx.Ctx, owner, currency domain.Address, amount *big.Int) error {
	selector := bson.M{"owner": owner.ToLowerStr(), "currency": currency.ToLowerStr()}
	balance := &payment.Balance{
		Owner:    owner.ToLower(),
		Currency: currency.ToLower(),
		Amount:   amount.String(),
	}
	if err := im.q.Upsert(ctx, domain.TableBalances, selector, balance); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"currency": currency,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
