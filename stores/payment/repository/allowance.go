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

type allowanceRepoImpl struct {
	q query.Mongo
}

func NewAllowanceRepo(q query.Mongo) payment.AllowanceRepo {
	return &allowanceRepoImpl{q}
}

func (im *allowanceRepoImpl) FindOne(ctx ctx.Ctx, owner, operator, currency domain.Address) (*payment.Allowance, error) {
	res := &payment.Allowance{}
	qry := bson.M{
		"owner":    owner.ToLowerStr(),
		"operator": operator.ToLowerStr(),
		"currency": currency.ToLowerStr(),
	}
	err := im.q.FindOne(ctx, domain.TableAllowances, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
			"currency": currency,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *allowanceRepoImpl) Set(ctx ctx.Ctx, owner, operator, currency domain.Address, amount *big.Int) error {
	selector := bson.M{
		"owner":    owner.ToLowerStr(),
		"operator": operator.ToLowerStr(),
		"currency": currency.ToLowerStr(),
	}
	allowance := &payment.Allowance{
		Owner:    owner.ToLower(),
		Operator: operator.ToLower(),
		Currency: currency.ToLower(),
		Amount:   amount.String(),
	}
	if err := im.q.Upsert(ctx, domain.TableAllowances, selector, allowance); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
			"currency": currency,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
