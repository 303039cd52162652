package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/service/query"
)

type contractRepoImpl struct {
	q query.Mongo
}

func NewContractRepo(q query.Mongo) asset.ContractRepo {
	return &contractRepoImpl{q}
}

func (im *contractRepoImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*asset.Contract, error) {
	res := &asset.Contract{}
	err := im.q.FindOne(ctx, domain.TableContracts, bson.M{"address": address.ToLowerStr()}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *contractRepoImpl) Create(ctx ctx.Ctx, contract *asset.Contract) error {
	contract.Address = contract.Address.ToLower()
	if err := im.q.Insert(ctx, domain.TableContracts, contract); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": contract.Address,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
