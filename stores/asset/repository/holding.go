package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/service/query"
)

type holdingRepoImpl struct {
	q query.Mongo
}

func NewHoldingRepo(q query.Mongo) asset.HoldingRepo {
	return &holdingRepoImpl{q}
}

func (im *holdingRepoImpl) FindOne(ctx ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) (*asset.Holding, error) {
	res := &asset.Holding{}
	qry := bson.M{
		"assetContract": contract.ToLowerStr(),
		"tokenId":       tokenId,
		"owner":         owner.ToLowerStr(),
	}
	err := im.q.FindOne(ctx, domain.TableHoldings, qry, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
			"owner":    owner,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *holdingRepoImpl) FindAll(ctx ctx.Ctx, contract domain.Address, tokenId domain.TokenId) ([]*asset.Holding, error) {
	res := []*asset.Holding{}
	qry := bson.M{
		"assetContract": contract.ToLowerStr(),
		"tokenId":       tokenId,
	}
	if err := im.q.Search(ctx, domain.TableHoldings, 0, 0, "owner", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *holdingRepoImpl) Upsert(ctx ctx.Ctx, holding *asset.Holding) error {
	holding.Contract = holding.Contract.ToLower()
	holding.Owner = holding.Owner.ToLower()
	selector := bson.M{
		"assetContract": holding.Contract,
		"tokenId":       holding.TokenId,
		"owner":         holding.Owner,
	}
	if err := im.q.Upsert(ctx, domain.TableHoldings, selector, holding); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": holding.Contract,
			"tokenId":  holding.TokenId,
			"owner":    holding.Owner,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *holdingRepoImpl) Remove(ctx ctx.Ctx, contract domain.Address, tokenId domain.TokenId, owner domain.Address) error {
	selector := bson.M{
		"assetContract": contract.ToLowerStr(),
		"tokenId":       tokenId,
		"owner":         owner.ToLowerStr(),
	}
	if err := im.q.Remove(ctx, domain.TableHoldings, selector); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
			"owner":    owner,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
