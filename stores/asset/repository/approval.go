package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	"github.com/openmarkets/goapi/service/query"
)

type approval struct {
	Owner    domain.Address `bson:"owner"`
	Operator domain.Address `bson:"operator"`
	Approved bool           `bson:"approved"`
}

type approvalRepoImpl struct {
	q query.Mongo
}

func NewApprovalRepo(q query.Mongo) asset.ApprovalRepo {
	return &approvalRepoImpl{q}
}

func (im *approvalRepoImpl) IsApproved(ctx ctx.Ctx, owner, operator domain.Address) (bool, error) {
	res := &approval{}
	qry := bson.M{"owner": owner.ToLowerStr(), "operator": operator.ToLowerStr()}
	err := im.q.FindOne(ctx, domain.TableApprovals, qry, res)
	if err == query.ErrNotFound {
		return false, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
		}).Error("q.FindOne failed")
		return false, err
	}
	return res.Approved, nil
}

func (im *approvalRepoImpl) Set(ctx ctx.Ctx, owner, operator domain.Address, approved bool) error {
	selector := bson.M{"owner": owner.ToLowerStr(), "operator": operator.ToLowerStr()}
	record := &approval{
		Owner:    owner.ToLower(),
		Operator: operator.ToLower(),
		Approved: approved,
	}
	if err := im.q.Upsert(ctx, domain.TableApprovals, selector, record); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"owner":    owner,
			"operator": operator,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
