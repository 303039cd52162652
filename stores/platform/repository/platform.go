package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/service/query"
)

const feeKey = "platform-fee"

type feeRecord struct {
	Key       string         `bson:"key"`
	Recipient domain.Address `bson:"recipient"`
	FeeBps    int64          `bson:"feeBps"`
}

type platformRepoImpl struct {
	q query.Mongo
}

func NewPlatformRepo(q query.Mongo) domain.PlatformRepo {
	return &platformRepoImpl{q}
}

func (im *platformRepoImpl) GetFee(ctx ctx.Ctx) (*domain.FeeInfo, error) {
	res := &feeRecord{}
	err := im.q.FindOne(ctx, domain.TablePlatform, bson.M{"key": feeKey}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return &domain.FeeInfo{Recipient: res.Recipient, FeeBps: res.FeeBps}, nil
}

func (im *platformRepoImpl) SetFee(ctx ctx.Ctx, fee *domain.FeeInfo) error {
	record := &feeRecord{
		Key:       feeKey,
		Recipient: fee.Recipient.ToLower(),
		FeeBps:    fee.FeeBps,
	}
	if err := im.q.Upsert(ctx, domain.TablePlatform, bson.M{"key": feeKey}, record); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"fee": fee,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *platformRepoImpl) GetRole(ctx ctx.Ctx, role domain.RoleId) (*domain.Role, error) {
	res := &domain.Role{}
	err := im.q.FindOne(ctx, domain.TablePlatform, bson.M{"roleId": role}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"role": role,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *platformRepoImpl) SetRole(ctx ctx.Ctx, role *domain.Role) error {
	if err := im.q.Upsert(ctx, domain.TablePlatform, bson.M{"roleId": role.Id}, role); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"role": role.Id,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
