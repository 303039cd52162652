package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/trade"
	"github.com/openmarkets/goapi/service/query"
)

type winningBidRepoImpl struct {
	q query.Mongo
}

func NewWinningBidRepo(q query.Mongo) trade.WinningBidRepo {
	return &winningBidRepoImpl{q}
}

func (im *winningBidRepoImpl) FindOne(ctx ctx.Ctx, listingId domain.ListingId) (*trade.WinningBid, error) {
	res := &trade.WinningBid{}
	err := im.q.FindOne(ctx, domain.TableWinningBids, bson.M{"listingId": listingId}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *winningBidRepoImpl) Upsert(ctx ctx.Ctx, bid *trade.WinningBid) error {
	bid.Offeror = bid.Offeror.ToLower()
	bid.Currency = bid.Currency.ToLower()
	selector := bson.M{"listingId": bid.ListingId}
	if err := im.q.Upsert(ctx, domain.TableWinningBids, selector, bid); err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": bid.ListingId,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *winningBidRepoImpl) Remove(ctx ctx.Ctx, listingId domain.ListingId) error {
	if err := im.q.Remove(ctx, domain.TableWinningBids, bson.M{"listingId": listingId}); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("q.Remove failed")
		return err
	}
	return nil
}
