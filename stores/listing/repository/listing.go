package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/listing"
	"github.com/openmarkets/goapi/service/query"
)

const counterName = "listings"

type counter struct {
	Name string           `bson:"name"`
	Seq  domain.ListingId `bson:"seq"`
}

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.Owner != nil {
		query["owner"] = *options.Owner
	}

	if options.AssetContract != nil {
		query["assetContract"] = *options.AssetContract
	}

	if options.TokenId != nil {
		query["tokenId"] = *options.TokenId
	}

	if options.ListingType != nil {
		query["listingType"] = *options.ListingType
	}

	if options.OpenAt != nil {
		query["startTime"] = bson.M{"$lte": *options.OpenAt}
		query["endTime"] = bson.M{"$gt": *options.OpenAt}
		query["quantity"] = bson.M{"$gt": 0}
		query["closedAt"] = bson.M{"$exists": false}
	}

	return query, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id domain.ListingId) (*listing.Listing, error) {
	res := &listing.Listing{}
	err := im.q.FindOne(ctx, domain.TableListings, bson.M{"listingId": id}, res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("im.makeQuery failed")
		return nil, err
	}

	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "listingId"
	if options.SortBy != nil {
		sort = *options.SortBy
		if options.SortDir != nil && *options.SortDir == domain.SortDirDesc {
			sort = "-" + sort
		}
	}

	res := []*listing.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) Count(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithField("err", err).Error("im.makeQuery failed")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableListings, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Count failed")
		return 0, err
	}
	return cnt, nil
}

func (im *listingRepoImpl) Create(ctx ctx.Ctx, l *listing.Listing) error {
	l.Owner = l.Owner.ToLower()
	l.AssetContract = l.AssetContract.ToLower()
	l.Currency = l.Currency.ToLower()
	if err := im.q.Insert(ctx, domain.TableListings, l); err != nil {
		if err == query.ErrDuplicateKey {
			return domain.ErrConflict
		}
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": l.Id,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *listingRepoImpl) Patch(ctx ctx.Ctx, id domain.ListingId, patchable listing.Patchable) error {
	if err := im.q.Patch(ctx, domain.TableListings, bson.M{"listingId": id}, patchable); err != nil {
		if err == query.ErrNotFound {
			return domain.ErrNotFound
		}
		ctx.WithFields(log.Fields{
			"err":       err,
			"listingId": id,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}

func (im *listingRepoImpl) NextId(ctx ctx.Ctx) (domain.ListingId, error) {
	res := &counter{}
	if err := im.q.Increment(ctx, domain.TableCounters, bson.M{"name": counterName}, res, "seq", 1); err != nil {
		ctx.WithField("err", err).Error("q.Increment failed")
		return 0, err
	}
	return res.Seq, nil
}
