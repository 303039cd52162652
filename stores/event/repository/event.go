package repository

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/event"
	"github.com/openmarkets/goapi/service/query"
)

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) event.Repo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) Insert(ctx ctx.Ctx, ev *event.Event) error {
	if err := im.q.Insert(ctx, domain.TableEvents, ev); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"type": ev.Type,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventRepoImpl) FindAll(ctx ctx.Ctx, opts ...event.FindAllOptionsFunc) ([]*event.Event, error) {
	options, err := event.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if options.ListingId != nil {
		qry["listingId"] = *options.ListingId
	}
	if options.Type != nil {
		qry["type"] = *options.Type
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*event.Event{}
	if err := im.q.Search(ctx, domain.TableEvents, offset, limit, "-time", qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
