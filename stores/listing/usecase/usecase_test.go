package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	mAsset "github.com/openmarkets/goapi/domain/asset/mocks"
	mEvent "github.com/openmarkets/goapi/domain/event/mocks"
	"github.com/openmarkets/goapi/domain/listing"
	mListing "github.com/openmarkets/goapi/domain/listing/mocks"
	mDomain "github.com/openmarkets/goapi/domain/mocks"
	"github.com/openmarkets/goapi/domain/trade"
	mTrade "github.com/openmarkets/goapi/domain/trade/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockRepo        *mListing.Repo
	mockOffers      *mTrade.OfferRepo
	mockWinningBids *mTrade.WinningBidRepo
	mockEvents      *mEvent.Repo
	mockAssets      *mAsset.Adapter
	mockAccess      *mDomain.AccessControl
	mockPaytokens   *mDomain.PayTokenRepo
	now             time.Time
	subject         *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mListing.Repo{}
	t.mockOffers = &mTrade.OfferRepo{}
	t.mockWinningBids = &mTrade.WinningBidRepo{}
	t.mockEvents = &mEvent.Repo{}
	t.mockAssets = &mAsset.Adapter{}
	t.mockAccess = &mDomain.AccessControl{}
	t.mockPaytokens = &mDomain.PayTokenRepo{}
	t.now = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	t.subject = &impl{
		repo:        t.mockRepo,
		offers:      t.mockOffers,
		winningBids: t.mockWinningBids,
		events:      t.mockEvents,
		assets:      t.mockAssets,
		access:      t.mockAccess,
		paytokens:   t.mockPaytokens,
		operator:    domain.Address("0xoperator"),
		startBuffer: defaultStartBuffer,
		now:         func() time.Time { return t.now },
	}
}

func (t *testsuite) allowRoles() {
	t.mockAccess.On("HasRole", mock.Anything, mock.Anything, mock.Anything).Return(true, nil)
}

func (t *testsuite) directParams() *listing.Params {
	return &listing.Params{
		AssetContract:        "0xAsset",
		TokenId:              "1",
		StartTime:            t.now.Unix(),
		SecondsUntilEndTime:  3600,
		QuantityToList:       5,
		CurrencyToAccept:     domain.NativeTokenAddress,
		ReservePricePerToken: "100",
		ListingType:          listing.TypeDirect,
	}
}

func (t *testsuite) TestCreateDirectListing() {
	owner := domain.Address("0xOwner")
	params := t.directParams()

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockRepo.On("NextId", mock.Anything).Return(domain.ListingId(7), nil)
	t.mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := t.subject.CreateListing(mockCtx, owner, params)
	t.NoError(err)
	t.Equal(domain.ListingId(7), l.Id)
	t.Equal(domain.Address("0xowner"), l.Owner)
	t.Equal(int64(5), l.Quantity)
	t.Equal("100", l.ReservePricePerToken)
	t.Equal(t.now, l.StartTime)
	t.Equal(t.now.Add(time.Hour), l.EndTime)
	t.mockAssets.AssertNotCalled(t.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateListingUniqueAssetForcesQuantityOne() {
	owner := domain.Address("0xowner")
	params := t.directParams()

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindUnique, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(1)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockRepo.On("NextId", mock.Anything).Return(domain.ListingId(8), nil)
	t.mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := t.subject.CreateListing(mockCtx, owner, params)
	t.NoError(err)
	t.Equal(int64(1), l.Quantity)
}

func (t *testsuite) TestCreateAuctionTransfersCustody() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.ListingType = listing.TypeAuction
	params.BuyoutPricePerToken = "500"

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockAssets.On("Transfer", mock.Anything, mock.Anything, owner, domain.Address("0xoperator"), int64(5)).Return(nil)
	t.mockRepo.On("NextId", mock.Anything).Return(domain.ListingId(9), nil)
	t.mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.NoError(err)
	t.mockAssets.AssertCalled(t.T(), "Transfer", mock.Anything, mock.Anything, owner, domain.Address("0xoperator"), int64(5))
}

func (t *testsuite) TestCreateAuctionReserveAboveBuyout() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.ListingType = listing.TypeAuction
	params.ReservePricePerToken = "600"
	params.BuyoutPricePerToken = "500"

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.ErrorIs(err, domain.ErrReserveExceedBuyout)
}

func (t *testsuite) TestCreateDirectListingReserveAboveBuyout() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.ReservePricePerToken = "600"
	params.BuyoutPricePerToken = "500"

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.ErrorIs(err, domain.ErrReserveExceedBuyout)
}

func (t *testsuite) TestCreateListingMissingRole() {
	owner := domain.Address("0xowner")
	params := t.directParams()

	t.mockAccess.On("HasRole", mock.Anything, domain.RoleLister, owner).Return(false, nil)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.ErrorIs(err, domain.ErrMissingRole)
}

func (t *testsuite) TestCreateListingStaleStartClamped() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.StartTime = t.now.Add(-10 * time.Minute).Unix()

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockRepo.On("NextId", mock.Anything).Return(domain.ListingId(10), nil)
	t.mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := t.subject.CreateListing(mockCtx, owner, params)
	t.NoError(err)
	t.Equal(t.now, l.StartTime)
}

func (t *testsuite) TestCreateListingStartTooLate() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.StartTime = t.now.Add(-2 * time.Hour).Unix()

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.ErrorIs(err, domain.ErrStartTooLate)
}

func (t *testsuite) TestCreateListingStartExactlyBufferOld() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.StartTime = t.now.Add(-defaultStartBuffer).Unix()

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.ErrorIs(err, domain.ErrStartTooLate)
	t.mockRepo.AssertNotCalled(t.T(), "Create", mock.Anything, mock.Anything)
}

func (t *testsuite) TestCreateListingUnknownCurrency() {
	owner := domain.Address("0xowner")
	params := t.directParams()
	params.CurrencyToAccept = "0xToken"

	t.allowRoles()
	t.mockAssets.On("KindOf", mock.Anything, params.AssetContract).Return(asset.KindMulti, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockPaytokens.On("FindOne", mock.Anything, params.CurrencyToAccept).Return(nil, domain.ErrNotFound)

	_, err := t.subject.CreateListing(mockCtx, owner, params)
	t.ErrorIs(err, domain.ErrInvalidCurrency)
}

func (t *testsuite) storedListing(typ listing.Type) *listing.Listing {
	return &listing.Listing{
		Id:                   domain.ListingId(7),
		Owner:                "0xowner",
		AssetContract:        "0xasset",
		TokenId:              "1",
		StartTime:            t.now.Add(30 * time.Minute),
		EndTime:              t.now.Add(90 * time.Minute),
		Quantity:             5,
		Currency:             domain.NativeTokenAddress,
		ReservePricePerToken: "100",
		BuyoutPricePerToken:  "0",
		AssetKind:            asset.KindMulti,
		ListingType:          typ,
	}
}

func (t *testsuite) TestUpdateListingNotOwner() {
	l := t.storedListing(listing.TypeDirect)
	t.mockRepo.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	_, err := t.subject.UpdateListing(mockCtx, l.Id, "0xintruder", t.directParams())
	t.ErrorIs(err, domain.ErrNotListingOwner)
}

func (t *testsuite) TestUpdateStartedAuctionRejected() {
	l := t.storedListing(listing.TypeAuction)
	l.StartTime = t.now.Add(-10 * time.Minute)
	t.mockRepo.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	_, err := t.subject.UpdateListing(mockCtx, l.Id, "0xowner", t.directParams())
	t.ErrorIs(err, domain.ErrListingStarted)
}

func (t *testsuite) TestUpdateAuctionQuantityMovesCustody() {
	l := t.storedListing(listing.TypeAuction)
	params := t.directParams()
	params.QuantityToList = 8
	params.StartTime = l.StartTime.Unix()

	t.mockRepo.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, mock.Anything, l.Owner, int64(3)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, l.Owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), l.Owner, domain.Address("0xoperator"), int64(3)).Return(nil)
	t.mockRepo.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)
	t.mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil)

	_, err := t.subject.UpdateListing(mockCtx, l.Id, "0xowner", params)
	t.NoError(err)
	t.mockAssets.AssertCalled(t.T(), "Transfer", mock.Anything, l.AssetRef(), l.Owner, domain.Address("0xoperator"), int64(3))
}

func (t *testsuite) TestGetListingDirectAttachesOffers() {
	l := t.storedListing(listing.TypeDirect)
	offers := []*trade.Offer{{ListingId: l.Id, Offeror: "0xbuyer", Quantity: 2, PricePerToken: "90"}}

	t.mockRepo.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockOffers.On("FindAll", mock.Anything, mock.Anything).Return(offers, nil)

	detail, err := t.subject.GetListing(mockCtx, l.Id)
	t.NoError(err)
	t.Equal(listing.StatusPending, detail.Status)
	t.Len(detail.Offers, 1)
	t.Nil(detail.WinningBid)
}

func (t *testsuite) TestGetListingAuctionAttachesWinningBid() {
	l := t.storedListing(listing.TypeAuction)
	l.StartTime = t.now.Add(-time.Minute)
	bid := &trade.WinningBid{ListingId: l.Id, Offeror: "0xbidder", Quantity: 5, PricePerToken: "120"}

	t.mockRepo.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(bid, nil)

	detail, err := t.subject.GetListing(mockCtx, l.Id)
	t.NoError(err)
	t.Equal(listing.StatusOpen, detail.Status)
	t.Equal(bid, detail.WinningBid)
}

func (t *testsuite) TestFindAllEnrichesEveryListing() {
	l1 := t.storedListing(listing.TypeDirect)
	l2 := t.storedListing(listing.TypeDirect)
	l2.Id = domain.ListingId(8)

	t.mockRepo.On("FindAll", mock.Anything).Return([]*listing.Listing{l1, l2}, nil)
	t.mockOffers.On("FindAll", mock.Anything, mock.Anything).Return([]*trade.Offer{}, nil)

	details, err := t.subject.FindAll(mockCtx)
	t.NoError(err)
	t.Len(details, 2)
}
