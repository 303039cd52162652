package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/keylock"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	mAsset "github.com/openmarkets/goapi/domain/asset/mocks"
	"github.com/openmarkets/goapi/domain/escrow"
	mEscrow "github.com/openmarkets/goapi/domain/escrow/mocks"
	mEvent "github.com/openmarkets/goapi/domain/event/mocks"
	"github.com/openmarkets/goapi/domain/listing"
	mListing "github.com/openmarkets/goapi/domain/listing/mocks"
	mDomain "github.com/openmarkets/goapi/domain/mocks"
	mPayment "github.com/openmarkets/goapi/domain/payment/mocks"
	"github.com/openmarkets/goapi/domain/trade"
	mTrade "github.com/openmarkets/goapi/domain/trade/mocks"
	mQuery "github.com/openmarkets/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockQuery       *mQuery.Mongo
	mockListings    *mListing.Repo
	mockOffers      *mTrade.OfferRepo
	mockWinningBids *mTrade.WinningBidRepo
	mockEscrows     *mEscrow.Repo
	mockCredits     *mEscrow.CreditRepo
	mockEvents      *mEvent.Repo
	mockPayments    *mPayment.Adapter
	mockAssets      *mAsset.Adapter
	mockFees        *mDomain.FeeLedger
	now             time.Time
	subject         *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockQuery = &mQuery.Mongo{}
	t.mockListings = &mListing.Repo{}
	t.mockOffers = &mTrade.OfferRepo{}
	t.mockWinningBids = &mTrade.WinningBidRepo{}
	t.mockEscrows = &mEscrow.Repo{}
	t.mockCredits = &mEscrow.CreditRepo{}
	t.mockEvents = &mEvent.Repo{}
	t.mockPayments = &mPayment.Adapter{}
	t.mockAssets = &mAsset.Adapter{}
	t.mockFees = &mDomain.FeeLedger{}
	t.now = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	t.subject = &impl{
		q:            t.mockQuery,
		listings:     t.mockListings,
		offers:       t.mockOffers,
		winningBids:  t.mockWinningBids,
		escrows:      t.mockEscrows,
		credits:      t.mockCredits,
		events:       t.mockEvents,
		payments:     t.mockPayments,
		assets:       t.mockAssets,
		fees:         t.mockFees,
		locks:        keylock.New(),
		operator:     domain.Address("0xoperator"),
		bidBufferBps: defaultBidBufferBps,
		now:          func() time.Time { return t.now },
	}

	t.mockQuery.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) })
	t.mockEvents.On("Insert", mock.Anything, mock.Anything).Return(nil)
}

func (t *testsuite) openListing(typ listing.Type) *listing.Listing {
	return &listing.Listing{
		Id:                   domain.ListingId(7),
		Owner:                "0xowner",
		AssetContract:        "0xasset",
		TokenId:              "1",
		StartTime:            t.now.Add(-time.Hour),
		EndTime:              t.now.Add(time.Hour),
		Quantity:             5,
		Currency:             domain.NativeTokenAddress,
		ReservePricePerToken: "100",
		BuyoutPricePerToken:  "0",
		AssetKind:            asset.KindMulti,
		ListingType:          typ,
	}
}

func (t *testsuite) noFee() {
	t.mockFees.On("GetPlatformFee", mock.Anything).Return(&domain.FeeInfo{Recipient: domain.EmptyAddress, FeeBps: 0}, nil)
}

func (t *testsuite) TestOfferDirect() {
	l := t.openListing(listing.TypeDirect)
	caller := domain.Address("0xBuyer")
	total := big.NewInt(200)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, caller).Return(nil, domain.ErrNotFound)
	t.mockPayments.On("Pull", mock.Anything, caller, l.Currency, total, total).Return(nil)
	t.mockEscrows.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockOffers.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.Offer(mockCtx, caller, &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      2,
		Currency:      l.Currency,
		PricePerToken: "100",
		AttachedValue: "200",
	})
	t.NoError(err)
	t.mockEscrows.AssertCalled(t.T(), "Create", mock.Anything, &escrow.Entry{
		ListingId: l.Id,
		Offeror:   caller,
		Currency:  l.Currency,
		Amount:    "200",
		Kind:      escrow.KindOffer,
		CreatedAt: t.now,
	})
	t.mockOffers.AssertCalled(t.T(), "Upsert", mock.Anything, &trade.Offer{
		ListingId:     l.Id,
		Offeror:       "0xbuyer",
		Quantity:      2,
		Currency:      l.Currency,
		PricePerToken: "100",
		CreatedAt:     t.now,
	})
}

func (t *testsuite) TestOfferReplacesPreviousEscrow() {
	l := t.openListing(listing.TypeDirect)
	caller := domain.Address("0xbuyer")
	prev := &escrow.Entry{ListingId: l.Id, Offeror: caller, Currency: l.Currency, Amount: "150", Kind: escrow.KindOffer}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, caller).Return(prev, nil)
	t.mockPayments.On("Push", mock.Anything, caller, l.Currency, big.NewInt(150)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, caller).Return(nil)
	t.mockPayments.On("Pull", mock.Anything, caller, l.Currency, big.NewInt(200), big.NewInt(200)).Return(nil)
	t.mockEscrows.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockOffers.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.Offer(mockCtx, caller, &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      2,
		Currency:      l.Currency,
		PricePerToken: "100",
		AttachedValue: "200",
	})
	t.NoError(err)
	t.mockPayments.AssertCalled(t.T(), "Push", mock.Anything, caller, l.Currency, big.NewInt(150))
}

func (t *testsuite) TestOfferOnPendingListing() {
	l := t.openListing(listing.TypeDirect)
	l.StartTime = t.now.Add(time.Minute)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	err := t.subject.Offer(mockCtx, "0xbuyer", &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      1,
		Currency:      l.Currency,
		PricePerToken: "100",
	})
	t.ErrorIs(err, domain.ErrListingNotOpen)
}

func (t *testsuite) TestOfferCurrencyMismatch() {
	l := t.openListing(listing.TypeDirect)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	err := t.subject.Offer(mockCtx, "0xbuyer", &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      1,
		Currency:      "0xothertoken",
		PricePerToken: "100",
	})
	t.ErrorIs(err, domain.ErrInvalidCurrency)
}

func (t *testsuite) TestOfferExpiredExpiration() {
	l := t.openListing(listing.TypeDirect)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	err := t.subject.Offer(mockCtx, "0xbuyer", &trade.OfferParams{
		ListingId:      l.Id,
		Quantity:       1,
		Currency:       l.Currency,
		PricePerToken:  "100",
		ExpirationTime: t.now.Add(-time.Minute).Unix(),
	})
	t.ErrorIs(err, domain.ErrOfferExpired)
}

func (t *testsuite) TestBidBelowReserve() {
	l := t.openListing(listing.TypeAuction)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(nil, domain.ErrNotFound)

	err := t.subject.Offer(mockCtx, "0xbidder", &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      5,
		Currency:      l.Currency,
		PricePerToken: "99",
		AttachedValue: "495",
	})
	t.ErrorIs(err, domain.ErrBidTooLow)
}

func (t *testsuite) TestBidBelowOutbidBuffer() {
	l := t.openListing(listing.TypeAuction)
	incumbent := &trade.WinningBid{ListingId: l.Id, Offeror: "0xfirst", Quantity: 5, Currency: l.Currency, PricePerToken: "100"}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(incumbent, nil)

	// incumbent total 500, buffer 5% -> floor 525; 104*5 = 520 is short
	err := t.subject.Offer(mockCtx, "0xsecond", &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      5,
		Currency:      l.Currency,
		PricePerToken: "104",
		AttachedValue: "520",
	})
	t.ErrorIs(err, domain.ErrBidTooLow)
}

func (t *testsuite) TestBidOutbidRefundsIncumbent() {
	l := t.openListing(listing.TypeAuction)
	incumbent := &trade.WinningBid{ListingId: l.Id, Offeror: "0xfirst", Quantity: 5, Currency: l.Currency, PricePerToken: "100"}
	prevEntry := &escrow.Entry{ListingId: l.Id, Offeror: "0xfirst", Currency: l.Currency, Amount: "500", Kind: escrow.KindBid}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(incumbent, nil)
	t.mockPayments.On("Pull", mock.Anything, domain.Address("0xsecond"), l.Currency, big.NewInt(525), big.NewInt(525)).Return(nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, incumbent.Offeror).Return(prevEntry, nil)
	t.mockPayments.On("Push", mock.Anything, incumbent.Offeror, l.Currency, big.NewInt(500)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, incumbent.Offeror).Return(nil)
	t.mockEscrows.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockWinningBids.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.Offer(mockCtx, "0xsecond", &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      5,
		Currency:      l.Currency,
		PricePerToken: "105",
		AttachedValue: "525",
	})
	t.NoError(err)
	t.mockPayments.AssertCalled(t.T(), "Push", mock.Anything, incumbent.Offeror, l.Currency, big.NewInt(500))
	t.mockWinningBids.AssertCalled(t.T(), "Upsert", mock.Anything, &trade.WinningBid{
		ListingId:     l.Id,
		Offeror:       "0xsecond",
		Quantity:      5,
		Currency:      l.Currency,
		PricePerToken: "105",
		CreatedAt:     t.now,
	})
}

func (t *testsuite) TestBidRefundFallsBackToCredit() {
	l := t.openListing(listing.TypeAuction)
	incumbent := &trade.WinningBid{ListingId: l.Id, Offeror: "0xfirst", Quantity: 5, Currency: l.Currency, PricePerToken: "100"}
	prevEntry := &escrow.Entry{ListingId: l.Id, Offeror: "0xfirst", Currency: l.Currency, Amount: "500", Kind: escrow.KindBid}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(incumbent, nil)
	t.mockPayments.On("Pull", mock.Anything, domain.Address("0xsecond"), l.Currency, big.NewInt(525), big.NewInt(525)).Return(nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, incumbent.Offeror).Return(prevEntry, nil)
	t.mockPayments.On("Push", mock.Anything, incumbent.Offeror, l.Currency, big.NewInt(500)).Return(errors.New("push rejected"))
	t.mockCredits.On("Add", mock.Anything, incumbent.Offeror, l.Currency, big.NewInt(500)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, incumbent.Offeror).Return(nil)
	t.mockEscrows.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockWinningBids.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.Offer(mockCtx, "0xsecond", &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      5,
		Currency:      l.Currency,
		PricePerToken: "105",
		AttachedValue: "525",
	})
	t.NoError(err)
	t.mockCredits.AssertCalled(t.T(), "Add", mock.Anything, incumbent.Offeror, l.Currency, big.NewInt(500))
}

func (t *testsuite) TestBidBuyoutClosesInline() {
	l := t.openListing(listing.TypeAuction)
	l.BuyoutPricePerToken = "200"
	bidder := domain.Address("0xbidder")

	t.noFee()
	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(nil, domain.ErrNotFound)
	t.mockPayments.On("Pull", mock.Anything, bidder, l.Currency, big.NewInt(1000), big.NewInt(1000)).Return(nil)
	t.mockEscrows.On("Create", mock.Anything, mock.Anything).Return(nil)
	t.mockWinningBids.On("Upsert", mock.Anything, mock.Anything).Return(nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, bidder).
		Return(&escrow.Entry{ListingId: l.Id, Offeror: bidder, Currency: l.Currency, Amount: "1000", Kind: escrow.KindBid}, nil)
	t.mockPayments.On("Push", mock.Anything, l.Owner, l.Currency, big.NewInt(1000)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, bidder).Return(nil)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), domain.Address("0xoperator"), bidder, int64(5)).Return(nil)
	t.mockListings.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)

	err := t.subject.Offer(mockCtx, bidder, &trade.OfferParams{
		ListingId:     l.Id,
		Quantity:      5,
		Currency:      l.Currency,
		PricePerToken: "200",
		AttachedValue: "1000",
	})
	t.NoError(err)
	t.mockAssets.AssertCalled(t.T(), "Transfer", mock.Anything, l.AssetRef(), domain.Address("0xoperator"), bidder, int64(5))
	t.mockListings.AssertCalled(t.T(), "Patch", mock.Anything, l.Id, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.ClosedAt != nil && p.Quantity != nil && *p.Quantity == 0
	}))
}

func (t *testsuite) TestAcceptOffer() {
	l := t.openListing(listing.TypeDirect)
	offeror := domain.Address("0xbuyer")
	offer := &trade.Offer{ListingId: l.Id, Offeror: offeror, Quantity: 5, Currency: l.Currency, PricePerToken: "90"}

	t.mockFees.On("GetPlatformFee", mock.Anything).Return(&domain.FeeInfo{Recipient: "0xtreasury", FeeBps: 250}, nil)
	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockOffers.On("FindOne", mock.Anything, l.Id, offeror).Return(offer, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, l.AssetRef(), l.Owner, int64(5)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, l.Owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, offeror).
		Return(&escrow.Entry{ListingId: l.Id, Offeror: offeror, Currency: l.Currency, Amount: "450", Kind: escrow.KindOffer}, nil)
	// 450 * 250 / 10000 = 11 (floored), proceeds 439
	t.mockPayments.On("Push", mock.Anything, domain.Address("0xtreasury"), l.Currency, big.NewInt(11)).Return(nil)
	t.mockPayments.On("Push", mock.Anything, l.Owner, l.Currency, big.NewInt(439)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, offeror).Return(nil)
	t.mockOffers.On("Remove", mock.Anything, l.Id, offeror).Return(nil)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), l.Owner, offeror, int64(5)).Return(nil)
	t.mockListings.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)

	err := t.subject.AcceptOffer(mockCtx, l.Id, l.Owner, offeror, l.Currency, "90")
	t.NoError(err)
	t.mockPayments.AssertCalled(t.T(), "Push", mock.Anything, domain.Address("0xtreasury"), l.Currency, big.NewInt(11))
	t.mockPayments.AssertCalled(t.T(), "Push", mock.Anything, l.Owner, l.Currency, big.NewInt(439))
	t.mockListings.AssertCalled(t.T(), "Patch", mock.Anything, l.Id, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.ClosedAt != nil && p.Quantity != nil && *p.Quantity == 0
	}))
}

func (t *testsuite) TestAcceptOfferPartialQuantityKeepsListingOpen() {
	l := t.openListing(listing.TypeDirect)
	offeror := domain.Address("0xbuyer")
	offer := &trade.Offer{ListingId: l.Id, Offeror: offeror, Quantity: 2, Currency: l.Currency, PricePerToken: "100"}

	t.noFee()
	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockOffers.On("FindOne", mock.Anything, l.Id, offeror).Return(offer, nil)
	t.mockAssets.On("BalanceAvailable", mock.Anything, l.AssetRef(), l.Owner, int64(2)).Return(true, nil)
	t.mockAssets.On("IsApprovedForOperator", mock.Anything, l.Owner, domain.Address("0xoperator")).Return(true, nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, offeror).
		Return(&escrow.Entry{ListingId: l.Id, Offeror: offeror, Currency: l.Currency, Amount: "200", Kind: escrow.KindOffer}, nil)
	t.mockPayments.On("Push", mock.Anything, l.Owner, l.Currency, big.NewInt(200)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, offeror).Return(nil)
	t.mockOffers.On("Remove", mock.Anything, l.Id, offeror).Return(nil)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), l.Owner, offeror, int64(2)).Return(nil)
	t.mockListings.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)

	err := t.subject.AcceptOffer(mockCtx, l.Id, l.Owner, offeror, l.Currency, "100")
	t.NoError(err)
	t.mockListings.AssertCalled(t.T(), "Patch", mock.Anything, l.Id, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.ClosedAt == nil && p.Quantity != nil && *p.Quantity == 3
	}))
}

func (t *testsuite) TestAcceptOfferNotOwner() {
	l := t.openListing(listing.TypeDirect)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	err := t.subject.AcceptOffer(mockCtx, l.Id, "0xintruder", "0xbuyer", l.Currency, "90")
	t.ErrorIs(err, domain.ErrNotListingOwner)
}

func (t *testsuite) TestAcceptOfferTermsMismatch() {
	l := t.openListing(listing.TypeDirect)
	offeror := domain.Address("0xbuyer")
	offer := &trade.Offer{ListingId: l.Id, Offeror: offeror, Quantity: 2, Currency: l.Currency, PricePerToken: "90"}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockOffers.On("FindOne", mock.Anything, l.Id, offeror).Return(offer, nil)

	err := t.subject.AcceptOffer(mockCtx, l.Id, l.Owner, offeror, l.Currency, "95")
	t.ErrorIs(err, domain.ErrValueMismatch)
}

func (t *testsuite) TestAcceptExpiredOffer() {
	l := t.openListing(listing.TypeDirect)
	offeror := domain.Address("0xbuyer")
	offer := &trade.Offer{
		ListingId:      l.Id,
		Offeror:        offeror,
		Quantity:       2,
		Currency:       l.Currency,
		PricePerToken:  "90",
		ExpirationTime: t.now.Add(-time.Minute),
	}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockOffers.On("FindOne", mock.Anything, l.Id, offeror).Return(offer, nil)

	err := t.subject.AcceptOffer(mockCtx, l.Id, l.Owner, offeror, l.Currency, "90")
	t.ErrorIs(err, domain.ErrOfferExpired)
}

func (t *testsuite) TestCancelOffer() {
	listingId := domain.ListingId(7)
	caller := domain.Address("0xbuyer")
	offer := &trade.Offer{ListingId: listingId, Offeror: caller, Quantity: 2, Currency: domain.NativeTokenAddress, PricePerToken: "100"}
	entry := &escrow.Entry{ListingId: listingId, Offeror: caller, Currency: domain.NativeTokenAddress, Amount: "200", Kind: escrow.KindOffer}

	t.mockOffers.On("FindOne", mock.Anything, listingId, caller).Return(offer, nil)
	t.mockEscrows.On("FindOne", mock.Anything, listingId, caller).Return(entry, nil)
	t.mockPayments.On("Push", mock.Anything, caller, domain.NativeTokenAddress, big.NewInt(200)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, listingId, caller).Return(nil)
	t.mockOffers.On("Remove", mock.Anything, listingId, caller).Return(nil)

	err := t.subject.CancelOffer(mockCtx, listingId, caller)
	t.NoError(err)
	t.mockPayments.AssertCalled(t.T(), "Push", mock.Anything, caller, domain.NativeTokenAddress, big.NewInt(200))
	t.mockOffers.AssertCalled(t.T(), "Remove", mock.Anything, listingId, caller)
}

func (t *testsuite) TestCloseAuctionAlreadyClosed() {
	l := t.openListing(listing.TypeAuction)
	closed := t.now.Add(-time.Minute)
	l.ClosedAt = &closed

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)

	err := t.subject.CloseAuction(mockCtx, l.Id, l.Owner, domain.EmptyAddress)
	t.ErrorIs(err, domain.ErrAuctionClosed)
	t.mockWinningBids.AssertNotCalled(t.T(), "FindOne", mock.Anything, mock.Anything)
	t.mockPayments.AssertNotCalled(t.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestCloseAuctionNotEnded() {
	l := t.openListing(listing.TypeAuction)
	bid := &trade.WinningBid{ListingId: l.Id, Offeror: "0xbidder", Quantity: 5, Currency: l.Currency, PricePerToken: "120"}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(bid, nil)

	err := t.subject.CloseAuction(mockCtx, l.Id, l.Owner, domain.EmptyAddress)
	t.ErrorIs(err, domain.ErrAuctionNotEnded)
}

func (t *testsuite) TestCloseAuctionNoBidsOwnerCancels() {
	l := t.openListing(listing.TypeAuction)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(nil, domain.ErrNotFound)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), domain.Address("0xoperator"), l.Owner, int64(5)).Return(nil)
	t.mockListings.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)

	err := t.subject.CloseAuction(mockCtx, l.Id, l.Owner, domain.EmptyAddress)
	t.NoError(err)
	t.mockAssets.AssertCalled(t.T(), "Transfer", mock.Anything, l.AssetRef(), domain.Address("0xoperator"), l.Owner, int64(5))
}

func (t *testsuite) TestCloseAuctionNoBidsOnlyOwnerMayCancel() {
	l := t.openListing(listing.TypeAuction)

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(nil, domain.ErrNotFound)

	err := t.subject.CloseAuction(mockCtx, l.Id, "0xintruder", domain.EmptyAddress)
	t.ErrorIs(err, domain.ErrNotListingOwner)
}

func (t *testsuite) TestCloseAuctionRecipientMustBeParty() {
	l := t.openListing(listing.TypeAuction)
	l.EndTime = t.now.Add(-time.Minute)
	bid := &trade.WinningBid{ListingId: l.Id, Offeror: "0xbidder", Quantity: 5, Currency: l.Currency, PricePerToken: "120"}

	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(bid, nil)

	err := t.subject.CloseAuction(mockCtx, l.Id, "0xbidder", "0xstranger")
	t.ErrorIs(err, domain.ErrBadParamInput)
}

func (t *testsuite) TestCloseAuctionSettles() {
	l := t.openListing(listing.TypeAuction)
	l.EndTime = t.now.Add(-time.Minute)
	bid := &trade.WinningBid{ListingId: l.Id, Offeror: "0xbidder", Quantity: 5, Currency: l.Currency, PricePerToken: "120"}

	t.noFee()
	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(bid, nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, bid.Offeror).
		Return(&escrow.Entry{ListingId: l.Id, Offeror: bid.Offeror, Currency: l.Currency, Amount: "600", Kind: escrow.KindBid}, nil)
	t.mockPayments.On("Push", mock.Anything, l.Owner, l.Currency, big.NewInt(600)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, bid.Offeror).Return(nil)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), domain.Address("0xoperator"), bid.Offeror, int64(5)).Return(nil)
	t.mockListings.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)

	err := t.subject.CloseAuction(mockCtx, l.Id, "0xbidder", domain.EmptyAddress)
	t.NoError(err)
	t.mockPayments.AssertCalled(t.T(), "Push", mock.Anything, l.Owner, l.Currency, big.NewInt(600))
}

func (t *testsuite) TestCloseAuctionSellerPayoutFallsBackToCredit() {
	l := t.openListing(listing.TypeAuction)
	l.EndTime = t.now.Add(-time.Minute)
	bid := &trade.WinningBid{ListingId: l.Id, Offeror: "0xbidder", Quantity: 5, Currency: l.Currency, PricePerToken: "120"}

	t.noFee()
	t.mockListings.On("FindOne", mock.Anything, l.Id).Return(l, nil)
	t.mockWinningBids.On("FindOne", mock.Anything, l.Id).Return(bid, nil)
	t.mockEscrows.On("FindOne", mock.Anything, l.Id, bid.Offeror).
		Return(&escrow.Entry{ListingId: l.Id, Offeror: bid.Offeror, Currency: l.Currency, Amount: "600", Kind: escrow.KindBid}, nil)
	t.mockPayments.On("Push", mock.Anything, l.Owner, l.Currency, big.NewInt(600)).Return(errors.New("push rejected"))
	t.mockCredits.On("Add", mock.Anything, l.Owner, l.Currency, big.NewInt(600)).Return(nil)
	t.mockEscrows.On("Remove", mock.Anything, l.Id, bid.Offeror).Return(nil)
	t.mockAssets.On("Transfer", mock.Anything, l.AssetRef(), domain.Address("0xoperator"), bid.Offeror, int64(5)).Return(nil)
	t.mockListings.On("Patch", mock.Anything, l.Id, mock.Anything).Return(nil)

	err := t.subject.CloseAuction(mockCtx, l.Id, "0xbidder", domain.EmptyAddress)
	t.NoError(err)
	t.mockCredits.AssertCalled(t.T(), "Add", mock.Anything, l.Owner, l.Currency, big.NewInt(600))
}
