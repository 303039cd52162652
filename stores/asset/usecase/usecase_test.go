package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/asset"
	mAsset "github.com/openmarkets/goapi/domain/asset/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockContracts *mAsset.ContractRepo
	mockHoldings  *mAsset.HoldingRepo
	mockApprovals *mAsset.ApprovalRepo
	subject       *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockContracts = &mAsset.ContractRepo{}
	t.mockHoldings = &mAsset.HoldingRepo{}
	t.mockApprovals = &mAsset.ApprovalRepo{}
	t.subject = &impl{
		contracts: t.mockContracts,
		holdings:  t.mockHoldings,
		approvals: t.mockApprovals,
	}
}

func multiRef() asset.Ref {
	return asset.Ref{Contract: "0xasset", TokenId: "1", Kind: asset.KindMulti}
}

func (t *testsuite) TestKindOfRegisteredContract() {
	t.mockContracts.On("FindOne", mock.Anything, domain.Address("0xasset")).
		Return(&asset.Contract{Address: "0xasset", Kind: asset.KindMulti}, nil)

	kind, err := t.subject.KindOf(mockCtx, "0xasset")
	t.NoError(err)
	t.Equal(asset.KindMulti, kind)
}

func (t *testsuite) TestKindOfUnregisteredContract() {
	t.mockContracts.On("FindOne", mock.Anything, domain.Address("0xnobody")).Return(nil, domain.ErrNotFound)

	_, err := t.subject.KindOf(mockCtx, "0xnobody")
	t.ErrorIs(err, domain.ErrInvalidAddress)
}

func (t *testsuite) TestBalanceAvailableMissingHolding() {
	ref := multiRef()
	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, domain.Address("0xowner")).
		Return(nil, domain.ErrNotFound)

	ok, err := t.subject.BalanceAvailable(mockCtx, ref, "0xowner", 1)
	t.NoError(err)
	t.False(ok)
}

func (t *testsuite) TestBalanceAvailable() {
	ref := multiRef()
	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, domain.Address("0xowner")).
		Return(&asset.Holding{Contract: ref.Contract, TokenId: ref.TokenId, Owner: "0xowner", Balance: 3}, nil)

	ok, err := t.subject.BalanceAvailable(mockCtx, ref, "0xowner", 3)
	t.NoError(err)
	t.True(ok)

	ok, err = t.subject.BalanceAvailable(mockCtx, ref, "0xowner", 4)
	t.NoError(err)
	t.False(ok)
}

func (t *testsuite) TestTransferFullBalanceRemovesSourceRow() {
	ref := multiRef()
	from := domain.Address("0xfrom")
	to := domain.Address("0xto")

	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, from).
		Return(&asset.Holding{Contract: ref.Contract, TokenId: ref.TokenId, Owner: from, Balance: 3}, nil)
	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, to).
		Return(nil, domain.ErrNotFound)
	t.mockHoldings.On("Remove", mock.Anything, ref.Contract, ref.TokenId, from).Return(nil)
	t.mockHoldings.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.Transfer(mockCtx, ref, from, to, 3)
	t.NoError(err)
	t.mockHoldings.AssertCalled(t.T(), "Remove", mock.Anything, ref.Contract, ref.TokenId, from)
	t.mockHoldings.AssertCalled(t.T(), "Upsert", mock.Anything, &asset.Holding{
		Contract: ref.Contract,
		TokenId:  ref.TokenId,
		Owner:    to,
		Balance:  3,
	})
}

func (t *testsuite) TestTransferPartialBalanceDecrements() {
	ref := multiRef()
	from := domain.Address("0xfrom")
	to := domain.Address("0xto")

	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, from).
		Return(&asset.Holding{Contract: ref.Contract, TokenId: ref.TokenId, Owner: from, Balance: 5}, nil)
	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, to).
		Return(&asset.Holding{Contract: ref.Contract, TokenId: ref.TokenId, Owner: to, Balance: 1}, nil)
	t.mockHoldings.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	err := t.subject.Transfer(mockCtx, ref, from, to, 2)
	t.NoError(err)
	t.mockHoldings.AssertCalled(t.T(), "Upsert", mock.Anything, &asset.Holding{
		Contract: ref.Contract,
		TokenId:  ref.TokenId,
		Owner:    from,
		Balance:  3,
	})
	t.mockHoldings.AssertCalled(t.T(), "Upsert", mock.Anything, &asset.Holding{
		Contract: ref.Contract,
		TokenId:  ref.TokenId,
		Owner:    to,
		Balance:  3,
	})
	t.mockHoldings.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestTransferInsufficientBalance() {
	ref := multiRef()
	from := domain.Address("0xfrom")

	t.mockHoldings.On("FindOne", mock.Anything, ref.Contract, ref.TokenId, from).
		Return(&asset.Holding{Contract: ref.Contract, TokenId: ref.TokenId, Owner: from, Balance: 1}, nil)

	err := t.subject.Transfer(mockCtx, ref, from, "0xto", 2)
	t.ErrorIs(err, domain.ErrInsufficientBalance)
}

func (t *testsuite) TestTransferUniqueRequiresQuantityOne() {
	ref := asset.Ref{Contract: "0xasset", TokenId: "1", Kind: asset.KindUnique}

	err := t.subject.Transfer(mockCtx, ref, "0xfrom", "0xto", 2)
	t.ErrorIs(err, domain.ErrInsufficientBalance)
}

func (t *testsuite) TestTransferZeroQuantity() {
	err := t.subject.Transfer(mockCtx, multiRef(), "0xfrom", "0xto", 0)
	t.ErrorIs(err, domain.ErrZeroQuantity)
}
