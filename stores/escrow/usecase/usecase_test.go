package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	"github.com/openmarkets/goapi/domain/escrow"
	mEscrow "github.com/openmarkets/goapi/domain/escrow/mocks"
	mPayment "github.com/openmarkets/goapi/domain/payment/mocks"
	mQuery "github.com/openmarkets/goapi/service/query/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockQuery   *mQuery.Mongo
	mockEntries *mEscrow.Repo
	mockCredits *mEscrow.CreditRepo
	mockPay     *mPayment.Adapter
	subject     *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockQuery = &mQuery.Mongo{}
	t.mockEntries = &mEscrow.Repo{}
	t.mockCredits = &mEscrow.CreditRepo{}
	t.mockPay = &mPayment.Adapter{}
	t.mockQuery.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) })
	t.subject = &impl{
		q:       t.mockQuery,
		entries: t.mockEntries,
		credits: t.mockCredits,
		pay:     t.mockPay,
	}
}

func (t *testsuite) TestGetHeld() {
	currency := domain.NativeTokenAddress
	t.mockEntries.On("SumHeld", mock.Anything, currency).Return(big.NewInt(1200), nil)

	held, err := t.subject.GetHeld(mockCtx, currency)
	t.NoError(err)
	t.Equal("1200", held)
}

func (t *testsuite) TestWithdrawCredit() {
	payee := domain.Address("0xpayee")
	currency := domain.NativeTokenAddress
	t.mockCredits.On("FindOne", mock.Anything, payee, currency).
		Return(&escrow.Credit{Payee: payee, Currency: currency, Amount: "700"}, nil)
	t.mockCredits.On("Remove", mock.Anything, payee, currency).Return(nil)
	t.mockPay.On("Push", mock.Anything, payee, currency, big.NewInt(700)).Return(nil)

	amount, err := t.subject.WithdrawCredit(mockCtx, payee, currency)
	t.NoError(err)
	t.Equal("700", amount)
	t.mockCredits.AssertCalled(t.T(), "Remove", mock.Anything, payee, currency)
	t.mockPay.AssertCalled(t.T(), "Push", mock.Anything, payee, currency, big.NewInt(700))
}

func (t *testsuite) TestWithdrawCreditWithoutBalance() {
	payee := domain.Address("0xpayee")
	currency := domain.NativeTokenAddress
	t.mockCredits.On("FindOne", mock.Anything, payee, currency).Return(nil, domain.ErrNotFound)

	_, err := t.subject.WithdrawCredit(mockCtx, payee, currency)
	t.ErrorIs(err, domain.ErrNotFound)
	t.mockPay.AssertNotCalled(t.T(), "Push", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestWithdrawCreditKeepsRowWhenPushFails() {
	payee := domain.Address("0xpayee")
	currency := domain.NativeTokenAddress
	t.mockCredits.On("FindOne", mock.Anything, payee, currency).
		Return(&escrow.Credit{Payee: payee, Currency: currency, Amount: "700"}, nil)
	t.mockCredits.On("Remove", mock.Anything, payee, currency).Return(nil)
	t.mockPay.On("Push", mock.Anything, payee, currency, big.NewInt(700)).Return(errors.New("boom"))

	_, err := t.subject.WithdrawCredit(mockCtx, payee, currency)
	t.Error(err)
}

func (t *testsuite) TestWithdrawCreditMalformedAmount() {
	payee := domain.Address("0xpayee")
	currency := domain.NativeTokenAddress
	t.mockCredits.On("FindOne", mock.Anything, payee, currency).
		Return(&escrow.Credit{Payee: payee, Currency: currency, Amount: "not-a-number"}, nil)

	_, err := t.subject.WithdrawCredit(mockCtx, payee, currency)
	t.Error(err)
	t.mockCredits.AssertNotCalled(t.T(), "Remove", mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestGetCredit() {
	payee := domain.Address("0xpayee")
	currency := domain.NativeTokenAddress
	credit := &escrow.Credit{Payee: payee, Currency: currency, Amount: "42"}
	t.mockCredits.On("FindOne", mock.Anything, payee, currency).Return(credit, nil)

	got, err := t.subject.GetCredit(mockCtx, payee, currency)
	t.NoError(err)
	t.Equal(credit, got)
}
