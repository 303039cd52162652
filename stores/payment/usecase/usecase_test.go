package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	mDomain "github.com/openmarkets/goapi/domain/mocks"
	"github.com/openmarkets/goapi/domain/payment"
	mPayment "github.com/openmarkets/goapi/domain/payment/mocks"
)

var mockCtx = ctx.Background()

const (
	operator = domain.Address("0xoperator")
	token    = domain.Address("0xtoken")
	payer    = domain.Address("0xpayer")
)

type testsuite struct {
	suite.Suite
	mockBalances   *mPayment.BalanceRepo
	mockAllowances *mPayment.AllowanceRepo
	mockPaytokens  *mDomain.PayTokenRepo
	subject        *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockBalances = &mPayment.BalanceRepo{}
	t.mockAllowances = &mPayment.AllowanceRepo{}
	t.mockPaytokens = &mDomain.PayTokenRepo{}
	t.subject = &impl{
		balances:   t.mockBalances,
		allowances: t.mockAllowances,
		paytokens:  t.mockPaytokens,
		operator:   operator,
	}
}

func (t *testsuite) registerToken() {
	t.mockPaytokens.On("FindOne", mock.Anything, token).
		Return(&domain.PayToken{Symbol: "TOK", Decimals: 18, Address: token}, nil)
}

func (t *testsuite) balance(owner domain.Address, currency domain.Address, amount string) {
	t.mockBalances.On("FindOne", mock.Anything, owner, currency).
		Return(&payment.Balance{Owner: owner, Currency: currency, Amount: amount}, nil)
}

func (t *testsuite) TestBalanceOfMissingRowIsZero() {
	t.mockBalances.On("FindOne", mock.Anything, payer, domain.NativeTokenAddress).Return(nil, domain.ErrNotFound)

	b, err := t.subject.BalanceOf(mockCtx, payer, domain.NativeTokenAddress)
	t.NoError(err)
	t.Zero(b.Sign())
}

func (t *testsuite) TestPullNative() {
	t.balance(payer, domain.NativeTokenAddress, "1000")
	t.balance(operator, domain.NativeTokenAddress, "50")
	t.mockBalances.On("Set", mock.Anything, payer, domain.NativeTokenAddress, big.NewInt(800)).Return(nil)
	t.mockBalances.On("Set", mock.Anything, operator, domain.NativeTokenAddress, big.NewInt(250)).Return(nil)

	err := t.subject.Pull(mockCtx, payer, domain.NativeTokenAddress, big.NewInt(200), big.NewInt(200))
	t.NoError(err)
	t.mockBalances.AssertCalled(t.T(), "Set", mock.Anything, payer, domain.NativeTokenAddress, big.NewInt(800))
	t.mockBalances.AssertCalled(t.T(), "Set", mock.Anything, operator, domain.NativeTokenAddress, big.NewInt(250))
}

func (t *testsuite) TestPullNativeValueMismatch() {
	err := t.subject.Pull(mockCtx, payer, domain.NativeTokenAddress, big.NewInt(200), big.NewInt(199))
	t.ErrorIs(err, domain.ErrValueMismatch)
}

func (t *testsuite) TestPullTokenRejectsAttachedValue() {
	t.registerToken()

	err := t.subject.Pull(mockCtx, payer, token, big.NewInt(200), big.NewInt(200))
	t.ErrorIs(err, domain.ErrValueMismatch)
}

func (t *testsuite) TestPullTokenSpendsAllowance() {
	t.registerToken()
	t.mockAllowances.On("FindOne", mock.Anything, payer, operator, token).
		Return(&payment.Allowance{Owner: payer, Operator: operator, Currency: token, Amount: "500"}, nil)
	t.mockAllowances.On("Set", mock.Anything, payer, operator, token, big.NewInt(300)).Return(nil)
	t.balance(payer, token, "1000")
	t.balance(operator, token, "0")
	t.mockBalances.On("Set", mock.Anything, payer, token, big.NewInt(800)).Return(nil)
	t.mockBalances.On("Set", mock.Anything, operator, token, big.NewInt(200)).Return(nil)

	err := t.subject.Pull(mockCtx, payer, token, big.NewInt(200), new(big.Int))
	t.NoError(err)
	t.mockAllowances.AssertCalled(t.T(), "Set", mock.Anything, payer, operator, token, big.NewInt(300))
}

func (t *testsuite) TestPullTokenInsufficientAllowance() {
	t.registerToken()
	t.mockAllowances.On("FindOne", mock.Anything, payer, operator, token).
		Return(&payment.Allowance{Owner: payer, Operator: operator, Currency: token, Amount: "100"}, nil)

	err := t.subject.Pull(mockCtx, payer, token, big.NewInt(200), new(big.Int))
	t.ErrorIs(err, domain.ErrInsufficientBalance)
}

func (t *testsuite) TestPullInsufficientBalance() {
	t.balance(payer, domain.NativeTokenAddress, "100")

	err := t.subject.Pull(mockCtx, payer, domain.NativeTokenAddress, big.NewInt(200), big.NewInt(200))
	t.ErrorIs(err, domain.ErrInsufficientBalance)
}

func (t *testsuite) TestPullZeroAmount() {
	err := t.subject.Pull(mockCtx, payer, domain.NativeTokenAddress, new(big.Int), new(big.Int))
	t.NoError(err)
	t.mockBalances.AssertNotCalled(t.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (t *testsuite) TestPullUnknownCurrency() {
	t.mockPaytokens.On("FindOne", mock.Anything, token).Return(nil, domain.ErrNotFound)

	err := t.subject.Pull(mockCtx, payer, token, big.NewInt(200), new(big.Int))
	t.ErrorIs(err, domain.ErrInvalidCurrency)
}

func (t *testsuite) TestPushMovesFromOperator() {
	t.balance(operator, domain.NativeTokenAddress, "1000")
	t.balance(payer, domain.NativeTokenAddress, "0")
	t.mockBalances.On("Set", mock.Anything, operator, domain.NativeTokenAddress, big.NewInt(700)).Return(nil)
	t.mockBalances.On("Set", mock.Anything, payer, domain.NativeTokenAddress, big.NewInt(300)).Return(nil)

	err := t.subject.Push(mockCtx, payer, domain.NativeTokenAddress, big.NewInt(300))
	t.NoError(err)
}

func (t *testsuite) TestApproveNativeRejected() {
	err := t.subject.Approve(mockCtx, payer, domain.NativeTokenAddress, big.NewInt(100))
	t.ErrorIs(err, domain.ErrInvalidCurrency)
}

func (t *testsuite) TestApproveToken() {
	t.registerToken()
	t.mockAllowances.On("Set", mock.Anything, payer, operator, token, big.NewInt(100)).Return(nil)

	err := t.subject.Approve(mockCtx, payer, token, big.NewInt(100))
	t.NoError(err)
}

func (t *testsuite) TestDeposit() {
	t.balance(payer, domain.NativeTokenAddress, "250")
	t.mockBalances.On("Set", mock.Anything, payer, domain.NativeTokenAddress, big.NewInt(350)).Return(nil)

	err := t.subject.Deposit(mockCtx, payer, domain.NativeTokenAddress, big.NewInt(100))
	t.NoError(err)
}
