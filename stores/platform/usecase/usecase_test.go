package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/domain"
	mDomain "github.com/openmarkets/goapi/domain/mocks"
)

var mockCtx = ctx.Background()

type testsuite struct {
	suite.Suite
	mockRepo *mDomain.PlatformRepo
	subject  *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.mockRepo = &mDomain.PlatformRepo{}
	t.subject = &impl{repo: t.mockRepo}
}

func (t *testsuite) TestGetPlatformFeeDefaultsToZero() {
	t.mockRepo.On("GetFee", mock.Anything).Return(nil, domain.ErrNotFound)

	fee, err := t.subject.GetPlatformFee(mockCtx)
	t.NoError(err)
	t.Equal(domain.EmptyAddress, fee.Recipient)
	t.Equal(int64(0), fee.FeeBps)
}

func (t *testsuite) TestGetPlatformFeeCapsAtMaxBps() {
	t.mockRepo.On("GetFee", mock.Anything).
		Return(&domain.FeeInfo{Recipient: "0xtreasury", FeeBps: 20000}, nil)

	fee, err := t.subject.GetPlatformFee(mockCtx)
	t.NoError(err)
	t.Equal(int64(domain.MaxBps), fee.FeeBps)
}

func (t *testsuite) TestSetPlatformFeeRejectsOutOfRangeBps() {
	err := t.subject.SetPlatformFee(mockCtx, &domain.FeeInfo{Recipient: "0xtreasury", FeeBps: 10001})
	t.ErrorIs(err, domain.ErrBadParamInput)

	err = t.subject.SetPlatformFee(mockCtx, &domain.FeeInfo{Recipient: "0xtreasury", FeeBps: -1})
	t.ErrorIs(err, domain.ErrBadParamInput)
	t.mockRepo.AssertNotCalled(t.T(), "SetFee", mock.Anything, mock.Anything)
}

func (t *testsuite) TestSetPlatformFee() {
	fee := &domain.FeeInfo{Recipient: "0xtreasury", FeeBps: 250}
	t.mockRepo.On("SetFee", mock.Anything, fee).Return(nil)

	t.NoError(t.subject.SetPlatformFee(mockCtx, fee))
	t.mockRepo.AssertCalled(t.T(), "SetFee", mock.Anything, fee)
}

func (t *testsuite) TestHasRoleWithoutRecordAdmitsEveryone() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleLister).Return(nil, domain.ErrNotFound)

	ok, err := t.subject.HasRole(mockCtx, domain.RoleLister, "0xanyone")
	t.NoError(err)
	t.True(ok)
}

func (t *testsuite) TestHasRoleChecksMembership() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleLister).
		Return(&domain.Role{Id: domain.RoleLister, Members: []domain.Address{"0xalice", "0xbob"}}, nil)

	ok, err := t.subject.HasRole(mockCtx, domain.RoleLister, "0xBob")
	t.NoError(err)
	t.True(ok)

	ok, err = t.subject.HasRole(mockCtx, domain.RoleLister, "0xeve")
	t.NoError(err)
	t.False(ok)
}

func (t *testsuite) TestHasRoleRepoFailure() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleAsset).Return(nil, errors.New("boom"))

	ok, err := t.subject.HasRole(mockCtx, domain.RoleAsset, "0xanyone")
	t.Error(err)
	t.False(ok)
}

func (t *testsuite) TestGrantRoleCreatesRecord() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleLister).Return(nil, domain.ErrNotFound)
	t.mockRepo.On("SetRole", mock.Anything, mock.Anything).Return(nil)

	t.NoError(t.subject.GrantRole(mockCtx, domain.RoleLister, "0xAlice"))
	t.mockRepo.AssertCalled(t.T(), "SetRole", mock.Anything, &domain.Role{
		Id:      domain.RoleLister,
		Members: []domain.Address{"0xalice"},
	})
}

func (t *testsuite) TestGrantRoleIsIdempotent() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleLister).
		Return(&domain.Role{Id: domain.RoleLister, Members: []domain.Address{"0xalice"}}, nil)

	t.NoError(t.subject.GrantRole(mockCtx, domain.RoleLister, "0xAlice"))
	t.mockRepo.AssertNotCalled(t.T(), "SetRole", mock.Anything, mock.Anything)
}

func (t *testsuite) TestRevokeRoleRemovesMember() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleLister).
		Return(&domain.Role{Id: domain.RoleLister, Members: []domain.Address{"0xalice", "0xbob"}}, nil)
	t.mockRepo.On("SetRole", mock.Anything, mock.Anything).Return(nil)

	t.NoError(t.subject.RevokeRole(mockCtx, domain.RoleLister, "0xAlice"))
	t.mockRepo.AssertCalled(t.T(), "SetRole", mock.Anything, &domain.Role{
		Id:      domain.RoleLister,
		Members: []domain.Address{"0xbob"},
	})
}

func (t *testsuite) TestRevokeRoleWithoutRecordIsNoop() {
	t.mockRepo.On("GetRole", mock.Anything, domain.RoleLister).Return(nil, domain.ErrNotFound)

	t.NoError(t.subject.RevokeRole(mockCtx, domain.RoleLister, "0xalice"))
	t.mockRepo.AssertNotCalled(t.T(), "SetRole", mock.Anything, mock.Anything)
}
