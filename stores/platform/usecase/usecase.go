package usecase

import (
	"github.com/openmarkets/goapi/base/ctx"
	"github.com/openmarkets/goapi/base/log"
	"github.com/openmarkets/goapi/domain"
)

type impl struct {
	repo domain.PlatformRepo
}

// New creates platform usecase
func New(repo domain.PlatformRepo) domain.PlatformUseCase {
	return &impl{repo: repo}
}

func (im *impl) GetPlatformFee(c ctx.Ctx) (*domain.FeeInfo, error) {
	fee, err := im.repo.GetFee(c)
	if err == domain.ErrNotFound {
		return &domain.FeeInfo{Recipient: domain.EmptyAddress, FeeBps: 0}, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.GetFee failed")
		return nil, err
	}
	if fee.FeeBps > domain.MaxBps {
		fee.FeeBps = domain.MaxBps
	}
	return fee, nil
}

func (im *impl) SetPlatformFee(c ctx.Ctx, fee *domain.FeeInfo) error {
	if fee.FeeBps < 0 || fee.FeeBps > domain.MaxBps {
		return domain.ErrBadParamInput
	}
	return im.repo.SetFee(c, fee)
}

// HasRole is default-open. A role becomes restricted only once a member is
// granted, after which membership is checked against the allow-list.
func (im *impl) HasRole(c ctx.Ctx, role domain.RoleId, principal domain.Address) (bool, error) {
	record, err := im.repo.GetRole(c, role)
	if err == domain.ErrNotFound {
		return true, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"role": role,
		}).Error("repo.GetRole failed")
		return false, err
	}

	for _, member := range record.Members {
		if member.Equals(principal) {
			return true, nil
		}
	}
	return false, nil
}

func (im *impl) GrantRole(c ctx.Ctx, role domain.RoleId, principal domain.Address) error {
	record, err := im.repo.GetRole(c, role)
	if err == domain.ErrNotFound {
		record = &domain.Role{Id: role}
	} else if err != nil {
		return err
	}

	for _, member := range record.Members {
		if member.Equals(principal) {
			return nil
		}
	}
	record.Members = append(record.Members, principal.ToLower())
	return im.repo.SetRole(c, record)
}

func (im *impl) RevokeRole(c ctx.Ctx, role domain.RoleId, principal domain.Address) error {
	record, err := im.repo.GetRole(c, role)
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		return err
	}

	members := record.Members[:0]
	for _, member := range record.Members {
		if !member.Equals(principal) {
			members = append(members, member)
		}
	}
	record.Members = members
	return im.repo.SetRole(c, record)
}
