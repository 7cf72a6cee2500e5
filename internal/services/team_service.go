package services

import (
	"errors"

	"gorm.io/gorm"

	"estate_crm/internal/finance"
	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type TeamService interface {
	UpsertPerformance(userID uint, period string, form forms.PerformanceForm) (*models.TeamMember, forms.Violations, error)
	GetBoard(period string) ([]models.TeamMember, error)
	GetMember(id uint) (*models.TeamMember, error)
	DeleteMember(id uint) error
}

type teamService struct {
	teamRepo repository.TeamRepository
}

func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

// UpsertPerformance writes one member's numbers for a period. The
// conversion rate is derived at the parse boundary; whatever the client
// sent for it is discarded.
func (s *teamService) UpsertPerformance(userID uint, period string, form forms.PerformanceForm) (*models.TeamMember, forms.Violations, error) {
	parsed, violations := forms.ParsePerformance(form)
	if !violations.Empty() {
		return nil, violations, nil
	}

	member, err := s.teamRepo.GetByUserAndPeriod(userID, period)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, err
		}
		member = &models.TeamMember{UserID: userID, Period: period}
	}

	member.Sales = parsed.Sales
	member.Target = parsed.Target
	member.Deals = parsed.Deals
	member.Leads = parsed.Leads
	member.ConversionRate = parsed.ConversionRate

	if member.ID == 0 {
		err = s.teamRepo.Create(member)
	} else {
		err = s.teamRepo.Update(member)
	}
	if err != nil {
		return nil, nil, err
	}
	return member, nil, nil
}

// GetBoard rederives every conversion rate from the stored deals and leads.
func (s *teamService) GetBoard(period string) ([]models.TeamMember, error) {
	members, err := s.teamRepo.GetByPeriod(period)
	if err != nil {
		return nil, err
	}
	for i := range members {
		members[i].ConversionRate = finance.ConversionRate(members[i].Deals, members[i].Leads)
	}
	return members, nil
}

func (s *teamService) GetMember(id uint) (*models.TeamMember, error) {
	member, err := s.teamRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	member.ConversionRate = finance.ConversionRate(member.Deals, member.Leads)
	return member, nil
}

func (s *teamService) DeleteMember(id uint) error {
	return s.teamRepo.Delete(id)
}
