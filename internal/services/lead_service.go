package services

import (
	"fmt"

	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type LeadService interface {
	CreateLead(lead *models.Lead) error
	GetLeadByID(id uint) (*models.Lead, error)
	GetAllLeads() ([]models.Lead, error)
	GetLeadsByAssignee(userID uint) ([]models.Lead, error)
	UpdateLead(lead *models.Lead) error
	UpdateStatus(id uint, status string) error
	AssignLead(id, userID uint) error
	ConvertToCustomer(id uint, createdBy uint) (*models.Customer, error)
	DeleteLead(id uint) error
}

type leadService struct {
	leadRepo     repository.LeadRepository
	customerRepo repository.CustomerRepository
}

func NewLeadService(leadRepo repository.LeadRepository, customerRepo repository.CustomerRepository) LeadService {
	return &leadService{leadRepo: leadRepo, customerRepo: customerRepo}
}

func (s *leadService) CreateLead(lead *models.Lead) error {
	if lead.Status == "" {
		lead.Status = string(models.LeadNew)
	}
	return s.leadRepo.Create(lead)
}

func (s *leadService) GetLeadByID(id uint) (*models.Lead, error) {
	return s.leadRepo.GetByID(id)
}

func (s *leadService) GetAllLeads() ([]models.Lead, error) {
	return s.leadRepo.GetAll()
}

func (s *leadService) GetLeadsByAssignee(userID uint) ([]models.Lead, error) {
	return s.leadRepo.GetByAssignee(userID)
}

func (s *leadService) UpdateLead(lead *models.Lead) error {
	return s.leadRepo.Update(lead)
}

func (s *leadService) UpdateStatus(id uint, status string) error {
	switch models.LeadStatus(status) {
	case models.LeadNew, models.LeadContacted, models.LeadSiteVisit,
		models.LeadNegotiation, models.LeadWon, models.LeadLost:
	default:
		return fmt.Errorf("unknown lead status: %s", status)
	}

	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	lead.Status = status
	return s.leadRepo.Update(lead)
}

func (s *leadService) AssignLead(id, userID uint) error {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return err
	}
	lead.AssignedTo = &userID
	return s.leadRepo.Update(lead)
}

// ConvertToCustomer marks the lead won and creates a customer record
// linked back to it.
func (s *leadService) ConvertToCustomer(id uint, createdBy uint) (*models.Customer, error) {
	lead, err := s.leadRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	lead.Status = string(models.LeadWon)
	if err := s.leadRepo.Update(lead); err != nil {
		return nil, err
	}

	customer := &models.Customer{
		Name:        lead.Name,
		PhoneNumber: lead.PhoneNumber,
		Email:       lead.Email,
		LeadID:      &lead.ID,
		CreatedBy:   createdBy,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *leadService) DeleteLead(id uint) error {
	return s.leadRepo.Delete(id)
}
