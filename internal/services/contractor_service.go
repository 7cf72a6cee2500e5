package services

import (
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type ContractorService interface {
	CreateContractor(contractor *models.Contractor) error
	GetContractorByID(id uint) (*models.Contractor, error)
	GetAllContractors() ([]models.Contractor, error)
	GetActiveContractors() ([]models.Contractor, error)
	UpdateContractor(contractor *models.Contractor) error
	DeleteContractor(id uint) error
}

type contractorService struct {
	contractorRepo repository.ContractorRepository
}

func NewContractorService(contractorRepo repository.ContractorRepository) ContractorService {
	return &contractorService{contractorRepo: contractorRepo}
}

func (s *contractorService) CreateContractor(contractor *models.Contractor) error {
	return s.contractorRepo.Create(contractor)
}

func (s *contractorService) GetContractorByID(id uint) (*models.Contractor, error) {
	return s.contractorRepo.GetByID(id)
}

func (s *contractorService) GetAllContractors() ([]models.Contractor, error) {
	return s.contractorRepo.GetAll()
}

func (s *contractorService) GetActiveContractors() ([]models.Contractor, error) {
	return s.contractorRepo.GetActive()
}

func (s *contractorService) UpdateContractor(contractor *models.Contractor) error {
	return s.contractorRepo.Update(contractor)
}

func (s *contractorService) DeleteContractor(id uint) error {
	return s.contractorRepo.Delete(id)
}
