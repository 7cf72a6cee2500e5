package services

import (
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type CustomerService interface {
	CreateCustomer(customer *models.Customer) error
	GetCustomerByID(id uint) (*models.Customer, error)
	GetAllCustomers() ([]models.Customer, error)
	UpdateCustomer(customer *models.Customer) error
	DeleteCustomer(id uint) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(customer *models.Customer) error {
	return s.customerRepo.Create(customer)
}

func (s *customerService) GetCustomerByID(id uint) (*models.Customer, error) {
	return s.customerRepo.GetByID(id)
}

func (s *customerService) GetAllCustomers() ([]models.Customer, error) {
	return s.customerRepo.GetAll()
}

func (s *customerService) UpdateCustomer(customer *models.Customer) error {
	return s.customerRepo.Update(customer)
}

func (s *customerService) DeleteCustomer(id uint) error {
	return s.customerRepo.Delete(id)
}
