package services

import (
	"estate_crm/internal/finance"
	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

type PlotService interface {
	CreatePlot(plot *models.PlotListing) error
	GetPlotByID(id uint) (*models.PlotListing, error)
	GetAllPlots() ([]models.PlotListing, error)
	GetPlotsByStatus(status string) ([]models.PlotListing, error)
	UpdatePlot(plot *models.PlotListing) error
	UpdateFinancials(id uint, form forms.PlotFinancialForm) (*models.PlotListing, forms.Violations, error)
	RecordPayment(id uint, amount float64) (*models.PlotListing, error)
	DeletePlot(id uint) error
}

type plotService struct {
	plotRepo repository.PlotRepository
}

func NewPlotService(plotRepo repository.PlotRepository) PlotService {
	return &plotService{plotRepo: plotRepo}
}

func (s *plotService) CreatePlot(plot *models.PlotListing) error {
	plot.BalanceAmount = finance.Balance(plot.TotalAmount, plot.AmountReceived)
	return s.plotRepo.Create(plot)
}

// GetPlotByID rederives the balance from the loaded total and received
// amounts. A stale stored balance is never shown; if it drifted, the stored
// row is repaired on the way out.
func (s *plotService) GetPlotByID(id uint) (*models.PlotListing, error) {
	plot, err := s.plotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	balance := finance.Balance(plot.TotalAmount, plot.AmountReceived)
	if balance != plot.BalanceAmount {
		plot.BalanceAmount = balance
		if err := s.plotRepo.Update(plot); err != nil {
			return nil, err
		}
	}
	return plot, nil
}

func (s *plotService) GetAllPlots() ([]models.PlotListing, error) {
	plots, err := s.plotRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range plots {
		plots[i].BalanceAmount = finance.Balance(plots[i].TotalAmount, plots[i].AmountReceived)
	}
	return plots, nil
}

func (s *plotService) GetPlotsByStatus(status string) ([]models.PlotListing, error) {
	plots, err := s.plotRepo.GetByStatus(status)
	if err != nil {
		return nil, err
	}
	for i := range plots {
		plots[i].BalanceAmount = finance.Balance(plots[i].TotalAmount, plots[i].AmountReceived)
	}
	return plots, nil
}

func (s *plotService) UpdatePlot(plot *models.PlotListing) error {
	plot.BalanceAmount = finance.Balance(plot.TotalAmount, plot.AmountReceived)
	return s.plotRepo.Update(plot)
}

// UpdateFinancials applies the money fields from a submitted form. The
// balance the client may have sent is ignored; it is rederived here.
func (s *plotService) UpdateFinancials(id uint, form forms.PlotFinancialForm) (*models.PlotListing, forms.Violations, error) {
	parsed, violations := forms.ParsePlotFinancials(form)
	if !violations.Empty() {
		return nil, violations, nil
	}

	plot, err := s.plotRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	plot.TotalAmount = parsed.TotalAmount
	plot.BookingAmount = parsed.BookingAmount
	plot.AmountReceived = parsed.AmountReceived
	plot.BalanceAmount = parsed.BalanceAmount

	if err := s.plotRepo.Update(plot); err != nil {
		return nil, nil, err
	}
	return plot, nil, nil
}

func (s *plotService) RecordPayment(id uint, amount float64) (*models.PlotListing, error) {
	plot, err := s.plotRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if amount > 0 {
		plot.AmountReceived += amount
	}
	plot.BalanceAmount = finance.Balance(plot.TotalAmount, plot.AmountReceived)

	if err := s.plotRepo.Update(plot); err != nil {
		return nil, err
	}
	return plot, nil
}

func (s *plotService) DeletePlot(id uint) error {
	return s.plotRepo.Delete(id)
}
