package services

import (
	"context"
	"log"
	"time"

	"estate_crm/internal/finance"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

// SummaryCache is the dashboard side of the Redis client; tests use an
// in-memory fake.
type SummaryCache interface {
	SetDashboardSummary(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetDashboardSummary(ctx context.Context, key string, dest interface{}) error
	DeleteDashboardSummary(ctx context.Context, key string) error
}

// DashboardSummary is the landing-screen aggregate.
type DashboardSummary struct {
	TotalLeads      int64   `json:"total_leads"`
	WonLeads        int64   `json:"won_leads"`
	ConversionRate  float64 `json:"conversion_rate"`
	OpenPlots       int64   `json:"open_plots"`
	BookedPlots     int64   `json:"booked_plots"`
	TotalInvoices   int64   `json:"total_invoices"`
	PendingInvoiced float64 `json:"pending_invoiced"`
	PaidInvoiced    float64 `json:"paid_invoiced"`
	GeneratedAt     string  `json:"generated_at"`
}

type DashboardService interface {
	GetSummary(ctx context.Context) (*DashboardSummary, error)
	Invalidate(ctx context.Context)
}

type dashboardService struct {
	leadRepo    repository.LeadRepository
	plotRepo    repository.PlotRepository
	invoiceRepo repository.InvoiceRepository
	cache       SummaryCache
	cacheTTL    time.Duration
}

func NewDashboardService(
	leadRepo repository.LeadRepository,
	plotRepo repository.PlotRepository,
	invoiceRepo repository.InvoiceRepository,
	cache SummaryCache,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		leadRepo:    leadRepo,
		plotRepo:    plotRepo,
		invoiceRepo: invoiceRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

const summaryKey = "overview"

func (s *dashboardService) GetSummary(ctx context.Context) (*DashboardSummary, error) {
	var cached DashboardSummary
	if err := s.cache.GetDashboardSummary(ctx, summaryKey, &cached); err == nil {
		return &cached, nil
	}

	summary, err := s.build()
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetDashboardSummary(ctx, summaryKey, summary, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache dashboard summary: %v", err)
	}
	return summary, nil
}

func (s *dashboardService) Invalidate(ctx context.Context) {
	if err := s.cache.DeleteDashboardSummary(ctx, summaryKey); err != nil {
		log.Printf("Warning: failed to invalidate dashboard summary: %v", err)
	}
}

func (s *dashboardService) build() (*DashboardSummary, error) {
	totalLeads, err := s.leadRepo.Count()
	if err != nil {
		return nil, err
	}
	wonLeads, err := s.leadRepo.CountByStatus(string(models.LeadWon))
	if err != nil {
		return nil, err
	}
	openPlots, err := s.plotRepo.CountByStatus(string(models.PlotOpen))
	if err != nil {
		return nil, err
	}
	bookedPlots, err := s.plotRepo.CountByStatus(string(models.PlotBooked))
	if err != nil {
		return nil, err
	}
	totalInvoices, err := s.invoiceRepo.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.invoiceRepo.SumTotalsByStatus(string(models.InvoicePending))
	if err != nil {
		return nil, err
	}
	paid, err := s.invoiceRepo.SumTotalsByStatus(string(models.InvoicePaid))
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		TotalLeads:      totalLeads,
		WonLeads:        wonLeads,
		ConversionRate:  finance.ConversionRate(float64(wonLeads), float64(totalLeads)),
		OpenPlots:       openPlots,
		BookedPlots:     bookedPlots,
		TotalInvoices:   totalInvoices,
		PendingInvoiced: pending,
		PaidInvoiced:    paid,
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}, nil
}
