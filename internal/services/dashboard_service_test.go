package services

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"estate_crm/internal/models"
	"estate_crm/internal/redis"
	"estate_crm/internal/repository"
)

type memorySummaryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	sets    int
}

func newMemorySummaryCache() *memorySummaryCache {
	return &memorySummaryCache{entries: make(map[string][]byte)}
}

func (m *memorySummaryCache) SetDashboardSummary(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	m.sets++
	return nil
}

func (m *memorySummaryCache) GetDashboardSummary(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	if !ok {
		return redis.ErrNotFound
	}
	return json.Unmarshal(data, dest)
}

func (m *memorySummaryCache) DeleteDashboardSummary(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func newDashboardTestService(t *testing.T) (DashboardService, *gorm.DB, *memorySummaryCache) {
	t.Helper()
	db := setupTestDB(t)
	cache := newMemorySummaryCache()
	svc := NewDashboardService(
		repository.NewLeadRepository(db),
		repository.NewPlotRepository(db),
		repository.NewInvoiceRepository(db),
		cache,
		time.Minute,
	)
	return svc, db, cache
}

func TestGetSummaryAggregates(t *testing.T) {
	svc, db, _ := newDashboardTestService(t)
	ctx := context.Background()

	leads := []models.Lead{
		{Name: "A", PhoneNumber: "1", Status: string(models.LeadWon), CreatedBy: 1},
		{Name: "B", PhoneNumber: "2", Status: string(models.LeadNew), CreatedBy: 1},
		{Name: "C", PhoneNumber: "3", Status: string(models.LeadContacted), CreatedBy: 1},
	}
	for i := range leads {
		require.NoError(t, db.Create(&leads[i]).Error)
	}
	require.NoError(t, db.Create(&models.PlotListing{
		PlotNumber: "A-1", ProjectName: "P", Status: string(models.PlotOpen), CreatedBy: 1,
	}).Error)
	require.NoError(t, db.Create(&models.Invoice{
		InvoiceNumber: "INV-1", ContractorID: 1, InvoiceDate: time.Now(),
		Status: string(models.InvoicePending), Subtotal: 1000, TotalAmount: 1180, CreatedBy: 1,
	}).Error)

	summary, err := svc.GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), summary.TotalLeads)
	assert.Equal(t, int64(1), summary.WonLeads)
	assert.Equal(t, 33.33, summary.ConversionRate)
	assert.Equal(t, int64(1), summary.OpenPlots)
	assert.Equal(t, int64(1), summary.TotalInvoices)
	assert.Equal(t, 1180.0, summary.PendingInvoiced)
	assert.Equal(t, 0.0, summary.PaidInvoiced)
}

func TestGetSummaryServesFromCacheUntilInvalidated(t *testing.T) {
	svc, db, cache := newDashboardTestService(t)
	ctx := context.Background()

	first, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.TotalLeads)
	assert.Equal(t, 1, cache.sets)

	// New data lands, but the cached aggregate still answers.
	require.NoError(t, db.Create(&models.Lead{Name: "A", PhoneNumber: "1", CreatedBy: 1}).Error)

	second, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), second.TotalLeads)
	assert.Equal(t, 1, cache.sets)

	svc.Invalidate(ctx)

	third, err := svc.GetSummary(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), third.TotalLeads)
	assert.Equal(t, 2, cache.sets)
}
