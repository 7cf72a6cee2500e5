package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"estate_crm/internal/models"
	"estate_crm/internal/redis"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Lead{},
		&models.Customer{},
		&models.Contractor{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.InvoiceAudit{},
		&models.PlotListing{},
		&models.KanbanTask{},
		&models.TaskActivity{},
		&models.Schedule{},
		&models.TeamMember{},
	)
	require.NoError(t, err)
	return db
}

// memoryDraftStore stands in for the Redis client. Drafts round-trip
// through JSON the same way the real store serializes them.
type memoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string][]byte
}

func newMemoryDraftStore() *memoryDraftStore {
	return &memoryDraftStore{drafts: make(map[string][]byte)}
}

func (m *memoryDraftStore) SetDraft(ctx context.Context, sessionID string, draft *models.InvoiceDraft, ttl time.Duration) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[sessionID] = data
	return nil
}

func (m *memoryDraftStore) GetDraft(ctx context.Context, sessionID string) (*models.InvoiceDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.drafts[sessionID]
	if !ok {
		return nil, redis.ErrNotFound
	}
	var draft models.InvoiceDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, err
	}
	return &draft, nil
}

func (m *memoryDraftStore) DeleteDraft(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, sessionID)
	return nil
}

func (m *memoryDraftStore) has(sessionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.drafts[sessionID]
	return ok
}
