package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/repository"
)

func newInvoiceTestService(t *testing.T) (InvoiceService, *memoryDraftStore, repository.InvoiceRepository) {
	t.Helper()
	db := setupTestDB(t)
	store := newMemoryDraftStore()
	repo := repository.NewInvoiceRepository(db)
	return NewInvoiceService(repo, store, time.Hour), store, repo
}

func TestOpenDraftStartsEmpty(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)

	assert.NotEmpty(t, view.Draft.SessionID)
	assert.Equal(t, uint(1), view.Draft.OwnerID)
	assert.Empty(t, view.Draft.Items)
	assert.Zero(t, view.Summary.Total)
	assert.True(t, store.has(view.Draft.SessionID))
}

func TestAddItemComputesRunningTotals(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	_, violations, err := svc.SetMeta(ctx, sid, 1, forms.InvoiceMetaForm{
		ContractorID: 7,
		InvoiceDate:  "2026-08-31",
		SGSTRate:     "9",
		CGSTRate:     "9",
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	for i := 0; i < 2; i++ {
		view, violations, err = svc.AddItem(ctx, sid, 1, forms.LineItemForm{
			Description: "Brickwork",
			Quantity:    "1",
			Unit:        "Job",
			Rate:        "500",
			TaxRate:     "18",
		})
		require.NoError(t, err)
		require.Empty(t, violations)
	}

	assert.Len(t, view.Draft.Items, 2)
	assert.Equal(t, 1000.0, view.Summary.Subtotal)
	assert.Equal(t, 90.0, view.Summary.SGSTAmount)
	assert.Equal(t, 90.0, view.Summary.CGSTAmount)
	assert.Equal(t, 1180.0, view.Summary.Total)
}

func TestAddItemRejectsBadInputWithoutTouchingDraft(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	_, violations, err := svc.AddItem(ctx, sid, 1, forms.LineItemForm{
		Description: "Tiling",
		Quantity:    "abc",
		Rate:        "-50",
		TaxRate:     "35",
	})
	require.NoError(t, err)
	assert.Contains(t, violations, "quantity")
	assert.Contains(t, violations, "rate")
	assert.Contains(t, violations, "tax_rate")

	view, err = svc.GetDraftView(ctx, sid, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Draft.Items)
}

func TestRemoveItemKeepsRemainingIDs(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	for _, rate := range []string{"100", "200", "300"} {
		_, violations, err := svc.AddItem(ctx, sid, 1, forms.LineItemForm{
			Description: "Work",
			Quantity:    "1",
			Rate:        rate,
		})
		require.NoError(t, err)
		require.Empty(t, violations)
	}

	view, err = svc.RemoveItem(ctx, sid, 1, 2)
	require.NoError(t, err)

	require.Len(t, view.Draft.Items, 2)
	assert.Equal(t, 1, view.Draft.Items[0].ItemID)
	assert.Equal(t, 3, view.Draft.Items[1].ItemID)
	assert.Equal(t, 400.0, view.Summary.Subtotal)

	_, err = svc.RemoveItem(ctx, sid, 1, 99)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestSetMetaDropsStaleTaskRef(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	taskID := uint(42)
	view, violations, err := svc.SetMeta(ctx, sid, 1, forms.InvoiceMetaForm{
		ContractorID:  3,
		InvoiceDate:   "2026-08-31",
		RelatedToTask: false,
		TaskRef:       &taskID,
		SGSTRate:      "6",
		CGSTRate:      "6",
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Nil(t, view.Draft.TaskRef)
}

func TestSetMetaRejectsOffSlabGST(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)

	_, violations, err := svc.SetMeta(ctx, view.Draft.SessionID, 1, forms.InvoiceMetaForm{
		ContractorID: 3,
		InvoiceDate:  "2026-08-31",
		SGSTRate:     "5",
		CGSTRate:     "18",
	})
	require.NoError(t, err)
	assert.Contains(t, violations, "sgst_rate")
	assert.Contains(t, violations, "cgst_rate")
}

func TestSubmitEmptyDraftPersistsNothing(t *testing.T) {
	svc, store, repo := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	_, err = svc.Submit(ctx, sid, 1)
	assert.ErrorIs(t, err, ErrEmptyInvoice)

	// The draft survives the rejection so the user can keep editing.
	assert.True(t, store.has(sid))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSubmitWithoutMetaPersistsNothing(t *testing.T) {
	svc, store, repo := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	_, violations, err := svc.AddItem(ctx, sid, 1, forms.LineItemForm{
		Description: "Wiring",
		Quantity:    "1",
		Rate:        "750",
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	// SetMeta never ran: no contractor is attached yet.
	_, err = svc.Submit(ctx, sid, 1)
	assert.ErrorIs(t, err, ErrMissingMeta)

	assert.True(t, store.has(sid))
	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSubmitPersistsInvoiceAndClearsDraft(t *testing.T) {
	svc, store, repo := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 5)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	_, violations, err := svc.SetMeta(ctx, sid, 5, forms.InvoiceMetaForm{
		ContractorID: 9,
		InvoiceDate:  "2026-08-15",
		Notes:        "Phase one civil work",
		SGSTRate:     "9",
		CGSTRate:     "9",
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	_, violations, err = svc.AddItem(ctx, sid, 5, forms.LineItemForm{
		Description: "Excavation",
		Quantity:    "2",
		Unit:        "Days",
		Rate:        "500",
		TaxRate:     "18",
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	invoice, err := svc.Submit(ctx, sid, 5)
	require.NoError(t, err)

	assert.NotZero(t, invoice.ID)
	assert.Regexp(t, `^INV-20260815-[0-9a-f]{6}$`, invoice.InvoiceNumber)
	assert.Equal(t, string(models.InvoicePending), invoice.Status)
	assert.Equal(t, 1000.0, invoice.Subtotal)
	assert.Equal(t, 1180.0, invoice.TotalAmount)
	assert.Equal(t, uint(5), invoice.CreatedBy)
	assert.False(t, store.has(sid))

	_, err = svc.GetDraftView(ctx, sid, 5)
	assert.ErrorIs(t, err, ErrDraftNotFound)

	stored, err := svc.GetInvoiceByID(invoice.ID)
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 1000.0, stored.Items[0].Amount)

	audits, err := repo.GetAudits(invoice.ID)
	require.NoError(t, err)
	require.Len(t, audits, 1)
	assert.Equal(t, 1, audits[0].ItemCount)
	assert.Equal(t, 1180.0, audits[0].ComputedTotal)
	assert.Equal(t, uint(5), audits[0].SubmittedBy)
}

func TestDraftOwnershipEnforced(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)

	_, err = svc.GetDraftView(ctx, view.Draft.SessionID, 2)
	assert.ErrorIs(t, err, ErrNotDraftOwner)

	err = svc.CancelDraft(ctx, view.Draft.SessionID, 2)
	assert.ErrorIs(t, err, ErrNotDraftOwner)
}

func TestCancelDraftDiscardsSession(t *testing.T) {
	svc, store, _ := newInvoiceTestService(t)
	ctx := context.Background()

	view, err := svc.OpenDraft(ctx, 1)
	require.NoError(t, err)
	sid := view.Draft.SessionID

	require.NoError(t, svc.CancelDraft(ctx, sid, 1))
	assert.False(t, store.has(sid))

	_, err = svc.GetDraftView(ctx, sid, 1)
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

// Stored header totals are display caches. A row whose header drifted from
// its line amounts comes back recomputed.
func TestGetInvoiceRecomputesDriftedTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := repository.NewInvoiceRepository(db)
	svc := NewInvoiceService(repo, newMemoryDraftStore(), time.Hour)

	invoice := &models.Invoice{
		InvoiceNumber: "INV-20260801-aabbcc",
		ContractorID:  1,
		InvoiceDate:   time.Now(),
		Status:        string(models.InvoicePending),
		Subtotal:      9999,
		SGSTRate:      9,
		SGSTAmount:    1,
		CGSTRate:      9,
		CGSTAmount:    1,
		TotalAmount:   1,
		CreatedBy:     1,
		Items: []models.InvoiceItem{
			{Description: "Plumbing", Quantity: 1, Rate: 1000, Amount: 1000},
		},
	}
	require.NoError(t, db.Create(invoice).Error)

	got, err := svc.GetInvoiceByID(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, got.Subtotal)
	assert.Equal(t, 90.0, got.SGSTAmount)
	assert.Equal(t, 90.0, got.CGSTAmount)
	assert.Equal(t, 1180.0, got.TotalAmount)
}

func TestUpdateStatusValidatesStatus(t *testing.T) {
	svc, _, _ := newInvoiceTestService(t)

	err := svc.UpdateStatus(1, "archived")
	assert.Error(t, err)
}
