package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"estate_crm/internal/finance"
	"estate_crm/internal/forms"
	"estate_crm/internal/models"
	"estate_crm/internal/redis"
	"estate_crm/internal/repository"
)

// DraftStore is the session cache holding in-progress invoice dialogs.
// *redis.Client satisfies it; tests use an in-memory fake.
type DraftStore interface {
	SetDraft(ctx context.Context, sessionID string, draft *models.InvoiceDraft, ttl time.Duration) error
	GetDraft(ctx context.Context, sessionID string) (*models.InvoiceDraft, error)
	DeleteDraft(ctx context.Context, sessionID string) error
}

// DraftView is a draft together with its derived totals, returned on every
// draft read so the caller never has to compute anything.
type DraftView struct {
	Draft   *models.InvoiceDraft `json:"draft"`
	Summary models.DraftSummary  `json:"summary"`
}

type InvoiceService interface {
	OpenDraft(ctx context.Context, ownerID uint) (*DraftView, error)
	GetDraftView(ctx context.Context, sessionID string, ownerID uint) (*DraftView, error)
	AddItem(ctx context.Context, sessionID string, ownerID uint, form forms.LineItemForm) (*DraftView, forms.Violations, error)
	RemoveItem(ctx context.Context, sessionID string, ownerID uint, itemID int) (*DraftView, error)
	SetMeta(ctx context.Context, sessionID string, ownerID uint, form forms.InvoiceMetaForm) (*DraftView, forms.Violations, error)
	CancelDraft(ctx context.Context, sessionID string, ownerID uint) error
	Submit(ctx context.Context, sessionID string, ownerID uint) (*models.Invoice, error)

	GetInvoiceByID(id uint) (*models.Invoice, error)
	GetAllInvoices() ([]models.Invoice, error)
	GetInvoicesByContractor(contractorID uint) ([]models.Invoice, error)
	GetAudits(invoiceID uint) ([]models.InvoiceAudit, error)
	UpdateStatus(id uint, status string) error
	DeleteInvoice(id uint) error
}

type invoiceService struct {
	invoiceRepo repository.InvoiceRepository
	drafts      DraftStore
	draftTTL    time.Duration
}

func NewInvoiceService(invoiceRepo repository.InvoiceRepository, drafts DraftStore, draftTTL time.Duration) InvoiceService {
	return &invoiceService{invoiceRepo: invoiceRepo, drafts: drafts, draftTTL: draftTTL}
}

func (s *invoiceService) OpenDraft(ctx context.Context, ownerID uint) (*DraftView, error) {
	sessionID, err := newSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	draft := &models.InvoiceDraft{
		SessionID:   sessionID,
		OwnerID:     ownerID,
		InvoiceDate: forms.FormatDate(now),
		NextItemID:  1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.drafts.SetDraft(ctx, sessionID, draft, s.draftTTL); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return s.view(draft), nil
}

func (s *invoiceService) GetDraftView(ctx context.Context, sessionID string, ownerID uint) (*DraftView, error) {
	draft, err := s.loadDraft(ctx, sessionID, ownerID)
	if err != nil {
		return nil, err
	}
	return s.view(draft), nil
}

func (s *invoiceService) AddItem(ctx context.Context, sessionID string, ownerID uint, form forms.LineItemForm) (*DraftView, forms.Violations, error) {
	item, violations := forms.ParseLineItem(form)
	if !violations.Empty() {
		return nil, violations, nil
	}

	draft, err := s.loadDraft(ctx, sessionID, ownerID)
	if err != nil {
		return nil, nil, err
	}

	item.ItemID = draft.NextItemID
	draft.NextItemID++
	draft.Items = append(draft.Items, item)
	draft.UpdatedAt = time.Now()

	if err := s.drafts.SetDraft(ctx, sessionID, draft, s.draftTTL); err != nil {
		return nil, nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return s.view(draft), nil, nil
}

func (s *invoiceService) RemoveItem(ctx context.Context, sessionID string, ownerID uint, itemID int) (*DraftView, error) {
	draft, err := s.loadDraft(ctx, sessionID, ownerID)
	if err != nil {
		return nil, err
	}

	found := false
	items := draft.Items[:0]
	for _, it := range draft.Items {
		if it.ItemID == itemID {
			found = true
			continue
		}
		items = append(items, it)
	}
	if !found {
		return nil, ErrItemNotFound
	}
	draft.Items = items
	draft.UpdatedAt = time.Now()

	if err := s.drafts.SetDraft(ctx, sessionID, draft, s.draftTTL); err != nil {
		return nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return s.view(draft), nil
}

func (s *invoiceService) SetMeta(ctx context.Context, sessionID string, ownerID uint, form forms.InvoiceMetaForm) (*DraftView, forms.Violations, error) {
	meta, violations := forms.ParseInvoiceMeta(form)
	if !violations.Empty() {
		return nil, violations, nil
	}

	draft, err := s.loadDraft(ctx, sessionID, ownerID)
	if err != nil {
		return nil, nil, err
	}

	draft.ContractorID = meta.ContractorID
	draft.InvoiceDate = meta.InvoiceDate
	draft.Notes = meta.Notes
	draft.TaskRef = meta.TaskRef
	draft.SGSTRate = meta.SGSTRate
	draft.CGSTRate = meta.CGSTRate
	draft.UpdatedAt = time.Now()

	if err := s.drafts.SetDraft(ctx, sessionID, draft, s.draftTTL); err != nil {
		return nil, nil, fmt.Errorf("failed to store draft: %w", err)
	}
	return s.view(draft), nil, nil
}

func (s *invoiceService) CancelDraft(ctx context.Context, sessionID string, ownerID uint) error {
	if _, err := s.loadDraft(ctx, sessionID, ownerID); err != nil {
		return err
	}
	return s.drafts.DeleteDraft(ctx, sessionID)
}

// Submit turns the draft into a persisted invoice. Totals are recomputed
// here from the stored line amounts; an empty draft is rejected outright.
func (s *invoiceService) Submit(ctx context.Context, sessionID string, ownerID uint) (*models.Invoice, error) {
	draft, err := s.loadDraft(ctx, sessionID, ownerID)
	if err != nil {
		return nil, err
	}
	if len(draft.Items) == 0 {
		return nil, ErrEmptyInvoice
	}
	// SetMeta is the only place a contractor gets attached; a zero id means
	// the dialog skipped it.
	if draft.ContractorID == 0 {
		return nil, ErrMissingMeta
	}

	summary := finance.Summarize(draft)

	invoiceDate, parseErr := time.Parse("2006-01-02", draft.InvoiceDate)
	if parseErr != nil {
		invoiceDate = time.Now()
	}

	invoice := &models.Invoice{
		InvoiceNumber: newInvoiceNumber(invoiceDate),
		ContractorID:  draft.ContractorID,
		InvoiceDate:   invoiceDate,
		Notes:         draft.Notes,
		TaskRef:       draft.TaskRef,
		Status:        string(models.InvoicePending),
		Subtotal:      summary.Subtotal,
		SGSTRate:      draft.SGSTRate,
		SGSTAmount:    summary.SGSTAmount,
		CGSTRate:      draft.CGSTRate,
		CGSTAmount:    summary.CGSTAmount,
		TotalAmount:   summary.Total,
		CreatedBy:     ownerID,
	}
	for i, it := range draft.Items {
		invoice.Items = append(invoice.Items, models.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Rate:        it.Rate,
			TaxRate:     it.TaxRate,
			Amount:      it.Amount,
			Position:    i,
		})
	}

	audit := &models.InvoiceAudit{
		ItemCount:     len(draft.Items),
		Subtotal:      summary.Subtotal,
		SGSTRate:      draft.SGSTRate,
		CGSTRate:      draft.CGSTRate,
		ComputedTotal: summary.Total,
		SubmittedBy:   ownerID,
		SubmittedAt:   time.Now(),
	}

	if err := s.invoiceRepo.Create(invoice, audit); err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	// The dialog is done; a failed delete only leaves a draft to expire.
	if err := s.drafts.DeleteDraft(ctx, sessionID); err != nil {
		log.Printf("Warning: failed to delete draft %s: %v", sessionID, err)
	}
	return invoice, nil
}

// GetInvoiceByID recomputes the derived fields from the stored line amounts
// before returning: the persisted totals are display caches, not sources of
// truth.
func (s *invoiceService) GetInvoiceByID(id uint) (*models.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	recompute(invoice)
	return invoice, nil
}

func (s *invoiceService) GetAllInvoices() ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		recompute(&invoices[i])
	}
	return invoices, nil
}

func (s *invoiceService) GetInvoicesByContractor(contractorID uint) ([]models.Invoice, error) {
	invoices, err := s.invoiceRepo.GetByContractor(contractorID)
	if err != nil {
		return nil, err
	}
	for i := range invoices {
		recompute(&invoices[i])
	}
	return invoices, nil
}

func (s *invoiceService) GetAudits(invoiceID uint) ([]models.InvoiceAudit, error) {
	return s.invoiceRepo.GetAudits(invoiceID)
}

func (s *invoiceService) UpdateStatus(id uint, status string) error {
	switch models.InvoiceStatus(status) {
	case models.InvoicePending, models.InvoiceApproved, models.InvoicePaid, models.InvoiceRejected:
	default:
		return fmt.Errorf("unknown invoice status: %s", status)
	}
	return s.invoiceRepo.UpdateStatus(id, status)
}

func (s *invoiceService) DeleteInvoice(id uint) error {
	return s.invoiceRepo.Delete(id)
}

func (s *invoiceService) loadDraft(ctx context.Context, sessionID string, ownerID uint) (*models.InvoiceDraft, error) {
	draft, err := s.drafts.GetDraft(ctx, sessionID)
	if err != nil {
		if err == redis.ErrNotFound {
			return nil, ErrDraftNotFound
		}
		return nil, err
	}
	if draft.OwnerID != ownerID {
		return nil, ErrNotDraftOwner
	}
	return draft, nil
}

func (s *invoiceService) view(draft *models.InvoiceDraft) *DraftView {
	return &DraftView{Draft: draft, Summary: finance.Summarize(draft)}
}

func recompute(invoice *models.Invoice) {
	invoice.Subtotal = finance.ItemSubtotal(invoice.Items)
	invoice.SGSTAmount = finance.TaxAmount(invoice.Subtotal, invoice.SGSTRate)
	invoice.CGSTAmount = finance.TaxAmount(invoice.Subtotal, invoice.CGSTRate)
	invoice.TotalAmount = finance.Total(invoice.Subtotal, invoice.SGSTAmount, invoice.CGSTAmount)
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func newInvoiceNumber(date time.Time) string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("INV-%s-%06x", date.Format("20060102"), time.Now().UnixNano()&0xffffff)
	}
	return fmt.Sprintf("INV-%s-%s", date.Format("20060102"), hex.EncodeToString(buf))
}
