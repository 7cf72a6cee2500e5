package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/finance"
	"estate_crm/internal/forms"
	"estate_crm/internal/services"
)

type InvoiceHandler struct {
	invoiceService   services.InvoiceService
	dashboardService services.DashboardService
}

func NewInvoiceHandler(invoiceService services.InvoiceService, dashboardService services.DashboardService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, dashboardService: dashboardService}
}

// Draft dialog endpoints. A draft lives in the cache under its session id
// until it is submitted, cancelled or expires.

func (h *InvoiceHandler) OpenDraft(c *gin.Context) {
	view, err := h.invoiceService.OpenDraft(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open draft"})
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *InvoiceHandler) GetDraft(c *gin.Context) {
	view, err := h.invoiceService.GetDraftView(c.Request.Context(), c.Param("session_id"), currentUserID(c))
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *InvoiceHandler) AddItem(c *gin.Context) {
	var form forms.LineItemForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, violations, err := h.invoiceService.AddItem(c.Request.Context(), c.Param("session_id"), currentUserID(c), form)
	if err != nil {
		h.draftError(c, err)
		return
	}
	if !violations.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *InvoiceHandler) RemoveItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return
	}

	view, err := h.invoiceService.RemoveItem(c.Request.Context(), c.Param("session_id"), currentUserID(c), itemID)
	if err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *InvoiceHandler) SetMeta(c *gin.Context) {
	var form forms.InvoiceMetaForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	view, violations, err := h.invoiceService.SetMeta(c.Request.Context(), c.Param("session_id"), currentUserID(c), form)
	if err != nil {
		h.draftError(c, err)
		return
	}
	if !violations.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": violations})
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *InvoiceHandler) CancelDraft(c *gin.Context) {
	if err := h.invoiceService.CancelDraft(c.Request.Context(), c.Param("session_id"), currentUserID(c)); err != nil {
		h.draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *InvoiceHandler) Submit(c *gin.Context) {
	invoice, err := h.invoiceService.Submit(c.Request.Context(), c.Param("session_id"), currentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrEmptyInvoice) || errors.Is(err, services.ErrMissingMeta) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.draftError(c, err)
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"invoice":       invoice,
		"total_display": finance.FormatAmount(invoice.TotalAmount),
	})
}

// Persisted invoice endpoints.

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoice"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"invoice":          invoice,
		"subtotal_display": finance.FormatAmount(invoice.Subtotal),
		"total_display":    finance.FormatAmount(invoice.TotalAmount),
	})
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.invoiceService.GetAllInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) ListByContractor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	invoices, err := h.invoiceService.GetInvoicesByContractor(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load invoices"})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) GetAudits(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	audits, err := h.invoiceService.GetAudits(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load audit history"})
		return
	}
	c.JSON(http.StatusOK, audits)
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.invoiceService.UpdateStatus(id, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.invoiceService.DeleteInvoice(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete invoice"})
		return
	}

	h.dashboardService.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *InvoiceHandler) draftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotDraftOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Draft operation failed"})
	}
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, err
	}
	return uint(id), nil
}
