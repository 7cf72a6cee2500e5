package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"estate_crm/internal/models"
	"estate_crm/internal/services"
)

// CRMHandler serves the customer and contractor directories.
type CRMHandler struct {
	customerService   services.CustomerService
	contractorService services.ContractorService
}

func NewCRMHandler(customerService services.CustomerService, contractorService services.ContractorService) *CRMHandler {
	return &CRMHandler{customerService: customerService, contractorService: contractorService}
}

func (h *CRMHandler) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if customer.Name == "" || customer.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required"})
		return
	}

	customer.CreatedBy = currentUserID(c)
	if err := h.customerService.CreateCustomer(&customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}
	c.JSON(http.StatusCreated, customer)
}

func (h *CRMHandler) GetCustomer(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	customer, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CRMHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.GetAllCustomers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customers"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *CRMHandler) UpdateCustomer(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	existing, err := h.customerService.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load customer"})
		return
	}

	var update models.Customer
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	existing.Name = update.Name
	existing.PhoneNumber = update.PhoneNumber
	existing.Email = update.Email
	existing.Address = update.Address

	if err := h.customerService.UpdateCustomer(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update customer"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *CRMHandler) DeleteCustomer(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.customerService.DeleteCustomer(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete customer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *CRMHandler) CreateContractor(c *gin.Context) {
	var contractor models.Contractor
	if err := c.ShouldBindJSON(&contractor); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if contractor.Name == "" || contractor.PhoneNumber == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and phone number are required"})
		return
	}

	contractor.IsActive = true
	contractor.CreatedBy = currentUserID(c)
	if err := h.contractorService.CreateContractor(&contractor); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contractor"})
		return
	}
	c.JSON(http.StatusCreated, contractor)
}

func (h *CRMHandler) GetContractor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	contractor, err := h.contractorService.GetContractorByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contractor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contractor"})
		return
	}
	c.JSON(http.StatusOK, contractor)
}

func (h *CRMHandler) ListContractors(c *gin.Context) {
	var contractors []models.Contractor
	var err error
	if c.Query("active") == "true" {
		contractors, err = h.contractorService.GetActiveContractors()
	} else {
		contractors, err = h.contractorService.GetAllContractors()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contractors"})
		return
	}
	c.JSON(http.StatusOK, contractors)
}

func (h *CRMHandler) UpdateContractor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	existing, err := h.contractorService.GetContractorByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Contractor not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contractor"})
		return
	}

	var update models.Contractor
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	existing.Name = update.Name
	existing.CompanyName = update.CompanyName
	existing.PhoneNumber = update.PhoneNumber
	existing.Email = update.Email
	existing.GSTIN = update.GSTIN
	existing.Specialty = update.Specialty
	existing.IsActive = update.IsActive

	if err := h.contractorService.UpdateContractor(existing); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contractor"})
		return
	}
	c.JSON(http.StatusOK, existing)
}

func (h *CRMHandler) DeleteContractor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		return
	}

	if err := h.contractorService.DeleteContractor(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contractor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
