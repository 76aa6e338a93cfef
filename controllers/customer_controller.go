package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type CustomerController struct {
	System *services.ReservationSystem
}

func NewCustomerController(system *services.ReservationSystem) *CustomerController {
	return &CustomerController{System: system}
}

type createCustomerRequest struct {
	CustomerID string `json:"customer_id" binding:"required"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
}

// GET /api/customers
func (ctrl *CustomerController) ListCustomers(c *gin.Context) {
	customers, err := ctrl.System.ListCustomers()
	if err != nil {
		respondFault(c, "List customers", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

// GET /api/customers/:id
func (ctrl *CustomerController) GetCustomer(c *gin.Context) {
	id := c.Param("id")
	customer, found, err := ctrl.System.GetCustomer(id)
	if err != nil {
		respondFault(c, "Get customer", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Customer ID %s not found.", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// POST /api/customers
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	ok, err := ctrl.System.CreateCustomer(req.CustomerID, req.Name, req.Email, req.Phone)
	if err != nil {
		respondFault(c, "Create customer", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Customer ID %s was not created.", req.CustomerID))
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, models.NewCustomer(req.CustomerID, req.Name, req.Email, req.Phone))
}

// PATCH /api/customers/:id
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	id := c.Param("id")
	var update models.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	ok, err := ctrl.System.ModifyCustomer(id, update)
	if err != nil {
		respondFault(c, "Update customer", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Customer ID %s was not updated.", id))
		return
	}
	ctrl.GetCustomer(c)
}

// DELETE /api/customers/:id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	id := c.Param("id")
	ok, err := ctrl.System.DeleteCustomer(id)
	if err != nil {
		respondFault(c, "Delete customer", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Customer ID %s not found.", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
