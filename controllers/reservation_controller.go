package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type ReservationController struct {
	System *services.ReservationSystem
	Export *services.ExportService
}

func NewReservationController(system *services.ReservationSystem, export *services.ExportService) *ReservationController {
	return &ReservationController{System: system, Export: export}
}

// GET /api/reservations
func (ctrl *ReservationController) ListReservations(c *gin.Context) {
	reservations, err := ctrl.System.ListReservations()
	if err != nil {
		respondFault(c, "List reservations", err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// GET /api/reservations/:id
func (ctrl *ReservationController) GetReservation(c *gin.Context) {
	id := c.Param("id")
	reservation, found, err := ctrl.System.GetReservation(id)
	if err != nil {
		respondFault(c, "Get reservation", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Reservation %s not found.", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// POST /api/reservations
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var in models.ReservationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	ok, err := ctrl.System.CreateReservation(in)
	if err != nil {
		respondFault(c, "Create reservation", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf(
			"Reservation %s was not created: the id is taken, the customer or hotel does not exist, or the hotel is full.",
			in.ReservationID,
		))
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, models.NewReservation(in))
}

// POST /api/reservations/:id/cancel
func (ctrl *ReservationController) CancelReservation(c *gin.Context) {
	id := c.Param("id")
	ok, err := ctrl.System.CancelReservation(id)
	if err != nil {
		respondFault(c, "Cancel reservation", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Reservation %s was not cancelled.", id))
		return
	}
	ctrl.GetReservation(c)
}

// GET /api/reservations/export
func (ctrl *ReservationController) ExportReservations(c *gin.Context) {
	var buf bytes.Buffer
	if err := ctrl.Export.WriteReservations(&buf); err != nil {
		respondFault(c, "Export reservations", err)
		return
	}

	filename := fmt.Sprintf("reservations_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
