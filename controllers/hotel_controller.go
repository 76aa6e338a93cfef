package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-reservation/models"
	"hotel-reservation/services"
	"hotel-reservation/utils"
)

type HotelController struct {
	System *services.ReservationSystem
}

func NewHotelController(system *services.ReservationSystem) *HotelController {
	return &HotelController{System: system}
}

type createHotelRequest struct {
	HotelID    string `json:"hotel_id" binding:"required"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	TotalRooms *int   `json:"total_rooms" binding:"required"`
}

type hotelView struct {
	models.Hotel
	AvailableRooms int `json:"available_rooms"`
}

func viewOf(h models.Hotel) hotelView {
	return hotelView{Hotel: h, AvailableRooms: h.AvailableRooms()}
}

// GET /api/hotels
func (ctrl *HotelController) ListHotels(c *gin.Context) {
	hotels, err := ctrl.System.ListHotels()
	if err != nil {
		respondFault(c, "List hotels", err)
		return
	}
	out := make([]hotelView, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, viewOf(h))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GET /api/hotels/:id
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	id := c.Param("id")
	hotel, found, err := ctrl.System.GetHotel(id)
	if err != nil {
		respondFault(c, "Get hotel", err)
		return
	}
	if !found {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found.", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, viewOf(hotel))
}

// POST /api/hotels
func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var req createHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	ok, err := ctrl.System.CreateHotel(req.HotelID, req.Name, req.Address, *req.TotalRooms)
	if err != nil {
		respondFault(c, "Create hotel", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("Hotel %s was not created.", req.HotelID))
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, viewOf(models.NewHotel(req.HotelID, req.Name, req.Address, *req.TotalRooms)))
}

// PATCH /api/hotels/:id
func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	id := c.Param("id")
	var update models.HotelUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	ok, err := ctrl.System.ModifyHotel(id, update)
	if err != nil {
		respondFault(c, "Update hotel", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s was not updated.", id))
		return
	}
	ctrl.GetHotel(c)
}

// DELETE /api/hotels/:id
func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	id := c.Param("id")
	ok, err := ctrl.System.DeleteHotel(id)
	if err != nil {
		respondFault(c, "Delete hotel", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("Hotel %s not found.", id))
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Hotel deleted successfully"})
}

// POST /api/hotels/:id/reserve
func (ctrl *HotelController) ReserveRoom(c *gin.Context) {
	id := c.Param("id")
	ok, err := ctrl.System.ReserveRoom(id)
	if err != nil {
		respondFault(c, "Reserve room", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("No room reserved at hotel %s.", id))
		return
	}
	ctrl.GetHotel(c)
}

// POST /api/hotels/:id/cancel
func (ctrl *HotelController) CancelRoom(c *gin.Context) {
	id := c.Param("id")
	ok, err := ctrl.System.CancelHotelReservation(id)
	if err != nil {
		respondFault(c, "Cancel hotel reservation", err)
		return
	}
	if !ok {
		utils.JSONError(c, http.StatusConflict, fmt.Sprintf("No reservation cancelled at hotel %s.", id))
		return
	}
	ctrl.GetHotel(c)
}
