package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-reservation/reports"
	"hotel-reservation/utils"
)

type ReportController struct{}

func NewReportController() *ReportController {
	return &ReportController{}
}

type textReportRequest struct {
	Text string `json:"text"`
}

type salesReportRequest struct {
	Catalogue json.RawMessage `json:"catalogue" binding:"required"`
	Sales     json.RawMessage `json:"sales" binding:"required"`
}

func respondReport(c *gin.Context, text string, ok bool, extra gin.H) {
	data := gin.H{"report": text}
	for k, v := range extra {
		data[k] = v
	}
	if !ok {
		utils.JSONFailure(c, http.StatusUnprocessableEntity, strings.TrimSpace(text), data)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, data)
}

func (ctrl *ReportController) bindNumbers(c *gin.Context) ([]float64, []string, bool) {
	var req textReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return nil, nil, false
	}
	numbers, errs := reports.ParseNumbers(strings.Split(req.Text, "\n"))
	return numbers, errs, true
}

// POST /api/reports/statistics
func (ctrl *ReportController) Statistics(c *gin.Context) {
	numbers, errs, ok := ctrl.bindNumbers(c)
	if !ok {
		return
	}
	text, success := reports.StatisticsReport(numbers)
	respondReport(c, text, success, gin.H{"invalid_lines": errs})
}

// POST /api/reports/conversion
func (ctrl *ReportController) Conversion(c *gin.Context) {
	numbers, errs, ok := ctrl.bindNumbers(c)
	if !ok {
		return
	}
	text, success := reports.ConversionReport(numbers)
	respondReport(c, text, success, gin.H{"invalid_lines": errs})
}

// POST /api/reports/wordcount
func (ctrl *ReportController) WordCount(c *gin.Context) {
	var req textReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}
	text, success := reports.WordCountReport(req.Text)
	respondReport(c, text, success, nil)
}

// POST /api/reports/sales
func (ctrl *ReportController) Sales(c *gin.Context) {
	var req salesReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c, err)
		return
	}

	catalogue, err := reports.DecodeJSON(req.Catalogue)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid catalogue: "+err.Error())
		return
	}
	sales, err := reports.DecodeJSON(req.Sales)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid sales: "+err.Error())
		return
	}

	text, success := reports.SalesReport(catalogue, sales)
	respondReport(c, text, success, nil)
}
