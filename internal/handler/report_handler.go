package handler

import (
	"log/slog"
	"net/http"

	"niftynews/internal/model"

	"github.com/gin-gonic/gin"
)

type ReportStore interface {
	ListDates() ([]model.DateEntry, error)
	ReportForDate(date string) (*model.DailyReport, error)
	CompanyDetails(date, company string) (*model.CompanyDetails, error)
}

type ReportHandler struct {
	repository ReportStore
}

func NewReportHandler(repository ReportStore) *ReportHandler {
	return &ReportHandler{repository: repository}
}

func (h *ReportHandler) GetAvailableDates(c *gin.Context) {
	dates, err := h.repository.ListDates()
	if err != nil {
		slog.Error("error listing dates", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dates)
}

func (h *ReportHandler) GetCompanyNews(c *gin.Context) {
	date := c.Param("date")

	rep, err := h.repository.ReportForDate(date)
	if err != nil {
		slog.Error("error building report", "error", err, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if rep == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No data found for this date"})
		return
	}

	c.JSON(http.StatusOK, rep)
}

func (h *ReportHandler) GetCompanyDetails(c *gin.Context) {
	date := c.Param("date")
	company := c.Param("company")

	details, err := h.repository.CompanyDetails(date, company)
	if err != nil {
		slog.Error("error fetching company details", "error", err, "date", date, "company", company)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if details == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *ReportHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.ListDates()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"data":   "unreadable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"data":   "readable",
	})
}
