package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"workdate/models"
	"workdate/services/calendar"
	"workdate/services/holiday"
	"workdate/utils"
)

// BusinessDateHandler exposes the business-date calculation endpoint.
type BusinessDateHandler struct {
	Service calendar.BusinessDateService
	Logger  *zap.Logger
}

func NewBusinessDateHandler(svc calendar.BusinessDateService, logger *zap.Logger) *BusinessDateHandler {
	return &BusinessDateHandler{Service: svc, Logger: logger}
}

// Calculate handles GET /api/business-dates/calculate?days=&hours=&date=.
func (h *BusinessDateHandler) Calculate(c *gin.Context) {
	daysStr := c.Query("days")
	hoursStr := c.Query("hours")
	dateStr := c.Query("date")

	if daysStr == "" && hoursStr == "" {
		utils.JSONError(c, http.StatusBadRequest, "InvalidParameters", "at least one of days or hours is required")
		return
	}

	days := 0
	if daysStr != "" {
		var err error
		days, err = strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			utils.JSONError(c, http.StatusBadRequest, "InvalidParameters", "days must be a non-negative integer")
			return
		}
	}

	hours := 0
	if hoursStr != "" {
		var err error
		hours, err = strconv.Atoi(hoursStr)
		if err != nil || hours < 0 {
			utils.JSONError(c, http.StatusBadRequest, "InvalidParameters", "hours must be a non-negative integer")
			return
		}
	}

	if dateStr != "" && !strings.HasSuffix(dateStr, "Z") {
		utils.JSONError(c, http.StatusBadRequest, "InvalidParameters", "date must be an ISO-8601 instant with the Z suffix")
		return
	}

	result, err := h.Service.ComputeBusinessDate(c.Request.Context(), dateStr, days, float64(hours))
	if err != nil {
		var invalidDate *calendar.InvalidDateError
		if errors.As(err, &invalidDate) {
			utils.JSONError(c, http.StatusBadRequest, invalidDate.Code, invalidDate.Message)
			return
		}
		var sourceErr *holiday.SourceError
		if errors.As(err, &sourceErr) {
			h.Logger.Error("holiday catalog unavailable", zap.Error(err))
			utils.JSONError(c, http.StatusServiceUnavailable, sourceErr.Code, "holiday catalog is currently unavailable")
			return
		}
		h.Logger.Error("business date computation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "InternalError", "failed to compute business date")
		return
	}

	c.JSON(http.StatusOK, models.CalculateResponse{Date: result.UTC().Format(time.RFC3339)})
}
