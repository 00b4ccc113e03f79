package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hundredgaj/internal/api"
	"hundredgaj/internal/audit"
	"hundredgaj/internal/logger"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

type mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
func Health(db pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Database: "disabled"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			logger.WithError(err).Warnw("Health check failed")
			c.JSON(http.StatusServiceUnavailable, api.HealthResponse{Status: "degraded", Database: "down"})
			return
		}
		c.JSON(http.StatusOK, api.HealthResponse{Status: "ok", Database: "up"})
	}
}

type testEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// @Summary      Queue a test email
// @Tags         system
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body testEmailRequest true "Recipient"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /admin/test-email [post]
func TestEmail(emailService mailer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req testEmailRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			api.RespondBindError(c, err)
			return
		}

		if err := emailService.Send(c.Request.Context(), req.Email, "Test Email from 100Gaj", "Email is working!"); err != nil {
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, api.MessageResponse{Message: "Email queued successfully"})
	}
}

// @Summary      Audit trail
// @Description  Latest audit events for a subscription or rent payment.
// @Tags         system
// @Security     BearerAuth
// @Produce      json
// @Param        subject path  string true  "subscription or rent_payment"
// @Param        id      path  int    true  "Subject ID"
// @Param        limit   query int    false "Max events (default 50)"
// @Success      200 {array}  audit.Event
// @Failure      400 {object} api.ErrorResponse
// @Router       /admin/audit/{subject}/{id} [get]
func AuditTrail(recorder audit.Recorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := c.Param("subject")
		if subject != audit.SubjectSubscription && subject != audit.SubjectRentPayment {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "unknown audit subject"})
			return
		}

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid subject id"})
			return
		}

		limit, err := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid limit"})
			return
		}

		events, err := recorder.List(c.Request.Context(), subject, id, limit)
		if err != nil {
			logger.Error("Failed to list audit events", "subject", subject, "id", id, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Internal server error"})
			return
		}
		if events == nil {
			events = []audit.Event{}
		}

		c.JSON(http.StatusOK, events)
	}
}

// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      text/plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
