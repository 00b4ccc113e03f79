package rent

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hundredgaj/internal/api"
	"hundredgaj/internal/auth"
	"hundredgaj/internal/logger"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	leases := protected.Group("/leases")
	{
		leases.POST("/:leaseID/schedule", h.CreateSchedule)
		leases.GET("/:leaseID/payments", h.ListByLease)
	}

	rent := protected.Group("/rent")
	{
		rent.GET("/tenant", h.ListMineAsTenant)
		rent.GET("/landlord", h.ListMineAsLandlord)
		rent.GET("/overdue", adminOnly, h.ListOverdue)
		rent.GET("/revenue", h.MonthlyRevenue)
		rent.GET("/:id", h.Get)
		rent.POST("/:id/pay", h.MarkAsPaid)
		rent.POST("/:id/late-fee", h.AddLateFee)
		rent.POST("/:id/late-fee/apply", h.ApplyLateFee)
	}
}

func isAdmin(c *gin.Context) bool {
	role, _ := auth.GetUserRole(c)
	return role == auth.RoleAdmin
}

func involves(p RentPayment, userID int) bool {
	return p.TenantID == userID || p.LandlordID == userID
}

// CreateSchedule godoc
// @Summary      Generate rent schedule
// @Description  Creates one pending installment per month of the lease.
// @Tags         rent
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        leaseID  path      int              true  "Lease ID"
// @Param        request  body      ScheduleRequest  true  "Lease terms"
// @Success      201      {array}   RentPayment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /leases/{leaseID}/schedule [post]
func (h *Handler) CreateSchedule(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	leaseID, err := strconv.Atoi(c.Param("leaseID"))
	if err != nil || leaseID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lease ID"})
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	if req.LandlordID != userID && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the landlord can create a rent schedule"})
		return
	}

	payments, err := h.service.CreateSchedule(c.Request.Context(), leaseID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payments)
}

// ListByLease godoc
// @Summary      Lease installments
// @Tags         rent
// @Security     BearerAuth
// @Produce      json
// @Param        leaseID  path      int  true  "Lease ID"
// @Success      200      {array}   RentPayment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      403      {object}  api.ErrorResponse
// @Router       /leases/{leaseID}/payments [get]
func (h *Handler) ListByLease(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	leaseID, err := strconv.Atoi(c.Param("leaseID"))
	if err != nil || leaseID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lease ID"})
		return
	}

	payments, err := h.service.ListByLease(c.Request.Context(), leaseID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !isAdmin(c) {
		for _, p := range payments {
			if !involves(p, userID) {
				c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, payments)
}

// ListMineAsTenant godoc
// @Summary      My rent as tenant
// @Tags         rent
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  RentPayment
// @Router       /rent/tenant [get]
func (h *Handler) ListMineAsTenant(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	payments, err := h.service.ListByTenant(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListMineAsLandlord godoc
// @Summary      My rent as landlord
// @Tags         rent
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  RentPayment
// @Router       /rent/landlord [get]
func (h *Handler) ListMineAsLandlord(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	payments, err := h.service.ListByLandlord(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListOverdue godoc
// @Summary      Overdue installments
// @Tags         rent
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}  RentPayment
// @Failure      403  {object}  api.ErrorResponse
// @Router       /rent/overdue [get]
func (h *Handler) ListOverdue(c *gin.Context) {
	payments, err := h.service.FindOverdue(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Get godoc
// @Summary      Get installment
// @Tags         rent
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Rent payment ID"
// @Success      200  {object}  RentPayment
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /rent/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rent payment ID"})
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !involves(*p, userID) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, p)
}

// MarkAsPaid godoc
// @Summary      Pay installment
// @Description  Marks the installment paid and queues a receipt email.
// @Tags         rent
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int              true  "Rent payment ID"
// @Param        request  body      MarkPaidRequest  true  "Payment details"
// @Success      200      {object}  RentPayment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /rent/{id}/pay [post]
func (h *Handler) MarkAsPaid(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	email, _ := auth.GetUserEmail(c)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rent payment ID"})
		return
	}

	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.MarkAsPaid(c.Request.Context(), id, req, userID, email)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// AddLateFee godoc
// @Summary      Add late fee
// @Tags         rent
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int             true  "Rent payment ID"
// @Param        request  body      LateFeeRequest  true  "Fee"
// @Success      200      {object}  RentPayment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /rent/{id}/late-fee [post]
func (h *Handler) AddLateFee(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rent payment ID"})
		return
	}

	var req LateFeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	p, err := h.service.AddLateFee(c.Request.Context(), id, req.Fee, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ApplyLateFee godoc
// @Summary      Apply computed late fee
// @Description  Charges the late fee owed for the days overdue so far.
// @Tags         rent
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true   "Rent payment ID"
// @Param        request  body      ApplyLateFeeRequest  false  "Fee percentage"
// @Success      200      {object}  RentPayment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /rent/{id}/late-fee/apply [post]
func (h *Handler) ApplyLateFee(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid rent payment ID"})
		return
	}

	var req ApplyLateFeeRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			api.RespondBindError(c, err)
			return
		}
	}

	p, err := h.service.ApplyLateFee(c.Request.Context(), id, req.FeePercentage, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// MonthlyRevenue godoc
// @Summary      Monthly rent revenue
// @Description  Sums paid installments, late fees included, for the calling landlord.
// @Tags         rent
// @Security     BearerAuth
// @Produce      json
// @Param        year   query     int  false  "Year"
// @Param        month  query     int  false  "Month 1-12"
// @Success      200    {object}  RevenueResponse
// @Failure      400    {object}  api.ErrorResponse
// @Router       /rent/revenue [get]
func (h *Handler) MonthlyRevenue(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	now := time.Now()
	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}

	total, err := h.service.MonthlyRevenue(c.Request.Context(), userID, year, time.Month(month))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RevenueResponse{
		LandlordID: userID,
		Year:       year,
		Month:      month,
		Total:      total,
	})
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "details": validationErr.Fields})
	case errors.Is(err, ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Rent payment not found"})
	case errors.Is(err, ErrNegativeLateFee):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{"error": "Rent payment is already paid"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	default:
		logger.Error("Rent request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
