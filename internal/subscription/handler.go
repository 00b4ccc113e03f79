package subscription

import (
	"errors"
	"net/http"

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

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	subs := protected.Group("/subscriptions")
	{
		subs.POST("", h.Create)
		subs.GET("/me", h.GetMine)
		subs.PUT("/me/plan", h.ChangePlan)
		subs.POST("/me/listings/consume", h.ConsumeListing)
		subs.POST("/me/contacts/consume", h.ConsumeContact)
		subs.GET("/me/payments", h.ListPayments)
		subs.POST("/me/payments", h.RecordPayment)
		subs.GET("/me/access", h.CheckAccess)
	}
}

// ListPlans godoc
// @Summary      Plan catalog
// @Description  Returns quotas and features for every user type and plan.
// @Tags         subscriptions
// @Produce      json
// @Success      200  {array}  PlanOffer
// @Router       /plans [get]
func ListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, Catalog())
}

// Create godoc
// @Summary      Create subscription
// @Description  Creates a free subscription for the current user.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      CreateSubscriptionRequest  true  "User type"
// @Success      201      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Router       /subscriptions [post]
func (h *Handler) Create(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	sub, err := h.service.Create(c.Request.Context(), userID, req.UserType)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// GetMine godoc
// @Summary      Current subscription
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  Subscription
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/me [get]
func (h *Handler) GetMine(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	sub, err := h.service.Get(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ChangePlan godoc
// @Summary      Change plan
// @Description  Switches plan and recomputes quotas and features.
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      ChangePlanRequest  true  "Plan and price"
// @Success      200      {object}  Subscription
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /subscriptions/me/plan [put]
func (h *Handler) ChangePlan(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	sub, err := h.service.ChangePlan(c.Request.Context(), userID, req.PlanType, req.Price)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// ConsumeListing godoc
// @Summary      Use a listing slot
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  UsageCounter
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/me/listings/consume [post]
func (h *Handler) ConsumeListing(c *gin.Context) {
	h.consume(c, UsageListings)
}

// ConsumeContact godoc
// @Summary      Use a contact reveal
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  UsageCounter
// @Failure      403  {object}  api.ErrorResponse
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/me/contacts/consume [post]
func (h *Handler) ConsumeContact(c *gin.Context) {
	h.consume(c, UsageContacts)
}

func (h *Handler) consume(c *gin.Context, kind UsageKind) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	email, _ := auth.GetUserEmail(c)

	var (
		sub *Subscription
		err error
	)
	if kind == UsageContacts {
		sub, err = h.service.ConsumeContact(c.Request.Context(), userID, email)
	} else {
		sub, err = h.service.ConsumeListing(c.Request.Context(), userID, email)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub.Counter(kind))
}

// CheckAccess godoc
// @Summary      Check plan level
// @Description  Reports whether the current plan is at least min_plan.
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Param        min_plan  query     string  true  "Minimum plan"
// @Success      200       {object}  AccessResponse
// @Failure      400       {object}  api.ErrorResponse
// @Router       /subscriptions/me/access [get]
func (h *Handler) CheckAccess(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	minPlan := PlanType(c.Query("min_plan"))
	allowed, err := h.service.MeetsPlan(c.Request.Context(), userID, minPlan)
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := AccessResponse{MinPlan: minPlan, Allowed: allowed}
	if sub, err := h.service.Get(c.Request.Context(), userID); err == nil {
		resp.PlanType = sub.PlanType
	}
	c.JSON(http.StatusOK, resp)
}

// RecordPayment godoc
// @Summary      Record subscription payment
// @Tags         subscriptions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request  body      RecordPaymentRequest  true  "Payment"
// @Success      201      {object}  Payment
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Router       /subscriptions/me/payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.RespondBindError(c, err)
		return
	}

	payment, err := h.service.RecordPayment(c.Request.Context(), userID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// ListPayments godoc
// @Summary      Payment history
// @Tags         subscriptions
// @Security     BearerAuth
// @Produce      json
// @Success      200  {array}   Payment
// @Failure      404  {object}  api.ErrorResponse
// @Router       /subscriptions/me/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	payments, err := h.service.PaymentHistory(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrSubscriptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Subscription not found"})
	case errors.Is(err, ErrSubscriptionExists):
		c.JSON(http.StatusConflict, gin.H{"error": "Subscription already exists"})
	case errors.Is(err, ErrQuotaExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": "Quota exceeded"})
	case errors.Is(err, ErrSubscriptionInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Subscription is not active"})
	case errors.Is(err, ErrNotBuyer):
		c.JSON(http.StatusForbidden, gin.H{"error": "Contacts are only available to buyers"})
	case errors.Is(err, ErrInvalidUserType),
		errors.Is(err, ErrInvalidPlanType),
		errors.Is(err, ErrInvalidPrice):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Subscription request failed", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
