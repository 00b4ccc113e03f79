package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hundredgaj_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "hundredgaj_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SubscriptionsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hundredgaj_subscriptions_created_total",
			Help: "Total number of subscriptions created",
		},
		[]string{"user_type"},
	)

	PlanChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hundredgaj_plan_changes_total",
			Help: "Total number of plan changes by target plan",
		},
		[]string{"user_type", "plan_type"},
	)

	QuotaConsumptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hundredgaj_quota_consumptions_total",
			Help: "Quota consumption attempts by resource and outcome",
		},
		[]string{"resource", "outcome"},
	)

	QuotaRefreshesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hundredgaj_quota_refreshes_total",
			Help: "Total number of subscriptions whose quotas were refreshed",
		},
	)

	RentPaymentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hundredgaj_rent_payments_total",
			Help: "Rent payments marked paid by payment method",
		},
		[]string{"payment_method"},
	)

	RentSchedulesGeneratedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hundredgaj_rent_schedules_generated_total",
			Help: "Total number of rent payment schedules generated",
		},
	)

	LateFeesAppliedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "hundredgaj_late_fees_applied_total",
			Help: "Total number of late fees added to rent payments",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hundredgaj_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "hundredgaj_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSubscription(userType string) {
	SubscriptionsCreatedTotal.WithLabelValues(userType).Inc()
}

func RecordPlanChange(userType, planType string) {
	PlanChangesTotal.WithLabelValues(userType, planType).Inc()
}

// RecordQuotaConsumption tracks a consume attempt; outcome is "granted" or "rejected".
func RecordQuotaConsumption(resource, outcome string) {
	QuotaConsumptionsTotal.WithLabelValues(resource, outcome).Inc()
}

func RecordQuotaRefreshes(n int) {
	QuotaRefreshesTotal.Add(float64(n))
}

func RecordRentPayment(paymentMethod string) {
	RentPaymentsTotal.WithLabelValues(paymentMethod).Inc()
}

func RecordRentSchedule() {
	RentSchedulesGeneratedTotal.Inc()
}

func RecordLateFee() {
	LateFeesAppliedTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func SetEmailQueueLength(n int64) {
	EmailQueueLength.Set(float64(n))
}
