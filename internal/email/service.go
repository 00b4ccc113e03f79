package email

import (
	"context"
	"encoding/json"
	"fmt"
	"net/smtp"
	"time"

	"github.com/redis/go-redis/v9"

	"hundredgaj/internal/logger"
	"hundredgaj/internal/metrics"
)

const (
	queueKey       = "emails"
	failedQueueKey = "emails:failed"
	maxTries       = 3

	TypeGeneric        = "generic"
	TypeRentReceipt    = "rent_receipt"
	TypeRentSchedule   = "rent_schedule"
	TypeQuotaExhausted = "quota_exhausted"
)

type EmailJob struct {
	Type    string    `json:"type"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
	Tries   int       `json:"tries"`
	Created time.Time `json:"created"`
}

type Service struct {
	redis      *redis.Client
	from       string
	fromName   string
	smtpHost   string
	smtpPort   string
	smtpUser   string
	smtpPass   string
	retryDelay time.Duration
	send       func(job EmailJob) error
}

func New(fromEmail, fromName, smtpHost, smtpPort, smtpUser, smtpPass, redisAddr string) *Service {
	s := &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		from:       fromEmail,
		fromName:   fromName,
		smtpHost:   smtpHost,
		smtpPort:   smtpPort,
		smtpUser:   smtpUser,
		smtpPass:   smtpPass,
		retryDelay: 5 * time.Second,
	}
	s.send = s.sendSMTP
	return s
}

func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	return s.enqueue(ctx, TypeGeneric, to, subject, body)
}

func (s *Service) enqueue(ctx context.Context, emailType, to, subject, body string) error {
	job := EmailJob{
		Type:    emailType,
		To:      to,
		Subject: subject,
		Body:    body,
		Created: time.Now(),
	}

	data, err := json.Marshal(job)
	if err != nil {
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to queue email to %s: %v", to, err)
		metrics.RecordEmail(emailType, "queue_failed")
		return err
	}

	metrics.RecordEmail(emailType, "queued")
	logger.Info("Email queued", "type", emailType, "to", to)
	return nil
}

// Start consumes the queue until ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	logger.Info("Email service started")
	for {
		select {
		case <-ctx.Done():
			logger.Info("Email service stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var job EmailJob
	if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
		logger.Errorf("Bad email data: %v", err)
		return
	}

	job.Tries++
	if err := s.send(job); err != nil {
		logger.Error("Failed to send email", "to", job.To, "attempt", job.Tries, "error", err)
		if job.Tries < maxTries {
			s.retry(ctx, job)
		} else {
			metrics.RecordEmail(job.Type, "failed")
			s.saveFailed(ctx, job, err)
		}
		return
	}

	metrics.RecordEmail(job.Type, "sent")
	logger.Info("Email sent", "type", job.Type, "to", job.To)
}

func (s *Service) retry(ctx context.Context, job EmailJob) {
	select {
	case <-ctx.Done():
	case <-time.After(s.retryDelay):
	}
	data, _ := json.Marshal(job)
	if err := s.redis.LPush(context.Background(), queueKey, string(data)).Err(); err != nil {
		logger.Errorf("Failed to requeue email to %s: %v", job.To, err)
	}
}

func (s *Service) sendSMTP(job EmailJob) error {
	message := fmt.Sprintf("From: %s <%s>\r\n", s.fromName, s.from)
	message += fmt.Sprintf("To: %s\r\n", job.To)
	message += fmt.Sprintf("Subject: %s\r\n", job.Subject)
	message += "\r\n" + job.Body

	var auth smtp.Auth
	if s.smtpUser != "" && s.smtpPass != "" {
		auth = smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
	}

	addr := s.smtpHost + ":" + s.smtpPort
	return smtp.SendMail(addr, auth, s.from, []string{job.To}, []byte(message))
}

func (s *Service) saveFailed(ctx context.Context, job EmailJob, err error) {
	failed := map[string]interface{}{
		"job":   job,
		"error": err.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.WithoutCancel(ctx), failedQueueKey, string(data))
	logger.Errorf("Email moved to failed queue: %s", job.To)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.SetEmailQueueLength(length)
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func (s *Service) SendRentReceipt(ctx context.Context, to string, paymentID int, amount string, paymentMethod string, paidAt time.Time) error {
	subject := fmt.Sprintf("Rent payment received - #%d", paymentID)
	body := fmt.Sprintf(`Hello,

We have received your rent payment.

Payment: #%d
Amount: %s
Method: %s
Paid on: %s

- 100Gaj Team`, paymentID, amount, paymentMethod, paidAt.Format("Jan 2, 2006"))

	return s.enqueue(ctx, TypeRentReceipt, to, subject, body)
}

func (s *Service) SendRentSchedule(ctx context.Context, to string, leaseID, installments int, firstDue time.Time) error {
	subject := fmt.Sprintf("Rent schedule created for lease #%d", leaseID)
	body := fmt.Sprintf(`Hello,

A rent schedule with %d installments has been created for lease #%d.
The first payment is due on %s.

- 100Gaj Team`, installments, leaseID, firstDue.Format("Jan 2, 2006"))

	return s.enqueue(ctx, TypeRentSchedule, to, subject, body)
}

func (s *Service) SendQuotaExhausted(ctx context.Context, to, resource string, total int, refreshDate *time.Time) error {
	subject := "You have used all your " + resource
	body := fmt.Sprintf(`Hello,

You have used all %d %s included in your plan.`, total, resource)
	if refreshDate != nil {
		body += fmt.Sprintf("\nYour quota refreshes on %s.", refreshDate.Format("Jan 2, 2006"))
	} else {
		body += "\nUpgrade your plan to get more."
	}
	body += "\n\n- 100Gaj Team"

	return s.enqueue(ctx, TypeQuotaExhausted, to, subject, body)
}
