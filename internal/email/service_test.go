package email

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(rdb *redis.Client, send func(EmailJob) error) *Service {
	return &Service{
		redis:    rdb,
		from:     "noreply@100gaj.com",
		fromName: "100Gaj Team",
		smtpHost: "smtp.test.com",
		smtpPort: "587",
		send:     send,
	}
}

func encodeJob(t *testing.T, job EmailJob) string {
	data, err := json.Marshal(job)
	require.NoError(t, err)
	return string(data)
}

func TestSend(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*`).SetVal(1)

	svc := newTestService(db, nil)

	err := svc.Send(context.Background(), "user@example.com", "Hello", "Test body")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendError(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*`).SetErr(assert.AnError)

	svc := newTestService(db, nil)

	err := svc.Send(context.Background(), "user@example.com", "Hello", "Test body")
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendRentReceipt(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*"type":"rent_receipt".*Rent payment received - #42.*`).SetVal(1)

	svc := newTestService(db, nil)

	err := svc.SendRentReceipt(context.Background(), "tenant@example.com", 42, "1050", "bank_transfer", time.Now())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendRentSchedule(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*"type":"rent_schedule".*`).SetVal(1)

	svc := newTestService(db, nil)

	err := svc.SendRentSchedule(context.Background(), "landlord@example.com", 5, 3, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSendQuotaExhausted(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.Regexp().ExpectLPush("emails", `.*"type":"quota_exhausted".*refreshes on.*`).SetVal(1)

	svc := newTestService(db, nil)

	refresh := time.Now().AddDate(0, 3, 0)
	err := svc.SendQuotaExhausted(context.Background(), "owner@example.com", "listings", 2, &refresh)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQueueLength(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectLLen("emails").SetVal(5)

	svc := newTestService(db, nil)

	assert.Equal(t, int64(5), svc.QueueLength(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_Sends(t *testing.T) {
	db, mock := redismock.NewClientMock()
	job := EmailJob{Type: TypeRentReceipt, To: "tenant@example.com", Subject: "s", Body: "b"}
	mock.ExpectBRPop(2*time.Second, "emails").SetVal([]string{"emails", encodeJob(t, job)})

	var sent []EmailJob
	svc := newTestService(db, func(j EmailJob) error {
		sent = append(sent, j)
		return nil
	})

	svc.processNext(context.Background())

	require.Len(t, sent, 1)
	assert.Equal(t, "tenant@example.com", sent[0].To)
	assert.Equal(t, 1, sent[0].Tries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_RequeuesOnFailure(t *testing.T) {
	db, mock := redismock.NewClientMock()
	job := EmailJob{Type: TypeGeneric, To: "user@example.com"}
	mock.ExpectBRPop(2*time.Second, "emails").SetVal([]string{"emails", encodeJob(t, job)})
	mock.Regexp().ExpectLPush("emails", `.*"tries":1.*`).SetVal(1)

	svc := newTestService(db, func(EmailJob) error { return errors.New("smtp down") })

	svc.processNext(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_MovesToFailedAfterMaxTries(t *testing.T) {
	db, mock := redismock.NewClientMock()
	job := EmailJob{Type: TypeGeneric, To: "user@example.com", Tries: maxTries - 1}
	mock.ExpectBRPop(2*time.Second, "emails").SetVal([]string{"emails", encodeJob(t, job)})
	mock.Regexp().ExpectLPush("emails:failed", `.*smtp down.*`).SetVal(1)

	svc := newTestService(db, func(EmailJob) error { return errors.New("smtp down") })

	svc.processNext(context.Background())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProcessNext_BadPayload(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectBRPop(2*time.Second, "emails").SetVal([]string{"emails", "not-json"})

	called := false
	svc := newTestService(db, func(EmailJob) error {
		called = true
		return nil
	})

	svc.processNext(context.Background())

	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStart_StopsOnCancel(t *testing.T) {
	db, _ := redismock.NewClientMock()
	svc := newTestService(db, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		svc.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
