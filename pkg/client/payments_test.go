package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentGeneratesIdempotencyKey(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("Idempotency-Key")
		respond(w, http.StatusCreated, "Payment submitted", Payment{
			ID:             "p1",
			IdempotencyKey: gotKey,
			Status:         "pending",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	payment, err := c.Payments.Create(context.Background(), CreatePaymentParams{
		BookingID: "b1",
		Amount:    345,
		Method:    "card",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(gotKey, "payment_"), "key %q", gotKey)
	assert.Equal(t, gotKey, payment.IdempotencyKey)
}

// Retry must send the original key, not mint a new one.
func TestRetryReusesIdempotencyKey(t *testing.T) {
	var keys []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("Idempotency-Key")
		keys = append(keys, key)
		respond(w, http.StatusCreated, "Payment submitted", Payment{
			ID:             "p1",
			BookingID:      "b1",
			Amount:         345,
			Method:         "card",
			IdempotencyKey: key,
			Status:         "pending",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	ctx := context.Background()

	first, err := c.Payments.Create(ctx, CreatePaymentParams{BookingID: "b1", Amount: 345, Method: "card"})
	require.NoError(t, err)

	first.Status = "failed"
	retried, err := c.Payments.Retry(ctx, first)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, first.ID, retried.ID)
}

// The poll loop keeps going while pending and stops on the first terminal
// status.
func TestPollStatusStopsOnTerminal(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		status := PaymentStatus{ID: "p1", Status: "pending"}
		if n >= 3 {
			status = PaymentStatus{ID: "p1", Status: "completed", Terminal: true}
		}
		respond(w, http.StatusOK, "ok", status)
	}))
	defer server.Close()

	c := New(server.URL, WithPollInterval(5*time.Millisecond))

	status, err := c.Payments.PollStatus(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "completed", status.Status)
	assert.True(t, status.Terminal)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestPollStatusHonorsContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, "ok", PaymentStatus{ID: "p1", Status: "pending"})
	}))
	defer server.Close()

	c := New(server.URL, WithPollInterval(10*time.Millisecond))

	ctx, cancel := context.WithTimeout(context.Background(), 35*time.Millisecond)
	defer cancel()

	_, err := c.Payments.PollStatus(ctx, "p1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPollStatusSurfacesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusNotFound, "payment p1 not found", nil)
	}))
	defer server.Close()

	c := New(server.URL, WithPollInterval(5*time.Millisecond))

	_, err := c.Payments.PollStatus(context.Background(), "p1")
	assert.True(t, IsNotFound(err))
}

func TestCreatePaymentBodyOmitsKeyField(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		respond(w, http.StatusCreated, "ok", Payment{ID: "p1"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Payments.Create(context.Background(), CreatePaymentParams{
		BookingID:      "b1",
		Amount:         345,
		Method:         "card",
		IdempotencyKey: "payment_keep_out_of_body",
	})
	require.NoError(t, err)

	// The key travels only in the header
	assert.NotContains(t, body, "IdempotencyKey")
	assert.NotContains(t, body, "idempotency_key")
	assert.Equal(t, "b1", body["booking_id"])
}
