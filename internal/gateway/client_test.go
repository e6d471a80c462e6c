package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", time.Second, newTestLogger(t))
}

func TestClient_ListAvailablePlots_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/plots", r.URL.Path)
		assert.Equal(t, "available", r.URL.Query().Get("status"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`[
			{"id":1,"title":"Lakeside","price":250000,"area":"10 acres","location":"North",
			 "description":"d","status":"available","images":["https://img/1.jpg"],"features":["Gas","Water"]}
		]`))
	})

	plots, err := c.ListAvailablePlots(context.Background(), 1, 100)

	require.NoError(t, err)
	require.Len(t, plots, 1)
	assert.Equal(t, int64(1), plots[0].ID)
	assert.Equal(t, 250000.0, plots[0].Price)
	assert.Equal(t, domain.PlotStatusAvailable, plots[0].Status)
	assert.Equal(t, []string{"Gas", "Water"}, plots[0].Features)
}

func TestClient_ListAvailablePlots_Non200IsEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	plots, err := c.ListAvailablePlots(context.Background(), 1, 10)

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Empty(t, plots)
}

func TestClient_ListAvailablePlots_MalformedBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	})

	plots, err := c.ListAvailablePlots(context.Background(), 1, 10)

	assert.ErrorIs(t, err, domain.ErrUnavailable)
	assert.Empty(t, plots)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(url, time.Second, newTestLogger(t))

	_, err := c.GetPlot(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, 20*time.Millisecond, newTestLogger(t))

	_, err := c.ListUserBookings(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_GetPlot(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/plots/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":7,"title":"Hill","price":180000,"status":"booked"}`))
	})

	plot, err := c.GetPlot(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, "Hill", plot.Title)
	assert.False(t, plot.IsAvailable())
}

func TestClient_GetPlot_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	plot, err := c.GetPlot(context.Background(), 7)

	assert.Nil(t, plot)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_ListUserBookings_SkipsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("user_id"))
		_, _ = w.Write([]byte(`[
			{"id":5,"plot_id":1,"plot_title":"Lakeside","plot_price":250000,"status":"pending",
			 "created_at":"2024-05-01T10:00:00Z","expires_at":"2024-05-02T10:00:00Z"},
			{"id":6,"plot_id":2,"status":"pending",
			 "created_at":"2024-05-01T10:00:00","expires_at":"2024-04-01T10:00:00"},
			{"id":7,"plot_id":3,"status":"confirmed","created_at":"2024-05-03 08:30:00","expires_at":null}
		]`))
	})

	bookings, err := c.ListUserBookings(context.Background(), 42)

	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, int64(5), bookings[0].ID)
	require.NotNil(t, bookings[0].ExpiresAt)
	assert.Equal(t, time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC), bookings[0].ExpiresAt.UTC())
	assert.Equal(t, int64(7), bookings[1].ID)
	assert.Nil(t, bookings[1].ExpiresAt)
	assert.Equal(t, 8, bookings[1].CreatedAt.Hour())
}

func TestClient_CreateBooking(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req createBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, createBookingRequest{
			PlotID:        1,
			CustomerName:  "Ivan",
			CustomerPhone: "+79990000000",
			CustomerEmail: "ivan@telegram",
			UserID:        42,
		}, req)

		_, _ = w.Write([]byte(`{"id":11,"plot_id":1,"plot_title":"Lakeside","plot_price":250000,
			"status":"pending","created_at":"2024-05-01T10:00:00Z","customer_phone":"+79990000000"}`))
	})

	contact := domain.Contact{UserID: 42, Name: "Ivan", Phone: "+79990000000", Email: "ivan@telegram"}
	b, err := c.CreateBooking(context.Background(), 1, contact)

	require.NoError(t, err)
	assert.Equal(t, int64(11), b.ID)
	assert.Equal(t, int64(1), b.PlotID)
	assert.Equal(t, domain.BookingStatusPending, b.Status)
	assert.Equal(t, "+79990000000", b.CustomerPhone)
}

func TestClient_CreateBooking_Failure(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	b, err := c.CreateBooking(context.Background(), 1, domain.Contact{})

	assert.Nil(t, b)
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestClient_CancelBooking(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr bool
	}{
		{name: "success", status: http.StatusOK, body: `{"success":true}`},
		{name: "api refused", status: http.StatusOK, body: `{"success":false}`, wantErr: true},
		{name: "missing flag", status: http.StatusOK, body: `{}`, wantErr: true},
		{name: "server error", status: http.StatusBadGateway, body: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/bookings/5/cancel", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			err := c.CancelBooking(context.Background(), 5)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnavailable)
				return
			}
			assert.NoError(t, err)
		})
	}
}
