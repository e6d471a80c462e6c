// Package gateway talks to the remote booking API.
//
// Every call is a single attempt bounded by the client timeout. Any failure,
// whether transport, status code or body, is reported as domain.ErrUnavailable;
// callers decide how to degrade.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/stpnv0/LandBooker/internal/domain"
	"github.com/stpnv0/LandBooker/pkg/metrics"
	"github.com/wb-go/wbf/logger"
)

const (
	endpointPlots         = "/plots"
	endpointPlotDetail    = "/plots/{id}"
	endpointBookings      = "/bookings"
	endpointCancelBooking = "/bookings/{id}/cancel"
)

// maxBodySize bounds how much of a response body is read.
const maxBodySize = 4 << 20

type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func New(baseURL string, timeout time.Duration, logger logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *Client) ListAvailablePlots(ctx context.Context, page, limit int) ([]domain.Plot, error) {
	query := url.Values{}
	query.Set("status", string(domain.PlotStatusAvailable))
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	var plots []domain.Plot
	if err := c.do(ctx, http.MethodGet, endpointPlots, endpointPlots, query, nil, &plots); err != nil {
		return nil, err
	}

	return plots, nil
}

func (c *Client) GetPlot(ctx context.Context, id int64) (*domain.Plot, error) {
	path := "/plots/" + strconv.FormatInt(id, 10)

	var plot domain.Plot
	if err := c.do(ctx, http.MethodGet, endpointPlotDetail, path, nil, nil, &plot); err != nil {
		return nil, err
	}

	return &plot, nil
}

func (c *Client) ListUserBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	query := url.Values{}
	query.Set("user_id", strconv.FormatInt(userID, 10))

	var resp []bookingResponse
	if err := c.do(ctx, http.MethodGet, endpointBookings, endpointBookings, query, nil, &resp); err != nil {
		return nil, err
	}

	bookings := make([]domain.Booking, 0, len(resp))
	for _, r := range resp {
		b, err := r.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed booking",
				logger.Int64("booking_id", r.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		bookings = append(bookings, b)
	}

	return bookings, nil
}

func (c *Client) CreateBooking(ctx context.Context, plotID int64, contact domain.Contact) (*domain.Booking, error) {
	req := createBookingRequest{
		PlotID:        plotID,
		CustomerName:  contact.Name,
		CustomerPhone: contact.Phone,
		CustomerEmail: contact.Email,
		UserID:        contact.UserID,
	}

	var resp bookingResponse
	if err := c.do(ctx, http.MethodPost, endpointBookings, endpointBookings, nil, req, &resp); err != nil {
		return nil, err
	}

	b, err := resp.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: decode booking: %v", domain.ErrUnavailable, err)
	}

	return &b, nil
}

func (c *Client) CancelBooking(ctx context.Context, id int64) error {
	path := "/bookings/" + strconv.FormatInt(id, 10) + "/cancel"

	var resp cancelBookingResponse
	if err := c.do(ctx, http.MethodPost, endpointCancelBooking, path, nil, nil, &resp); err != nil {
		return err
	}

	if !resp.Success {
		return fmt.Errorf("%w: cancel booking %d: api reported failure", domain.ErrUnavailable, id)
	}

	return nil
}

// do performs one request. endpoint is the route template used for logs and
// metric labels, path is the concrete path.
func (c *Client) do(
	ctx context.Context,
	method, endpoint, path string,
	query url.Values,
	body any,
	out any,
) error {
	start := time.Now()
	outcome := "success"
	defer func() {
		metrics.GatewayRequestsTotal.WithLabelValues(method, endpoint, outcome).Inc()
		metrics.GatewayRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}()

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		outcome = "error"
		c.logger.Error("api request build failed",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "error"
		c.logger.Error("api request failed",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %s %s: %v", domain.ErrUnavailable, method, endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		outcome = strconv.Itoa(resp.StatusCode)
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
		c.logger.Error("api request returned error status",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("%w: %s %s: status %d", domain.ErrUnavailable, method, endpoint, resp.StatusCode)
	}

	if err = json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(out); err != nil {
		outcome = "bad_body"
		c.logger.Error("api response decode failed",
			logger.String("method", method),
			logger.String("endpoint", endpoint),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %s %s: decode: %v", domain.ErrUnavailable, method, endpoint, err)
	}

	c.logger.Info("api request succeeded",
		logger.String("method", method),
		logger.String("endpoint", endpoint),
		logger.Duration("latency", time.Since(start)),
	)

	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
