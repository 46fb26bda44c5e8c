package fmp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/quote/domain"
)

func newTestClient(server *httptest.Server) *Client {
	cfg := Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Timeout: 10 * time.Second,
	}
	return New(cfg, server.Client())
}

func TestNew(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.com",
		Timeout: 10 * time.Second,
	}
	client := New(cfg, &http.Client{})

	if client == nil {
		t.Fatal("expected non-nil client")
	}
	if client.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, client.cfg.APIKey)
	}
}

func TestClient_StatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		statusCode  int
		expectedErr error // nilの場合はStatusErrorを期待
	}{
		{"rate limited", http.StatusTooManyRequests, domain.ErrRateLimited},
		{"unauthorized", http.StatusUnauthorized, domain.ErrNotAuthorized},
		{"forbidden", http.StatusForbidden, domain.ErrNotAuthorized},
		{"internal server error", http.StatusInternalServerError, nil},
		{"not found", http.StatusNotFound, nil},
		{"service unavailable", http.StatusServiceUnavailable, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(server)

			_, err := client.SearchProfile(context.Background(), "AAPL")
			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			var statusErr *domain.StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected StatusError, got %v", err)
			}
			if statusErr.Code != tt.statusCode {
				t.Errorf("expected status %d, got %d", tt.statusCode, statusErr.Code)
			}
		})
	}
}

func TestClient_ProviderErrorBodyRemap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		expectedErr error
	}{
		{
			name:        "api calls limit remaps to rate limited",
			body:        `{"Error Message": "Limit Reach. Please upgrade your plan or visit our documentation. API calls limit exceeded."}`,
			expectedErr: domain.ErrRateLimited,
		},
		{
			name:        "not authorized remaps to auth error",
			body:        `{"Error Message": "This endpoint is Not Authorized on your current subscription."}`,
			expectedErr: domain.ErrNotAuthorized,
		},
		{
			name:        "other provider message is a network failure",
			body:        `{"Error Message": "Invalid query parameter."}`,
			expectedErr: domain.ErrNetwork,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(server)

			_, err := client.SearchProfile(context.Background(), "AAPL")
			if !errors.Is(err, tt.expectedErr) {
				t.Fatalf("expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestClient_TimeoutIsNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL, Timeout: 50 * time.Millisecond}
	httpClient := server.Client()
	httpClient.Timeout = cfg.Timeout
	client := New(cfg, httpClient)

	_, err := client.SearchProfile(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_InvalidJSONIsNetworkFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.SearchProfile(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_SearchProfile(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/search" {
			t.Errorf("expected path /search, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("query") != "AAPL" {
			t.Errorf("expected query AAPL, got %s", r.URL.Query().Get("query"))
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %s", r.URL.Query().Get("apikey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{"symbol": "AAPL.MX", "name": "Apple Inc. (Mexico)", "currency": "MXN", "stockExchange": "BMV", "exchangeShortName": "BMV"},
			{"symbol": "AAPL", "name": "Apple Inc.", "currency": "USD", "stockExchange": "NASDAQ Global Select", "exchangeShortName": "NASDAQ"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server)

	profile, err := client.SearchProfile(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if profile.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", profile.Symbol)
	}
	if profile.Name != "Apple Inc." {
		t.Errorf("expected name Apple Inc., got %s", profile.Name)
	}
	if profile.Exchange != "NASDAQ" {
		t.Errorf("expected exchange NASDAQ, got %s", profile.Exchange)
	}
	if profile.Currency != "USD" {
		t.Errorf("expected currency USD, got %s", profile.Currency)
	}
}

func TestClient_SearchProfile_NoExactMatch(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{"symbol": "AAPL.MX", "name": "Apple Inc. (Mexico)", "currency": "MXN", "stockExchange": "BMV", "exchangeShortName": "BMV"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.SearchProfile(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrInvalidTicker) {
		t.Fatalf("expected ErrInvalidTicker, got %v", err)
	}
}

func TestClient_QuarterlyIncome(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/income-statement/AAPL" {
			t.Errorf("expected path /income-statement/AAPL, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("period") != "quarter" {
			t.Errorf("expected period quarter, got %s", r.URL.Query().Get("period"))
		}
		if r.URL.Query().Get("limit") != "20" {
			t.Errorf("expected limit 20, got %s", r.URL.Query().Get("limit"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[
			{
				"date": "2024-12-28",
				"symbol": "AAPL",
				"period": "Q1",
				"calendarYear": "2025",
				"revenue": 124300000000,
				"netIncome": 36330000000,
				"costOfRevenue": 66025000000,
				"operatingExpenses": 15443000000,
				"eps": 2.41
			},
			{
				"date": "2024-09-28",
				"symbol": "AAPL",
				"period": "Q4",
				"calendarYear": "2024",
				"revenue": 94930000000,
				"netIncome": 14736000000,
				"costOfRevenue": 51051000000,
				"operatingExpenses": 14288000000,
				"eps": 0.97
			}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server)

	records, err := client.QuarterlyIncome(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	// プロバイダの並び順（新しい順）が保持される
	if records[0].Period != "Q1" || records[0].CalendarYear != "2025" {
		t.Errorf("expected newest record first, got %s %s", records[0].Period, records[0].CalendarYear)
	}
	if records[0].Revenue != 124300000000 {
		t.Errorf("expected revenue 124300000000, got %f", records[0].Revenue)
	}
	if records[0].EPS != 2.41 {
		t.Errorf("expected eps 2.41, got %f", records[0].EPS)
	}
	wantDate := time.Date(2024, 12, 28, 0, 0, 0, 0, time.UTC)
	if !records[0].Date.Equal(wantDate) {
		t.Errorf("expected date %v, got %v", wantDate, records[0].Date)
	}
}

func TestClient_QuarterlyIncome_InvalidDate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`[{"date": "not-a-date", "period": "Q1", "calendarYear": "2025"}]`))
	}))
	defer server.Close()

	client := newTestClient(server)

	_, err := client.QuarterlyIncome(context.Background(), "AAPL")
	if !errors.Is(err, domain.ErrNetwork) {
		t.Fatalf("expected ErrNetwork, got %v", err)
	}
}

func TestClient_DailyPrices(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Verify request parameters
		if r.URL.Path != "/historical-price-full/AAPL" {
			t.Errorf("expected path /historical-price-full/AAPL, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("timeseries") != "365" {
			t.Errorf("expected timeseries 365, got %s", r.URL.Query().Get("timeseries"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"symbol": "AAPL",
			"historical": [
				{"date": "2025-01-03", "close": 243.36},
				{"date": "2025-01-02", "close": 243.85}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server)

	points, err := client.DailyPrices(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	// プロバイダの並び順（新しい順）が保持される
	if points[0].Close != 243.36 {
		t.Errorf("expected close 243.36, got %f", points[0].Close)
	}
	wantDate := time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC)
	if !points[0].Date.Equal(wantDate) {
		t.Errorf("expected date %v, got %v", wantDate, points[0].Date)
	}
}
