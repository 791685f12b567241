package oneclick

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(""); err == nil {
		t.Error("empty base url accepted")
	}
	c, err := NewClient("https://1click.chaindefuser.com/")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if strings.HasSuffix(c.BaseURL.String(), "/") {
		t.Errorf("trailing slash kept: %s", c.BaseURL)
	}
}

func TestRequestQuote(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v0/quote" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewDecoder(r.Body).Decode(&gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"correlationId": "corr-1",
			"quote": {"depositAddress": "deposit.near", "amountOut": "42", "timeEstimate": 60},
			"quoteRequest": {"swapType": "EXACT_INPUT", "slippageTolerance": 100}
		}`))
	}))
	defer srv.Close()

	c, err := NewClient(srv.URL, WithJWT("token-123"))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	resp, err := c.RequestQuote(context.Background(), map[string]any{"dry": false, "amount": "1"})
	if err != nil {
		t.Fatalf("RequestQuote: %v", err)
	}

	if gotAuth != "Bearer token-123" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("content-type = %q", gotContentType)
	}
	if gotBody["dry"] != false || gotBody["amount"] != "1" {
		t.Errorf("request body = %v", gotBody)
	}
	if resp.CorrelationID != "corr-1" || resp.Quote.DepositAddress != "deposit.near" {
		t.Errorf("response = %+v", resp)
	}
	if resp.Quote.TimeEstimate != 60 || resp.QuoteRequest.SlippageTolerance != 100 {
		t.Errorf("nested fields = %+v", resp)
	}
}

func TestGetExecutionStatusQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/status" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("depositAddress"); got != "deposit.near" {
			t.Errorf("depositAddress = %q", got)
		}
		w.Write([]byte(`{"status":"PROCESSING","correlationId":"corr-1"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	st, err := c.GetExecutionStatus(context.Background(), "deposit.near")
	if err != nil {
		t.Fatalf("GetExecutionStatus: %v", err)
	}
	if st.Status != "PROCESSING" || st.CorrelationID != "corr-1" {
		t.Errorf("status = %+v", st)
	}
}

func TestSubmitDepositTxBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v0/deposit/submit" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["depositAddress"] != "deposit.near" || body["txHash"] != "0xabc" {
			t.Errorf("body = %v", body)
		}
		w.Write([]byte(`{"status":"PROCESSING"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	if _, err := c.SubmitDepositTx(context.Background(), "deposit.near", "0xabc"); err != nil {
		t.Fatalf("SubmitDepositTx: %v", err)
	}
}

func TestStatusErrorSurfacesOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	c, _ := NewClient(srv.URL)
	_, err := c.RequestQuote(context.Background(), map[string]any{})
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("error %v is not *StatusError", err)
	}
	if se.StatusCode != http.StatusUnauthorized || se.Detail != "invalid token" {
		t.Errorf("StatusError = %+v", se)
	}
	if !strings.Contains(se.Error(), "401") {
		t.Errorf("Error() = %q", se.Error())
	}
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{"string detail", `{"detail":"unsupported pair"}`, 400, "unsupported pair"},
		{"string message", `{"message":"bad jwt"}`, 401, "bad jwt"},
		{"string error", `{"error":"boom"}`, 500, "boom"},
		{"detail wins over message", `{"detail":"d","message":"m"}`, 400, "d"},
		{"object detail compacted", `{"detail": {"field": "amount"}}`, 400, `{"field":"amount"}`},
		{"non-json body", `upstream exploded`, 502, "upstream exploded"},
		{"empty body falls back to status text", ``, 404, "Not Found"},
		{"whitespace body falls back to status text", "  \n ", 503, "Service Unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorDetail([]byte(tt.body), tt.status); got != tt.want {
				t.Errorf("errorDetail(%q, %d) = %q, want %q", tt.body, tt.status, got, tt.want)
			}
		})
	}
}

func TestErrorDetailTruncates(t *testing.T) {
	long := strings.Repeat("x", 2000)
	got := errorDetail([]byte(long), 500)
	if len(got) != 512 {
		t.Errorf("detail length = %d, want 512", len(got))
	}
}
