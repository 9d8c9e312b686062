package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rickgao/options-data/internal/analyzer"
)

// stubRunner returns a fixed result or error.
type stubRunner struct {
	res *analyzer.Result
	err error
}

func (s *stubRunner) Run(ctx context.Context) (*analyzer.Result, error) {
	return s.res, s.err
}

func doRequest(t *testing.T, runner Runner, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(runner, nil)
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_TopOptions_Success(t *testing.T) {
	runner := &stubRunner{
		res: &analyzer.Result{
			Success:          true,
			TopOptions:       []analyzer.RankedOption{{ContractTicker: "A", ProfitScore: 1.5}},
			QueryExecutionID: "exec-1",
			DataSource:       analyzer.DataSource,
		},
	}

	rec := doRequest(t, runner, http.MethodGet, "/api/v1/options/top")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("CORS origin = %q, want *", got)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("missing X-Request-Id header")
	}

	var body analyzer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body.Success || len(body.TopOptions) != 1 {
		t.Errorf("body = %+v, want success with one option", body)
	}
}

func TestServer_TopOptions_NoDataIs404(t *testing.T) {
	runner := &stubRunner{
		res: &analyzer.Result{Kind: analyzer.FailureNoData, Error: "no options data found"},
	}

	rec := doRequest(t, runner, http.MethodGet, "/api/v1/options/top")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestServer_TopOptions_QueryFailureIs500(t *testing.T) {
	for _, kind := range []analyzer.FailureKind{analyzer.FailureQuery, analyzer.FailureTimeout} {
		runner := &stubRunner{res: &analyzer.Result{Kind: kind, Error: "boom"}}

		rec := doRequest(t, runner, http.MethodGet, "/api/v1/options/top")
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("kind %s: status = %d, want 500", kind, rec.Code)
		}
	}
}

func TestServer_TopOptions_RunErrorIs500(t *testing.T) {
	runner := &stubRunner{err: errors.New("submit query: access denied")}

	rec := doRequest(t, runner, http.MethodGet, "/api/v1/options/top")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}

	var body analyzer.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if body.Error == "" {
		t.Error("error body should carry the failure message")
	}
}

func TestServer_Health(t *testing.T) {
	rec := doRequest(t, &stubRunner{res: &analyzer.Result{}}, http.MethodGet, "/health")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
