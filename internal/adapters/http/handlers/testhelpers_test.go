package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/dosecalc-service/internal/domain/dose"
	"github.com/jsamuelsen11/dosecalc-service/internal/domain/reagent"
	"github.com/jsamuelsen11/dosecalc-service/internal/ports"
)

func float64Ptr(v float64) *float64 { return &v }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validReagent() reagent.Reagent {
	return reagent.Reagent{
		Name:      "sodium chloride",
		Formula:   "NaCl",
		CASNumber: "7647-14-5",
		MolarMass: 58.44,
	}
}

func validConvertResult() ports.ConvertResult {
	return ports.ConvertResult{
		Family:   dose.FamilyVolRatioBarrel,
		VolumeML: 500,
		Amount:   float64Ptr(500),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
