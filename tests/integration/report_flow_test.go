package integration

import (
	"bytes"
	"fmt"
	"net/http"
	"regexp"
	"testing"
)

var pageObject = regexp.MustCompile(`/Type\s*/Page[^s]`)

func TestReportFlow_Export(t *testing.T) {
	app := setupApp(t, true)
	app.seedMarch(t)

	// Step 1: preview
	rec := app.request("GET", "/api/v1/reports?month=3&year=2024&owner=Me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	preview := parseJSON(t, rec)
	if preview["title"] != "Financial Report Me - 03/2024" {
		t.Errorf("unexpected title %v", preview["title"])
	}
	formatted := preview["formatted"].(map[string]interface{})
	if formatted["balance"] != "Rp 3.800.000" {
		t.Errorf("unexpected balance %v", formatted["balance"])
	}
	summary := preview["summary"].(map[string]interface{})
	txs := summary["transactions"].([]interface{})
	if txs[0].(map[string]interface{})["kind"] != "income" {
		t.Error("report should list the oldest (Mar 5 income) first")
	}

	// Step 2: export
	rec = app.request("GET", "/api/v1/reports/export?month=3&year=2024&owner=Me", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	if rec.Header().Get("Content-Disposition") != `attachment; filename="report_Me_2024-03.pdf"` {
		t.Errorf("unexpected disposition %q", rec.Header().Get("Content-Disposition"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("expected a PDF body")
	}

	// Step 3: every owner
	rec = app.request("GET", "/api/v1/reports/export?month=3&year=2024", "")
	if rec.Header().Get("Content-Disposition") != `attachment; filename="report_2024-03.pdf"` {
		t.Errorf("unexpected disposition %q", rec.Header().Get("Content-Disposition"))
	}
}

func TestReportFlow_ExportRequiresPeriod(t *testing.T) {
	app := setupApp(t, true)

	rec := app.request("GET", "/api/v1/reports/export?month=3", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	errObj := parseJSON(t, rec)["error"].(map[string]interface{})
	if errObj["code"] != "INVALID_PERIOD" {
		t.Errorf("expected INVALID_PERIOD, got %v", errObj["code"])
	}
}

func TestReportFlow_LongMonthPaginates(t *testing.T) {
	app := setupApp(t, true)
	for day := 1; day <= 28; day++ {
		for i := 0; i < 3; i++ {
			app.createTransaction(t, fmt.Sprintf(`{"date":"2024-02-%02d","amount":%d,"kind":"expense","category":"Bills","owner":"Mother"}`, day, 1000*(i+1)))
		}
	}

	rec := app.request("GET", "/api/v1/reports/export?month=2&year=2024", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	// one /Type /Page object per page; the /Pages tree node does not match
	pages := len(pageObject.FindAll(rec.Body.Bytes(), -1))
	if pages < 2 {
		t.Errorf("expected multiple pages for 84 rows, got %d", pages)
	}
}
