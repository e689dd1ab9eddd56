package integration

import (
	"net/http"
	"testing"
)

func totalsOf(t *testing.T, result map[string]interface{}) (income, expense, balance float64) {
	t.Helper()
	totals := result["totals"].(map[string]interface{})
	return totals["income"].(float64), totals["expense"].(float64), totals["balance"].(float64)
}

func TestLedgerFlow_MonthSummary(t *testing.T) {
	app := setupApp(t, true)
	app.seedMarch(t)

	// Step 1: explicit period, every owner
	rec := app.request("GET", "/api/v1/summary?month=3&year=2024&owner=All", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	income, expense, balance := totalsOf(t, result)
	if income != 5000000 || expense != 1200000 || balance != 3800000 {
		t.Errorf("unexpected totals %v/%v/%v", income, expense, balance)
	}
	txs := result["transactions"].([]interface{})
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].(map[string]interface{})["kind"] != "expense" {
		t.Error("dashboard should list the newest (Mar 10 expense) first")
	}
	breakdown := result["breakdown"].(map[string]interface{})
	if len(breakdown) != 1 || breakdown["Food & Drink"].(float64) != 1200000 {
		t.Errorf("unexpected breakdown %v", breakdown)
	}

	// Step 2: period defaults to the clock's month
	rec = app.request("GET", "/api/v1/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, _, balance := totalsOf(t, parseJSON(t, rec)); balance != 3800000 {
		t.Errorf("expected defaulted period to be March 2024, balance %v", balance)
	}

	// Step 3: owner with no transactions
	rec = app.request("GET", "/api/v1/summary?month=3&year=2024&owner=Father", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result = parseJSON(t, rec)
	if len(result["transactions"].([]interface{})) != 0 {
		t.Error("expected no transactions for Father")
	}
	if income, expense, balance := totalsOf(t, result); income != 0 || expense != 0 || balance != 0 {
		t.Errorf("expected zero totals, got %v/%v/%v", income, expense, balance)
	}

	// Step 4: another month is empty
	rec = app.request("GET", "/api/v1/summary?month=4&year=2024", "")
	result = parseJSON(t, rec)
	if len(result["transactions"].([]interface{})) != 0 {
		t.Error("expected April to be empty")
	}

	// Step 5: invalid period
	rec = app.request("GET", "/api/v1/summary?month=13", "")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestLedgerFlow_EditAndDelete(t *testing.T) {
	app := setupApp(t, true)
	_, expenseID := app.seedMarch(t)

	// Step 1: raise the food expense
	rec := app.request("PUT", "/api/v1/transactions/"+expenseID, `{"amount":1500000}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/transactions/"+expenseID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["amount"].(float64) != 1500000 || tx["category"] != "Food & Drink" || tx["owner"] != "Me" {
		t.Errorf("unexpected transaction after edit %v", tx)
	}

	rec = app.request("GET", "/api/v1/summary?month=3&year=2024", "")
	if _, _, balance := totalsOf(t, parseJSON(t, rec)); balance != 3500000 {
		t.Errorf("expected balance 3500000 after edit, got %v", balance)
	}

	// Step 2: move it to April
	rec = app.request("PUT", "/api/v1/transactions/"+expenseID, `{"date":"2024-04-02"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/summary?month=4&year=2024", "")
	if _, expense, _ := totalsOf(t, parseJSON(t, rec)); expense != 1500000 {
		t.Errorf("expected April expense 1500000, got %v", expense)
	}

	// Step 3: delete it
	rec = app.request("DELETE", "/api/v1/transactions/"+expenseID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/transactions/"+expenseID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
	rec = app.request("DELETE", "/api/v1/transactions/"+expenseID, "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", rec.Code)
	}

	// Step 4: listing reflects the delete
	rec = app.request("GET", "/api/v1/transactions", "")
	if parseJSON(t, rec)["total_items"].(float64) != 1 {
		t.Errorf("expected 1 remaining transaction")
	}
}

func TestLedgerFlow_Validation(t *testing.T) {
	app := setupApp(t, true)

	cases := map[string]string{
		"negative amount": `{"date":"2024-03-05","amount":-1,"kind":"income"}`,
		"unknown kind":    `{"date":"2024-03-05","amount":1,"kind":"refund"}`,
		"missing date":    `{"amount":1,"kind":"income"}`,
	}
	for name, body := range cases {
		rec := app.request("POST", "/api/v1/transactions", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}

	rec := app.request("GET", "/api/v1/transactions", "")
	if parseJSON(t, rec)["total_items"].(float64) != 0 {
		t.Error("rejected input must not be stored")
	}

	// fallbacks
	id := app.createTransaction(t, `{"date":"2024-03-05","amount":1,"kind":"expense","category":"Groceries","owner":"Uncle"}`)
	rec = app.request("GET", "/api/v1/transactions/"+id, "")
	tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
	if tx["category"] != "Other" || tx["owner"] != "Other" {
		t.Errorf("expected Other fallbacks, got %v/%v", tx["category"], tx["owner"])
	}
}

func TestLedgerFlow_OwnerScopingDisabled(t *testing.T) {
	app := setupApp(t, false)
	app.seedMarch(t)

	rec := app.request("GET", "/api/v1/summary?month=3&year=2024&owner=Father", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := parseJSON(t, rec)
	if len(result["transactions"].([]interface{})) != 2 {
		t.Error("owner filter must be ignored when scoping is off")
	}

	rec = app.request("GET", "/api/v1/reference", "")
	if parseJSON(t, rec)["owner_scoping"] != false {
		t.Error("expected owner_scoping=false")
	}
}
