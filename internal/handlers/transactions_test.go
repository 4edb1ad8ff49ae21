package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintracker/internal/models"
	"fintracker/internal/service"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testOwner() *models.User {
	return &models.User{ID: primitive.NewObjectID(), Email: "alice@example.com"}
}

func protectedRequest(method, target string, body *bytes.Buffer) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header = mergeHeaders(req.Header, authHeader("good-token"))
	return req
}

func mergeHeaders(dst, src http.Header) http.Header {
	for k, vs := range src {
		for _, v := range vs {
			dst.Set(k, v)
		}
	}
	return dst
}

func TestTransactions_ListReturnsOwnersRecords(t *testing.T) {
	owner := testOwner()
	txs := []models.Transaction{
		{ID: primitive.NewObjectID(), Title: "Groceries", Amount: 20, Status: "expense", Category: "Food", CreatedBy: owner.ID},
	}
	txMock := &mockTransactions{listResp: txs}
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Transactions:  txMock,
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodGet, "/transactions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got []models.Transaction
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Groceries" {
		t.Fatalf("unexpected list: %+v", got)
	}
	if txMock.lastOwner.ID != owner.ID {
		t.Fatalf("owner not forwarded: got %v", txMock.lastOwner)
	}
}

func TestTransactions_RequireToken(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{tokenErr: service.ErrInvalidToken}}
	r := newTestRouter(s)

	for _, target := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/transactions"},
		{http.MethodPost, "/transactions"},
		{http.MethodGet, "/transactions/monthly-summary"},
		{http.MethodPut, "/transactions/abc"},
		{http.MethodDelete, "/transactions/abc"},
		{http.MethodGet, "/users/me"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(target.method, target.path, nil)
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: got %d, want 401", target.method, target.path, w.Code)
		}
	}
}

func TestTransactions_CreateForwardsParsedInput(t *testing.T) {
	owner := testOwner()
	created := &models.Transaction{ID: primitive.NewObjectID(), Title: "Salary", Amount: 100, Status: "income", Category: "Work", CreatedBy: owner.ID}
	txMock := &mockTransactions{createResp: created}
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Transactions:  txMock,
	}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"title":"Salary","amount":100,"status":"income","category":"Work","date":"2025-03-31"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodPost, "/transactions", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	wantDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	if !txMock.lastCreate.Date.Equal(wantDate) {
		t.Fatalf("date: got %v, want %v", txMock.lastCreate.Date, wantDate)
	}
	if txMock.lastCreate.Amount != 100 || txMock.lastCreate.Status != "income" {
		t.Fatalf("input not forwarded: %+v", txMock.lastCreate)
	}
}

func TestTransactions_CreateZeroAmountPassesRequired(t *testing.T) {
	owner := testOwner()
	txMock := &mockTransactions{createResp: &models.Transaction{}}
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Transactions:  txMock,
	}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"title":"Refund","amount":0,"status":"income","category":"Misc","date":"2025-01-01"}`)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodPost, "/transactions", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("zero amount should be accepted, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTransactions_CreateValidation(t *testing.T) {
	owner := testOwner()
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Transactions:  &mockTransactions{},
	}
	r := newTestRouter(s)

	cases := []struct {
		name string
		body string
		want string // expected field in the error list
	}{
		{"missing title", `{"amount":5,"status":"income","category":"Misc","date":"2025-01-01"}`, "title"},
		{"missing amount", `{"title":"x","status":"income","category":"Misc","date":"2025-01-01"}`, "amount"},
		{"bad status", `{"title":"x","amount":5,"status":"other","category":"Misc","date":"2025-01-01"}`, "status"},
		{"bad date", `{"title":"x","amount":5,"status":"income","category":"Misc","date":"not-a-date"}`, "date"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, protectedRequest(http.MethodPost, "/transactions", bytes.NewBufferString(tc.body)))
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
			}
			var resp struct {
				Errors []struct {
					Field string `json:"field"`
				} `json:"errors"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &resp)
			found := false
			for _, fe := range resp.Errors {
				if fe.Field == tc.want {
					found = true
				}
			}
			if !found {
				t.Fatalf("expected field %q in errors, body=%s", tc.want, w.Body.String())
			}
		})
	}
}

func TestTransactions_UpdateAndDeleteNotFound(t *testing.T) {
	owner := testOwner()
	txMock := &mockTransactions{
		updateErr: service.ErrTransactionNotFound,
		deleteErr: service.ErrTransactionNotFound,
	}
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Transactions:  txMock,
	}
	r := newTestRouter(s)

	id := primitive.NewObjectID().Hex()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodPut, "/transactions/"+id, bytes.NewBufferString(`{"title":"new"}`)))
	if w.Code != http.StatusNotFound {
		t.Fatalf("update: got %d, want 404", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodDelete, "/transactions/"+id, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete: got %d, want 404", w.Code)
	}
}

func TestTransactions_DeleteSuccess(t *testing.T) {
	owner := testOwner()
	txMock := &mockTransactions{}
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Transactions:  txMock,
	}
	r := newTestRouter(s)

	id := primitive.NewObjectID().Hex()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodDelete, "/transactions/"+id, nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var m map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["message"] != "Transaction deleted" {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	if txMock.lastID != id {
		t.Fatalf("id not forwarded: got %q", txMock.lastID)
	}
}

func TestTransactions_MonthlySummaryQuery(t *testing.T) {
	owner := testOwner()
	sumMock := &mockSummary{resp: []models.SummaryGroup{
		{Category: "Food", Status: "expense", Total: 20},
		{Category: "Food", Status: "income", Total: 100},
	}}
	s := &service.Service{
		Authorization: &mockAuth{tokenUser: owner},
		Summary:       sumMock,
	}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodGet, "/transactions/monthly-summary?month=3&year=2025", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sumMock.lastMonth != 3 || sumMock.lastYear != 2025 {
		t.Fatalf("query not forwarded: month=%d year=%d", sumMock.lastMonth, sumMock.lastYear)
	}
	var groups []models.SummaryGroup
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	// non-numeric month → 400 before the service is reached
	w = httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodGet, "/transactions/monthly-summary?month=march", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric month, got %d", w.Code)
	}
}

func TestUsers_Me(t *testing.T) {
	owner := testOwner()

	auth := &mockAuth{tokenUser: owner, profileUser: owner}
	s := &service.Service{Authorization: auth}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodGet, "/users/me", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var got models.User
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Email != owner.Email {
		t.Fatalf("unexpected user: %+v", got)
	}
	if auth.lastProfileID != owner.ID.Hex() {
		t.Fatalf("profile id: got %q, want %q", auth.lastProfileID, owner.ID.Hex())
	}

	// user vanished between token issue and profile fetch → 404
	auth.profileUser = nil
	auth.profileErr = service.ErrUserNotFound
	w = httptest.NewRecorder()
	r.ServeHTTP(w, protectedRequest(http.MethodGet, "/users/me", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for vanished user, got %d", w.Code)
	}
}
