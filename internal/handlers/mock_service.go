package handlers

import (
	"context"
	"net/http"

	"fintracker/internal/models"
	"fintracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerToken string
	registerErr   error
	loginToken    string
	loginUser     *models.User
	loginErr      error
	tokenUser     *models.User
	tokenErr      error
	profileUser   *models.User
	profileErr    error

	lastRegister  service.RegisterInput
	lastLoginMail string
	lastLoginPass string
	lastToken     string
	lastProfileID string
}

func (m *mockAuth) Register(ctx context.Context, in service.RegisterInput) (string, error) {
	m.lastRegister = in
	return m.registerToken, m.registerErr
}

func (m *mockAuth) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	m.lastLoginMail = email
	m.lastLoginPass = password
	return m.loginToken, m.loginUser, m.loginErr
}

func (m *mockAuth) UserFromToken(ctx context.Context, accessToken string) (*models.User, error) {
	m.lastToken = accessToken
	return m.tokenUser, m.tokenErr
}

func (m *mockAuth) Profile(ctx context.Context, userID string) (*models.User, error) {
	m.lastProfileID = userID
	return m.profileUser, m.profileErr
}

type mockTransactions struct {
	listResp   []models.Transaction
	listErr    error
	createResp *models.Transaction
	createErr  error
	updateResp *models.Transaction
	updateErr  error
	deleteErr  error

	lastOwner  *models.User
	lastCreate service.TransactionInput
	lastID     string
	lastPatch  models.TransactionPatch
}

func (m *mockTransactions) List(ctx context.Context, owner *models.User) ([]models.Transaction, error) {
	m.lastOwner = owner
	return m.listResp, m.listErr
}

func (m *mockTransactions) Create(ctx context.Context, owner *models.User, in service.TransactionInput) (*models.Transaction, error) {
	m.lastOwner = owner
	m.lastCreate = in
	return m.createResp, m.createErr
}

func (m *mockTransactions) Update(ctx context.Context, owner *models.User, id string, patch models.TransactionPatch) (*models.Transaction, error) {
	m.lastOwner = owner
	m.lastID = id
	m.lastPatch = patch
	return m.updateResp, m.updateErr
}

func (m *mockTransactions) Delete(ctx context.Context, owner *models.User, id string) error {
	m.lastOwner = owner
	m.lastID = id
	return m.deleteErr
}

type mockSummary struct {
	resp []models.SummaryGroup
	err  error

	lastOwner *models.User
	lastMonth int
	lastYear  int
}

func (m *mockSummary) Monthly(ctx context.Context, owner *models.User, month, year int) ([]models.SummaryGroup, error) {
	m.lastOwner = owner
	m.lastMonth = month
	m.lastYear = year
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
