package handlers

import (
	"context"
	"net/http"

	"alerts_review/internal/models"
	"alerts_review/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	principal     service.Principal
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(ctx context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.Principal, error) {
	m.lastParseToken = token
	return m.principal, m.parseErr
}

type mockCases struct {
	list    service.CaseList
	listErr error
	cs      *models.Case
	getErr  error
	note    models.Note
	noteErr error
	actErr  error

	lastFilter service.CaseFilter
	lastID     string
	lastText   string
	lastAuthor string
	listCalls  int
	resolved   int
	suppressed int
}

func (m *mockCases) List(ctx context.Context, f service.CaseFilter) (service.CaseList, error) {
	m.listCalls++
	m.lastFilter = f
	return m.list, m.listErr
}
func (m *mockCases) Get(ctx context.Context, caseID string) (*models.Case, error) {
	m.lastID = caseID
	return m.cs, m.getErr
}
func (m *mockCases) AddNote(ctx context.Context, caseID, text, author string) (models.Note, error) {
	m.lastID, m.lastText, m.lastAuthor = caseID, text, author
	return m.note, m.noteErr
}
func (m *mockCases) Resolve(ctx context.Context, caseID, reason, author string) error {
	m.resolved++
	m.lastID, m.lastText, m.lastAuthor = caseID, reason, author
	return m.actErr
}
func (m *mockCases) Suppress(ctx context.Context, caseID, reason, author string) error {
	m.suppressed++
	m.lastID, m.lastText, m.lastAuthor = caseID, reason, author
	return m.actErr
}

type mockSnapshots struct {
	resp   []models.Snapshot
	err    error
	lastID string
}

func (m *mockSnapshots) ForCase(ctx context.Context, caseID string) ([]models.Snapshot, error) {
	m.lastID = caseID
	return m.resp, m.err
}

type mockReviewer struct {
	review service.CaseReview
	err    error
	calls  int
}

func (m *mockReviewer) Review(ctx context.Context, caseID string) (service.CaseReview, error) {
	m.calls++
	return m.review, m.err
}

type mockHealth struct {
	count int
	err   error
}

func (m *mockHealth) CaseCount(ctx context.Context) (int, error) {
	return m.count, m.err
}

type mockActivityLog struct {
	resp []models.Activity
	err  error
	last service.ActivityFilter
}

func (m *mockActivityLog) List(ctx context.Context, f service.ActivityFilter) ([]models.Activity, error) {
	m.last = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

const testToken = "good-token"

// newTestService returns a Service whose auth accepts testToken as reviewer "alice".
func newTestService() *service.Service {
	return &service.Service{
		Authorization: &mockAuth{principal: service.Principal{UserID: 7, Username: "alice"}},
	}
}

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, opts...)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
