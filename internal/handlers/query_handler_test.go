package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"passport-query-api/internal/middleware"
	"passport-query-api/internal/repositories"
	"passport-query-api/internal/services"
	"passport-query-api/pkg/lambda"
)

const validBody = `{
	"name": "Jo",
	"email": "jo@example.com",
	"query": "help",
	"phone": "(416) 555-0100",
	"countryCode": "+1",
	"category": "visa",
	"subCategory": "renewal"
}`

func newTestHandler() (*QueryHandler, *repositories.MemoryQueryRepository) {
	repo := repositories.NewMemoryQueryRepository()
	svc := services.NewQueryService(repo, nil)
	return NewQueryHandler(svc, nil), repo
}

func decodeBody(t *testing.T, body []byte) MessageResponse {
	t.Helper()
	var resp MessageResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid JSON body %q: %v", body, err)
	}
	return resp
}

func TestHandleSubmitValidSubmission(t *testing.T) {
	handler, repo := newTestHandler()

	resp, err := handler.HandleSubmit(context.Background(), &lambda.Request{Body: []byte(validBody)})
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", resp.StatusCode, resp.Body)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("missing wildcard CORS header")
	}

	body := decodeBody(t, resp.Body)
	if body.Message != MsgSubmitted {
		t.Errorf("message = %q, want %q", body.Message, MsgSubmitted)
	}
	if _, err := uuid.Parse(body.ID); err != nil {
		t.Errorf("expected a UUID id, got %q", body.ID)
	}

	stored, ok := repo.Get(body.ID)
	if !ok {
		t.Fatal("no record stored under returned id")
	}
	if stored.Phone != "+14165550100" {
		t.Errorf("stored phone = %q, want %q", stored.Phone, "+14165550100")
	}
}

func TestHandleSubmitValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			"missing field",
			`{"name": "Jo", "email": "jo@example.com", "query": "help"}`,
			services.MsgAllFieldsRequired,
		},
		{
			"invalid email",
			`{"name": "Jo", "email": "not-an-email", "query": "help", "phone": "(416) 555-0100", "countryCode": "+1", "category": "visa", "subCategory": "renewal"}`,
			services.MsgInvalidEmail,
		},
		{
			"invalid phone",
			`{"name": "Jo", "email": "jo@example.com", "query": "help", "phone": "123", "countryCode": "+1", "category": "visa", "subCategory": "renewal"}`,
			services.MsgInvalidPhone,
		},
		{
			"wrong-typed field",
			`{"name": 42, "email": "jo@example.com", "query": "help", "phone": "(416) 555-0100", "countryCode": "+1", "category": "visa", "subCategory": "renewal"}`,
			services.MsgAllFieldsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, repo := newTestHandler()

			resp, err := handler.HandleSubmit(context.Background(), &lambda.Request{Body: []byte(tt.body)})
			if err != nil {
				t.Fatalf("HandleSubmit returned error: %v", err)
			}

			if resp.StatusCode != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", resp.StatusCode)
			}
			if got := decodeBody(t, resp.Body).Message; got != tt.message {
				t.Errorf("message = %q, want %q", got, tt.message)
			}
			if resp.Headers["Access-Control-Allow-Origin"] != "*" {
				t.Error("missing wildcard CORS header")
			}
			if repo.Len() != 0 {
				t.Errorf("no record may be written, got %d", repo.Len())
			}
		})
	}
}

func TestHandleSubmitMalformedBody(t *testing.T) {
	handler, repo := newTestHandler()

	for _, body := range []string{"", "{not json", "[1, 2"} {
		resp, err := handler.HandleSubmit(context.Background(), &lambda.Request{Body: []byte(body)})
		if err != nil {
			t.Fatalf("HandleSubmit returned error: %v", err)
		}

		if resp.StatusCode != http.StatusInternalServerError {
			t.Errorf("body %q: status = %d, want 500", body, resp.StatusCode)
		}
		if got := decodeBody(t, resp.Body).Message; got != MsgInternalError {
			t.Errorf("body %q: message = %q, want %q", body, got, MsgInternalError)
		}
	}

	if repo.Len() != 0 {
		t.Errorf("no record may be written, got %d", repo.Len())
	}
}

func TestHandleSubmitStoreFailure(t *testing.T) {
	handler, repo := newTestHandler()
	repo.FailWith(repositories.ErrStoreUnavailable)

	resp, err := handler.HandleSubmit(context.Background(), &lambda.Request{Body: []byte(validBody)})
	if err != nil {
		t.Fatalf("HandleSubmit returned error: %v", err)
	}

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
	if got := decodeBody(t, resp.Body).Message; got != MsgInternalError {
		t.Errorf("message = %q, want %q (store detail must not leak)", got, MsgInternalError)
	}
	if resp.Headers["Access-Control-Allow-Origin"] != "*" {
		t.Error("missing wildcard CORS header")
	}
}

func TestHandlePreflight(t *testing.T) {
	handler, _ := newTestHandler()

	resp, err := handler.HandlePreflight(context.Background(), &lambda.Request{Method: http.MethodOptions, Path: "/queries"})
	if err != nil {
		t.Fatalf("HandlePreflight returned error: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got := resp.Headers["Access-Control-Allow-Origin"]; got != "*" {
		t.Errorf("allowed origin = %q, want *", got)
	}
	if got := resp.Headers["Access-Control-Allow-Methods"]; got != "OPTIONS,GET,POST" {
		t.Errorf("allowed methods = %q", got)
	}
	if got := resp.Headers["Access-Control-Allow-Headers"]; got != "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token" {
		t.Errorf("allowed headers = %q", got)
	}
}

func newTestRouter(handler *QueryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS())
	router.POST("/queries", handler.SubmitQuery)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, MessageResponse{Message: MsgNotFound})
	})
	return router
}

func TestGinSubmitQuery(t *testing.T) {
	handler, repo := newTestHandler()
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/queries", bytes.NewBufferString(validBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing wildcard CORS header")
	}

	body := decodeBody(t, w.Body.Bytes())
	if body.Message != MsgSubmitted {
		t.Errorf("message = %q, want %q", body.Message, MsgSubmitted)
	}
	if repo.Len() != 1 {
		t.Errorf("expected exactly one record, got %d", repo.Len())
	}
}

func TestGinUnknownRouteReturns404(t *testing.T) {
	handler, _ := newTestHandler()
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unknown", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if got := decodeBody(t, w.Body.Bytes()).Message; got != MsgNotFound {
		t.Errorf("message = %q, want %q", got, MsgNotFound)
	}
	if w.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing wildcard CORS header on 404")
	}
}

func TestGinPreflight(t *testing.T) {
	handler, _ := newTestHandler()
	router := newTestRouter(handler)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/queries", nil))

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token" {
		t.Errorf("allowed headers = %q", got)
	}
}
