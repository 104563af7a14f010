package v1_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-portfolio-backend/internal/delivery/http/middleware"
	v1 "go-portfolio-backend/internal/delivery/http/v1"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubMessageUsecase only serves Submit; the public routes never reach the
// admin-side operations.
type stubMessageUsecase struct {
	id  string
	err error
	req domain.CreateMessageRequest
}

func (s *stubMessageUsecase) Submit(_ context.Context, req domain.CreateMessageRequest) (string, error) {
	s.req = req
	return s.id, s.err
}

func (s *stubMessageUsecase) List(context.Context) ([]domain.ContactMessage, error) {
	return nil, errors.New("not used")
}

func (s *stubMessageUsecase) MarkRead(context.Context, string) error { return errors.New("not used") }

func (s *stubMessageUsecase) Delete(context.Context, string) error { return errors.New("not used") }

func publicRouter(messageUC domain.MessageUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	v1.NewPublicHandler(r.Group("/api"), nil, nil, nil, nil, messageUC)
	return r
}

func postContact(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should respond 200 with the stored message id", func(t *testing.T) {
		stub := &stubMessageUsecase{id: "msg1"}
		r := publicRouter(stub)

		rec := postContact(r, `{"name":"A","email":"a@b.com","message":"hi"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), "msg1")
		assert.Equal(t, "A", stub.req.Name)
	})

	t.Run("Should reject an invalid email with 400", func(t *testing.T) {
		stub := &stubMessageUsecase{id: "msg1"}
		r := publicRouter(stub)

		rec := postContact(r, `{"name":"A","email":"not-an-email","message":"hi"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, stub.req.Name)
	})
}
