package delete_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/barbershop-booking/internal/service/catalog"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", catalog.ErrServiceNotFound, http.StatusNotFound},
		{"not configured", catalog.ErrNotConfigured, http.StatusServiceUnavailable},
		{"internal", catalog.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Delete", mock.Anything, "svc_beard").Return(tt.err)

			router := mux.NewRouter()
			router.HandleFunc("/api/v1/admin/services/{serviceId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodDelete)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/services/svc_beard", nil))

			assert.Equal(t, tt.want, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
