package update_service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/barbershop-booking/internal/service/catalog"
	"github.com/m04kA/barbershop-booking/internal/service/catalog/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, id string, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	args := m.Called(ctx, id, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.ServiceResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func serve(svc CatalogService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/services/{serviceId}", NewHandler(svc, logger.Nop()).Handle).Methods(http.MethodPut)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/services/svc_beard", strings.NewReader(body)))
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name string
		resp *models.ServiceResponse
		err  error
		want int
	}{
		{"updated", &models.ServiceResponse{ID: "svc_beard", PriceRub: 250}, nil, http.StatusOK},
		{"not found", nil, catalog.ErrServiceNotFound, http.StatusNotFound},
		{"invalid", nil, catalog.ErrInvalidInput, http.StatusBadRequest},
		{"not configured", nil, catalog.ErrNotConfigured, http.StatusServiceUnavailable},
		{"internal", nil, catalog.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Update", mock.Anything, "svc_beard", &models.UpdateServiceRequest{PriceRub: ptr.Ptr(250)}).
				Return(tt.resp, tt.err)

			assert.Equal(t, tt.want, serve(svc, `{"priceRub":250}`).Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandler_InvalidBody(t *testing.T) {
	svc := &mockService{}
	assert.Equal(t, http.StatusBadRequest, serve(svc, `{"price":250}`).Code)
}
