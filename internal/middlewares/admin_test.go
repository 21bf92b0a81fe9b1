package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gearted/gearted-backend/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAdminMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New(), Email: "a@x.com"}

	tests := []struct {
		name           string
		withIdentity   bool
		isAdmin        bool
		expectedStatus int
	}{
		{name: "NoIdentity", expectedStatus: http.StatusUnauthorized},
		{name: "NotAdmin", withIdentity: true, expectedStatus: http.StatusForbidden},
		{name: "Admin", withIdentity: true, isAdmin: true, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checker := NewMockAdminChecker(ctrl)
			if tt.withIdentity {
				checker.EXPECT().IsAdmin(identity).Return(tt.isAdmin)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			})

			req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
			if tt.withIdentity {
				req = req.WithContext(WithIdentity(req.Context(), identity))
			}
			rr := httptest.NewRecorder()
			AdminMiddleware(checker)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectedStatus == http.StatusOK, nextCalled)
		})
	}
}
