package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gearted/gearted-backend/internal/middlewares"
	"github.com/gearted/gearted-backend/internal/models"
	"github.com/gearted/gearted-backend/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibilityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	identity := models.Identity{UserID: uuid.New()}
	userID := identity.UserID.String()

	tests := []struct {
		name         string
		idA, idB     string
		identity     *models.Identity
		session      string
		mockSetup    func(m *MockCompatibilityLooker)
		expectedCode int
	}{
		{
			name: "anonymous lookup",
			idA:  "2", idB: "1",
			mockSetup: func(m *MockCompatibilityLooker) {
				m.EXPECT().Lookup(gomock.Any(), int64(2), int64(1), services.LookupOrigin{}).
					Return(&models.Verdict{Compatible: true, Type: models.CompatibilityCompatible}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "authenticated lookup with session",
			idA:  "1", idB: "2",
			identity: &identity,
			session:  "sess-1",
			mockSetup: func(m *MockCompatibilityLooker) {
				m.EXPECT().Lookup(gomock.Any(), int64(1), int64(2), services.LookupOrigin{UserID: &userID, SessionID: "sess-1"}).
					Return(&models.Verdict{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "missing equipment",
			idA:  "1", idB: "999",
			mockSetup: func(m *MockCompatibilityLooker) {
				m.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrEquipmentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			idA:  "1", idB: "2",
			mockSetup: func(m *MockCompatibilityLooker) {
				m.EXPECT().Lookup(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("conn reset"))
			},
			expectedCode: http.StatusInternalServerError,
		},
		{name: "non numeric id", idA: "abc", idB: "2", expectedCode: http.StatusBadRequest},
		{name: "negative id", idA: "-1", idB: "2", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCompatibilityLooker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := httptest.NewRequest(http.MethodGet, "/compatibility/"+tt.idA+"/"+tt.idB, nil)
			req = withURLParams(req, map[string]string{"idA": tt.idA, "idB": tt.idB})
			if tt.identity != nil {
				req = withIdentity(req, *tt.identity)
			}
			if tt.session != "" {
				req.Header.Set("X-Session-ID", tt.session)
			}

			rr := httptest.NewRecorder()
			NewCompatibilityHandler(mockSvc)(rr, req)
			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestCompatibleEquipmentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	category := int64(3)
	items := []models.CompatibleItem{{ID: 2, Name: "Mag"}, {ID: 3, Name: "Hop-up"}}

	tests := []struct {
		name         string
		target       string
		id           string
		mockSetup    func(m *MockCompatibleLister)
		expectedCode int
		expectedLen  int
	}{
		{
			name:   "all categories",
			target: "/compatibility/equipment/1",
			id:     "1",
			mockSetup: func(m *MockCompatibleLister) {
				m.EXPECT().CompatibleEquipment(gomock.Any(), int64(1), nil).Return(items, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "filtered by category",
			target: "/compatibility/equipment/1?category=3",
			id:     "1",
			mockSetup: func(m *MockCompatibleLister) {
				m.EXPECT().CompatibleEquipment(gomock.Any(), int64(1), &category).Return(items[:1], nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
		},
		{name: "bad category", target: "/compatibility/equipment/1?category=x", id: "1", expectedCode: http.StatusBadRequest},
		{name: "bad id", target: "/compatibility/equipment/x", id: "x", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCompatibleLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			req := withURLParams(httptest.NewRequest(http.MethodGet, tt.target, nil), map[string]string{"equipmentId": tt.id})
			rr := httptest.NewRecorder()
			NewCompatibleEquipmentHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedCode == http.StatusOK {
				resp := decodeBody(t, rr)
				assert.EqualValues(t, tt.expectedLen, resp["count"])
				assert.Len(t, resp["equipment"], tt.expectedLen)
			}
		})
	}
}

func TestAddRuleHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	admin := models.Identity{UserID: uuid.New(), IsAdmin: true}
	body := AddRuleRequest{
		SourceID:          2,
		TargetID:          1,
		CompatibilityType: models.CompatibilityCompatible,
		ConfidenceLevel:   models.ConfidenceHigh,
		Percentage:        95,
	}

	tests := []struct {
		name         string
		body         any
		mockSetup    func(m *MockRuleAdder, c *MockCacheInvalidator)
		expectedCode int
	}{
		{
			name: "created and cache dropped",
			body: body,
			mockSetup: func(m *MockRuleAdder, c *MockCacheInvalidator) {
				m.EXPECT().AddRule(gomock.Any(), models.NewRule{
					SourceID: 2, TargetID: 1,
					Type: models.CompatibilityCompatible, Confidence: models.ConfidenceHigh,
					Percentage: 95, CreatedBy: admin.UserID.String(),
				}).Return(&models.RuleDB{ID: 7, SourceEquipmentID: 1, TargetEquipmentID: 2}, nil)
				c.EXPECT().DeletePrefix(gomock.Any(), "gearted:compatibility:").Return(int64(3), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "invalidation failure does not fail the request",
			body: body,
			mockSetup: func(m *MockRuleAdder, c *MockCacheInvalidator) {
				m.EXPECT().AddRule(gomock.Any(), gomock.Any()).Return(&models.RuleDB{ID: 8}, nil)
				c.EXPECT().DeletePrefix(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("redis down"))
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "duplicate",
			body: body,
			mockSetup: func(m *MockRuleAdder, c *MockCacheInvalidator) {
				m.EXPECT().AddRule(gomock.Any(), gomock.Any()).Return(nil, services.ErrDuplicateRule)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "missing fields",
			body: AddRuleRequest{SourceID: 1},
			mockSetup: func(m *MockRuleAdder, c *MockCacheInvalidator) {
				m.EXPECT().AddRule(gomock.Any(), gomock.Any()).Return(nil, services.ErrMissingField)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown equipment",
			body: body,
			mockSetup: func(m *MockRuleAdder, c *MockCacheInvalidator) {
				m.EXPECT().AddRule(gomock.Any(), gomock.Any()).Return(nil, services.ErrEquipmentNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{name: "invalid json", body: "[", expectedCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRuleAdder(ctrl)
			cache := NewMockCacheInvalidator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc, cache)
			}

			req := withIdentity(jsonRequest(t, http.MethodPost, "/compatibility", tt.body), admin)
			rr := httptest.NewRecorder()
			NewAddRuleHandler(mockSvc, cache)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}

func TestAddRuleHandler_InvalidatesAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectCommit()

	mockSvc := NewMockRuleAdder(ctrl)
	mockSvc.EXPECT().AddRule(gomock.Any(), gomock.Any()).Return(&models.RuleDB{ID: 9}, nil)

	cache := NewMockCacheInvalidator(ctrl)
	committedFirst := false
	cache.EXPECT().DeletePrefix(gomock.Any(), "gearted:compatibility:").
		DoAndReturn(func(context.Context, string) (int64, error) {
			committedFirst = mock.ExpectationsWereMet() == nil
			return 1, nil
		})

	admin := models.Identity{UserID: uuid.New(), IsAdmin: true}
	body := AddRuleRequest{
		SourceID: 1, TargetID: 2,
		CompatibilityType: models.CompatibilityCompatible,
		ConfidenceLevel:   models.ConfidenceHigh,
	}
	req := withIdentity(jsonRequest(t, http.MethodPost, "/compatibility", body), admin)
	rr := httptest.NewRecorder()
	middlewares.TxMiddleware(sqlxDB)(NewAddRuleHandler(mockSvc, cache)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.True(t, committedFirst)
}

func TestAddRuleHandler_NoInvalidationOnRollback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	sqlxDB := sqlx.NewDb(db, "sqlmock")

	mock.ExpectBegin()
	mock.ExpectRollback()

	mockSvc := NewMockRuleAdder(ctrl)
	mockSvc.EXPECT().AddRule(gomock.Any(), gomock.Any()).Return(nil, services.ErrDuplicateRule)
	cache := NewMockCacheInvalidator(ctrl)

	req := withIdentity(jsonRequest(t, http.MethodPost, "/compatibility", AddRuleRequest{SourceID: 1, TargetID: 2}),
		models.Identity{UserID: uuid.New(), IsAdmin: true})
	rr := httptest.NewRecorder()
	middlewares.TxMiddleware(sqlxDB)(NewAddRuleHandler(mockSvc, cache)).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
