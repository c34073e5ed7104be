package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/idea2context/internal/models"
	"github.com/sbilibin2017/idea2context/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockGenerator)
		expectedCode int
		expectedErr  string
		expectedFile string
		expectedBody string
	}{
		{
			name: "web document",
			body: `{"idea":"Трекер привычек","appType":"web"}`,
			mockSetup: func(m *MockGenerator) {
				m.EXPECT().Generate(gomock.Any(), "Трекер привычек", models.AppTypeWeb).Return(&models.Document{
					Markdown: "# Трекер привычек\n",
					Filename: "web_app_context.md",
					Source:   models.SourceModel,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedFile: `attachment; filename="web_app_context.md"`,
			expectedBody: "# Трекер привычек\n",
		},
		{
			name: "mobile fallback document",
			body: `{"idea":"Трекер привычек","appType":"mobile"}`,
			mockSetup: func(m *MockGenerator) {
				m.EXPECT().Generate(gomock.Any(), "Трекер привычек", models.AppTypeMobile).Return(&models.Document{
					Markdown: "# fallback\n",
					Filename: "mobile_app_context.md",
					Source:   models.SourceFallback,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedFile: `attachment; filename="mobile_app_context.md"`,
			expectedBody: "# fallback\n",
		},
		{
			name: "missing idea",
			body: `{"appType":"web"}`,
			mockSetup: func(m *MockGenerator) {
				m.EXPECT().Generate(gomock.Any(), "", models.AppTypeWeb).Return(nil, services.ErrGenerateFieldsRequired)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "idea and appType are required",
		},
		{
			name: "invalid app type",
			body: `{"idea":"x","appType":"desktop"}`,
			mockSetup: func(m *MockGenerator) {
				m.EXPECT().Generate(gomock.Any(), "x", models.AppType("desktop")).Return(nil, services.ErrInvalidAppType)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "appType must be either mobile or web",
		},
		{
			name: "unexpected error",
			body: `{"idea":"x","appType":"web"}`,
			mockSetup: func(m *MockGenerator) {
				m.EXPECT().Generate(gomock.Any(), "x", models.AppTypeWeb).Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  "internal server error",
		},
		{
			name:         "invalid json",
			body:         "not json",
			mockSetup:    func(m *MockGenerator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockGenerator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewGenerateHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/generate", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedErr != "" {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				var resp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedErr, resp.Error)
				return
			}

			assert.Equal(t, "text/markdown; charset=utf-8", rr.Header().Get("Content-Type"))
			assert.Equal(t, tt.expectedFile, rr.Header().Get("Content-Disposition"))
			assert.Equal(t, tt.expectedBody, rr.Body.String())
		})
	}
}
