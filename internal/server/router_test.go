package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/quizzle-app/quizzle/internal/config"
	"github.com/quizzle-app/quizzle/internal/quiz"
)

func TestNewRouter_InvalidOrigin(t *testing.T) {
	_, err := NewRouter(&QuizHandler{}, config.ServerConfig{AllowedOrigins: []string{"localhost:5173"}})
	assert.Error(t, err)
}

func TestRouter_RequestID(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantSet string
	}{
		{name: "generated", header: ""},
		{name: "propagated", header: "req-123", wantSet: "req-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestServer(t)
			server.store.EXPECT().ListPublicQuizzes(gomock.Any()).Return([]quiz.Quiz{}, nil)

			headers := map[string]string{}
			if tt.header != "" {
				headers[headerRequestID] = tt.header
			}
			w, _ := server.do(t, http.MethodGet, "/get_public_quizzes", "", headers)
			require.Equal(t, http.StatusOK, w.Code)

			got := w.Header().Get(headerRequestID)
			if tt.wantSet != "" {
				assert.Equal(t, tt.wantSet, got)
			} else {
				assert.Len(t, got, 36)
			}
		})
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	server := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/create_quiz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestRouter_RecoversFromPanic(t *testing.T) {
	server := newTestServer(t)
	server.store.EXPECT().ListPublicQuizzes(gomock.Any()).DoAndReturn(func(any) ([]quiz.Quiz, error) {
		panic("boom")
	})

	w, got := server.do(t, http.MethodGet, "/get_public_quizzes", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, failure("Internal error"), got)
}
