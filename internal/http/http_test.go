package http_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/wongco/jobly/internal/appcontext"
	joblyhttp "github.com/wongco/jobly/internal/http"
	"github.com/wongco/jobly/internal/repository/mocks"
	"github.com/wongco/jobly/internal/utils"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

// testEnv wires the router against mocked repositories.
type testEnv struct {
	users        *mocks.UserRepository
	companies    *mocks.CompanyRepository
	jobs         *mocks.JobRepository
	applications *mocks.ApplicationRepository
	router       *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:        new(mocks.UserRepository),
		companies:    new(mocks.CompanyRepository),
		jobs:         new(mocks.JobRepository),
		applications: new(mocks.ApplicationRepository),
	}
	ctx := &appcontext.Context{
		Logger:       zap.NewNop(),
		JWTSecret:    testSecret,
		BcryptCost:   bcrypt.MinCost,
		Users:        env.users,
		Companies:    env.companies,
		Jobs:         env.jobs,
		Applications: env.applications,
	}
	env.router = joblyhttp.NewHTTPService(ctx).Engine()
	return env
}

func (env *testEnv) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	env.router.ServeHTTP(recorder, req)
	return recorder
}

func tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := utils.GenerateJWT(username, testSecret)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
	return payload
}

// errorMessage digs the message out of the {"error":{"status","message"}} envelope.
func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) interface{} {
	t.Helper()
	payload := decodeBody(t, recorder)
	envelope, ok := payload["error"].(map[string]interface{})
	require.True(t, ok, "response should carry an error envelope: %s", recorder.Body.String())
	return envelope["message"]
}
