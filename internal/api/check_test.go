package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pwd-strength/pkg/strength"
)

func newTestRouter(t *testing.T, wordlistFile string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	group := router.Group("/v1/check")
	require.NoError(t, RegisterCheckApi(group, wordlistFile, false))
	return router
}

func postPassword(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/check/password", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckPassword(t *testing.T) {
	router := newTestRouter(t, "")

	rec := postPassword(router, `{"password":"P@ssw0rd123"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report strength.StrengthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.Equal(t, 11, report.Profile.Length)
	assert.Equal(t, 4, report.Profile.Classes())
	assert.InDelta(t, 72.2, report.EntropyBits, 0.1)
	assert.GreaterOrEqual(t, report.Score, 0)
	assert.LessOrEqual(t, report.Score, 4)
	assert.Equal(t, strength.LabelFor(report.Score), report.Label)
	assert.False(t, report.Breach.Checked)
}

func TestCheckPasswordWithWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	require.NoError(t, os.WriteFile(path, []byte("password\n"), 0644))

	router := newTestRouter(t, path)

	rec := postPassword(router, `{"password":"password"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var report strength.StrengthReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))

	assert.True(t, report.Blocklist.Matched)
	assert.LessOrEqual(t, report.Score, 1)
	assert.NotEmpty(t, report.Advice)
}

func TestCheckPasswordBadRequest(t *testing.T) {
	router := newTestRouter(t, "")

	rec := postPassword(router, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterCheckApiMissingWordlist(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	group := router.Group("/v1/check")

	assert.Error(t, RegisterCheckApi(group, "no-such-wordlist.txt", false))
}
