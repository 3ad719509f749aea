package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
)

// cacheTestServer mirrors the route wiring: the public submission
// route and the staff list share one page cache middleware.
type cacheTestServer struct {
	router    *gin.Engine
	count     int
	listCalls int
}

func newCacheTestServer() *cacheTestServer {
	srv := &cacheTestServer{router: gin.New()}
	cached := CacheResponses(cache.New(time.Minute, time.Minute), time.Minute)

	srv.router.POST("/complaints", cached, func(c *gin.Context) {
		if c.Query("fail") != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid"})
			return
		}
		srv.count++
		c.JSON(http.StatusCreated, gin.H{"count": srv.count})
	})
	srv.router.GET("/manage/complaints", cached, func(c *gin.Context) {
		srv.listCalls++
		c.JSON(http.StatusOK, gin.H{"count": srv.count})
	})
	return srv
}

func (s *cacheTestServer) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestCacheServesRepeatedLists(t *testing.T) {
	srv := newCacheTestServer()

	first := srv.do(http.MethodGet, "/manage/complaints")
	second := srv.do(http.MethodGet, "/manage/complaints")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, 1, srv.listCalls)
}

func TestPublicSubmissionRefreshesStaffList(t *testing.T) {
	srv := newCacheTestServer()

	before := srv.do(http.MethodGet, "/manage/complaints")
	assert.Contains(t, before.Body.String(), `"count":0`)

	filed := srv.do(http.MethodPost, "/complaints")
	assert.Equal(t, http.StatusCreated, filed.Code)

	after := srv.do(http.MethodGet, "/manage/complaints")
	assert.Contains(t, after.Body.String(), `"count":1`)
	assert.Equal(t, 2, srv.listCalls)
}

func TestFailedSubmissionKeepsCache(t *testing.T) {
	srv := newCacheTestServer()

	srv.do(http.MethodGet, "/manage/complaints")
	rejected := srv.do(http.MethodPost, "/complaints?fail=1")
	assert.Equal(t, http.StatusBadRequest, rejected.Code)

	srv.do(http.MethodGet, "/manage/complaints")
	assert.Equal(t, 1, srv.listCalls)
}

func TestErrorResponsesNotCached(t *testing.T) {
	router := gin.New()
	cached := CacheResponses(cache.New(time.Minute, time.Minute), time.Minute)

	calls := 0
	router.GET("/broken", cached, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("attempt %d", calls)})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, 2, calls)
	assert.Contains(t, rec.Body.String(), "attempt 2")
}
