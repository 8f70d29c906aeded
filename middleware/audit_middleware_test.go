package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditAction(t *testing.T) {
	rewardID := uuid.Must(uuid.NewV7()).String()

	cases := []struct {
		name     string
		method   string
		path     string
		action   string
		resource string
	}{
		{"create reward", http.MethodPost, "/api/v1/admin/rewards", "created_reward", "reward"},
		{"update reward", http.MethodPut, "/api/v1/admin/rewards", "updated_reward", "reward"},
		{"delete reward", http.MethodDelete, "/api/v1/admin/rewards/" + rewardID, "deleted_reward", "reward"},
		{"redeem reward", http.MethodPost, "/api/v1/admin/rewards/" + rewardID + "/redeem", "redeemed_reward", "reward"},
		{"update program rules", http.MethodPut, "/api/v1/admin/program-rules", "updated_program_rules", "program_rules"},
		{"record transaction", http.MethodPost, "/api/v1/admin/transactions", "created_transaction", "transaction"},
		{"unknown collection", http.MethodPost, "/api/v1/admin/widgets", "", ""},
		{"read is never audited", http.MethodGet, "/api/v1/admin/rewards", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			action, resource := auditAction(tc.method, tc.path)
			assert.Equal(t, tc.action, action)
			assert.Equal(t, tc.resource, resource)
		})
	}
}

func TestAuditMiddlewarePreservesBody(t *testing.T) {
	// No claims in context, so the middleware skips recording, but it must
	// still hand the handler a readable body after snapshotting it.
	router := gin.New()
	router.POST("/admin/rewards", AuditMiddleware(), func(c *gin.Context) {
		var body map[string]any
		require.NoError(t, c.ShouldBindJSON(&body))
		c.JSON(http.StatusCreated, gin.H{"name": body["name"]})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/rewards", strings.NewReader(`{"name":"Free Coffee"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Free Coffee")
}

func TestAuditMiddlewareIgnoresReads(t *testing.T) {
	router := gin.New()
	router.GET("/admin/rewards", AuditMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/rewards", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
