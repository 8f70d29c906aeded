package middleware

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nyashaushe/loyaltAI/models"
	"github.com/nyashaushe/loyaltAI/services"
)

// pathResources maps admin route segments to audited resource kinds.
var pathResources = map[string]string{
	"rewards":       models.AuditResourceReward,
	"program-rules": models.AuditResourceProgramRules,
	"transactions":  models.AuditResourceTransaction,
	"customers":     models.AuditResourceCustomer,
}

// methodVerbs maps HTTP methods to audit action verbs.
var methodVerbs = map[string]string{
	http.MethodPost:   "created",
	http.MethodPut:    "updated",
	http.MethodPatch:  "updated",
	http.MethodDelete: "deleted",
}

// AuditMiddleware records every admin mutation (non-GET) after the handler
// runs, tagged with the acting admin and tenant from the token claims and
// the outcome status. Must run after AuthMiddleware, which puts the claims
// into the context. Reads never produce audit rows.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}

		action, resource := auditAction(c.Request.Method, c.Request.URL.Path)
		if action == "" {
			c.Next()
			return
		}

		// Snapshot the payload; the handler still needs to read the body
		var payload []byte
		if c.Request.Body != nil {
			payload, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(payload))
		}

		c.Next()

		userID, _ := GetUserIDFromContext(c)
		userEmail, _ := GetUserEmailFromContext(c)
		tenantClaim, _ := GetTenantIDFromContext(c)

		actorID, err := uuid.Parse(userID)
		if err != nil {
			log.Printf("[audit] skipped %s: no actor in context", action)
			return
		}
		tenantID, err := uuid.Parse(tenantClaim)
		if err != nil {
			log.Printf("[audit] skipped %s: no tenant in context", action)
			return
		}

		status := models.AuditStatusSuccess
		errorMessage := ""
		if code := c.Writer.Status(); code < 200 || code >= 300 {
			status = models.AuditStatusFailed
			errorMessage = http.StatusText(code)
		}

		_ = services.GetAuditService().Record(services.AuditEntry{
			TenantID:     tenantID,
			ActorID:      actorID,
			ActorEmail:   userEmail,
			Action:       action,
			ResourceType: resource,
			ResourceID:   c.Param("id"),
			Request:      payload,
			Status:       status,
			ErrorMessage: errorMessage,
			Context:      c,
		})
	}
}

// auditAction derives "verb_resource" from the method and path:
// POST /admin/rewards → created_reward,
// POST /admin/rewards/:id/redeem → redeemed_reward,
// PUT /admin/program-rules → updated_program_rules.
// Unknown paths or methods return "".
func auditAction(method, path string) (action, resource string) {
	verb := methodVerbs[method]
	if verb == "" {
		return "", ""
	}

	// Walk segments from the end toward the resource collection, skipping
	// ids and sub-action suffixes
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		segment := parts[i]
		if segment == "" {
			continue
		}
		if segment == "redeem" {
			verb = "redeemed"
			continue
		}
		if _, err := uuid.Parse(segment); err == nil {
			continue
		}
		if kind, ok := pathResources[segment]; ok {
			return verb + "_" + kind, kind
		}
	}

	return "", ""
}
