package services

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
)

// AuditLogger records credit-mutating admin actions in the panel's activity
// log. The log itself is owned by the host panel; this is a best-effort
// collaborator call and never fails the originating request.
type AuditLogger interface {
	Record(actorID uuid.UUID, action, context, ip string)
}

type activityLog struct {
	endpoint string
	client   *http.Client
}

func NewAuditLogger() AuditLogger {
	return &activityLog{
		endpoint: os.Getenv("PANEL_ACTIVITY_URL"),
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (a *activityLog) Record(actorID uuid.UUID, action, context, ip string) {
	if a.endpoint == "" {
		log.Printf("[AUDIT] actor=%s action=%s ip=%s | %s", actorID, action, ip, context)
		return
	}

	payload, err := json.Marshal(map[string]string{
		"actor_id": actorID.String(),
		"action":   action,
		"context":  context,
		"ip":       ip,
	})
	if err != nil {
		log.Printf("Failed to encode audit entry: %v", err)
		return
	}

	resp, err := a.client.Post(a.endpoint, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Printf("Failed to deliver audit entry to panel: %v", err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		log.Printf("Panel activity log rejected audit entry: %s", resp.Status)
	}
}
