package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records security-relevant events (logins, OTP issuance,
// server lifecycle) independently of the application log.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
