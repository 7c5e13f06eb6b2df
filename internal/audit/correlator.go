package audit

import (
	"context"
	"log"
	"time"

	"github.com/rosalinebakery/store_service/internal/domain"
	"gorm.io/gorm"
)

// Action is the mutation kind recorded by the audit trigger.
type Action string

const (
	ActionInsert Action = "INSERT"
	ActionUpdate Action = "UPDATE"
	ActionDelete Action = "DELETE"
)

// MatchWindow is the trailing interval within which a trigger-written audit
// row is considered a plausible match for the current request. Rapid repeated
// writes to the same record inside the window can be misattributed; the audit
// data is forensic, not authoritative.
const MatchWindow = 2 * time.Second

// Trackable is implemented by every audited domain model. It replaces
// runtime attribute probing with a compile-time primary-key accessor.
type Trackable interface {
	TableName() string
	AuditRecordID() uint
}

type Correlator struct {
	window time.Duration
	now    func() time.Time
}

func NewCorrelator() *Correlator {
	return &Correlator{window: MatchWindow, now: time.Now}
}

// Enrich attaches the actor, IP and endpoint of the current request to the
// most recent audit row for (tabla, registroID, accion) written inside the
// match window. It is strictly best effort: an empty request context, a
// missing row or a storage error all leave the primary mutation untouched.
// Errors are logged and swallowed, never returned.
func (c *Correlator) Enrich(ctx context.Context, tx *gorm.DB, tabla string, registroID uint, accion Action) {
	rc, ok := FromContext(ctx)
	if !ok || rc.Empty() {
		return
	}
	if registroID == 0 || tabla == "" {
		return
	}

	threshold := c.now().UTC().Add(-c.window)

	sub := tx.Session(&gorm.Session{NewDB: true}).
		Model(&domain.AuditLog{}).
		Select("id_audit").
		Where("tabla_nombre = ? AND registro_id = ? AND accion = ? AND fecha_accion > ?",
			tabla, registroID, string(accion), threshold).
		Order("fecha_accion DESC").
		Limit(1)

	res := tx.Model(&domain.AuditLog{}).
		Where("id_audit = (?)", sub).
		Updates(map[string]interface{}{
			"usuario_id":    rc.UsuarioID,
			"usuario_email": rc.UsuarioEmail,
			"ip_address":    rc.IPAddress,
			"endpoint":      rc.Endpoint,
		})
	if res.Error != nil {
		log.Printf("audit: enrich %s/%d %s failed: %v", tabla, registroID, accion, res.Error)
	}
}
