package audit

import (
	"gorm.io/gorm"
)

// RegisterCallbacks hooks the correlator into GORM so every create, update
// and delete on a Trackable model is followed by a best-effort enrichment of
// the trigger-written audit row. The callbacks run inside the statement's
// transaction but never set db.Error, so a failing enrichment cannot roll
// back the primary write.
func RegisterCallbacks(db *gorm.DB, c *Correlator) error {
	if err := db.Callback().Create().After("gorm:create").
		Register("audit:correlate_insert", correlate(c, ActionInsert)); err != nil {
		return err
	}
	if err := db.Callback().Update().After("gorm:update").
		Register("audit:correlate_update", correlate(c, ActionUpdate)); err != nil {
		return err
	}
	return db.Callback().Delete().After("gorm:delete").
		Register("audit:correlate_delete", correlate(c, ActionDelete))
}

func correlate(c *Correlator, accion Action) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Error != nil || db.Statement == nil {
			return
		}
		t, ok := trackableFrom(db)
		if !ok {
			return
		}
		// Same transaction as the primary statement, fresh statement state.
		tx := db.Session(&gorm.Session{NewDB: true})
		c.Enrich(db.Statement.Context, tx, t.TableName(), t.AuditRecordID(), accion)
	}
}

// trackableFrom resolves the audited entity of the finished statement. For
// creates and saves it is the destination struct; for Model(...).Updates and
// deletes it may sit on Statement.Model instead.
func trackableFrom(db *gorm.DB) (Trackable, bool) {
	if t, ok := db.Statement.Dest.(Trackable); ok && t.AuditRecordID() != 0 {
		return t, true
	}
	if t, ok := db.Statement.Model.(Trackable); ok && t.AuditRecordID() != 0 {
		return t, true
	}
	return nil, false
}
