package audit

import (
	"fmt"

	"gorm.io/gorm"
)

// trackedTables are the tables covered by the row-level audit trigger,
// keyed by primary key column.
var trackedTables = map[string]string{
	"usuarios":        "id_usuario",
	"clientes":        "id_cliente",
	"categorias":      "id_categoria",
	"productos":       "id_producto",
	"pedidos":         "id_pedido",
	"detalle_pedidos": "id_detalle",
	"carrito":         "id_carrito",
	"detalle_carrito": "id_detalle_carrito",
}

const triggerFunction = `
CREATE OR REPLACE FUNCTION audit_trigger_function()
RETURNS TRIGGER AS $$
DECLARE
    registro_id_val INTEGER;
    old_data JSONB;
    new_data JSONB;
    changed_fields JSONB;
BEGIN
    IF TG_OP = 'DELETE' THEN
        registro_id_val := (to_jsonb(OLD) ->> TG_ARGV[0])::INTEGER;
    ELSE
        registro_id_val := (to_jsonb(NEW) ->> TG_ARGV[0])::INTEGER;
    END IF;

    -- A row we cannot identify is not logged; the mutation itself proceeds.
    IF registro_id_val IS NULL THEN
        RETURN COALESCE(NEW, OLD);
    END IF;

    IF TG_OP = 'INSERT' THEN
        new_data := to_jsonb(NEW);
        old_data := NULL;
        changed_fields := NULL;
    ELSIF TG_OP = 'UPDATE' THEN
        old_data := to_jsonb(OLD);
        new_data := to_jsonb(NEW);
        changed_fields := (
            SELECT jsonb_object_agg(key, value)
            FROM jsonb_each(new_data)
            WHERE value IS DISTINCT FROM (old_data->key)
        );
    ELSIF TG_OP = 'DELETE' THEN
        old_data := to_jsonb(OLD);
        new_data := NULL;
        changed_fields := NULL;
    END IF;

    INSERT INTO audit_log (
        tabla_nombre, registro_id, accion,
        datos_anteriores, datos_nuevos, cambios, fecha_accion
    ) VALUES (
        TG_TABLE_NAME, registro_id_val, TG_OP,
        old_data, new_data, changed_fields, CURRENT_TIMESTAMP
    );

    RETURN COALESCE(NEW, OLD);
END;
$$ LANGUAGE plpgsql;
`

// InstallTriggers (re)creates the audit trigger function and one row-level
// trigger per tracked table. Only meaningful on Postgres; other dialects
// (the sqlite test harness) are skipped.
func InstallTriggers(db *gorm.DB) error {
	if db.Dialector.Name() != "postgres" {
		return nil
	}
	if err := db.Exec(triggerFunction).Error; err != nil {
		return fmt.Errorf("create audit trigger function: %w", err)
	}
	for table, pk := range trackedTables {
		if err := db.Exec(fmt.Sprintf("DROP TRIGGER IF EXISTS audit_trigger ON %s", table)).Error; err != nil {
			return fmt.Errorf("drop audit trigger on %s: %w", table, err)
		}
		stmt := fmt.Sprintf(
			"CREATE TRIGGER audit_trigger AFTER INSERT OR UPDATE OR DELETE ON %s FOR EACH ROW EXECUTE FUNCTION audit_trigger_function('%s')",
			table, pk,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create audit trigger on %s: %w", table, err)
		}
	}
	return nil
}
