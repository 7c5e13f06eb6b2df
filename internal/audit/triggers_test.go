package audit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInstallTriggersSkipsNonPostgres(t *testing.T) {
	db := newTestDB(t)

	// trigger installation is postgres-only and must not fail elsewhere
	require.NoError(t, InstallTriggers(db))
}
