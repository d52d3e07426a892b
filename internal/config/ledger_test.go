package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLedger(t *testing.T) {
	ledger, err := CreateLedger(NewConfig())
	require.NoError(t, err)
	defer ledger.Close()

	reminders, err := ledger.ListReminders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
