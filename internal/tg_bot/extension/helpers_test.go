package extension

import (
	"errors"
	"fmt"
	"testing"

	"consent_governance_system/internal/engine"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineErrorMessage_Conflict(t *testing.T) {
	err := fmt.Errorf("failed to update proposal: %w", engine.ErrConflict)

	message, ok := EngineErrorMessage(42, err)
	require.True(t, ok)

	text, isText := message.(tgbotapi.MessageConfig)
	require.True(t, isText)
	assert.Equal(t, int64(42), text.ChatID)
	assert.Contains(t, text.Text, "please try again")
}

func TestEngineErrorMessage_InternalError(t *testing.T) {
	_, ok := EngineErrorMessage(42, errors.New("connection refused"))
	assert.False(t, ok)
}
