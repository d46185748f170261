package shared

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	err := NewValidationError("seed %d out of range", 0)
	assert.Equal(t, "VALIDATION_ERROR", err.Code)
	assert.Equal(t, "seed 0 out of range", err.Error())
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, IsValidationError(NewValidationError("bad input")))
	assert.True(t, IsStorageError(NewStorageError("insert failed")))
	assert.True(t, IsQueryError(NewQueryError("syntax error")))

	assert.False(t, IsValidationError(NewStorageError("insert failed")))
	assert.False(t, IsStorageError(fmt.Errorf("plain error")))
}

func TestErrorClassification_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("saving dataset: %w", NewStorageError("insert failed"))
	assert.True(t, IsStorageError(wrapped))
	assert.False(t, IsQueryError(wrapped))
}
