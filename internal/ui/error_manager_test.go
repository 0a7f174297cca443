package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorManager_StaleClearIsIgnored(t *testing.T) {
	em := NewErrorManager(time.Second)

	em.SetError(errors.New("first"))
	stale := clearErrorMsg{generation: em.generation}
	em.SetNotice("Copied!")

	em.HandleClear(stale)
	assert.Equal(t, "Copied!", em.Notice())

	em.HandleClear(clearErrorMsg{generation: em.generation})
	assert.Empty(t, em.Notice())
	assert.False(t, em.HasError())
}

func TestErrorManager_NoticeAndErrorReplaceEachOther(t *testing.T) {
	em := NewErrorManager(time.Second)

	em.SetNotice("Settings saved successfully!")
	em.SetError(errors.New("boom"))
	assert.True(t, em.HasError())
	assert.Empty(t, em.Notice())

	em.SetNotice("Copied!")
	assert.False(t, em.HasError())
}

func TestErrorManager_ZeroDelayDisablesAutoClear(t *testing.T) {
	em := NewErrorManager(0)
	em.SetError(errors.New("boom"))
	assert.Nil(t, em.ClearAfterDelay())
}
