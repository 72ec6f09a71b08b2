package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTablesHaveSameKeys: обе таблицы покрывают один и тот же набор ключей.
func TestTablesHaveSameKeys(t *testing.T) {
	for key := range translationsES {
		_, ok := translationsEN[key]
		assert.True(t, ok, "в английской таблице нет ключа %q", key)
	}
	for key := range translationsEN {
		_, ok := translationsES[key]
		assert.True(t, ok, "в испанской таблице нет ключа %q", key)
	}
}

// TestTFallback: неизвестный язык откатывается на испанский.
func TestTFallback(t *testing.T) {
	assert.Equal(t, translationsEN["login.title"], T(LangEN)["login.title"])
	assert.Equal(t, translationsES["login.title"], T("de")["login.title"])
	assert.Equal(t, translationsES["login.title"], T("")["login.title"])
}
