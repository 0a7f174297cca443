package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPlaceholderWebhook(t *testing.T) {
	tests := []struct {
		url      string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{PlaceholderWebhookURL, true},
		{"http://your-n8n-instance.local/hook", true},
		{"https://n8n.example.com/webhook/repurpose", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsPlaceholderWebhook(tt.url))
		})
	}
}

func TestDefaultStorageKeys_AreDistinct(t *testing.T) {
	keys := DefaultStorageKeys()
	all := []string{keys.DirectAPIKey, keys.History, keys.IdentityToken, keys.Stats, keys.Usage, keys.WebhookURL}

	seen := make(map[string]bool)
	for _, k := range all {
		assert.NotEmpty(t, k)
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
}
