package config

import "strings"

// StorageKeys names the documents kept in the state store
type StorageKeys struct {
	DirectAPIKey  string
	History       string
	IdentityToken string
	Stats         string
	Usage         string
	WebhookURL    string
}

// DefaultStorageKeys returns the standard key set
func DefaultStorageKeys() StorageKeys {
	return StorageKeys{
		DirectAPIKey:  "claude_api_key",
		History:       "contentply_history",
		IdentityToken: "contentply_api_key",
		Stats:         "contentply_stats",
		Usage:         "contentply_usage",
		WebhookURL:    "n8n_webhook_url",
	}
}

// PlaceholderWebhookURL is reported while no webhook has been configured
const PlaceholderWebhookURL = "https://your-n8n-instance.railway.app/webhook/repurpose"

// PlaceholderMarker identifies an unconfigured webhook URL. Any endpoint
// containing it selects the offline mock generator.
const PlaceholderMarker = "your-n8n-instance"

// IsPlaceholderWebhook reports whether url leaves the webhook unconfigured
func IsPlaceholderWebhook(url string) bool {
	return strings.TrimSpace(url) == "" || strings.Contains(url, PlaceholderMarker)
}
