// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal routes events over plain HTTP to a local worker,
	// simulating the push subscription during development.
	PubSubProviderLocal = "local"

	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
