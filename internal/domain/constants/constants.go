// Package constants holds shared domain-level constant values.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types selected via configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Keys used in published event attributes and FCM data payloads.
const (
	AttrRequestID = "request_id"
	AttrUserID    = "user_id"
	AttrProduct   = "product"

	RemoteKeyContentChanged = "content_changed"
)
