// Package constants contains string constants shared across layers.
package constants

const (
	// EnvDevelop is the env.env value used on developer machines.
	EnvDevelop = "develop"
	// EnvProduction is the env.env value used in production.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal pushes events over HTTP to a local dispatcher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// MaxBusinessCategories caps the size of a business's preferred category list.
	MaxBusinessCategories = 50

	// FirebaseBatchSize is the multicast limit of FCM.
	FirebaseBatchSize = 500
)
