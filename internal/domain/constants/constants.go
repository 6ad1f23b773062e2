// Package constants holds shared constant values used across layers.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal publishes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// LedgerProviderPostgres backs reservations with a unique-key insert.
	LedgerProviderPostgres = "postgres"
	// LedgerProviderRedis backs reservations with SETNX and a TTL.
	LedgerProviderRedis = "redis"
)

const (
	// RoleAdmin may submit custom intents and read dispatch history.
	RoleAdmin = "admin"
	// RolePlayer is the default role for registered recipients.
	RolePlayer = "player"
)
