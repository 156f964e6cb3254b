// Package constants holds identifiers shared between configuration and infrastructure.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event log providers
const (
	EventLogProviderMemory = "memory"
	EventLogProviderRedis  = "redis"
	EventLogProviderKafka  = "kafka"
	EventLogProviderGoogle = "google"
	EventLogProviderHCS    = "hcs"
)

// Ledger providers
const (
	LedgerProviderMemory = "memory"
	LedgerProviderHedera = "hedera"
)

// EventOrderingKey is the single ordering key used on logs that only order per key.
const EventOrderingKey = "agritoken"
