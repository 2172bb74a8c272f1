package config

import "time"

// Processing limits and deadlines. Values match the behavior the dashboards
// and runbooks assume; change with care.
const (
	// MaxIterations bounds LLM round-trips per stage before the controller
	// gives up.
	MaxIterations = 10

	// MaxFormatRetries bounds soft retries for unparseable LLM responses.
	// Retries consume iteration budget like any other LLM call.
	MaxFormatRetries = 2

	// MaxConsecutiveLLMFailures is how many back-to-back failed LLM calls a
	// controller tolerates before failing the stage. A single transient
	// provider error is retried in the next iteration.
	MaxConsecutiveLLMFailures = 2

	// DefaultMaxConcurrentAlerts is the worker pool size when
	// MAX_CONCURRENT_ALERTS is unset.
	DefaultMaxConcurrentAlerts = 5

	// DefaultLLMTimeout bounds a single LLM completion.
	DefaultLLMTimeout = 60 * time.Second

	// DefaultMCPTimeout bounds a single MCP tool call or tool listing.
	DefaultMCPTimeout = 30 * time.Second

	// DefaultRunbookTimeout bounds the one runbook download per session.
	DefaultRunbookTimeout = 30 * time.Second

	// DefaultStageTimeout bounds a whole stage execution.
	DefaultStageTimeout = 10 * time.Minute

	// DefaultHistoryRetentionDays is how long finished sessions are kept.
	DefaultHistoryRetentionDays = 90

	// MaxAlertDataSize caps the submitted alert payload.
	MaxAlertDataSize = 1 << 20 // 1 MiB

	// MaxRunbookSize caps a downloaded runbook.
	MaxRunbookSize = 1 << 20 // 1 MiB
)

// Queue worker timing.
const (
	DefaultPollInterval    = 2 * time.Second
	DefaultPollJitter      = 500 * time.Millisecond
	DefaultOrphanThreshold = 5 * time.Minute
	DefaultOrphanInterval  = time.Minute
)
