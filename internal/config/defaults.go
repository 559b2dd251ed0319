package config

import "time"

const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultRequestTimeout = 15 * time.Minute

	defaultTokenIssuer   = "go-bug-triage"
	defaultTokenDuration = 7 * 24 * time.Hour
	defaultVersion       = "dev"
	defaultLogLevel      = "debug"

	defaultDBConnectAttempts = 5
	defaultDBConnectInterval = 2 * time.Second

	defaultClassifierEndpoint      = "http://127.0.0.1:8000/classify"
	defaultClassifierMaxAttempts   = 12
	defaultClassifierTimeout       = 45 * time.Second
	defaultClassifierRetryInterval = 5 * time.Second
	defaultClassifierRateLimitWait = 6 * time.Second
	defaultClassifierSeverity      = "High"

	defaultQueueKey  = "bug-triage:activities"
	defaultQueueSize = 1024

	defaultAuditMaxDeliveries = 3
	defaultAuditPollTimeout   = time.Second
)

// defaultConfig returns the baseline every other source is merged onto.
// Secrets and the DSN have no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
			Version:       defaultVersion,
			LogLevel:      defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				ConnectAttempts: defaultDBConnectAttempts,
				ConnectInterval: defaultDBConnectInterval,
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Classifier: Classifier{
			Endpoint:               defaultClassifierEndpoint,
			MaxAttempts:            defaultClassifierMaxAttempts,
			PerAttemptTimeout:      defaultClassifierTimeout,
			RetryInterval:          defaultClassifierRetryInterval,
			RateLimitRetryInterval: defaultClassifierRateLimitWait,
			DefaultSeverity:        defaultClassifierSeverity,
		},
		Queue: Queue{
			Key:  defaultQueueKey,
			Size: defaultQueueSize,
		},
		Workers: Workers{
			AuditMaxDeliveries: defaultAuditMaxDeliveries,
			AuditPollTimeout:   defaultAuditPollTimeout,
		},
	}
}
