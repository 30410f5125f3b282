package constants

// NATS Subjects
const (
	// Settlement engine events
	SubjectTransactionUpdated   = "transaction.updated"
	SubjectTransactionCompleted = "transaction.completed"
	SubjectTransactionFailed    = "transaction.failed"

	// Liquidity pool alerts
	SubjectPoolThresholdBreached = "pool.threshold.breached"
	SubjectPoolRebalanced        = "pool.rebalanced"
)

// NATS queue groups
const (
	// QueueGroupWalletService load-balances pool alert handling across
	// wallet service instances.
	QueueGroupWalletService = "wallet-service"
)
