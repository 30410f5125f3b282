package constants

// NSQ topics and channels
const (
	// TopicTransactionRetry carries deferred retry messages for failed
	// settlements. Messages are published with DeferredPublish so NSQ holds
	// them until the backoff delay elapses.
	TopicTransactionRetry = "transaction.retry"

	// ChannelSettlementWorker is the consumer channel re-driving retries.
	ChannelSettlementWorker = "settlement-worker"
)
