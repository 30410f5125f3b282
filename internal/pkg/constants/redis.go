package constants

// Redis key formats
const (
	// Daily transfer volume counter consumed by the optimistic validator.
	KeyDailyVolume = "limits:daily:%s:%s" // Format: limits:daily:{wallet_id}:{yyyy-mm-dd}

	// Per-currency liquidity pool lock serializing bank-to-bank legs.
	KeyPoolLock = "pool:lock:%s" // Format: pool:lock:{currency}

	// Exchange rate quotes written by the treasury rate feed.
	KeyExchangeRate = "rates:%s:%s" // Format: rates:{from}:{to}
)
