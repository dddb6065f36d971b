package clients

const (
	// -----------------------------
	// TRANSPORT
	// -----------------------------
	ErrRPCUnreachable = "rpc_unreachable"
	ErrRPCBadResponse = "rpc_bad_response"

	// -----------------------------
	// EXECUTION
	// -----------------------------
	ErrExecutionRejected = "execution_rejected"
	ErrExecutionFailed   = "execution_failed_on_chain"
	ErrExecutionTimedOut = "execution_confirmation_timed_out"

	// -----------------------------
	// READS
	// -----------------------------
	ErrBalanceUnavailable = "balance_unavailable"

	// -----------------------------
	// UNEXPECTED
	// -----------------------------
	ErrUnexpected = "unexpected_client_error"
)
