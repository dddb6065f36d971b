package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Divine-mercyx/MILO/types"
)

// SuiClient talks JSON-RPC to a Sui fullnode. It implements Executor and
// Reader; signing stays with the external wallet.
type SuiClient struct {
	network types.Network
	rpcURL  string
	http    *http.Client
	nextID  atomic.Int64
}

var (
	_ Executor = (*SuiClient)(nil)
	_ Reader   = (*SuiClient)(nil)
)

// NewSuiClient creates a client for the given network. An empty rpcURL
// selects the network's default fullnode endpoint.
func NewSuiClient(network types.Network, rpcURL string, timeout time.Duration) (*SuiClient, error) {
	if rpcURL == "" {
		rpcURL = network.FullnodeURL()
	}
	if rpcURL == "" {
		return nil, types.NewConfigError("no RPC endpoint for network %q", network)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SuiClient{
		network: network,
		rpcURL:  rpcURL,
		http:    &http.Client{Timeout: timeout},
	}, nil
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int64  `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int64           `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

func (c *SuiClient) call(ctx context.Context, method string, params []any, out any) error {
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      c.nextID.Add(1),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", ErrUnexpected, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.rpcURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrUnexpected, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrRPCUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", ErrRPCBadResponse, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: HTTP %d: %s", ErrRPCBadResponse, resp.StatusCode, body)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return fmt.Errorf("%s: %w", ErrRPCBadResponse, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%s: %s (code %d)", ErrExecutionRejected, rpcResp.Error.Message, rpcResp.Error.Code)
	}

	if out != nil {
		if err := json.Unmarshal(rpcResp.Result, out); err != nil {
			return fmt.Errorf("%s: decode result: %w", ErrRPCBadResponse, err)
		}
	}
	return nil
}

// ExecuteTransactionBlock submits signed transaction bytes with effects
// and events requested, matching what the status tracker consumes.
func (c *SuiClient) ExecuteTransactionBlock(ctx context.Context, signed *types.SignedTransaction) (*types.ExecuteResult, error) {
	if signed == nil || signed.Bytes == "" || signed.Signature == "" {
		return nil, types.NewValidationError("signed transaction bytes and signature are required")
	}

	options := map[string]bool{
		"showEffects": true,
		"showEvents":  true,
	}

	var result types.ExecuteResult
	err := c.call(ctx, "sui_executeTransactionBlock",
		[]any{signed.Bytes, []string{signed.Signature}, options, "WaitForLocalExecution"},
		&result,
	)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

type balanceResult struct {
	CoinType        string `json:"coinType"`
	CoinObjectCount int    `json:"coinObjectCount"`
	TotalBalance    string `json:"totalBalance"`
}

// GetBalance returns the owner's total balance for the coin type, as the
// base-unit string the node reports.
func (c *SuiClient) GetBalance(ctx context.Context, owner, coinType string) (string, error) {
	var result balanceResult
	err := c.call(ctx, "suix_getBalance", []any{owner, coinType}, &result)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrBalanceUnavailable, err)
	}
	return result.TotalBalance, nil
}

// Network returns the network this client is connected to.
func (c *SuiClient) Network() types.Network {
	return c.network
}

func (c *SuiClient) Close() {
	c.http.CloseIdleConnections()
}
