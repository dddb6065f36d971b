// Package upload stores NFT content on Walrus before a mint intent
// reaches the builder. The publisher accepts the raw blob; the aggregator
// serves it back at a stable URL used as the minted asset's URL.
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Divine-mercyx/MILO/types"
)

const (
	defaultPublisherURL  = "https://publisher.walrus-testnet.walrus.space"
	defaultAggregatorURL = "https://aggregator.walrus-testnet.walrus.space"

	// Blobs are kept for this many storage epochs.
	defaultEpochs = 5
)

// WalrusClient uploads content blobs and derives their fetch URLs.
type WalrusClient struct {
	publisherURL  string
	aggregatorURL string
	http          *http.Client
}

// NewWalrusClient creates a client; empty URLs select the testnet
// endpoints.
func NewWalrusClient(publisherURL, aggregatorURL string, timeout time.Duration) *WalrusClient {
	if publisherURL == "" {
		publisherURL = defaultPublisherURL
	}
	if aggregatorURL == "" {
		aggregatorURL = defaultAggregatorURL
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &WalrusClient{
		publisherURL:  strings.TrimRight(publisherURL, "/"),
		aggregatorURL: strings.TrimRight(aggregatorURL, "/"),
		http:          &http.Client{Timeout: timeout},
	}
}

// The publisher answers with one of two shapes depending on whether the
// blob was already stored.
type storeResponse struct {
	NewlyCreated *struct {
		BlobObject struct {
			BlobID string `json:"blobId"`
		} `json:"blobObject"`
	} `json:"newlyCreated"`
	AlreadyCertified *struct {
		BlobID string `json:"blobId"`
	} `json:"alreadyCertified"`
}

// Store uploads the content and returns its blob ID.
func (c *WalrusClient) Store(ctx context.Context, content io.Reader) (string, error) {
	url := fmt.Sprintf("%s/v1/blobs?epochs=%d", c.publisherURL, defaultEpochs)

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, content)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", types.NewSubmissionError(fmt.Sprintf("blob upload failed: %v", err), "")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", types.NewSubmissionError(fmt.Sprintf("blob upload read failed: %v", err), "")
	}
	if resp.StatusCode != http.StatusOK {
		return "", types.NewSubmissionError(fmt.Sprintf("blob upload rejected: HTTP %d: %s", resp.StatusCode, body), "")
	}

	var parsed storeResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", types.NewSubmissionError(fmt.Sprintf("blob upload returned malformed response: %v", err), "")
	}

	switch {
	case parsed.NewlyCreated != nil && parsed.NewlyCreated.BlobObject.BlobID != "":
		return parsed.NewlyCreated.BlobObject.BlobID, nil
	case parsed.AlreadyCertified != nil && parsed.AlreadyCertified.BlobID != "":
		return parsed.AlreadyCertified.BlobID, nil
	default:
		return "", types.NewSubmissionError("blob upload response carried no blob id", "")
	}
}

// URL derives the aggregator fetch URL for a blob ID. It populates the
// minted asset's URL field.
func (c *WalrusClient) URL(blobID string) string {
	return c.aggregatorURL + "/v1/blobs/" + blobID
}

// Attach uploads content and fills the intent's blob reference fields.
func (c *WalrusClient) Attach(ctx context.Context, intent *types.Intent, content io.Reader) error {
	blobID, err := c.Store(ctx, content)
	if err != nil {
		return err
	}
	intent.BlobID = blobID
	intent.AssetURL = c.URL(blobID)
	return nil
}
