// Package contacts resolves human-readable names to Sui addresses and
// persists the user's contact set.
package contacts

import (
	"strings"

	"github.com/Divine-mercyx/MILO/types"
	"github.com/Divine-mercyx/MILO/utils"
)

// Resolve turns a user-supplied token into a definite chain address.
// Exact case-insensitive match against contact names wins; otherwise an
// address-shaped token passes through unchanged; anything else is a
// RESOLUTION_ERROR naming the token. An unresolved name is never forwarded
// to the chain as if it were an address.
//
// Resolve is a pure function of (token, snapshot): no caching, no network.
func Resolve(token string, snapshot []types.Contact) (string, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return "", types.NewResolutionError(token)
	}

	for _, c := range snapshot {
		if strings.EqualFold(c.Name, trimmed) {
			return c.Address, nil
		}
	}

	if utils.IsSuiAddress(trimmed) {
		return trimmed, nil
	}

	return "", types.NewResolutionError(trimmed)
}
