package types

// Network identifies a Sui network environment.
type Network string

const (
	NetworkMainnet Network = "mainnet"
	NetworkTestnet Network = "testnet"
	NetworkDevnet  Network = "devnet"
	NetworkLocal   Network = "localnet"
)

// FullnodeURL returns the default JSON-RPC endpoint for the network.
func (n Network) FullnodeURL() string {
	switch n {
	case NetworkMainnet:
		return "https://fullnode.mainnet.sui.io:443"
	case NetworkTestnet:
		return "https://fullnode.testnet.sui.io:443"
	case NetworkDevnet:
		return "https://fullnode.devnet.sui.io:443"
	case NetworkLocal:
		return "http://127.0.0.1:9000"
	default:
		return ""
	}
}

// ExplorerTxURL returns a block-explorer link for a transaction digest.
func (n Network) ExplorerTxURL(digest string) string {
	switch n {
	case NetworkMainnet:
		return "https://suivision.xyz/txblock/" + digest
	case NetworkTestnet:
		return "https://testnet.suivision.xyz/txblock/" + digest
	case NetworkDevnet:
		return "https://devnet.suivision.xyz/txblock/" + digest
	default:
		return ""
	}
}

// IsTestnet reports whether the network is a non-production environment.
func (n Network) IsTestnet() bool {
	return n == NetworkTestnet || n == NetworkDevnet || n == NetworkLocal
}

func (n Network) String() string {
	return string(n)
}
