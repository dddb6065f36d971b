package intent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Divine-mercyx/MILO/types"
)

// UsageExamples are shown to the user when no pattern matches.
var UsageExamples = []string{
	`Send 10 SUI to Maria`,
	`Swap 5 SUI for USDC`,
}

var (
	transferRe *regexp.Regexp
	swapRe     *regexp.Regexp
)

func init() {
	symbols := make([]string, 0, len(types.SupportedAssets))
	for _, a := range types.SupportedAssets {
		symbols = append(symbols, string(a))
	}
	alt := strings.Join(symbols, "|")

	// Transfer: "send 10 SUI to Alice". The asset is optional and the
	// destination token is opaque; the resolver decides what it is.
	transferRe = regexp.MustCompile(
		fmt.Sprintf(`(?i)\bsend\s+(\d+(?:\.\d+)?)\s*(%s)?\s+to\s+([0-9a-zA-Z]+)`, alt))

	// Swap: "swap 5 SUI for USDC". Both assets are mandatory members of
	// the supported set.
	swapRe = regexp.MustCompile(
		fmt.Sprintf(`(?i)\bswap\s+(\d+(?:\.\d+)?)\s*(%s)\s+for\s+(%s)`, alt, alt))
}

// Parser is the pattern-based fallback: it recognizes the two fixed
// phrasings without calling any external service. Patterns are tried in a
// fixed order and the first match wins; transfer is checked before swap.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

var _ Source = (*Parser)(nil)

// Parse extracts an Intent from raw text, or fails with a PARSE_ERROR
// carrying usage examples. It never guesses.
func (p *Parser) Parse(text string) (*types.Intent, error) {
	input := strings.TrimSpace(text)

	if m := transferRe.FindStringSubmatch(input); m != nil {
		amount, err := decimal.NewFromString(m[1])
		if err != nil {
			return nil, types.NewParseError(fmt.Sprintf("could not read amount %q", m[1]), UsageExamples)
		}

		asset := types.NativeAsset
		if m[2] != "" {
			asset, _ = types.ParseAsset(m[2])
		}

		return &types.Intent{
			Action:    types.ActionTransfer,
			Asset:     asset,
			Amount:    &amount,
			Recipient: m[3],
		}, nil
	}

	if m := swapRe.FindStringSubmatch(input); m != nil {
		amount, err := decimal.NewFromString(m[1])
		if err != nil {
			return nil, types.NewParseError(fmt.Sprintf("could not read amount %q", m[1]), UsageExamples)
		}

		asset, _ := types.ParseAsset(m[2])
		target, _ := types.ParseAsset(m[3])

		return &types.Intent{
			Action: types.ActionSwap,
			Asset:  asset,
			Amount: &amount,
			Target: target,
		}, nil
	}

	return nil, types.NewParseError(
		fmt.Sprintf("could not parse intent from %q; examples: %s", input, strings.Join(UsageExamples, "; ")),
		UsageExamples,
	)
}

// Classify implements Source. The contact snapshot is unused: recipient
// tokens are left opaque for the resolver.
func (p *Parser) Classify(_ context.Context, text string, _ []types.Contact) (*Result, error) {
	parsed, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	return Command(parsed), nil
}
