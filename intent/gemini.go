package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/Divine-mercyx/MILO/types"
	"github.com/Divine-mercyx/MILO/utils"
)

const defaultGeminiModel = "gemini-2.0-flash"

const classifyPrompt = `You are the command interpreter of a Sui wallet assistant.
Decide whether the user's message is a wallet command or conversation.

If it is a command, answer with ONLY a JSON object:
  {"action":"transfer|mint|stake|swap|query-balance",
   "asset":"SUI|CETUS|USDC|BTC|ETH",
   "amount":<number>,
   "recipient":"<contact name or 0x address>",
   "target":"<asset, swap only>",
   "name":"<nft name, mint only>",
   "description":"<nft description, mint only>"}
Omit fields that do not apply. Use contact names exactly as given below; do
not invent addresses.

If it is not a command, answer with ONLY:
  {"reply":"<your conversational answer>"}

Known contacts:
%s

User message: %s`

// GeminiClassifier asks Gemini to classify user text into an Intent or a
// conversational reply. It is constructor-injected wherever classification
// is needed; there is no package-level instance.
type GeminiClassifier struct {
	client *genai.Client
	model  string
}

var _ Source = (*GeminiClassifier)(nil)

// NewGeminiClassifier creates a ready classifier. The API key is required;
// an empty model selects the default.
func NewGeminiClassifier(ctx context.Context, apiKey, model string) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, types.NewConfigError("gemini API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, types.NewConfigError("failed to create gemini client: %v", err)
	}

	return &GeminiClassifier{client: client, model: model}, nil
}

// Classify implements Source.
func (g *GeminiClassifier) Classify(ctx context.Context, text string, contacts []types.Contact) (*Result, error) {
	prompt := fmt.Sprintf(classifyPrompt, formatContacts(contacts), text)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, types.NewAIError(err)
	}

	return DecodeModelReply(resp.Text())
}

// Close releases the classifier. Safe to call more than once.
func (g *GeminiClassifier) Close() error {
	g.client = nil
	return nil
}

// DecodeModelReply turns the model's raw answer into a tagged Result. A
// JSON object with an "action" field is a command; a "reply" field or any
// non-JSON text is conversation.
func DecodeModelReply(raw string) (*Result, error) {
	cleaned := stripFences(raw)

	var probe struct {
		Action string `json:"action"`
		Reply  string `json:"reply"`
	}
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		// Not JSON at all: treat the whole answer as conversation.
		if strings.TrimSpace(raw) == "" {
			return nil, types.NewAIError(fmt.Errorf("empty model response"))
		}
		return Conversation(strings.TrimSpace(raw)), nil
	}

	if probe.Action == "" {
		if probe.Reply == "" {
			return nil, types.NewAIError(fmt.Errorf("model response carried neither action nor reply"))
		}
		return Conversation(probe.Reply), nil
	}

	parsed, err := utils.ParseIntent([]byte(cleaned))
	if err != nil {
		return nil, err
	}
	return Command(parsed), nil
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

func formatContacts(contacts []types.Contact) string {
	if len(contacts) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for _, c := range contacts {
		fmt.Fprintf(&b, "- %s: %s\n", c.Name, c.Address)
	}
	return b.String()
}
