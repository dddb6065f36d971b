// Package txbuilder converts a validated Intent into an unsigned,
// chain-native transaction. The Transaction type models the Sui
// programmable transaction block: an ordered command list over the gas
// coin, object transfers and Move calls, serialized to JSON for handoff to
// the external wallet signer.
package txbuilder

import "encoding/json"

// Argument references a value inside a transaction: the gas coin or the
// result of an earlier command.
type Argument struct {
	Kind string `json:"kind"` // "gas" | "result"

	// For result references: the producing command's index and the result
	// slot within it.
	Command int `json:"command,omitempty"`
	Index   int `json:"index,omitempty"`
}

// Gas references the payer's gas coin.
func Gas() Argument {
	return Argument{Kind: "gas"}
}

// CallArg is one argument of a Move call.
type CallArg struct {
	Type string `json:"type"` // "pure:string" | "pure:u64" | "pure:address" | "object" | "result"

	String  string    `json:"string,omitempty"`
	U64     uint64    `json:"u64,omitempty"`
	Address string    `json:"address,omitempty"`
	Object  string    `json:"object,omitempty"`
	Result  *Argument `json:"result,omitempty"`
}

func PureString(s string) CallArg  { return CallArg{Type: "pure:string", String: s} }
func PureU64(v uint64) CallArg     { return CallArg{Type: "pure:u64", U64: v} }
func PureAddress(a string) CallArg { return CallArg{Type: "pure:address", Address: a} }
func ObjectArg(id string) CallArg  { return CallArg{Type: "object", Object: id} }
func ResultArg(a Argument) CallArg { return CallArg{Type: "result", Result: &a} }

// Command is one step of a programmable transaction block.
type Command struct {
	Kind string `json:"kind"` // "SplitCoins" | "TransferObjects" | "MoveCall"

	// SplitCoins
	Coin    *Argument `json:"coin,omitempty"`
	Amounts []uint64  `json:"amounts,omitempty"`

	// TransferObjects
	Objects   []Argument `json:"objects,omitempty"`
	Recipient string     `json:"recipient,omitempty"`

	// MoveCall
	Target    string    `json:"target,omitempty"`
	Arguments []CallArg `json:"arguments,omitempty"`
}

// Transaction is an unsigned programmable transaction block.
type Transaction struct {
	GasBudget uint64    `json:"gasBudget,omitempty"`
	Commands  []Command `json:"commands"`
}

func New() *Transaction {
	return &Transaction{}
}

// SetGasBudget overrides the node-side gas estimation, in MIST.
func (t *Transaction) SetGasBudget(budget uint64) {
	t.GasBudget = budget
}

// SplitCoins splits amounts off the given coin and returns one result
// reference per amount.
func (t *Transaction) SplitCoins(coin Argument, amounts []uint64) []Argument {
	idx := len(t.Commands)
	t.Commands = append(t.Commands, Command{
		Kind:    "SplitCoins",
		Coin:    &coin,
		Amounts: amounts,
	})

	results := make([]Argument, len(amounts))
	for i := range amounts {
		results[i] = Argument{Kind: "result", Command: idx, Index: i}
	}
	return results
}

// TransferObjects transfers the given objects to a recipient address.
func (t *Transaction) TransferObjects(objects []Argument, recipient string) {
	t.Commands = append(t.Commands, Command{
		Kind:      "TransferObjects",
		Objects:   objects,
		Recipient: recipient,
	})
}

// MoveCall invokes an on-chain entry point. Target has the form
// "package::module::function".
func (t *Transaction) MoveCall(target string, args ...CallArg) {
	t.Commands = append(t.Commands, Command{
		Kind:      "MoveCall",
		Target:    target,
		Arguments: args,
	})
}

// MarshalBase returns the canonical JSON form handed to the signer.
func (t *Transaction) MarshalBase() ([]byte, error) {
	return json.Marshal(t)
}
