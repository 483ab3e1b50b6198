// Package txsummary merges decoded transactions with their block and
// execution metadata into display ready records.
package txsummary

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/types"
	"github.com/gabapcia/photonscan/internal/txdecode"
)

// DecodedMessage is the display view of the messages of one type within a
// transaction.
type DecodedMessage struct {
	Type      string       `json:"type"`
	Addresses []string     `json:"addresses"`
	Amounts   []chain.Coin `json:"amounts"`
}

// Summary is an immutable transaction record.
//
// Timestamp is nil when the block time is unknown. Partial is set when the
// execution result could not be fetched; gas is then "0" and Success only
// reflects that the transaction decoded.
type Summary struct {
	Hash      string           `json:"hash"`
	Height    int64            `json:"height"`
	Index     int              `json:"index"`
	Messages  []DecodedMessage `json:"messages"`
	Fee       chain.Coin       `json:"fee"`
	GasUsed   string           `json:"gas_used"`
	GasWanted string           `json:"gas_wanted"`
	Timestamp *time.Time       `json:"timestamp,omitempty"`
	Success   bool             `json:"success"`
	Memo      string           `json:"memo,omitempty"`
	RawLog    string           `json:"raw_log,omitempty"`
	Events    []chain.Event    `json:"events,omitempty"`
	Partial   bool             `json:"partial,omitempty"`
}

// Decoder is the transaction decoder used by the Summarizer.
type Decoder interface {
	Decode(raw []byte) txdecode.Result
}

// Input gathers what is known about a transaction. Result is nil when the
// execution result lookup failed.
type Input struct {
	Raw       []byte
	Height    int64
	Index     int
	BlockTime time.Time
	Result    *chain.TxResult
}

// Summarizer builds Summaries. It holds no state besides its decoder.
type Summarizer struct {
	decoder Decoder
}

// New creates a Summarizer using decoder.
func New(decoder Decoder) *Summarizer {
	return &Summarizer{decoder: decoder}
}

// Hash returns the transaction hash: SHA-256 of raw, upper-case hex.
func Hash(raw []byte) string {
	sum := sha256.Sum256(raw)
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}

// Summarize decodes in.Raw and combines it with the block and execution data.
func (s *Summarizer) Summarize(in Input) Summary {
	decoded := s.decoder.Decode(in.Raw)

	summary := Summary{
		Hash:      Hash(in.Raw),
		Height:    in.Height,
		Index:     in.Index,
		Messages:  groupMessages(decoded),
		Fee:       decoded.Fee,
		GasUsed:   "0",
		GasWanted: "0",
		Success:   decoded.Success,
		Memo:      decoded.Memo,
		Partial:   in.Result == nil,
	}

	if !in.BlockTime.IsZero() {
		ts := in.BlockTime.UTC()
		summary.Timestamp = &ts
	}

	if in.Result == nil {
		return summary
	}

	if !decoded.FeeDeclared || isZero(decoded.Fee.Amount) {
		if fee, ok := FeeFromEvents(in.Result.Events); ok {
			summary.Fee = fee
		}
	}

	summary.Success = in.Result.Code == 0
	summary.GasUsed = strconv.FormatInt(in.Result.GasUsed, 10)
	summary.GasWanted = strconv.FormatInt(in.Result.GasWanted, 10)
	summary.RawLog = in.Result.Log
	summary.Events = in.Result.Events
	return summary
}

// groupMessages returns one DecodedMessage per distinct message type, in
// first appearance order, carrying the addresses and amounts of the messages
// of that type only.
func groupMessages(decoded txdecode.Result) []DecodedMessage {
	type group struct {
		addresses *types.OrderedSet[string]
		amounts   *types.OrderedSet[chain.Coin]
	}

	var (
		order  = make([]string, 0, len(decoded.MessageTypes))
		groups = make(map[string]*group, len(decoded.MessageTypes))
	)

	for _, m := range decoded.Messages {
		g, ok := groups[m.Type]
		if !ok {
			g = &group{
				addresses: types.NewOrderedSet[string](),
				amounts:   types.NewOrderedSet[chain.Coin](),
			}
			groups[m.Type] = g
			order = append(order, m.Type)
		}

		g.addresses.Add(m.Addresses...)
		g.amounts.Add(m.Amounts...)
	}

	messages := make([]DecodedMessage, 0, len(order))
	for _, typ := range order {
		messages = append(messages, DecodedMessage{
			Type:      typ,
			Addresses: groups[typ].addresses.Values(),
			Amounts:   groups[typ].amounts.Values(),
		})
	}
	return messages
}

var eventFeePattern = regexp.MustCompile(`^(\d+)([a-zA-Z][a-zA-Z0-9/:._-]*)$`)

// FeeFromEvents returns the fee recorded in the "fee" attribute of the "tx"
// event. For multi-coin fees only the first coin is returned.
func FeeFromEvents(events []chain.Event) (chain.Coin, bool) {
	for _, event := range events {
		if event.Type != "tx" {
			continue
		}

		for _, attr := range event.Attributes {
			if attr.Key != "fee" {
				continue
			}

			first, _, _ := strings.Cut(strings.TrimSpace(attr.Value), ",")
			if m := eventFeePattern.FindStringSubmatch(first); m != nil {
				return chain.Coin{Amount: m[1], Denom: m[2]}, true
			}
		}
	}
	return chain.Coin{}, false
}

func isZero(amount string) bool {
	return strings.TrimLeft(amount, "0") == ""
}
