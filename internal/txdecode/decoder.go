// Package txdecode turns raw transaction bytes into typed message summaries.
//
// Decoding is best effort: a transaction that cannot be parsed yields a
// Result flagged unsuccessful with a single UnknownType message instead of an
// error. Address and amount extraction is driven by a declarative table of
// Rules keyed by message type URL; messages without a rule are scanned for
// anything that looks like a chain address.
package txdecode

import (
	"regexp"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/types"
)

// UnknownType is the message type reported when a message type cannot be
// resolved or the whole transaction failed to decode.
const UnknownType = "Unknown"

// Message is the extraction result for one message of a transaction.
type Message struct {
	Type      string       `json:"type"`
	Addresses []string     `json:"addresses"`
	Amounts   []chain.Coin `json:"amounts"`
}

// Result is the decoded view of a transaction.
//
// MessageTypes, Addresses and Amounts are de-duplicated across all messages
// in order of first appearance. Messages keeps the per message extraction in
// message index order.
type Result struct {
	MessageTypes []string     `json:"message_types"`
	Messages     []Message    `json:"messages"`
	Addresses    []string     `json:"addresses"`
	Amounts      []chain.Coin `json:"amounts"`
	Fee          chain.Coin   `json:"fee"`
	FeeDeclared  bool         `json:"fee_declared"`
	GasLimit     uint64       `json:"gas_limit"`
	Memo         string       `json:"memo"`
	Success      bool         `json:"success"`
}

// Decoder decodes transactions. It is safe for concurrent use.
type Decoder struct {
	rules          map[string]Rule
	addressPattern *regexp.Regexp
	baseDenom      string
}

type config struct {
	rules     map[string]Rule
	prefixes  []string
	baseDenom string
}

// Option configures a Decoder.
type Option func(*config)

// WithRule adds or replaces the extraction rule for a message type URL.
func WithRule(typeURL string, rule Rule) Option {
	return func(c *config) {
		c.rules[typeURL] = rule
	}
}

// WithAddressPrefixes sets the bech32 prefixes recognised when scanning
// messages without a rule.
func WithAddressPrefixes(prefixes ...string) Option {
	return func(c *config) {
		c.prefixes = prefixes
	}
}

// WithBaseDenom sets the denomination of the default zero fee.
func WithBaseDenom(denom string) Option {
	return func(c *config) {
		c.baseDenom = denom
	}
}

// New creates a Decoder with DefaultRules, DefaultAddressPrefixes and the
// chain base denomination, adjusted by opts.
func New(opts ...Option) *Decoder {
	cfg := config{
		rules:     DefaultRules(),
		prefixes:  DefaultAddressPrefixes,
		baseDenom: chain.BaseDenom,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Decoder{
		rules:          cfg.rules,
		addressPattern: AddressPattern(cfg.prefixes...),
		baseDenom:      cfg.baseDenom,
	}
}

// DefaultFee is the fee reported when a transaction declares none.
func (d *Decoder) DefaultFee() chain.Coin {
	return chain.Coin{Amount: "0", Denom: d.baseDenom}
}

// Decode parses raw and extracts its messages, fee and memo. It never
// panics and never returns an error; see Result.Success.
func (d *Decoder) Decode(raw []byte) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = d.unknown()
		}
	}()

	env, err := parseEnvelope(raw)
	if err != nil {
		return d.unknown()
	}

	var (
		messageTypes = types.NewOrderedSet[string]()
		addresses    = types.NewOrderedSet[string]()
		amounts      = types.NewOrderedSet[chain.Coin]()
		messages     = make([]Message, 0, len(env.messages))
	)

	for _, m := range env.messages {
		msg := d.extract(m)

		messageTypes.Add(msg.Type)
		addresses.Add(msg.Addresses...)
		amounts.Add(msg.Amounts...)
		messages = append(messages, msg)
	}

	res = Result{
		MessageTypes: messageTypes.Values(),
		Messages:     messages,
		Addresses:    addresses.Values(),
		Amounts:      amounts.Values(),
		Fee:          d.DefaultFee(),
		GasLimit:     env.gasLimit,
		Memo:         env.memo,
		Success:      true,
	}

	if len(env.fee) > 0 {
		res.Fee = env.fee[0]
		res.FeeDeclared = true
	}

	return res
}

func (d *Decoder) unknown() Result {
	return Result{
		MessageTypes: []string{UnknownType},
		Messages:     []Message{{Type: UnknownType, Addresses: []string{}, Amounts: []chain.Coin{}}},
		Addresses:    []string{},
		Amounts:      []chain.Coin{},
		Fee:          d.DefaultFee(),
		Success:      false,
	}
}

func (d *Decoder) extract(m rawMessage) Message {
	var (
		addresses = types.NewOrderedSet[string]()
		amounts   = types.NewOrderedSet[chain.Coin]()
	)

	typ := m.typeURL
	if typ == "" {
		typ = UnknownType
	}

	rule, ok := d.rules[m.typeURL]
	if !ok {
		scanAddresses(m.fields, d.addressPattern, addresses, 0)
		return Message{Type: typ, Addresses: addresses.Values(), Amounts: amounts.Values()}
	}

	for _, field := range rule.Addresses {
		if addr, ok := field.lookup(m.fields); ok {
			addresses.Add(addr)
		}
	}

	for _, source := range rule.Coins {
		if coins := source(m.fields); len(coins) > 0 {
			amounts.Add(coins...)
			break
		}
	}

	return Message{Type: typ, Addresses: addresses.Values(), Amounts: amounts.Values()}
}
