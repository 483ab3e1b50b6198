package txdecode

import (
	"encoding/json"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/gabapcia/photonscan/internal/chain"
	"github.com/gabapcia/photonscan/internal/pkg/types"
)

// Message type URLs with a built-in extraction rule.
const (
	TypeMsgSend                    = "/cosmos.bank.v1beta1.MsgSend"
	TypeMsgDelegate                = "/cosmos.staking.v1beta1.MsgDelegate"
	TypeMsgUndelegate              = "/cosmos.staking.v1beta1.MsgUndelegate"
	TypeMsgBeginRedelegate         = "/cosmos.staking.v1beta1.MsgBeginRedelegate"
	TypeMsgWithdrawDelegatorReward = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	TypeMsgTransfer                = "/ibc.applications.transfer.v1.MsgTransfer"
	TypeMsgMintPhoton              = "/atomone.photon.v1.MsgMintPhoton"
)

// DefaultAddressPrefixes are matched when scanning messages without a rule.
var DefaultAddressPrefixes = []string{
	chain.AccountPrefix,
	chain.ValidatorPrefix,
	chain.ConsensusPrefix,
	"cosmos",
	"cosmosvaloper",
}

// Field is one logical message field listed by its accepted spellings, most
// preferred first. The first spelling holding a non-empty string wins.
type Field []string

// Alias builds a Field.
func Alias(names ...string) Field {
	return Field(names)
}

func (f Field) lookup(fields map[string]any) (string, bool) {
	for _, name := range f {
		if s, ok := stringValue(fields[name]); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// CoinSource reads coins from a message. It returns nil when its location
// holds no usable coin.
type CoinSource func(fields map[string]any) []chain.Coin

// CoinsAt reads coins from the first of names holding either a list of coin
// objects or a single coin object.
func CoinsAt(names ...string) CoinSource {
	return func(fields map[string]any) []chain.Coin {
		for _, name := range names {
			if coins := coinsFrom(fields[name]); len(coins) > 0 {
				return coins
			}
		}
		return nil
	}
}

// SelfCoin treats the message itself as a single coin.
func SelfCoin() CoinSource {
	return func(fields map[string]any) []chain.Coin {
		if c, ok := coinFrom(fields); ok {
			return []chain.Coin{c}
		}
		return nil
	}
}

// Rule tells the decoder where a message type keeps its addresses and
// amounts. Coin sources are tried in order and the first non-empty one wins.
type Rule struct {
	Addresses []Field
	Coins     []CoinSource
}

var (
	delegator = Alias("delegatorAddress", "delegator_address")
	validator = Alias("validatorAddress", "validator_address")
)

var defaultRules = map[string]Rule{
	TypeMsgSend: {
		Addresses: []Field{Alias("fromAddress", "from_address"), Alias("toAddress", "to_address")},
		Coins:     []CoinSource{CoinsAt("amount"), CoinsAt("coins"), CoinsAt("value"), SelfCoin()},
	},
	TypeMsgDelegate: {
		Addresses: []Field{delegator, validator},
		Coins:     []CoinSource{CoinsAt("amount")},
	},
	TypeMsgUndelegate: {
		Addresses: []Field{delegator, validator},
		Coins:     []CoinSource{CoinsAt("amount")},
	},
	TypeMsgBeginRedelegate: {
		Addresses: []Field{
			delegator,
			Alias("validatorSrcAddress", "validator_src_address"),
			Alias("validatorDstAddress", "validator_dst_address"),
		},
		Coins: []CoinSource{CoinsAt("amount")},
	},
	// Rewards are only visible in the transaction events.
	TypeMsgWithdrawDelegatorReward: {
		Addresses: []Field{delegator, validator},
	},
	TypeMsgTransfer: {
		Addresses: []Field{Alias("sender"), Alias("receiver")},
		Coins:     []CoinSource{CoinsAt("token")},
	},
	TypeMsgMintPhoton: {
		Addresses: []Field{Alias("toAddress", "to_address")},
		Coins:     []CoinSource{CoinsAt("amount")},
	},
}

// DefaultRules returns a copy of the built-in extraction table.
func DefaultRules() map[string]Rule {
	return maps.Clone(defaultRules)
}

// AddressPattern matches bech32 addresses with one of the given prefixes and
// a 20 byte payload.
func AddressPattern(prefixes ...string) *regexp.Regexp {
	sorted := slices.Clone(prefixes)
	slices.SortFunc(sorted, func(a, b string) int { return len(b) - len(a) })

	quoted := make([]string, len(sorted))
	for i, p := range sorted {
		quoted[i] = regexp.QuoteMeta(p)
	}

	return regexp.MustCompile(`(?:` + strings.Join(quoted, "|") + `)1[a-z0-9]{38}`)
}

// ShortType returns the last dotted segment of a type URL, e.g. "MsgSend".
func ShortType(typeURL string) string {
	if i := strings.LastIndexByte(typeURL, '.'); i >= 0 && i < len(typeURL)-1 {
		return typeURL[i+1:]
	}
	return typeURL
}

func coinsFrom(v any) []chain.Coin {
	switch v := v.(type) {
	case []any:
		coins := make([]chain.Coin, 0, len(v))
		for _, item := range v {
			if c, ok := coinFrom(item); ok {
				coins = append(coins, c)
			}
		}
		return coins
	case map[string]any:
		if c, ok := coinFrom(v); ok {
			return []chain.Coin{c}
		}
	}
	return nil
}

func stringValue(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case uint64:
		return strconv.FormatUint(v, 10), true
	default:
		return "", false
	}
}

// scanAddresses collects every address matching re in the string leaves of
// v. Map keys are visited in a stable order so the result is deterministic.
func scanAddresses(v any, re *regexp.Regexp, found *types.OrderedSet[string], depth int) {
	if depth > maxDepth {
		return
	}

	switch v := v.(type) {
	case string:
		found.Add(re.FindAllString(v, -1)...)
	case []any:
		for _, item := range v {
			scanAddresses(item, re, found, depth+1)
		}
	case map[string]any:
		keys := slices.Collect(maps.Keys(v))
		slices.SortFunc(keys, compareKeys)
		for _, k := range keys {
			scanAddresses(v[k], re, found, depth+1)
		}
	}
}

// compareKeys orders numeric keys numerically and before named keys.
func compareKeys(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return na - nb
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
