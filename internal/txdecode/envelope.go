package txdecode

import (
	"bytes"
	"errors"

	"github.com/gabapcia/photonscan/internal/chain"
)

var (
	errEmptyTransaction = errors.New("empty transaction")
	errMissingBody      = errors.New("transaction has no body")
	errUnexpectedField  = errors.New("unexpected field")
	errWireType         = errors.New("unexpected wire type")
	errInvalidString    = errors.New("string field is not valid UTF-8")
	errTooDeep          = errors.New("message nesting too deep")
)

// rawMessage is one transaction message before extraction. fields uses the
// proto field names for known types, and field numbers for unknown ones.
type rawMessage struct {
	typeURL string
	fields  map[string]any
}

// envelope is the encoding independent shape of a transaction.
type envelope struct {
	messages []rawMessage
	fee      []chain.Coin
	gasLimit uint64
	memo     string
}

// parseEnvelope accepts a protobuf TxRaw or a JSON transaction document. A
// TxRaw can never start with '{' (field 15, group start), so that byte alone
// picks JSON. A TxRaw does start with '\n' (field 1), so a document behind
// leading whitespace is only taken as JSON when it is valid JSON.
func parseEnvelope(raw []byte) (envelope, error) {
	if len(raw) == 0 {
		return envelope{}, errEmptyTransaction
	}

	if raw[0] == '{' {
		return parseJSONEnvelope(raw)
	}

	if trimmed := bytes.TrimLeft(raw, " \t\r\n"); len(trimmed) > 0 && trimmed[0] == '{' && jsonAPI.Valid(trimmed) {
		return parseJSONEnvelope(trimmed)
	}

	return parseProtoEnvelope(raw)
}
