package txdecode

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/gabapcia/photonscan/internal/chain"

	"google.golang.org/protobuf/encoding/protowire"
)

// maxDepth bounds recursion into nested messages.
const maxDepth = 32

// wireField is one decoded protobuf field. Only the value matching typ is set.
type wireField struct {
	num    protowire.Number
	typ    protowire.Type
	bytes  []byte
	varint uint64
}

func consumeFields(b []byte) ([]wireField, error) {
	var fields []wireField
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		f := wireField{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			f.varint = v
			b = b[n:]
		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			f.bytes = v
			b = b[n:]
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, protowire.ParseError(n)
			}
			b = b[n:]
		}

		fields = append(fields, f)
	}
	return fields, nil
}

func (f wireField) expect(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("%w: field %d has type %d", errWireType, f.num, f.typ)
	}
	return nil
}

func (f wireField) string() (string, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return "", err
	}

	if !utf8.Valid(f.bytes) {
		return "", fmt.Errorf("%w: field %d", errInvalidString, f.num)
	}

	return string(f.bytes), nil
}

// parseProtoEnvelope decodes a cosmos.tx.v1beta1.TxRaw. Unknown TxRaw fields
// are rejected; TxBody and AuthInfo skip fields they do not use so newer
// transaction versions still decode.
func parseProtoEnvelope(raw []byte) (envelope, error) {
	fields, err := consumeFields(raw)
	if err != nil {
		return envelope{}, err
	}

	var (
		env      envelope
		body     []byte
		authInfo []byte
		hasBody  bool
	)

	for _, f := range fields {
		if err := f.expect(protowire.BytesType); err != nil {
			return envelope{}, err
		}

		switch f.num {
		case 1:
			body, hasBody = f.bytes, true
		case 2:
			authInfo = f.bytes
		case 3:
			// signatures
		default:
			return envelope{}, fmt.Errorf("%w: TxRaw field %d", errUnexpectedField, f.num)
		}
	}

	if !hasBody {
		return envelope{}, errMissingBody
	}

	if err := parseTxBody(body, &env); err != nil {
		return envelope{}, fmt.Errorf("body: %w", err)
	}

	if err := parseAuthInfo(authInfo, &env); err != nil {
		return envelope{}, fmt.Errorf("auth info: %w", err)
	}

	return env, nil
}

func parseTxBody(b []byte, env *envelope) error {
	fields, err := consumeFields(b)
	if err != nil {
		return err
	}

	for _, f := range fields {
		switch f.num {
		case 1:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			msg, err := parseAny(f.bytes)
			if err != nil {
				return fmt.Errorf("message %d: %w", len(env.messages), err)
			}
			env.messages = append(env.messages, msg)
		case 2:
			memo, err := f.string()
			if err != nil {
				return err
			}
			env.memo = memo
		}
	}
	return nil
}

func parseAny(b []byte) (rawMessage, error) {
	fields, err := consumeFields(b)
	if err != nil {
		return rawMessage{}, err
	}

	var (
		msg   rawMessage
		value []byte
	)

	for _, f := range fields {
		switch f.num {
		case 1:
			if msg.typeURL, err = f.string(); err != nil {
				return rawMessage{}, err
			}
		case 2:
			if err := f.expect(protowire.BytesType); err != nil {
				return rawMessage{}, err
			}
			value = f.bytes
		default:
			return rawMessage{}, fmt.Errorf("%w: Any field %d", errUnexpectedField, f.num)
		}
	}

	msg.fields, err = decodeMessage(value, messageSchemas[msg.typeURL], 0)
	if err != nil {
		return rawMessage{}, fmt.Errorf("%s: %w", msg.typeURL, err)
	}

	return msg, nil
}

func parseAuthInfo(b []byte, env *envelope) error {
	fields, err := consumeFields(b)
	if err != nil {
		return err
	}

	for _, f := range fields {
		if f.num != 2 {
			continue
		}

		if err := f.expect(protowire.BytesType); err != nil {
			return err
		}

		if err := parseFee(f.bytes, env); err != nil {
			return fmt.Errorf("fee: %w", err)
		}
	}
	return nil
}

func parseFee(b []byte, env *envelope) error {
	fields, err := consumeFields(b)
	if err != nil {
		return err
	}

	for _, f := range fields {
		switch f.num {
		case 1:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			values, err := decodeMessage(f.bytes, coinSchema, 0)
			if err != nil {
				return err
			}

			if c, ok := coinFrom(values); ok {
				env.fee = append(env.fee, c)
			}
		case 2:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			env.gasLimit = f.varint
		}
	}
	return nil
}

// decodeMessage decodes b into a field map. Fields described by s are
// decoded by kind under their proto name. Any other field is decoded
// generically under its field number so address scanning can still see it.
func decodeMessage(b []byte, s schema, depth int) (map[string]any, error) {
	if depth > maxDepth {
		return nil, errTooDeep
	}

	fields, err := consumeFields(b)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(fields))
	for _, f := range fields {
		spec, ok := s[f.num]
		if !ok {
			if v, ok := decodeGeneric(f, depth+1); ok {
				appendValue(out, strconv.Itoa(int(f.num)), v, false)
			}
			continue
		}

		v, err := decodeKnown(f, spec, depth+1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", spec.name, err)
		}

		if spec.repeated {
			appendValue(out, spec.name, v, true)
		} else {
			out[spec.name] = v
		}
	}
	return out, nil
}

func decodeKnown(f wireField, spec fieldSpec, depth int) (any, error) {
	switch spec.kind {
	case kindString:
		return f.string()
	case kindUint:
		if err := f.expect(protowire.VarintType); err != nil {
			return nil, err
		}
		return strconv.FormatUint(f.varint, 10), nil
	case kindMessage:
		if err := f.expect(protowire.BytesType); err != nil {
			return nil, err
		}
		return decodeMessage(f.bytes, spec.message, depth)
	default:
		return nil, fmt.Errorf("unsupported field kind %d", spec.kind)
	}
}

// decodeGeneric decodes a field without a schema: varints become decimal
// strings, printable bytes become strings, other bytes are tried as an
// embedded message and dropped when they are not one.
func decodeGeneric(f wireField, depth int) (any, bool) {
	switch f.typ {
	case protowire.VarintType:
		return strconv.FormatUint(f.varint, 10), true
	case protowire.BytesType:
		if printable(f.bytes) {
			return string(f.bytes), true
		}

		nested, err := decodeMessage(f.bytes, nil, depth)
		if err != nil || len(nested) == 0 {
			return nil, false
		}
		return nested, true
	default:
		return nil, false
	}
}

func appendValue(out map[string]any, key string, v any, repeated bool) {
	prev, exists := out[key]
	switch {
	case !exists && repeated:
		out[key] = []any{v}
	case !exists:
		out[key] = v
	default:
		if list, ok := prev.([]any); ok {
			out[key] = append(list, v)
		} else {
			out[key] = []any{prev, v}
		}
	}
}

func printable(b []byte) bool {
	if !utf8.Valid(b) {
		return false
	}

	for _, r := range string(b) {
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// coinFrom reads a {denom, amount} map with both values present.
func coinFrom(v any) (chain.Coin, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return chain.Coin{}, false
	}

	amount, _ := stringValue(m["amount"])
	denom, _ := stringValue(m["denom"])
	if amount == "" || denom == "" {
		return chain.Coin{}, false
	}

	return chain.Coin{Amount: amount, Denom: denom}, true
}
