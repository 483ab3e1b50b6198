package mint

import (
	"github.com/gabapcia/photonscan/internal/chain"

	"google.golang.org/protobuf/encoding/protowire"
)

const TypeURL = "/atomone.photon.v1.MsgMintPhoton"

// MsgMintPhoton burns Amount of the base denom from ToAddress and mints the
// equivalent PHOTON to the same account.
type MsgMintPhoton struct {
	ToAddress string     `json:"to_address"`
	Amount    chain.Coin `json:"amount"`
}

// Marshal returns the protobuf encoding of m.
func (m MsgMintPhoton) Marshal() []byte {
	var b []byte
	b = appendString(b, 1, m.ToAddress)
	b = appendMessage(b, 2, marshalCoin(m.Amount))
	return b
}

// Any returns m wrapped in a google.protobuf.Any.
func (m MsgMintPhoton) Any() []byte {
	var b []byte
	b = appendString(b, 1, TypeURL)
	b = appendMessage(b, 2, m.Marshal())
	return b
}

// BodyBytes returns the TxBody carrying the mint message and memo.
func (r Request) BodyBytes() []byte {
	var b []byte
	b = appendMessage(b, 1, r.Msg.Any())
	b = appendString(b, 2, r.Memo)
	return b
}

// AuthInfoBytes returns an AuthInfo holding only the fee. Signers add their
// signer infos before signing.
func (r Request) AuthInfoBytes() []byte {
	var fee []byte
	for _, coin := range r.Fee {
		fee = appendMessage(fee, 1, marshalCoin(coin))
	}
	if r.Gas > 0 {
		fee = protowire.AppendTag(fee, 2, protowire.VarintType)
		fee = protowire.AppendVarint(fee, r.Gas)
	}

	return appendMessage(nil, 2, fee)
}

// UnsignedTx returns a TxRaw with the body and auth info and no signatures.
func (r Request) UnsignedTx() []byte {
	var b []byte
	b = appendMessage(b, 1, r.BodyBytes())
	b = appendMessage(b, 2, r.AuthInfoBytes())
	return b
}

func marshalCoin(c chain.Coin) []byte {
	var b []byte
	b = appendString(b, 1, c.Denom)
	b = appendString(b, 2, c.Amount)
	return b
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendMessage(b []byte, num protowire.Number, v []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}
