package txdecode

import "google.golang.org/protobuf/encoding/protowire"

type fieldKind uint8

const (
	kindString fieldKind = iota + 1
	kindUint
	kindMessage
)

// fieldSpec describes how to decode one protobuf field of a known message.
type fieldSpec struct {
	name     string
	kind     fieldKind
	repeated bool
	message  schema
}

// schema maps field numbers to their spec.
type schema map[protowire.Number]fieldSpec

func str(name string) fieldSpec { return fieldSpec{name: name, kind: kindString} }

func uint64Field(name string) fieldSpec { return fieldSpec{name: name, kind: kindUint} }

func coinField(name string) fieldSpec {
	return fieldSpec{name: name, kind: kindMessage, message: coinSchema}
}

func coinsField(name string) fieldSpec {
	return fieldSpec{name: name, kind: kindMessage, repeated: true, message: coinSchema}
}

// cosmos.base.v1beta1.Coin
var coinSchema = schema{
	1: str("denom"),
	2: str("amount"),
}

// ibc.core.client.v1.Height
var heightSchema = schema{
	1: uint64Field("revision_number"),
	2: uint64Field("revision_height"),
}

// messageSchemas lists the wire layout of the messages with extraction rules.
var messageSchemas = map[string]schema{
	TypeMsgSend: {
		1: str("from_address"),
		2: str("to_address"),
		3: coinsField("amount"),
	},
	TypeMsgDelegate: {
		1: str("delegator_address"),
		2: str("validator_address"),
		3: coinField("amount"),
	},
	TypeMsgUndelegate: {
		1: str("delegator_address"),
		2: str("validator_address"),
		3: coinField("amount"),
	},
	TypeMsgBeginRedelegate: {
		1: str("delegator_address"),
		2: str("validator_src_address"),
		3: str("validator_dst_address"),
		4: coinField("amount"),
	},
	TypeMsgWithdrawDelegatorReward: {
		1: str("delegator_address"),
		2: str("validator_address"),
	},
	TypeMsgTransfer: {
		1: str("source_port"),
		2: str("source_channel"),
		3: coinField("token"),
		4: str("sender"),
		5: str("receiver"),
		6: {name: "timeout_height", kind: kindMessage, message: heightSchema},
		7: uint64Field("timeout_timestamp"),
		8: str("memo"),
	},
	TypeMsgMintPhoton: {
		1: str("to_address"),
		2: coinField("amount"),
	},
}
