package txdecode

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.Config{
	UseNumber:              true,
	ValidateJsonRawMessage: true,
}.Froze()

// parseJSONEnvelope accepts the REST/CLI JSON form of a transaction:
//
//	{"body": {"messages": [{"@type": "...", ...}], "memo": ""},
//	 "auth_info": {"fee": {"amount": [...], "gas_limit": "200000"}}}
//
// optionally wrapped in {"tx": ...}. Messages may also use the
// {"typeUrl": "...", "value": {...}} shape, with camelCase field names.
func parseJSONEnvelope(raw []byte) (envelope, error) {
	var doc map[string]any
	if err := jsonAPI.Unmarshal(raw, &doc); err != nil {
		return envelope{}, err
	}

	if _, ok := doc["body"]; !ok {
		if inner, ok := doc["tx"].(map[string]any); ok {
			doc = inner
		}
	}

	body, ok := doc["body"].(map[string]any)
	if !ok {
		return envelope{}, errMissingBody
	}

	var env envelope
	env.memo, _ = stringValue(body["memo"])

	messages, _ := body["messages"].([]any)
	for _, item := range messages {
		m, ok := item.(map[string]any)
		if !ok {
			return envelope{}, errUnexpectedField
		}
		env.messages = append(env.messages, jsonMessage(m))
	}

	authInfo, ok := doc["auth_info"].(map[string]any)
	if !ok {
		authInfo, _ = doc["authInfo"].(map[string]any)
	}

	if fee, ok := authInfo["fee"].(map[string]any); ok {
		env.fee = coinsFrom(fee["amount"])

		gas, _ := stringValue(fee["gas_limit"])
		if gas == "" {
			gas, _ = stringValue(fee["gasLimit"])
		}
		env.gasLimit, _ = strconv.ParseUint(gas, 10, 64)
	}

	return env, nil
}

func jsonMessage(m map[string]any) rawMessage {
	if typeURL, ok := m["@type"].(string); ok {
		fields := make(map[string]any, len(m))
		for k, v := range m {
			if k != "@type" {
				fields[k] = v
			}
		}
		return rawMessage{typeURL: typeURL, fields: fields}
	}

	typeURL, _ := m["typeUrl"].(string)
	if typeURL == "" {
		typeURL, _ = m["type_url"].(string)
	}

	if value, ok := m["value"].(map[string]any); ok && typeURL != "" {
		return rawMessage{typeURL: typeURL, fields: value}
	}

	return rawMessage{typeURL: typeURL, fields: m}
}
