package logger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const redacted = "[REDACTED]"

// Substrings of a lower-cased key whose value is never logged.
var secretKeyParts = []string{"token", "password", "secret", "authorization", "email"}

// Keys whose value is replaced by a short salted hash, so log lines about the
// same processor account can still be correlated.
var hashedKeyParts = []string{"payment_account_id", "external_id"}

type redactor struct {
	enabled bool
	salt    string
}

func (r *redactor) kvs(kv []interface{}) []interface{} {
	if r == nil || !r.enabled || len(kv) == 0 {
		return kv
	}
	out := make([]interface{}, 0, len(kv))
	for i := 0; i < len(kv); i += 2 {
		if i == len(kv)-1 {
			out = append(out, kv[i])
			break
		}
		key := stringify(kv[i])
		out = append(out, key, r.value(normalizeKey(key), kv[i+1]))
	}
	return out
}

func (r *redactor) value(key string, val interface{}) interface{} {
	switch {
	case key == "":
	case containsAny(key, secretKeyParts):
		return redacted
	case containsAny(key, hashedKeyParts):
		return r.hash(val)
	}
	switch v := val.(type) {
	case map[string]interface{}:
		if v == nil {
			return v
		}
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			out[k] = r.value(normalizeKey(k), item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = r.value("", item)
		}
		return out
	default:
		return val
	}
}

func (r *redactor) hash(val interface{}) string {
	raw := stringify(val)
	if raw == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(r.salt + raw))
	return "hash:" + hex.EncodeToString(sum[:])[:12]
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func containsAny(s string, parts []string) bool {
	for _, p := range parts {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
