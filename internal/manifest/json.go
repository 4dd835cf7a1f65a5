package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/jsonc"
)

const versionKey = "version"

type span struct{ start, end int64 }

// setJSONVersion replaces the top-level "version" value in a JSON or JSONC
// document without reformatting anything else. A missing key is inserted as
// the first member.
//
// jsonc.ToJSON blanks comments and trailing commas in place, so offsets in the
// cleaned copy are valid in the original bytes.
func setJSONVersion(data []byte, version string) ([]byte, error) {
	clean := jsonc.ToJSON(data)
	if len(clean) != len(data) {
		return nil, errors.New("comment stripping changed document length")
	}

	open, spans, err := findTopLevelKey(clean, versionKey)
	if err != nil {
		return nil, err
	}

	value, err := json.Marshal(version)
	if err != nil {
		return nil, err
	}

	if len(spans) == 0 {
		return insertFirstMember(data, clean, open, value), nil
	}

	out := append([]byte{}, data...)
	for i := len(spans) - 1; i >= 0; i-- {
		s := spans[i]
		out = append(out[:s.start], append(append([]byte{}, value...), out[s.end:]...)...)
	}
	return out, nil
}

// findTopLevelKey returns the offset of the opening brace and the value spans
// of every top-level member named key.
func findTopLevelKey(clean []byte, key string) (int64, []span, error) {
	dec := json.NewDecoder(bytes.NewReader(clean))

	tok, err := dec.Token()
	if err != nil {
		return 0, nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return 0, nil, errors.New("manifest is not a JSON object")
	}
	open := dec.InputOffset() - 1

	var spans []span
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return 0, nil, fmt.Errorf("invalid JSON: %w", err)
		}
		name, _ := tok.(string)
		afterKey := dec.InputOffset()

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return 0, nil, fmt.Errorf("invalid JSON value for %q: %w", name, err)
		}
		if name == key {
			spans = append(spans, span{start: skipToValue(clean, afterKey), end: dec.InputOffset()})
		}
	}

	if _, err := dec.Token(); err != nil {
		return 0, nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, nil, errors.New("invalid JSON: data after top-level object")
	}
	return open, spans, nil
}

// skipToValue advances past whitespace and the colon that follow a key
func skipToValue(clean []byte, off int64) int64 {
	for off < int64(len(clean)) {
		switch clean[off] {
		case ' ', '\t', '\r', '\n', ':':
			off++
		default:
			return off
		}
	}
	return off
}

func insertFirstMember(data, clean []byte, open int64, value []byte) []byte {
	after := open + 1
	next := after
	for next < int64(len(clean)) && isSpace(clean[next]) {
		next++
	}
	empty := next < int64(len(clean)) && clean[next] == '}'

	var member bytes.Buffer
	if !empty {
		gap := clean[after:next]
		if nl := bytes.LastIndexByte(gap, '\n'); nl >= 0 {
			member.WriteByte('\n')
			member.Write(gap[nl+1:])
		}
	}
	member.WriteString(`"` + versionKey + `": `)
	member.Write(value)
	if !empty {
		member.WriteByte(',')
		if bytes.IndexByte(clean[after:next], '\n') < 0 {
			member.WriteByte(' ')
		}
	}

	out := make([]byte, 0, len(data)+member.Len())
	out = append(out, data[:after]...)
	out = append(out, member.Bytes()...)
	out = append(out, data[after:]...)
	return out
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
