package generator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrUnparsable is returned when every parse tier fails to extract the
// expected number of items from a model response.
var ErrUnparsable = errors.New("response not parsable into expected item count")

var numberedPattern = regexp.MustCompile(`\d+\.\s`)

// ParseBatch extracts exactly n text items from a raw model response.
// Tiers, first success wins:
//  1. JSON object lookup under keys (in priority order), value must be
//     an array of exactly n entries.
//  2. Same lookup after stripping control characters from the raw string.
//  3. Bullet lines ("-", "•", "*"), if exactly n are found.
//  4. Segments split on "digit(s).whitespace" numbering, if exactly n
//     non-empty segments remain.
//
// Anything else is an error; a wrong-length list is never truncated or
// padded into a result.
func ParseBatch(raw string, keys []string, n int) ([]string, error) {
	if items, ok := parseJSONList(raw, keys, n); ok {
		return items, nil
	}
	if items, ok := parseJSONList(StripControl(raw), keys, n); ok {
		return items, nil
	}
	if items, ok := parseBullets(raw, n); ok {
		return items, nil
	}
	if items, ok := parseNumbered(raw, n); ok {
		return items, nil
	}
	return nil, fmt.Errorf("%w: want %d", ErrUnparsable, n)
}

// StripControl replaces control bytes (0x00-0x1F and 0x7F) with spaces
// and trims the result. Applying it twice equals applying it once.
func StripControl(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7F {
			return ' '
		}
		return r
	}, s)
	return strings.TrimSpace(cleaned)
}

func parseJSONList(raw string, keys []string, n int) ([]string, bool) {
	if !gjson.Valid(raw) {
		return nil, false
	}
	data := gjson.Parse(raw)
	for _, key := range keys {
		val := data.Get(key)
		if !val.IsArray() {
			continue
		}
		arr := val.Array()
		if len(arr) != n {
			continue
		}
		items := make([]string, n)
		for i, entry := range arr {
			items[i] = entry.String()
		}
		return items, true
	}
	return nil, false
}

func parseBullets(raw string, n int) ([]string, bool) {
	var items []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		var body string
		switch {
		case strings.HasPrefix(line, "-"):
			body = line[1:]
		case strings.HasPrefix(line, "•"):
			body = line[len("•"):]
		case strings.HasPrefix(line, "*"):
			body = line[1:]
		default:
			continue
		}
		body = strings.TrimSpace(body)
		if body != "" {
			items = append(items, body)
		}
	}
	if len(items) != n {
		return nil, false
	}
	return items, true
}

func parseNumbered(raw string, n int) ([]string, bool) {
	var items []string
	for _, seg := range numberedPattern.Split(raw, -1) {
		seg = strings.TrimSpace(seg)
		if seg != "" {
			items = append(items, seg)
		}
	}
	if len(items) != n {
		return nil, false
	}
	return items, true
}
