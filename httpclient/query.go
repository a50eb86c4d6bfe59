package httpclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// EncodeQuery serialises params into URL query values.
//
// params may be nil, url.Values, a map or a struct (json tags apply).
// Nil values are skipped, slices become repeated keys, and nested objects
// are JSON-encoded into a single value.
func EncodeQuery(params any) (url.Values, error) {
	out := url.Values{}
	switch p := params.(type) {
	case nil:
		return out, nil
	case url.Values:
		for k, vs := range p {
			out[k] = append([]string(nil), vs...)
		}
		return out, nil
	case map[string]string:
		for k, v := range p {
			out.Set(k, v)
		}
		return out, nil
	}

	raw, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("encode query: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return nil, fmt.Errorf("encode query: params must be an object, got %T", params)
	}

	for key, value := range fields {
		if value == nil {
			continue
		}
		if list, ok := value.([]any); ok {
			for _, item := range list {
				if item == nil {
					continue
				}
				s, err := queryValue(item)
				if err != nil {
					return nil, fmt.Errorf("encode query %q: %w", key, err)
				}
				out.Add(key, s)
			}
			continue
		}
		s, err := queryValue(value)
		if err != nil {
			return nil, fmt.Errorf("encode query %q: %w", key, err)
		}
		out.Set(key, s)
	}
	return out, nil
}

func queryValue(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool:
		return strconv.FormatBool(x), nil
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// mergeQuery adds every value of extra to base.
func mergeQuery(base url.Values, extra url.Values) {
	for k, vs := range extra {
		for _, v := range vs {
			base.Add(k, v)
		}
	}
}
