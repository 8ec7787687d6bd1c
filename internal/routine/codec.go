package routine

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the catalog into the persisted JSON layout:
//
//	[{"name":"Morning","tasks":[{"name":"Stretch","time":300}]}]
//
// A routine without tasks always encodes "tasks":[] rather than null.
func Encode(c Catalog) (string, error) {
	out := make(Catalog, len(c))
	for i, r := range c {
		out[i] = r
		if out[i].Tasks == nil {
			out[i].Tasks = []Task{}
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode catalog: %w", err)
	}
	return string(data), nil
}

// Decode parses a persisted catalog. A JSON null decodes to an empty
// catalog.
func Decode(s string) (Catalog, error) {
	var c Catalog
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if c == nil {
		c = Catalog{}
	}
	for i := range c {
		if c[i].Tasks == nil {
			c[i].Tasks = []Task{}
		}
	}
	return c, nil
}
