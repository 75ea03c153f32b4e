package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// marshalSamples encodes the full sequence in the store's format.
// Output always ends with a newline.
func marshalSamples(format Format, samples Samples) ([]byte, error) {
	if samples == nil {
		samples = Samples{}
	}

	switch format {
	case FormatYAML:
		// Flow style keeps the file on one line: [135, 140, 145]
		var node yaml.Node
		if err := node.Encode([]float64(samples)); err != nil {
			return nil, fmt.Errorf("marshal samples: %w", err)
		}
		node.Style = yaml.FlowStyle
		data, err := yaml.Marshal(&node)
		if err != nil {
			return nil, fmt.Errorf("marshal samples: %w", err)
		}
		return data, nil
	default:
		// Same separators as a hand-written history: [135, 140, 145]
		var buf bytes.Buffer
		buf.WriteByte('[')
		for i, v := range samples {
			if i > 0 {
				buf.WriteString(", ")
			}
			b, err := json.Marshal(v)
			if err != nil {
				return nil, fmt.Errorf("marshal samples: %w", err)
			}
			buf.Write(b)
		}
		buf.WriteString("]\n")
		return buf.Bytes(), nil
	}
}

// unmarshalSamples decodes a store file body.
// Empty or null documents decode to an empty sequence.
// Elements are decoded through pointers so a null element is rejected
// rather than silently read as zero.
func unmarshalSamples(format Format, data []byte) (Samples, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Samples{}, nil
	}

	var raw []*float64
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	}

	samples := make(Samples, 0, len(raw))
	for i, v := range raw {
		if v == nil {
			return nil, fmt.Errorf("sample %d is null", i+1)
		}
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			return nil, fmt.Errorf("sample %d is not a finite number", i+1)
		}
		samples = append(samples, *v)
	}
	return samples, nil
}
