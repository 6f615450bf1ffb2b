package loader

import (
	"fmt"
	"os"
	"strconv"

	"github.com/conneroisu/yamlex/internal/yamlvalue"
	"gopkg.in/yaml.v3"
)

// Load reads path and decodes its contents into a yamlvalue.Value.
func Load(path string) (yamlvalue.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return yamlvalue.Null, fmt.Errorf("loader: read %s: %w", path, err)
	}

	return LoadString(string(data))
}

// LoadString decodes src into a yamlvalue.Value.
func LoadString(src string) (yamlvalue.Value, error) {
	var raw interface{}

	if err := yaml.Unmarshal([]byte(src), &raw); err != nil {
		return yamlvalue.Null, fmt.Errorf("loader: decode: %w", err)
	}

	return convert(raw)
}

func convert(raw interface{}) (yamlvalue.Value, error) {
	switch v := raw.(type) {
	case nil:
		return yamlvalue.Null, nil
	case bool:
		return yamlvalue.Boolean(v), nil
	case int:
		return yamlvalue.Integer(int64(v)), nil
	case int64:
		return yamlvalue.Integer(v), nil
	case uint64:
		return yamlvalue.Integer(int64(v)), nil
	case float64:
		return yamlvalue.Real(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case string:
		return yamlvalue.String(v), nil
	case []interface{}:
		items := make([]yamlvalue.Value, len(v))

		for i, elem := range v {
			converted, err := convert(elem)
			if err != nil {
				return yamlvalue.Null, err
			}

			items[i] = converted
		}

		return yamlvalue.Array(items), nil
	case map[string]interface{}:
		entries := make(map[string]yamlvalue.Value, len(v))

		for k, val := range v {
			converted, err := convert(val)
			if err != nil {
				return yamlvalue.Null, err
			}

			entries[k] = converted
		}

		return yamlvalue.Hash(entries), nil
	default:
		return yamlvalue.Null, fmt.Errorf("loader: unsupported YAML node type %T", raw)
	}
}
