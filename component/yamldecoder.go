package component

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"github.com/synaptecltd/tsgen/waveform"
)

// Unmarshals a yaml list of components into the container. Named components
// are keyed by name, unnamed ones by a fresh UUID.
func (c *Container) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var unmarshaledYaml []map[string]interface{}
	if err := unmarshal(&unmarshaledYaml); err != nil {
		return err
	}

	if *c == nil {
		*c = make(Container)
	}
	for _, yamlEntry := range unmarshaledYaml {
		comp, err := createComponentFromYamlEntry(yamlEntry)
		if err != nil {
			return err
		}

		name := comp.GetName()
		if name == "" {
			c.AddComponent(comp)
			continue
		}
		if _, exists := (*c)[name]; exists {
			return fmt.Errorf("duplicate component name: %s", name)
		}
		(*c)[name] = comp
	}

	return nil
}

// Returns a decodeHook function that can be used to unmarshal components from a yaml file using mapstructure.
// This supports configuration solutions like spf13/viper that use mapstructure to unmarshal yaml files.
func GetDecodeHook() (mapstructure.DecodeHookFunc, error) {
	decodeHook := func(f reflect.Type, t reflect.Type, yamlEntry interface{}) (interface{}, error) {
		if t == reflect.TypeOf((*Component)(nil)).Elem() {
			return createComponentFromYamlEntry(yamlEntry)
		}
		return yamlEntry, nil
	}

	return decodeHook, nil
}

// Creates a component from a yaml entry based on its "type" (or "Type") field.
func createComponentFromYamlEntry(yamlEntry interface{}) (Component, error) {
	m, err := stringKeyed(yamlEntry)
	if err != nil {
		return nil, err
	}

	// must check both m["type"] and m["Type"] because some yaml parsers convert to lower case and some don't
	typeStr, ok := m["type"].(string)
	if !ok {
		typeStr, ok = m["Type"].(string)
		if !ok {
			return nil, errors.New("component type field is missing or not a string")
		}
	}
	fields := make(map[string]interface{}, len(m))
	for k, v := range m {
		if k != "type" && k != "Type" {
			fields[k] = v
		}
	}

	switch typeStr {
	case "waveform":
		var params WaveformParams
		if err := decodeParams(&params, fields); err != nil {
			return nil, err
		}
		return NewWaveformComponent(params)
	case "process":
		var params ProcessParams
		if err := decodeParams(&params, fields); err != nil {
			return nil, err
		}
		return NewProcessComponent(params)
	case "trend":
		var params TrendParams
		if err := decodeParams(&params, fields); err != nil {
			return nil, err
		}
		return NewTrendComponent(params)
	case "spike":
		var params SpikeParams
		if err := decodeParams(&params, fields); err != nil {
			return nil, err
		}
		return NewSpikeComponent(params)
	case "expression":
		var params ExpressionParams
		if err := decodeParams(&params, fields); err != nil {
			return nil, err
		}
		return NewExpressionComponent(params)
	default:
		return nil, fmt.Errorf("unknown component type: %s", typeStr)
	}
}

// Use mapstructure to decode a yaml entry into component params, rejecting
// unknown keys.
func decodeParams[T any](params *T, m map[string]interface{}) error {
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			paramSpecDecodeHookFunc(),
		),
		ErrorUnused: true,
		Result:      params,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return err
	}
	return decoder.Decode(m)
}

// Returns a DecodeHookFunc that reads a number or a list of numbers into a
// waveform.ParamSpec.
func paramSpecDecodeHookFunc() mapstructure.DecodeHookFuncType {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(waveform.ParamSpec{}) {
			return data, nil
		}
		if spec, ok := data.(waveform.ParamSpec); ok {
			return spec, nil
		}
		return waveform.ParseParamSpec(data)
	}
}

// yaml.v2 decodes nested maps with interface{} keys.
func stringKeyed(entry interface{}) (map[string]interface{}, error) {
	switch m := entry.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml entry has non-string key %v", k)
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("yaml entry cannot be parsed to map[string]interface{}: %v", entry)
	}
}
