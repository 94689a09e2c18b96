// Package translate converts parsed frontmatter values to and from
// interchange formats: full YAML, TOML, and JSON. The frontmatter
// dialect itself lives in pkg/miniyaml; this package bridges it to the
// ecosystem codecs for the convert command and structured output.
package translate

import (
	"bytes"
	"encoding/json"
	"math"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/pkg/miniyaml"
)

// ToAny converts a Value into plain Go values (nil, bool, float64,
// string, []any, map[string]any). Mapping order is lost; use ToYAML or
// ToJSON when the rendered output must preserve field order.
func ToAny(v miniyaml.Value) any {
	switch v.Kind() {
	case miniyaml.KindNull:
		return nil
	case miniyaml.KindBool:
		return v.Bool()
	case miniyaml.KindNumber:
		return v.Number()
	case miniyaml.KindString:
		return v.String()
	case miniyaml.KindSequence:
		out := make([]any, 0, v.Len())
		for _, el := range v.Elems() {
			out = append(out, ToAny(el))
		}
		return out
	case miniyaml.KindMapping:
		out := make(map[string]any, v.Len())
		for _, k := range v.Keys() {
			f, _ := v.Get(k)
			out[k] = ToAny(f)
		}
		return out
	default:
		return nil
	}
}

// FromAny converts plain Go values into a Value. Unsupported types
// fail; map keys must be strings.
func FromAny(x any) (miniyaml.Value, error) {
	switch t := x.(type) {
	case nil:
		return miniyaml.Null(), nil
	case bool:
		return miniyaml.Bool(t), nil
	case int:
		return miniyaml.Number(float64(t)), nil
	case int64:
		return miniyaml.Number(float64(t)), nil
	case uint64:
		return miniyaml.Number(float64(t)), nil
	case float64:
		return miniyaml.Number(t), nil
	case string:
		return miniyaml.String(t), nil
	case []any:
		seq := miniyaml.Seq()
		for _, el := range t {
			v, err := FromAny(el)
			if err != nil {
				return miniyaml.Null(), err
			}
			seq.Append(v)
		}
		return seq, nil
	case map[string]any:
		m := miniyaml.Map()
		for k, el := range t {
			v, err := FromAny(el)
			if err != nil {
				return miniyaml.Null(), err
			}
			m.Set(k, v)
		}
		return m, nil
	default:
		return miniyaml.Null(), errors.Newf("unsupported value type %T", x)
	}
}

// yamlNode builds a yaml.Node tree, which is the only yaml.v3 form
// that keeps mapping order.
func yamlNode(v miniyaml.Value) *yaml.Node {
	switch v.Kind() {
	case miniyaml.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case miniyaml.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: miniyaml.Dump(v)}
	case miniyaml.KindNumber:
		tag := "!!float"
		if v.Number() == math.Trunc(v.Number()) {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: miniyaml.Dump(v)}
	case miniyaml.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.String()}
	case miniyaml.KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, el := range v.Elems() {
			n.Content = append(n.Content, yamlNode(el))
		}
		return n
	case miniyaml.KindMapping:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.Keys() {
			f, _ := v.Get(k)
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				yamlNode(f))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// ToYAML renders a Value as full YAML, preserving mapping order.
func ToYAML(v miniyaml.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		return nil, errors.Wrap(err, "marshaling yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "closing yaml encoder")
	}
	return buf.Bytes(), nil
}

// FromYAML parses full YAML into a Value, preserving mapping order.
func FromYAML(data []byte) (miniyaml.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return miniyaml.Null(), errors.Wrap(err, "unmarshaling yaml")
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return miniyaml.Null(), nil
	}
	return fromYAMLNode(root.Content[0])
}

func fromYAMLNode(n *yaml.Node) (miniyaml.Value, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		switch n.Tag {
		case "!!null":
			return miniyaml.Null(), nil
		case "!!bool":
			return miniyaml.Bool(n.Value == "true"), nil
		case "!!int", "!!float":
			num, err := miniyaml.ParseNumber(n.Value)
			if err != nil {
				// exponents and hex forms have no dialect rendering;
				// keep the textual form
				return miniyaml.String(n.Value), nil
			}
			return miniyaml.Number(num), nil
		default:
			return miniyaml.String(n.Value), nil
		}
	case yaml.SequenceNode:
		seq := miniyaml.Seq()
		for _, el := range n.Content {
			v, err := fromYAMLNode(el)
			if err != nil {
				return miniyaml.Null(), err
			}
			seq.Append(v)
		}
		return seq, nil
	case yaml.MappingNode:
		m := miniyaml.Map()
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return miniyaml.Null(), err
			}
			m.Set(n.Content[i].Value, v)
		}
		return m, nil
	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)
	default:
		return miniyaml.Null(), errors.Newf("unsupported yaml node kind %d", n.Kind)
	}
}

// ToTOML renders a Value as TOML. The root must be a mapping; mapping
// order is not preserved.
func ToTOML(v miniyaml.Value) ([]byte, error) {
	if v.Kind() != miniyaml.KindMapping {
		return nil, errors.Newf("toml documents require a mapping root, got %s", v.Kind())
	}
	out, err := toml.Marshal(ToAny(v))
	if err != nil {
		return nil, errors.Wrap(err, "marshaling toml")
	}
	return out, nil
}

// FromTOML parses TOML into a Value.
func FromTOML(data []byte) (miniyaml.Value, error) {
	var x map[string]any
	if err := toml.Unmarshal(data, &x); err != nil {
		return miniyaml.Null(), errors.Wrap(err, "unmarshaling toml")
	}
	return FromAny(normalizeAny(x))
}

// ToJSON renders a Value as indented JSON, preserving mapping order.
func ToJSON(v miniyaml.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, 0); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// FromJSON parses JSON into a Value.
func FromJSON(data []byte) (miniyaml.Value, error) {
	var x any
	if err := json.Unmarshal(data, &x); err != nil {
		return miniyaml.Null(), errors.Wrap(err, "unmarshaling json")
	}
	return FromAny(x)
}

// writeJSON emits ordered JSON by hand; encoding/json would sort the
// mapping keys.
func writeJSON(buf *bytes.Buffer, v miniyaml.Value, depth int) error {
	indent := func(n int) {
		for i := 0; i < n; i++ {
			buf.WriteString("  ")
		}
	}
	switch v.Kind() {
	case miniyaml.KindNull:
		buf.WriteString("null")
	case miniyaml.KindBool, miniyaml.KindNumber:
		buf.WriteString(miniyaml.Dump(v))
	case miniyaml.KindString:
		b, err := json.Marshal(v.String())
		if err != nil {
			return errors.Wrap(err, "marshaling json string")
		}
		buf.Write(b)
	case miniyaml.KindSequence:
		if v.Len() == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, el := range v.Elems() {
			indent(depth + 1)
			if err := writeJSON(buf, el, depth+1); err != nil {
				return err
			}
			if i < v.Len()-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		indent(depth)
		buf.WriteByte(']')
	case miniyaml.KindMapping:
		if v.Len() == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		keys := v.Keys()
		for i, k := range keys {
			indent(depth + 1)
			kb, err := json.Marshal(k)
			if err != nil {
				return errors.Wrap(err, "marshaling json key")
			}
			buf.Write(kb)
			buf.WriteString(": ")
			f, _ := v.Get(k)
			if err := writeJSON(buf, f, depth+1); err != nil {
				return err
			}
			if i < len(keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		indent(depth)
		buf.WriteByte('}')
	}
	return nil
}

// normalizeAny rewrites the codec-specific container and integer types
// the TOML decoder produces into the forms FromAny accepts.
func normalizeAny(x any) any {
	switch t := x.(type) {
	case map[string]any:
		for k, v := range t {
			t[k] = normalizeAny(v)
		}
		return t
	case []any:
		for i, v := range t {
			t[i] = normalizeAny(v)
		}
		return t
	case int64:
		return float64(t)
	case uint64:
		return float64(t)
	case float32:
		return float64(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return x
	}
}
