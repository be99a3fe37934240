package board

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"quiz-match/internal/common"
	"quiz-match/internal/pairing"
)

// --- StringOrArray YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = StringOrArray{str}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// IsMultiple returns true if the array has more than one element.
func (s StringOrArray) IsMultiple() bool {
	return common.IsMultiple(s)
}

// --- ItemList YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for ItemList.
// Accepts:
//   - Single id: paris
//   - Array of ids: [paris, madrid]
//   - Array with labels: [{paris: Paris}, madrid]
//   - Explicit objects: [{id: paris, label: Paris}]
func (l *ItemList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		item, err := parseItem(node)
		if err != nil {
			return err
		}

		*l = ItemList{item}

		return nil

	case yaml.SequenceNode:
		items := make(ItemList, 0, len(node.Content))

		for _, child := range node.Content {
			item, err := parseItem(child)
			if err != nil {
				return err
			}

			items = append(items, item)
		}

		*l = items

		return nil

	default:
		return fmt.Errorf("line %d: expected id or list of items, got %v", node.Line, kindName(node.Kind))
	}
}

// parseItem parses a scalar id, a {id: label} pair or an {id, label} object.
func parseItem(node *yaml.Node) (Item, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var id string
		if err := node.Decode(&id); err != nil {
			return Item{}, err
		}

		return Item{ID: id}, nil

	case yaml.MappingNode:
		var explicit struct {
			ID    string `yaml:"id"`
			Label string `yaml:"label"`
		}

		if hasKey(node, "id") {
			if err := node.Decode(&explicit); err != nil {
				return Item{}, err
			}

			return Item{ID: explicit.ID, Label: explicit.Label}, nil
		}

		if len(node.Content) != 2 {
			return Item{}, fmt.Errorf("line %d: expected single key-value map like {paris: Paris}", node.Line)
		}

		var item Item
		if err := node.Content[0].Decode(&item.ID); err != nil {
			return Item{}, fmt.Errorf("invalid item id: %w", err)
		}

		if err := node.Content[1].Decode(&item.Label); err != nil {
			return Item{}, fmt.Errorf("invalid label for %q: %w", item.ID, err)
		}

		return item, nil

	default:
		return Item{}, fmt.Errorf("line %d: expected id or map in item list, got %v", node.Line, kindName(node.Kind))
	}
}

// MarshalYAML implements custom YAML marshaling for ItemList.
// Items without a label are written as plain ids.
func (l ItemList) MarshalYAML() (any, error) {
	out := make([]any, len(l))

	for i, item := range l {
		if item.Label == "" {
			out[i] = item.ID
		} else {
			out[i] = map[string]string{item.ID: item.Label}
		}
	}

	return out, nil
}

// --- EventList YAML methods ---

// EventList is the event sequence of a script.
type EventList []pairing.Event

// UnmarshalYAML implements custom YAML unmarshaling for EventList.
// Each element is one of:
//   - Shorthand: "key:france"
//   - Single map: {key: france}
//   - Explicit: {kind: value, id: paris}
func (l *EventList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: expected list of events, got %v", node.Line, kindName(node.Kind))
	}

	events := make(EventList, 0, len(node.Content))

	for _, child := range node.Content {
		ev, err := parseEvent(child)
		if err != nil {
			return fmt.Errorf("line %d: %w", child.Line, err)
		}

		events = append(events, ev)
	}

	*l = events

	return nil
}

func parseEvent(node *yaml.Node) (pairing.Event, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return pairing.Event{}, err
		}

		return pairing.ParseEvent(s)

	case yaml.MappingNode:
		if hasKey(node, "kind") {
			var ev pairing.Event
			if err := node.Decode(&ev); err != nil {
				return pairing.Event{}, err
			}

			return pairing.ParseEvent(string(ev.Kind) + ":" + ev.ID)
		}

		if len(node.Content) != 2 {
			return pairing.Event{}, errors.New("expected single key-value map like {key: france}")
		}

		var kind, id string
		if err := node.Content[0].Decode(&kind); err != nil {
			return pairing.Event{}, err
		}

		if err := node.Content[1].Decode(&id); err != nil {
			return pairing.Event{}, err
		}

		return pairing.ParseEvent(kind + ":" + id)

	default:
		return pairing.Event{}, fmt.Errorf("expected string or map, got %v", kindName(node.Kind))
	}
}

// MarshalYAML writes events in the {kind: id} form.
func (l EventList) MarshalYAML() (any, error) {
	out := make([]map[string]string, len(l))
	for i, ev := range l {
		out[i] = map[string]string{string(ev.Kind): ev.ID}
	}

	return out, nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}

	return false
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return fmt.Sprintf("kind %d", k)
	}
}
