package alfred

import (
	"encoding/json"
)

// Value holds either a single string or an ordered list of strings. Alfred
// accepts both shapes for Universal Action payloads and infers the shape on
// its side, so the value is passed through to the wire exactly as built.
type Value struct {
	one  string
	many []string
	set  bool
}

// One builds a Value carrying a single string.
func One(s string) Value {
	return Value{one: s, set: true}
}

// Many builds a Value carrying an ordered list of strings.
func Many(ss ...string) Value {
	return Value{many: ss, set: true}
}

// IsZero reports whether the Value was never set. Used by the omitzero
// serialization rule.
func (v Value) IsZero() bool {
	return !v.set
}

// MarshalJSON emits the raw string or the raw list, with no coercion.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.many != nil {
		return json.Marshal(v.many)
	}
	return json.Marshal(v.one)
}

// Action describes a typed payload handed to Universal Actions when the
// item is selected, instead of the ordinary arg passing. Each field takes a
// single string or a list via One and Many.
type Action struct {
	// Text is passed to Universal Actions as text.
	Text Value `json:"text,omitzero"`
	// URL is passed to Universal Actions as a URL.
	URL Value `json:"url,omitzero"`
	// File is a file path passed to Universal Actions.
	File Value `json:"file,omitzero"`
	// Auto lets Universal Actions detect the payload type itself.
	Auto Value `json:"auto,omitzero"`
}

// IsZero reports whether no payload field is set.
func (a Action) IsZero() bool {
	return a.Text.IsZero() && a.URL.IsZero() && a.File.IsZero() && a.Auto.IsZero()
}

// ActionArg is the union accepted by Item.Actions: either a raw string or
// string list (Alfred autodetects the type) or a structured Action.
type ActionArg struct {
	raw    Value
	action *Action
}

// RawAction wraps a plain string or string-list payload.
func RawAction(v Value) ActionArg {
	return ActionArg{raw: v}
}

// StructuredAction wraps a typed Action payload.
func StructuredAction(a Action) ActionArg {
	return ActionArg{action: &a}
}

// IsZero reports whether neither variant is set.
func (a ActionArg) IsZero() bool {
	return a.raw.IsZero() && a.action == nil
}

// MarshalJSON emits whichever variant is set, unchanged.
func (a ActionArg) MarshalJSON() ([]byte, error) {
	if a.action != nil {
		return json.Marshal(a.action)
	}
	return json.Marshal(a.raw)
}
