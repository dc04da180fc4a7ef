package eventbrite

import (
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldType is the semantic type of a request parameter.
// Each FieldType accepts exactly one Go type; values are never coerced.
type FieldType int

const (
	Integer      FieldType = iota + 1 // int
	Float                             // float64
	Text                              // string
	Boolean                           // bool
	TextSequence                      // []string
	Timestamp                         // time.Time
)

func (t FieldType) String() string {
	switch t {
	case Integer:
		return "int"
	case Float:
		return "float64"
	case Text:
		return "string"
	case Boolean:
		return "bool"
	case TextSequence:
		return "[]string"
	case Timestamp:
		return "time.Time"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// matches reports whether v's dynamic type is the Go representation of t.
func (t FieldType) matches(v any) bool {
	var ok bool
	switch t {
	case Integer:
		_, ok = v.(int)
	case Float:
		_, ok = v.(float64)
	case Text:
		_, ok = v.(string)
	case Boolean:
		_, ok = v.(bool)
	case TextSequence:
		_, ok = v.([]string)
	case Timestamp:
		_, ok = v.(time.Time)
	default:
		panic(fmt.Sprintf("eventbrite: unknown field type %d", int(t)))
	}
	return ok
}

// encode is the wire encoding used when a Field has no Transform.
func (t FieldType) encode(v any) string {
	switch t {
	case Integer:
		return strconv.Itoa(v.(int))
	case Float:
		return strconv.FormatFloat(v.(float64), 'f', -1, 64)
	case Text:
		return v.(string)
	case Boolean:
		return BoolTrueFalse(v)
	case TextSequence:
		return CommaJoined(v)
	case Timestamp:
		return FormatTimestamp(v)
	default:
		panic(fmt.Sprintf("eventbrite: unknown field type %d", int(t)))
	}
}

// Transform converts a type-checked value into its wire form.
type Transform func(v any) string

// Field describes one parameter of one API call.
//
// A nil Value means the parameter was not supplied. The zero values of the
// Go types (0, "", false) are real values and are sent.
type Field struct {
	// Name is the caller-facing parameter name used in errors.
	Name string
	// Wire is the query parameter name sent to the API.
	Wire     string
	Type     FieldType
	Value    any
	Required bool
	// Transform overrides the default encoding of Type.
	Transform Transform
	// Check is an optional validator tag (e.g. "oneof=draft live") applied to Value.
	Check string
}

// Args maps wire parameter names to their encoded values.
type Args map[string]string

// Has reports whether the wire parameter is present.
func (a Args) Has(wire string) bool {
	_, ok := a[wire]
	return ok
}

// Clone returns a shallow copy of a.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Values converts a into url.Values.
func (a Args) Values() url.Values {
	vals := make(url.Values, len(a))
	for k, v := range a {
		vals.Set(k, v)
	}
	return vals
}

// Process validates fields and returns their encoded wire form.
//
// Absent optional fields are omitted. An absent required field fails with
// CodeMissingRequiredValue; a value whose Go type does not match its
// FieldType fails with CodeTypeMismatch whether or not it is required.
// Process has no side effects.
func Process(fields []Field) (Args, error) {
	args := make(Args, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Wire]; dup {
			panic(fmt.Sprintf("eventbrite: duplicate wire name %q", f.Wire))
		}
		seen[f.Wire] = struct{}{}
		if f.Value == nil {
			if f.Required {
				return nil, Errorf(CodeMissingRequiredValue, "%s: required value missing", f.Name).
					WithDetail("field", f.Name)
			}
			continue
		}

		if !f.Type.matches(f.Value) {
			actual := reflect.TypeOf(f.Value).String()
			return nil, Errorf(CodeTypeMismatch, "%s: expected type %s, got %s", f.Name, f.Type, actual).
				WithDetails(map[string]any{
					"field":    f.Name,
					"expected": f.Type.String(),
					"actual":   actual,
				})
		}

		if f.Check != "" {
			if err := validate.Var(f.Value, f.Check); err != nil {
				return nil, checkError(f.Name, err)
			}
		}

		if f.Transform != nil {
			args[f.Wire] = f.Transform(f.Value)
		} else {
			args[f.Wire] = f.Type.encode(f.Value)
		}
	}
	return args, nil
}

// opt returns *p, or nil when p is nil.
func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// seq returns s, or nil when s is nil. An empty non-nil slice is a value.
func seq(s []string) any {
	if s == nil {
		return nil
	}
	return s
}

// orEmpty returns p, or a pointer to a zero T when p is nil.
func orEmpty[T any](p *T) *T {
	if p == nil {
		return new(T)
	}
	return p
}

// Ref returns a pointer to v, for filling optional params fields.
func Ref[T any](v T) *T {
	return &v
}
