package adapters

import (
	"encoding/json"
	"reflect"
	"strings"
)

// UnmarshalOpen decodes data into v, a pointer to a DTO struct, and stores
// the object members that no field of v names in *extra. It lets a DTO keep
// upstream fields it does not model so they survive a round trip.
//
// DTOs call it from UnmarshalJSON through a method-less alias of themselves:
//
//	func (d *ticketDTO) UnmarshalJSON(b []byte) error {
//		type plain ticketDTO
//		return adapters.UnmarshalOpen(b, (*plain)(d), &d.Extra)
//	}
func UnmarshalOpen(data []byte, v any, extra *map[string]json.RawMessage) error {
	if err := json.Unmarshal(data, v); err != nil {
		return err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}

	known := fieldNames(reflect.TypeOf(v))
	for key := range members {
		if isKnown(known, key) {
			delete(members, key)
		}
	}
	if len(members) == 0 {
		*extra = nil
		return nil
	}
	*extra = members
	return nil
}

// MarshalOpen encodes v and merges extra back into the resulting object.
// Fields of v win over extra members with the same name.
func MarshalOpen(v any, extra map[string]json.RawMessage) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(b, &members); err != nil {
		return nil, err
	}
	for key, raw := range extra {
		if _, ok := members[key]; !ok {
			members[key] = raw
		}
	}
	return json.Marshal(members)
}

// fieldNames lists the JSON member names encoding/json maps onto t's fields.
func fieldNames(t reflect.Type) []string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}
	names := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			continue
		case "":
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// isKnown matches the way encoding/json does: exact name first, then case-insensitively.
func isKnown(names []string, key string) bool {
	for _, n := range names {
		if n == key || strings.EqualFold(n, key) {
			return true
		}
	}
	return false
}
