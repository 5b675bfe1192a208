// ABOUTME: field=value argument parsing for add, edit and set commands
// ABOUTME: Values are typed by the target struct's json fields and merged over a draft

package main

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// parseAssignments splits "key=value" arguments. Later keys win.
func parseAssignments(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		fields[key] = value
	}
	return fields, nil
}

// applyFields merges fields into dst, converting each value to the kind
// of the matching json field. Unknown and read-only fields are rejected.
func applyFields[T any](dst *T, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	kinds := fieldKinds(reflect.TypeOf(*dst))

	patch := make(map[string]any, len(fields))
	for key, raw := range fields {
		kind, ok := kinds[key]
		if !ok {
			return fmt.Errorf("unknown field %q (fields: %s)", key, strings.Join(fieldNames(kinds), ", "))
		}
		switch kind {
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return fmt.Errorf("%s: must be a number", key)
			}
			patch[key] = n
		case reflect.Bool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return fmt.Errorf("%s: must be true or false", key)
			}
			patch[key] = b
		default:
			patch[key] = raw
		}
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("applying fields: %w", err)
	}
	return nil
}

var readOnlyFields = map[string]bool{
	"id":              true,
	"experience_id":   true,
	"created_at":      true,
	"updated_at":      true,
	"skills_acquired": true,
	"overview_html":   true,
}

// fieldKinds maps each writable json field name of t to its kind.
func fieldKinds(t reflect.Type) map[string]reflect.Kind {
	kinds := make(map[string]reflect.Kind, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" || readOnlyFields[name] {
			continue
		}
		kinds[name] = f.Type.Kind()
	}
	return kinds
}

func fieldNames(kinds map[string]reflect.Kind) []string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
