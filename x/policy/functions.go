package policy

import (
	"reflect"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sipradi/pvbu/core"
)

const resourceContextKey = "resourceContext"

// ResolveCondition turns a condition template into a filter.
// Template keys are dot paths into the filter. A value of the form
// "${resourceContext.a.b}" is looked up on resourceContext and becomes nil when
// any segment is missing. Lists become {"in": list}. Keys are applied in sorted
// order, so a dotted key overrides a scalar at its parent path.
func ResolveCondition(template map[string]any, resourceContext any) core.Filter {
	root := map[string]any{resourceContextKey: resourceContext}

	keys := maps.Keys(template)
	slices.Sort(keys)

	result := core.Filter{}
	for _, key := range keys {
		resolved := resolveValue(template[key], root)
		setNested(result, strings.Split(key, "."), resolved)
	}

	return result
}

func isPlaceholder(value any) (string, bool) {
	str, ok := value.(string)
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(str, "${") || !strings.HasSuffix(str, "}") || len(str) < 3 {
		return "", false
	}
	return str[2 : len(str)-1], true
}

func resolveValue(value any, root map[string]any) any {
	path, ok := isPlaceholder(value)
	if !ok {
		return value
	}

	var current any = root
	for _, part := range strings.Split(path, ".") {
		current = lookup(current, part)
		if current == nil {
			return nil
		}
	}
	return current
}

func lookup(obj any, key string) any {
	switch v := obj.(type) {
	case nil:
		return nil
	case core.Filter:
		return v[key]
	case map[string]any:
		return v[key]
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}
	return structToMap(rv.Interface())[key]
}

func setNested(obj map[string]any, path []string, value any) {
	last := path[len(path)-1]

	nested := obj
	for _, key := range path[:len(path)-1] {
		child, ok := nested[key].(map[string]any)
		if !ok {
			child = map[string]any{}
			nested[key] = child
		}
		nested = child
	}

	if isList(value) {
		nested[last] = map[string]any{"in": value}
	} else {
		nested[last] = value
	}
}

func isList(value any) bool {
	if value == nil {
		return false
	}
	kind := reflect.TypeOf(value).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// structToMap projects a struct onto its json field names. Embedded structs are
// flattened and non-nil pointers are dereferenced.
func structToMap(obj any) map[string]any {
	result := make(map[string]any)
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)

		if field.Anonymous {
			if !field.IsExported() {
				continue
			}
			embeddedValue := v.Field(i)
			if embeddedValue.Kind() == reflect.Ptr {
				if embeddedValue.IsNil() {
					continue
				}
				embeddedValue = embeddedValue.Elem()
			}
			if embeddedValue.Kind() != reflect.Struct {
				continue
			}
			embedded := structToMap(embeddedValue.Interface())
			for k, v := range embedded {
				result[k] = v
			}
			continue
		}

		if !field.IsExported() {
			continue
		}

		tag := strings.Split(field.Tag.Get("json"), ",")[0]
		if tag == "" || tag == "-" {
			continue
		}

		value := v.Field(i)
		if value.Kind() == reflect.Ptr {
			if value.IsNil() {
				result[tag] = nil
				continue
			}
			value = value.Elem()
		}

		result[tag] = value.Interface()
	}
	return result
}
