package core

import (
	"fmt"
	"net/url"
	"reflect"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Query flattens the filter into query parameters. Nested keys are joined with
// "." and nil values are skipped.
func (f Filter) Query() url.Values {
	values := url.Values{}
	flatten(values, "", f)
	return values
}

func flatten(values url.Values, prefix string, node map[string]any) {
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		switch v := value.(type) {
		case nil:
			continue
		case Filter:
			flatten(values, path, v)
		case map[string]any:
			flatten(values, path, v)
		default:
			rv := reflect.ValueOf(v)
			if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
				for i := 0; i < rv.Len(); i++ {
					values.Add(path, fmt.Sprint(rv.Index(i).Interface()))
				}
				continue
			}
			values.Set(path, fmt.Sprint(v))
		}
	}
}

// ScopeFilter turns a filter into WHERE clauses on the model's table.
// Keys are field names and are converted with the default naming strategy.
// Supported values are scalars (equality) and {"in": [...]}. nil values are skipped.
func ScopeFilter(filter Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		naming := schema.NamingStrategy{}

		keys := maps.Keys(filter)
		slices.Sort(keys)

		for _, key := range keys {
			column := naming.ColumnName("", key)
			switch v := filter[key].(type) {
			case nil:
				continue
			case map[string]any:
				in, ok := v["in"]
				if !ok || len(v) != 1 {
					db.AddError(fmt.Errorf("unsupported nested filter on %s", key))
					return db
				}
				db = db.Where(fmt.Sprintf("%s IN ?", column), in)
			case Filter:
				db.AddError(fmt.Errorf("unsupported nested filter on %s", key))
				return db
			default:
				db = db.Where(fmt.Sprintf("%s = ?", column), v)
			}
		}
		return db
	}
}
