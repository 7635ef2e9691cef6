// Package csvexport renders slices of records as the CSV files offered by the
// admin back-office.
//
// The format is fixed: the header row lists the JSON field names, string
// values are always quoted (embedded quotes doubled), string lists are joined
// with "; " and quoted, numbers and booleans are written raw, timestamps are
// RFC3339, and any other nested value is JSON-encoded and quoted. Rows are
// separated by a single "\n" with no trailing newline.
package csvexport

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"wildsafari/pkg/utils"
)

var ErrNoRecords = errors.New("csvexport: no records")

var timeType = reflect.TypeOf(time.Time{})

type column struct {
	name  string
	index []int
}

// FileName returns "<name>_<YYYY-MM-DD>.csv" for the given day.
func FileName(name string, at time.Time) string {
	return fmt.Sprintf("%s_%s.csv", name, utils.DateStamp(at))
}

// Encode renders records, which must be a slice of structs or struct pointers.
func Encode(records interface{}) ([]byte, error) {
	rv := reflect.ValueOf(records)
	if rv.Kind() != reflect.Slice {
		return nil, fmt.Errorf("csvexport: expected a slice, got %s", rv.Kind())
	}
	if rv.Len() == 0 {
		return nil, ErrNoRecords
	}

	elemType := rv.Type().Elem()
	if elemType.Kind() == reflect.Ptr {
		elemType = elemType.Elem()
	}
	if elemType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("csvexport: expected struct records, got %s", elemType.Kind())
	}

	cols := columns(elemType, nil)

	var sb strings.Builder
	for i, col := range cols {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(col.name)
	}

	for i := 0; i < rv.Len(); i++ {
		item := reflect.Indirect(rv.Index(i))
		sb.WriteByte('\n')
		for j, col := range cols {
			if j > 0 {
				sb.WriteByte(',')
			}
			field, ok := fieldByIndex(item, col.index)
			if !ok {
				continue
			}
			cell, err := formatValue(field)
			if err != nil {
				return nil, fmt.Errorf("csvexport: field %s: %w", col.name, err)
			}
			sb.WriteString(cell)
		}
	}

	return []byte(sb.String()), nil
}

// columns walks exported fields in declaration order, flattening embedded structs.
func columns(t reflect.Type, parent []int) []column {
	var cols []column
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		index := append(append([]int{}, parent...), i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]

		if f.Anonymous && name == "" {
			ft := f.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				cols = append(cols, columns(ft, index)...)
				continue
			}
		}

		if name == "" {
			name = f.Name
		}
		cols = append(cols, column{name: name, index: index})
	}
	return cols
}

func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func formatValue(v reflect.Value) (string, error) {
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}

	if v.Type() == timeType {
		t := v.Interface().(time.Time)
		if t.IsZero() {
			return `""`, nil
		}
		return quote(t.Format(time.RFC3339)), nil
	}

	switch v.Kind() {
	case reflect.String:
		return quote(v.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Slice, reflect.Array:
		if v.Type().Elem().Kind() == reflect.String {
			parts := make([]string, v.Len())
			for i := range parts {
				parts[i] = v.Index(i).String()
			}
			return quote(strings.Join(parts, "; ")), nil
		}
	}

	raw, err := json.Marshal(v.Interface())
	if err != nil {
		return "", err
	}
	return quote(string(raw)), nil
}
