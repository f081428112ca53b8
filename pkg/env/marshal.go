package env

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

var errNotStruct = errors.New("env: MarshalEnv expects a pointer to a struct")

// MarshalEnv renders the struct's `env` tagged fields as .env lines, in field order.
// Zero values are skipped so envDefault can apply on the next load. Values that
// godotenv would misread are double-quoted.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return "", errNotStruct
	}
	v = v.Elem()
	t := v.Type()

	var sb strings.Builder
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// "KEY,required,notEmpty" -> KEY
		key, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		if key == "" || key == "-" {
			continue
		}

		val := v.Field(i)
		if val.IsZero() {
			continue
		}

		str, err := formatValue(val)
		if err != nil {
			return "", fmt.Errorf("field %s: %w", field.Name, err)
		}
		fmt.Fprintf(&sb, "%s=%s\n", key, quote(str))
	}

	return sb.String(), nil
}

func formatValue(v reflect.Value) (string, error) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'f', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	default:
		return "", fmt.Errorf("unsupported kind %s", v.Kind())
	}
}

func quote(s string) string {
	if s == "" || !strings.ContainsAny(s, " \t\n\"'#=\\$") {
		return s
	}
	return strconv.Quote(s)
}
