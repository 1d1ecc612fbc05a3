// Package serializer turns arbitrary field values into the canonical string
// form used to compare and store entity snapshots.
package serializer

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DateTimeLayout is the layout used for time values
const DateTimeLayout = "2006-01-02 15:04:05"

// Identifiable is implemented by persisted items that are serialized by their ID
type Identifiable interface {
	GetID() int64
}

// Serialize converts a value into its canonical string form. Serializing a
// string returns it unchanged, so Serialize(Serialize(v)) == Serialize(v).
func Serialize(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(DateTimeLayout)
	case *time.Time:
		if v == nil {
			return ""
		}
		return v.Format(DateTimeLayout)
	case bool:
		return strconv.FormatBool(v)
	case Identifiable:
		if isNilPointer(value) {
			return ""
		}
		return strconv.FormatInt(v.GetID(), 10)
	case fmt.Stringer:
		if isNilPointer(value) {
			return ""
		}
		return v.String()
	case json.Number:
		return v.String()
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return ""
		}
		return Serialize(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return formatFloat(rv.Float(), 32)
	case reflect.Float64:
		return formatFloat(rv.Float(), 64)
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Slice, reflect.Array:
		if ids, ok := itemIDs(rv); ok {
			return marshal(ids)
		}
	}

	return marshal(value)
}

// itemIDs returns the IDs of a list made only of Identifiable items
func itemIDs(rv reflect.Value) ([]int64, bool) {
	if rv.Len() == 0 {
		return nil, false
	}

	ids := make([]int64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, ok := rv.Index(i).Interface().(Identifiable)
		if !ok || isNilPointer(item) {
			return nil, false
		}
		ids = append(ids, item.GetID())
	}
	return ids, true
}

// formatFloat keeps a fractional part on whole numbers so 1.0 stays "1.0"
// and never compares equal to the integer 1
func formatFloat(f float64, bitSize int) string {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}

func marshal(value interface{}) string {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(data)
}

func isNilPointer(value interface{}) bool {
	rv := reflect.ValueOf(value)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
