package typeconverter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scalar type names understood by the converter. They mirror the type names a
// data schema may declare for its fields.
const (
	TypeBoolean = "boolean"
	TypeByte    = "byte"
	TypeShort   = "short"
	TypeInteger = "integer"
	TypeLong    = "long"
	TypeFloat   = "float"
	TypeDouble  = "double"
	TypeString  = "string"
)

// ValueToBasicType coerces a loosely typed value (JSON-decoded interface{} or CSV
// text) to the declared scalar type.
func ValueToBasicType(value interface{}, dataType string) (interface{}, error) {
	if value == nil {
		return nil, errors.New("value is nil")
	}

	dt := strings.ToLower(dataType)

	switch dt {
	case TypeBoolean:
		return toBool(value)
	case TypeByte:
		v, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		return int8(v), nil
	case TypeShort:
		v, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		return int16(v), nil
	case TypeInteger:
		v, err := toInt64(value)
		if err != nil {
			return nil, err
		}
		return int32(v), nil
	case TypeLong:
		return toInt64(value)
	case TypeFloat:
		v, err := toFloat64(value)
		if err != nil {
			return nil, err
		}
		return float32(v), nil
	case TypeDouble:
		return toFloat64(value)
	case TypeString:
		return toString(value), nil
	}

	return nil, errors.New("unsupported data type: " + dataType)
}

// StringToBasicType parses text into the declared scalar type. Used for
// delimited-text rows where every raw value arrives as a string.
func StringToBasicType(value string, dataType string) (interface{}, error) {
	return ValueToBasicType(value, dataType)
}

// ValueToString renders a typed value in its natural text form, with no quoting
// beyond what the value itself carries.
func ValueToString(value interface{}, dataType string) (string, error) {
	if value == nil {
		return "", errors.New("value is nil")
	}

	dt := strings.ToLower(dataType)

	switch dt {
	case TypeBoolean:
		v, err := toBool(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil
	case TypeByte, TypeShort, TypeInteger, TypeLong:
		v, err := toInt64(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil
	case TypeFloat:
		v, err := toFloat64(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'f', -1, 32), nil
	case TypeDouble:
		v, err := toFloat64(value)
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case TypeString:
		return toString(value), nil
	}

	return "", errors.New("unsupported data type: " + dataType)
}

// IsSupportedType reports whether the scalar type name is one the converter
// understands.
func IsSupportedType(dataType string) bool {
	switch strings.ToLower(dataType) {
	case TypeBoolean, TypeByte, TypeShort, TypeInteger, TypeLong, TypeFloat, TypeDouble, TypeString:
		return true
	}
	return false
}

func toBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	}
	return false, fmt.Errorf("cannot interpret %T as boolean", value)
}

func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float32:
		return int64(v), nil
	case float64:
		// JSON numbers decode as float64; integral schema fields accept them
		return int64(v), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	}
	return 0, fmt.Errorf("cannot interpret %T as integral", value)
}

func toFloat64(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	}
	return 0, fmt.Errorf("cannot interpret %T as floating point", value)
}

func toString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
