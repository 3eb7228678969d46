package codegen

import (
	"fmt"
	"math"
	"strconv"

	"github.com/anirudhraja/protoserial/schema"
)

// defaultValue is the resolved default of a singular field as a Go
// expression.
type defaultValue struct {
	expr  string
	empty bool // bytes default of zero length
	nan   bool // float default that is not a number
}

// resolveDefault returns the value an optional field takes when it is absent
// from the input: the explicit default if the schema names one, the first
// value for enums, and the natural zero otherwise.
func resolveDefault(w *codeWriter, field *schema.Field) (defaultValue, error) {
	switch field.Type.Kind {
	case schema.KindEnum:
		enum := field.Type.Enum
		names := newEnumNames(enum)
		if field.HasDefault {
			if _, ok := enum.Value(field.Default); !ok {
				return defaultValue{}, fmt.Errorf("%w: %q is not a value of %s", ErrInvalidDefault, field.Default, enum.FullName())
			}
			return defaultValue{expr: w.Q(names.Value(field.Default))}, nil
		}
		if first := enum.First(); first != nil {
			return defaultValue{expr: w.Q(names.Value(first.Name))}, nil
		}
		return defaultValue{expr: w.Q(names.Type) + "(0)"}, nil

	case schema.KindPrimitive:
		info := primitives[field.Type.PrimitiveType]
		if !field.HasDefault {
			return defaultValue{expr: info.zero, empty: field.Type.PrimitiveType == schema.TypeBytes}, nil
		}
		return primitiveDefault(w, field.Type.PrimitiveType, field.Default)

	case schema.KindMessage:
		if field.HasDefault {
			return defaultValue{}, fmt.Errorf("%w: message field cannot have a default", ErrInvalidDefault)
		}
		return defaultValue{expr: "nil"}, nil
	}
	return defaultValue{}, fmt.Errorf("%w: %s", ErrUnresolvedType, field.Type.TypeName)
}

func primitiveDefault(w *codeWriter, t schema.PrimitiveType, literal string) (defaultValue, error) {
	info := primitives[t]
	invalid := func(err error) (defaultValue, error) {
		return defaultValue{}, fmt.Errorf("%w: %q is not a valid %s: %v", ErrInvalidDefault, literal, t, err)
	}

	switch {
	case t == schema.TypeString:
		return defaultValue{expr: strconv.Quote(literal)}, nil

	case t == schema.TypeBytes:
		if literal == "" {
			return defaultValue{expr: "nil", empty: true}, nil
		}
		return defaultValue{expr: "[]byte(" + strconv.Quote(literal) + ")"}, nil

	case t == schema.TypeBool:
		v, err := strconv.ParseBool(literal)
		if err != nil || (literal != "true" && literal != "false") {
			return invalid(fmt.Errorf("want true or false"))
		}
		return defaultValue{expr: strconv.FormatBool(v)}, nil

	case isFloat(t):
		v, err := strconv.ParseFloat(literal, info.bits)
		if err != nil {
			return invalid(err)
		}
		var expr string
		switch {
		case math.IsNaN(v):
			expr = w.Q(mathPackage.Ident("NaN")) + "()"
		case math.IsInf(v, 1):
			expr = w.Q(mathPackage.Ident("Inf")) + "(1)"
		case math.IsInf(v, -1):
			expr = w.Q(mathPackage.Ident("Inf")) + "(-1)"
		default:
			return defaultValue{expr: strconv.FormatFloat(v, 'g', -1, info.bits)}, nil
		}
		if t == schema.TypeFloat {
			expr = "float32(" + expr + ")"
		}
		return defaultValue{expr: expr, nan: math.IsNaN(v)}, nil

	case isUnsigned(t):
		v, err := strconv.ParseUint(literal, 0, info.bits)
		if err != nil {
			return invalid(err)
		}
		return defaultValue{expr: strconv.FormatUint(v, 10)}, nil

	default:
		v, err := strconv.ParseInt(literal, 0, info.bits)
		if err != nil {
			return invalid(err)
		}
		return defaultValue{expr: strconv.FormatInt(v, 10)}, nil
	}
}

// differs returns a condition that holds when value, an expression of the
// field's type, is not the default.
func (d defaultValue) differs(w *codeWriter, value string, t schema.FieldType) string {
	switch {
	case t.Kind == schema.KindPrimitive && t.PrimitiveType == schema.TypeBytes:
		if d.empty {
			return "len(" + value + ") > 0"
		}
		return "!" + w.Q(bytesPackage.Ident("Equal")) + "(" + value + ", " + d.expr + ")"
	case d.nan:
		return "!" + w.Q(mathPackage.Ident("IsNaN")) + "(float64(" + value + "))"
	default:
		return value + " != " + d.expr
	}
}
