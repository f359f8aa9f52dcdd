package core

import "strconv"

// Value is an argument that has already been converted to its declared type.
type Value struct {
	typ ParamType
	raw string
	num float64
}

func StringValue(raw string) Value {
	return Value{typ: ParamString, raw: raw}
}

func FloatValue(raw string, f float64) Value {
	return Value{typ: ParamFloat, raw: raw, num: f}
}

func (v Value) Type() ParamType {
	return v.typ
}

func (v Value) Raw() string {
	return v.raw
}

// Float returns the numeric value. It is zero for non-float values.
func (v Value) Float() float64 {
	return v.num
}

func (v Value) String() string {
	if v.typ == ParamFloat {
		return FormatFloat(v.num)
	}
	return v.raw
}

// FormatFloat prints f in its shortest exact decimal form (10, 18.5).
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
