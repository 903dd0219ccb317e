package jsonq

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/tidwall/gjson"

	"lazyq/config"
)

// Predicate builds the filter for one condition. A record missing the field
// only satisfies "!=", and so does a non-numeric field tested against a number.
func Predicate(c config.Condition) (func(gjson.Result) bool, error) {
	field := c.Field
	if c.Op == "exists" {
		return func(r gjson.Result) bool { return r.Get(field).Exists() }, nil
	}
	if c.Op == "contains" {
		want := cast.ToString(c.Value)
		return func(r gjson.Result) bool {
			v := r.Get(field)
			if v.IsArray() {
				for _, item := range v.Array() {
					if item.String() == want {
						return true
					}
				}
				return false
			}
			return v.Exists() && strings.Contains(v.String(), want)
		}, nil
	}

	test, err := comparison(c.Op)
	if err != nil {
		return nil, err
	}
	value := c.Value
	_, wantNumber := numeric(value)
	return func(r gjson.Result) bool {
		v := r.Get(field)
		if !v.Exists() || (wantNumber && v.Type != gjson.Number) {
			return c.Op == "!="
		}
		return test(compareValue(v, value))
	}, nil
}

func comparison(op string) (func(int) bool, error) {
	switch op {
	case "==":
		return func(c int) bool { return c == 0 }, nil
	case "!=":
		return func(c int) bool { return c != 0 }, nil
	case ">":
		return func(c int) bool { return c > 0 }, nil
	case ">=":
		return func(c int) bool { return c >= 0 }, nil
	case "<":
		return func(c int) bool { return c < 0 }, nil
	case "<=":
		return func(c int) bool { return c <= 0 }, nil
	}
	return nil, fmt.Errorf("jsonq: unsupported operator %q", op)
}

// compareValue compares numerically when both sides are numbers and by string otherwise.
func compareValue(v gjson.Result, want any) int {
	if n, ok := numeric(want); ok && v.Type == gjson.Number {
		return cmp.Compare(v.Num, n)
	}
	return strings.Compare(v.String(), cast.ToString(want))
}

func numeric(v any) (float64, bool) {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		f, err := cast.ToFloat64E(v)
		return f, err == nil
	}
	return 0, false
}

// rank orders JSON kinds: missing and null, then booleans, numbers, strings, and nested values.
func rank(r gjson.Result) int {
	switch r.Type {
	case gjson.Null:
		return 0
	case gjson.False, gjson.True:
		return 1
	case gjson.Number:
		return 2
	case gjson.String:
		return 3
	default:
		return 4
	}
}

// CompareResults is a total order over field values used for sorting.
func CompareResults(a, b gjson.Result) int {
	if c := cmp.Compare(rank(a), rank(b)); c != 0 {
		return c
	}
	switch a.Type {
	case gjson.Number:
		return cmp.Compare(a.Num, b.Num)
	case gjson.False, gjson.True:
		return cmp.Compare(a.Type, b.Type)
	case gjson.String:
		return strings.Compare(a.Str, b.Str)
	case gjson.Null:
		return 0
	}
	return strings.Compare(a.Raw, b.Raw)
}
