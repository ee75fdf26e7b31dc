package table

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

type valueTag uint8

const (
	tagNull valueTag = iota
	tagText
	tagInt
	tagDecimal
	tagDate
	tagTimestamp
	tagBool
)

// Value is a single cell of a column. The zero value is null.
type Value struct {
	tag valueTag
	s   string
	i   int64
	d   decimal.Decimal
	t   time.Time
	b   bool
}

func Null() Value              { return Value{} }
func TextValue(s string) Value { return Value{tag: tagText, s: s} }
func IntValue(i int64) Value   { return Value{tag: tagInt, i: i} }

func DecimalValue(d decimal.Decimal) Value { return Value{tag: tagDecimal, d: d} }

// DateValue holds a calendar date; the time-of-day component is ignored.
func DateValue(t time.Time) Value { return Value{tag: tagDate, t: t} }

func TimestampValue(t time.Time) Value { return Value{tag: tagTimestamp, t: t} }
func BoolValue(b bool) Value           { return Value{tag: tagBool, b: b} }

func (v Value) IsNull() bool             { return v.tag == tagNull }
func (v Value) Text() string             { return v.s }
func (v Value) Int() int64               { return v.i }
func (v Value) Decimal() decimal.Decimal { return v.d }
func (v Value) Time() time.Time          { return v.t }
func (v Value) Bool() bool               { return v.b }

// Render returns the cell's string form, used for length measurement
// and report output. Null renders as the empty string.
func (v Value) Render() string {
	switch v.tag {
	case tagText:
		return v.s
	case tagInt:
		return strconv.FormatInt(v.i, 10)
	case tagDecimal:
		return v.d.String()
	case tagDate:
		return v.t.Format("2006-01-02")
	case tagTimestamp:
		return v.t.Format("2006-01-02 15:04:05")
	case tagBool:
		if v.b {
			return "true"
		}
		return "false"
	}
	return ""
}
