package domain

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

const YearMonthDayISO8601 string = "2006-01-02"

//Date is a calendar date without time of day
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) *Date {
	return &Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (*Date, error) {
	t, err := time.Parse(YearMonthDayISO8601, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return &Date{t}, nil
}

func (d Date) String() string {
	return d.Format(YearMonthDayISO8601)
}

func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case time.Time:
		d.Time = truncateToDate(value)
		return nil
	case string:
		parsed, err := ParseDate(value)
		if err != nil {
			return err
		}
		d.Time = parsed.Time
		return nil
	}

	return fmt.Errorf("unable to decode %v as a date", v)
}

func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	if ms, ok := raw.DateTimeOK(); ok {
		d.Time = truncateToDate(time.UnixMilli(ms))
		return nil
	}

	if s, ok := raw.StringValueOK(); ok {
		parsed, err := ParseDate(s)
		if err != nil {
			return err
		}
		d.Time = parsed.Time
		return nil
	}

	return fmt.Errorf("unable to decode bson type %s as a date", t.String())
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
