// Package format renders raw numeric values as compact human readable strings
// for the chart front-end (e.g. market cap "1.23M", volume "$4.56K").
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// printer renders grouped decimals; the front-end expects en-US grouping.
var printer = message.NewPrinter(language.English)

type unit struct {
	threshold float64
	suffix    string
}

// Suffix order matters: the first threshold that matches wins.
var units = []unit{
	{1e9, "B"},
	{1e6, "M"},
	{1e3, "K"},
}

// Options control number rendering.
type Options struct {
	Decimals int
	Compact  bool
	Prefix   string
}

// Option customises a single Number call.
type Option func(*Options)

// WithDecimals overrides the fixed fraction digit count (default 2).
func WithDecimals(d int) Option {
	return func(o *Options) {
		if d >= 0 {
			o.Decimals = d
		}
	}
}

// WithPrefix prepends a literal prefix, typically a currency symbol.
func WithPrefix(p string) Option {
	return func(o *Options) {
		o.Prefix = p
	}
}

// WithCompact toggles K/M/B suffixing (default on).
func WithCompact(compact bool) Option {
	return func(o *Options) {
		o.Compact = compact
	}
}

// Number converts a raw value into a display string. Nil and non-finite
// inputs yield nil so callers can pass unknown upstream fields through
// unchanged. Values at or above 1e3/1e6/1e9 are divided by the threshold and
// suffixed with K/M/B; everything else is rendered with locale grouping and
// exactly Decimals fraction digits.
func Number(v *float64, opts ...Option) *string {
	o := Options{Decimals: 2, Compact: true}
	for _, opt := range opts {
		opt(&o)
	}
	if v == nil {
		return nil
	}
	n := *v
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	if o.Compact {
		for _, u := range units {
			if n >= u.threshold {
				s := o.Prefix + fmt.Sprintf("%.*f", o.Decimals, n/u.threshold) + u.suffix
				return &s
			}
		}
	}
	s := o.Prefix + printer.Sprint(number.Decimal(n, number.Scale(o.Decimals)))
	return &s
}
