// Package locale carries the output locale of the command line tool.
package locale

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default is used when no locale is set or the requested one can not be parsed.
var Default = language.English

var (
	localeKey = ctxKey("locale")
	localeRe  = regexp.MustCompile(`(?i)([a-z]{2,8})([-_][a-z]{4})?([-_][a-z]{2}|\d{3})?`)
)

// WithLocale parses the given raw locale and adds it to the ctx.
// If the locale can not be parsed the ctx is returned unchanged,
// which makes FromCtx fall back to Default.
func WithLocale(ctx context.Context, raw string) context.Context {
	tag, err := Parse(raw)
	if err != nil {
		return ctx
	}

	return context.WithValue(ctx, localeKey, tag)
}

// FromCtx returns the locale in the ctx or Default.
func FromCtx(ctx context.Context) language.Tag {
	tag, ok := ctx.Value(localeKey).(language.Tag)
	if ok {
		return tag
	}

	return Default
}

// Printer returns a printer that formats numbers for the locale in the ctx.
func Printer(ctx context.Context) *message.Printer {
	return message.NewPrinter(FromCtx(ctx))
}

// Parse extracts a locale from raw, which may also be an Accept-Language header.
// Only the base language and an exact region are kept.
func Parse(raw string) (language.Tag, error) {
	match := localeRe.FindString(raw)
	if match == "" {
		return language.Und, fmt.Errorf("invalid locale: %s", raw)
	}

	tag, err := language.Parse(match)
	if err != nil {
		return language.Und, fmt.Errorf("error parsing %s: %w", match, err)
	}

	base, baseconf := tag.Base()
	if baseconf != language.Exact {
		return language.Und, fmt.Errorf("error parsing %s: could not parse base language", match)
	}

	region, regionconf := tag.Region()
	if regionconf != language.Exact {
		return language.Make(base.String()), nil
	}

	tag, err = language.Compose(base, region)
	if err != nil {
		return language.Und, fmt.Errorf("error parsing %s: %w", match, err)
	}

	return tag, nil
}

type ctxKey string
