package registry

import (
	"github.com/msto63/pkit/utils/stringx"
)

func stringTable(opts Options) *Table {
	t := NewTable(TableString)

	t.text("changeExtension", "replace a trailing extension", func(s string, a arguments) (any, error) {
		ext, err := a.text(0)
		if err != nil {
			return nil, err
		}
		return stringx.ChangeExtension(s, ext), nil
	})
	t.text("reverse", "reverse the characters", func(s string, _ arguments) (any, error) {
		return stringx.Reverse(s), nil
	})
	t.text("toTitleCase", "capitalise every word", func(s string, _ arguments) (any, error) {
		return stringx.ToTitleCase(s), nil
	})
	t.text("toWordCapitalized", "uppercase the first letter, lowercase the rest", func(s string, _ arguments) (any, error) {
		return stringx.ToWordCapitalized(s), nil
	})
	t.text("words", "split into runs of word characters", func(s string, _ arguments) (any, error) {
		return stringx.Words(s), nil
	})
	t.text("slashreverse", "swap / and \\", func(s string, _ arguments) (any, error) {
		return stringx.SlashReverse(s), nil
	})
	t.text("slashwin", "use \\ separators", func(s string, _ arguments) (any, error) {
		return stringx.SlashWin(s), nil
	})
	t.text("slashlinux", "use / separators", func(s string, _ arguments) (any, error) {
		return stringx.SlashLinux(s), nil
	})
	t.text("strip", "lowercase without diacritics or whitespace", func(s string, _ arguments) (any, error) {
		return stringx.Strip(s), nil
	})
	t.text("latinise", "remove diacritics", func(s string, _ arguments) (any, error) {
		return stringx.Latinise(s), nil
	})
	t.text("toSlug", "URL slug", func(s string, _ arguments) (any, error) {
		return stringx.ToSlug(s), nil
	})
	t.text("stripCompare", "stripped containment test", func(s string, a arguments) (any, error) {
		other, err := a.text(0)
		if err != nil {
			return nil, err
		}
		return stringx.StripCompare(s, other), nil
	})

	contains := map[string]func(string, ...string) bool{
		"containsAny":   stringx.ContainsAny,
		"containsAnyOf": stringx.ContainsAnyOf,
		"containsAllOf": stringx.ContainsAllOf,
	}
	for _, name := range []string{"containsAny", "containsAnyOf", "containsAllOf"} {
		fn := contains[name]
		t.text(name, "substring tests over needles", func(s string, a arguments) (any, error) {
			needles, err := a.texts(0)
			if err != nil {
				return nil, err
			}
			return fn(s, needles...), nil
		})
	}

	t.text("truncate", "cut to length and append a suffix", func(s string, a arguments) (any, error) {
		n, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		suffix, err := a.textOr(1, opts.TruncateSuffix)
		if err != nil {
			return nil, err
		}
		return stringx.Truncate(s, n, suffix), nil
	})
	t.text("ellipsis", "shorten to a total length with ...", func(s string, a arguments) (any, error) {
		n, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return stringx.Ellipsis(s, n), nil
	})
	t.text("substringFrom", "text between start and stop", func(s string, a arguments) (any, error) {
		start, err := a.textOr(0, "")
		if err != nil {
			return nil, err
		}
		stop, err := a.textOr(1, "")
		if err != nil {
			return nil, err
		}
		return stringx.SubstringFrom(s, start, stop), nil
	})

	t.text("isJson", "parses as JSON", func(s string, _ arguments) (any, error) {
		return stringx.IsJSON(s), nil
	})
	t.text("safeParseJson", "parse JSON or keep the string", func(s string, _ arguments) (any, error) {
		return stringx.SafeParseJSON(s), nil
	})
	t.text("nullParseJson", "parse JSON or null", func(s string, _ arguments) (any, error) {
		return stringx.NullParseJSON(s), nil
	})

	t.text("toCamelCase", "remove - and _ and uppercase the next letter", func(s string, _ arguments) (any, error) {
		return stringx.ToCamelCase(s), nil
	})
	t.text("humanize", "readable sentence case", func(s string, _ arguments) (any, error) {
		return stringx.Humanize(s), nil
	})
	t.text("underscore", "snake_case", func(s string, _ arguments) (any, error) {
		return stringx.Underscore(s), nil
	})
	t.text("filenameCompare", "same final path segment, ignoring case", func(s string, a arguments) (any, error) {
		other, err := a.text(0)
		if err != nil {
			return nil, err
		}
		return stringx.FilenameCompare(s, other), nil
	})
	t.text("escapeHTML", "escape the five HTML entities", func(s string, _ arguments) (any, error) {
		return stringx.EscapeHTML(s), nil
	})
	t.text("unescapeHTML", "unescape the five HTML entities", func(s string, _ arguments) (any, error) {
		return stringx.UnescapeHTML(s), nil
	})
	t.text("countOccurrence", "non-overlapping occurrences of a needle", func(s string, a arguments) (any, error) {
		needle, err := a.text(0)
		if err != nil {
			return nil, err
		}
		cs, err := a.boolOr(1, true)
		if err != nil {
			return nil, err
		}
		return stringx.CountOccurrence(s, needle, cs), nil
	})

	predicates := map[string]func(string) bool{
		"isNumber":       stringx.IsNumber,
		"isFloat":        stringx.IsFloat,
		"isAlphaNumeric": stringx.IsAlphaNumeric,
		"isLower":        stringx.IsLower,
		"isUpper":        stringx.IsUpper,
		"isBlank":        stringx.IsBlank,
		"isNonEmpty":     stringx.IsNonEmpty,
	}
	for _, name := range []string{"isNumber", "isFloat", "isAlphaNumeric", "isLower", "isUpper", "isBlank", "isNonEmpty"} {
		fn := predicates[name]
		t.text(name, "pattern predicate", func(s string, _ arguments) (any, error) {
			return fn(s), nil
		})
	}

	t.text("hashed", "djb2 hex digest, not cryptographic", func(s string, a arguments) (any, error) {
		if !a.has(0) {
			return stringx.Hashed(s), nil
		}
		n, err := a.integer(0)
		if err != nil {
			return nil, err
		}
		return stringx.Hashed(s, n), nil
	})
	t.text("replaceLast", "replace the last literal or pattern match", func(s string, a arguments) (any, error) {
		re, literal, err := a.pattern(0)
		if err != nil {
			return nil, err
		}
		replacement, err := a.text(1)
		if err != nil {
			return nil, err
		}
		if re != nil {
			return stringx.ReplaceLastPattern(s, re, replacement), nil
		}
		return stringx.ReplaceLast(s, literal, replacement), nil
	})
	t.text("toNumber", "first numeric token or NaN", func(s string, _ arguments) (any, error) {
		return stringx.ToNumber(s), nil
	})
	t.text("toBoolean", "yes/no words or truthiness", func(s string, _ arguments) (any, error) {
		return stringx.ToBoolean(s), nil
	})
	t.text("compareScore", "ratio of other's characters found in order", func(s string, a arguments) (any, error) {
		other, err := a.text(0)
		if err != nil {
			return nil, err
		}
		return stringx.CompareScore(s, other), nil
	})

	return t
}
