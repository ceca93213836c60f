package patterns

import (
	"regexp"
	"strings"
)

const (
	flexSpace     = `\s+`
	optionalQuote = `["']?`
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// literalArgsRegex returns a synthesizer that matches the leading tokens as
// words and the arguments as an escaped literal. With quotes set, quote
// characters in the arguments become optional when whitespace is allowed.
func literalArgsRegex(quotes bool) func(m lineMatch, settings Settings) string {
	return func(m lineMatch, settings Settings) string {
		prefix := prefixPattern(m.tokens)
		if m.args == "" {
			return "^" + prefix
		}

		sep := ""
		if m.sep != "" {
			sep = flexSpace
		}

		args := regexp.QuoteMeta(m.args)
		if settings.UseFixedPaths {
			return "^" + prefix + sep + args + "$"
		}

		if settings.AllowWhitespaceInPaths {
			args = whitespaceRun.ReplaceAllLiteralString(args, flexSpace)
			if quotes {
				args = strings.NewReplacer(`"`, optionalQuote, `'`, optionalQuote).Replace(args)
			}
		}
		return "^" + prefix + sep + args
	}
}

// prefixPattern joins the literal leading tokens with mandatory whitespace.
func prefixPattern(tokens []string) string {
	quoted := make([]string, len(tokens))
	for i, tok := range tokens {
		quoted[i] = regexp.QuoteMeta(tok)
	}
	return strings.Join(quoted, flexSpace)
}

// fallbackRegex escapes the whole line. It is anchored at the end only in
// fixed-path mode.
func fallbackRegex(line string, settings Settings) string {
	pattern := "^" + regexp.QuoteMeta(line)
	if settings.UseFixedPaths {
		pattern += "$"
	}
	return pattern
}
