package patterns

import (
	"regexp"
	"strings"
)

// reSpace is the character set of RE2's \s class. Trimming with anything
// wider, such as strings.TrimSpace, would drop characters the matchers do not
// treat as separators.
const reSpace = " \t\n\f\r"

// lineMatch holds the pieces of a line a catalog rule recognized.
type lineMatch struct {
	text   string   // the full matched line
	tokens []string // literal leading tokens, e.g. ["npm", "install"]
	sep    string   // whitespace between the leading tokens and args
	args   string   // free-form argument remainder
}

// Rule pairs a command-family matcher with its component extractor and regex
// synthesizer.
type Rule struct {
	matcher    *regexp.Regexp
	extract    func(m lineMatch) Components
	synthesize func(m lineMatch, settings Settings) string
	Family     Family
}

// Pattern returns the matcher source, for display.
func (r Rule) Pattern() string {
	return r.matcher.String()
}

// match applies the rule's matcher. Capture groups are the leading tokens
// followed by the separator and argument groups.
func (r Rule) match(line string) (lineMatch, bool) {
	sub := r.matcher.FindStringSubmatch(line)
	if sub == nil {
		return lineMatch{}, false
	}
	n := len(sub)
	return lineMatch{
		text:   sub[0],
		tokens: sub[1 : n-2],
		sep:    sub[n-2],
		args:   strings.Trim(sub[n-1], reSpace),
	}, true
}

// catalog is tried top to bottom and the first match wins. Narrower families
// must stay ahead of the generic rule.
var catalog = []Rule{
	{
		Family:     FamilyGit,
		matcher:    regexp.MustCompile(`(?s)^(git)\s+(add|commit|push|pull|checkout|branch|merge|clone|status|log)(?:(\s+)(.*))?$`),
		extract:    splitActionArgs,
		synthesize: literalArgsRegex(false),
	},
	{
		Family:     FamilyPackageManager,
		matcher:    regexp.MustCompile(`(?s)^(npm|yarn|pnpm)\s+(install|add|remove|build|start|test|run)(?:(\s+)(.*))?$`),
		extract:    splitManagerArgs,
		synthesize: literalArgsRegex(false),
	},
	{
		Family:     FamilyDocker,
		matcher:    regexp.MustCompile(`(?s)^(docker)\s+(build|run|pull|push|ps|images|stop|start|exec)(?:(\s+)(.*))?$`),
		extract:    splitActionArgs,
		synthesize: literalArgsRegex(false),
	},
	{
		Family:     FamilyFileOps,
		matcher:    regexp.MustCompile(`(?s)^(ls|dir|cat|touch|mkdir|rm|cp|mv|chmod|chown)(?:(\s+)(.*))?$`),
		extract:    commandParameters,
		synthesize: literalArgsRegex(true),
	},
	{
		Family:     FamilyGeneric,
		matcher:    regexp.MustCompile(`(?s)^(\w+)(\s*)(.*)$`),
		extract:    commandParameters,
		synthesize: literalArgsRegex(false),
	},
}

// Catalog returns a copy of the ordered rule list.
func Catalog() []Rule {
	rules := make([]Rule, len(catalog))
	copy(rules, catalog)
	return rules
}
