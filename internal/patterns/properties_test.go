package patterns

import (
	"regexp"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleLines = []string{
	"git status",
	"git add .",
	"git commit -m 'Update features'",
	"git push origin main",
	"git pull upstream develop",
	"docker build -t webapp .",
	"docker run -p 3000:3000 webapp",
	"docker ps -a",
	"docker stop container_name",
	"docker-compose up -d",
	"npm install express",
	"npm run build",
	"npm test --coverage",
	"npm start",
	"yarn add typescript",
	"mkdir -p src/components",
	"ls -la /home/user",
	"cp -r source/ destination/",
	"rm -rf temp_folder",
	"chmod +x script.sh",
	"ps aux | grep node",
	"top -p process_id",
	"df -h",
	"python -m venv myenv",
	"./venv/bin/python main.py",
	"pip install -r requirements.txt",
	"pytest tests/ -v",
	"echo $HOME && cd ~",
	"grep -E '^(a|b)+$' file[1].txt",
	"find . -name \"*.go\" -exec wc -l {} \\;",
	"ls\tsrc",
	"foo\vbar",
	"foo\u00a0bar",
	"echo\u00a0hi there",
	"git status\u00a0--short",
	"ls\u00a0-la",
	"docker-compose\u2003up -d",
	"rm\f-rf tmp",
	"!!!",
	"((",
	"ñandú",
	"x",
	"",
}

func TestGenerateIsTotal(t *testing.T) {
	t.Parallel()

	settingsMatrix := []Settings{
		{},
		{AllowWhitespaceInPaths: true},
		{UseFixedPaths: true},
		{AllowWhitespaceInPaths: true, UseFixedPaths: true},
	}

	for _, settings := range settingsMatrix {
		results := Generate(sampleLines, settings)
		require.Len(t, results, len(sampleLines))

		for i, r := range results {
			assert.Equal(t, commandID(i), r.ID)
			_, err := regexp.Compile(r.Regex)
			assert.NoError(t, err, "line %q produced invalid pattern %q", sampleLines[i], r.Regex)
		}
	}
}

func TestGeneratedPatternsMatchTheirOwnLine(t *testing.T) {
	t.Parallel()

	settingsMatrix := []Settings{
		{},
		{AllowWhitespaceInPaths: true},
		{UseFixedPaths: true},
		{AllowWhitespaceInPaths: true, UseFixedPaths: true},
	}

	for _, settings := range settingsMatrix {
		for _, r := range Generate(sampleLines, settings) {
			assert.Equal(t, CheckMatch, SelfCheck(r), "%+v: %q vs %q", settings, r.Regex, r.OriginalCommand)
		}
	}
}

func TestFixedPatternsMatchExactly(t *testing.T) {
	t.Parallel()

	for _, r := range Generate(sampleLines, Settings{UseFixedPaths: true}) {
		re, err := regexp.Compile(r.Regex)
		require.NoError(t, err)

		assert.Equal(t, r.OriginalCommand, re.FindString(r.OriginalCommand), "pattern %q", r.Regex)
		if r.Components.Parameters != nil || r.Family == FamilyNone {
			assert.False(t, re.MatchString(r.OriginalCommand+" extra"), "pattern %q should reject a longer line", r.Regex)
		}
	}
}

func TestWhitespaceOutsideRegexClassIsKept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		settings Settings
		name     string
		line     string
		regex    string
		rejects  string
	}{
		{
			name:    "no-break space after word",
			line:    "echo\u00a0hi there",
			regex:   "^echo\u00a0hi there",
			rejects: "echohi there",
		},
		{
			name:     "vertical tab in fixed mode",
			line:     "foo\vbar",
			settings: Settings{UseFixedPaths: true},
			regex:    "^foo\vbar$",
			rejects:  "foobar",
		},
		{
			name:     "no-break space with both settings",
			line:     "foo\u00a0bar",
			settings: Settings{AllowWhitespaceInPaths: true, UseFixedPaths: true},
			regex:    "^foo\u00a0bar$",
			rejects:  "foobar",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(tt.line, tt.settings)
			assert.Equal(t, FamilyGeneric, got.Family)
			assert.Equal(t, tt.regex, got.Regex)
			assert.Equal(t, CheckMatch, SelfCheck(got))

			matched, err := Test(got.Regex, tt.rejects)
			require.NoError(t, err)
			assert.False(t, matched, "pattern %q should not match %q", got.Regex, tt.rejects)
		})
	}
}

func TestConfidenceBounds(t *testing.T) {
	t.Parallel()

	for _, r := range Generate(sampleLines, Settings{}) {
		assert.Greater(t, r.Confidence, 0.0, r.OriginalCommand)
		assert.LessOrEqual(t, r.Confidence, 1.0, r.OriginalCommand)
	}
}

func TestBaseConfidenceOrdering(t *testing.T) {
	t.Parallel()

	assert.GreaterOrEqual(t, FamilyGit.baseConfidence(), FamilyDocker.baseConfidence())
	assert.Equal(t, FamilyDocker.baseConfidence(), FamilyPackageManager.baseConfidence())
	assert.GreaterOrEqual(t, FamilyPackageManager.baseConfidence(), FamilyFileOps.baseConfidence())
	assert.GreaterOrEqual(t, FamilyFileOps.baseConfidence(), FamilyGeneric.baseConfidence())
	assert.GreaterOrEqual(t, FamilyGeneric.baseConfidence(), FamilyNone.baseConfidence())
	assert.InDelta(t, 0.3, FamilyNone.baseConfidence(), 1e-9)
}

func TestFallbackConfidenceIsNotAdjusted(t *testing.T) {
	t.Parallel()

	short := Classify("!", Settings{})
	long := Classify("!important --with args", Settings{})

	assert.Equal(t, FamilyNone, short.Family)
	assert.Equal(t, FamilyNone, long.Family)
	assert.InDelta(t, 0.3, short.Confidence, 1e-9)
	assert.InDelta(t, 0.3, long.Confidence, 1e-9)
}

func TestGenerateConcurrently(t *testing.T) {
	t.Parallel()

	want := Generate(sampleLines, Settings{AllowWhitespaceInPaths: true})

	var wg sync.WaitGroup
	results := make([][]ParsedCommand, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Generate(sampleLines, Settings{AllowWhitespaceInPaths: true})
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestFamilyString(t *testing.T) {
	t.Parallel()

	for _, rule := range Catalog() {
		family, err := ParseFamily(rule.Family.String())
		require.NoError(t, err)
		assert.Equal(t, rule.Family, family)
	}

	assert.Equal(t, "no-match", FamilyNone.String())
	assert.Equal(t, "Family(42)", Family(42).String())

	family, err := ParseFamily(" File-Ops ")
	require.NoError(t, err)
	assert.Equal(t, FamilyFileOps, family)

	_, err = ParseFamily("svn")
	assert.Error(t, err)
}

func TestCheckResult(t *testing.T) {
	t.Parallel()

	assert.Equal(t, CheckNoMatch, SelfCheck(ParsedCommand{OriginalCommand: "git status", Regex: "^npm"}))
	assert.Equal(t, CheckInvalid, SelfCheck(ParsedCommand{OriginalCommand: "git status", Regex: "^git(("}))
	assert.Equal(t, "no match", CheckNoMatch.String())

	matched, err := Test(`^git\s+status`, "git   status --short")
	require.NoError(t, err)
	assert.True(t, matched)

	_, err = Test("[", "anything")
	assert.Error(t, err)
}
