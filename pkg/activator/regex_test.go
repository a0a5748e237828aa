package activator_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/activator"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dialects = []activator.Dialect{activator.DialectRE2, activator.DialectBacktracking}

func TestRegex_FullStringMatch(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			exact, err := activator.NewRegex("exact", []domain.Rule{
				{Pattern: "hello", Target: "/hello"},
			}, activator.WithDialect(d))
			require.NoError(t, err)

			_, ok := exact.Match("hello world")
			assert.False(t, ok, "partial match must not activate")

			open, err := activator.NewRegex("open", []domain.Rule{
				{Pattern: "hello.*", Target: "/hello"},
			}, activator.WithDialect(d))
			require.NoError(t, err)

			act, ok := open.Match("hello world")
			require.True(t, ok)
			assert.Equal(t, "/hello", act.Target)
			assert.Equal(t, "open", act.Activator)
			assert.Equal(t, 1.0, act.Confidence)
		})
	}
}

func TestRegex_NamedCapture(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			r, err := activator.NewRegex("weather", []domain.Rule{
				{Pattern: `(?<city>\w+) weather`, Target: "/weather"},
			}, activator.WithDialect(d))
			require.NoError(t, err)

			act, ok := r.Match("paris weather")
			require.True(t, ok)

			ctx, isRegex := act.Context.(domain.RegexContext)
			require.True(t, isRegex)
			assert.Equal(t, []string{"paris weather", "paris"}, ctx.Groups)
			assert.Equal(t, map[string]string{"city": "paris"}, ctx.Named)
		})
	}
}

func TestRegex_CaseInsensitiveUnicode(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			r, err := activator.NewRegex("greet", []domain.Rule{
				{Pattern: "привет|ÉTÉ", Target: "/greet"},
			}, activator.WithDialect(d))
			require.NoError(t, err)

			_, ok := r.Match("ПРИВЕТ")
			assert.True(t, ok)
			_, ok = r.Match("été")
			assert.True(t, ok)
		})
	}
}

func TestRegex_AlternationIsFullyAnchored(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			r, err := activator.NewRegex("alt", []domain.Rule{
				{Pattern: "yes|no", Target: "/answer"},
			}, activator.WithDialect(d))
			require.NoError(t, err)

			_, ok := r.Match("yes")
			assert.True(t, ok)
			_, ok = r.Match("yes please")
			assert.False(t, ok)
			_, ok = r.Match("oh no")
			assert.False(t, ok)
		})
	}
}

func TestRegex_FirstRuleWins(t *testing.T) {
	r, err := activator.NewRegex("order", []domain.Rule{
		{Pattern: "book .*", Target: "/booking"},
		{Pattern: "book (?<what>.*)", Target: "/booking/item"},
	})
	require.NoError(t, err)

	act, ok := r.Match("book a table")
	require.True(t, ok)
	assert.Equal(t, "/booking", act.Target)
	assert.Equal(t, []domain.Rule{
		{Pattern: "book .*", Target: "/booking"},
		{Pattern: "book (?<what>.*)", Target: "/booking/item"},
	}, r.Rules())
}

func TestRegex_GroupCountIncludesUnmatchedGroups(t *testing.T) {
	r, err := activator.NewRegex("opt", []domain.Rule{
		{Pattern: `order (\d+)( urgent)?`, Target: "/order"},
	})
	require.NoError(t, err)

	act, ok := r.Match("order 42")
	require.True(t, ok)
	ctx := act.Context.(domain.RegexContext)
	assert.Equal(t, []string{"order 42", "42", ""}, ctx.Groups)
	assert.Empty(t, ctx.Named)
}

func TestRegex_RE2NumbersGroupsLeftToRight(t *testing.T) {
	r, err := activator.NewRegex("mixed", []domain.Rule{
		{Pattern: `(?<from>\w+) to (\w+)`, Target: "/route"},
	})
	require.NoError(t, err)

	act, ok := r.Match("paris to rome")
	require.True(t, ok)
	ctx := act.Context.(domain.RegexContext)
	assert.Equal(t, "paris", ctx.Group(1))
	assert.Equal(t, "rome", ctx.Group(2))
	v, _ := ctx.Value("from")
	assert.Equal(t, "paris", v)
}

func TestRegex_BacktrackingFeatures(t *testing.T) {
	r, err := activator.NewRegex("bt", []domain.Rule{
		{Pattern: `(?!cancel)(\w+) now`, Target: "/do"},
		{Pattern: `(\w+) \1`, Target: "/echo"},
	}, activator.WithDialect(activator.DialectBacktracking))
	require.NoError(t, err)

	act, ok := r.Match("go now")
	require.True(t, ok)
	assert.Equal(t, "/do", act.Target)

	_, ok = r.Match("cancel now")
	assert.False(t, ok)

	act, ok = r.Match("bye bye")
	require.True(t, ok)
	assert.Equal(t, "/echo", act.Target)

	_, err = activator.NewRegex("bt", []domain.Rule{{Pattern: `(\w+) \1`, Target: "/echo"}})
	assert.ErrorIs(t, err, domain.ErrInvalidPattern, "re2 rejects backreferences at setup time")
}

func TestRegex_InvalidPatternsFailEagerly(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			_, err := activator.NewRegex("broken", []domain.Rule{
				{Pattern: "ok", Target: "/ok"},
				{Pattern: "(unclosed", Target: "/a"},
				{Pattern: "[z-a]", Target: "/b"},
			}, activator.WithDialect(d))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPattern)

			var cfgErr *domain.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, "broken", cfgErr.Activator)
			require.Len(t, cfgErr.Errors, 2)

			var pe *domain.PatternError
			require.True(t, errors.As(cfgErr.Errors[0], &pe))
			assert.Equal(t, 1, pe.Index)
			assert.Equal(t, "(unclosed", pe.Pattern)
		})
	}
}

func TestRegex_UnbalancedGroupCannotEscapeAnchors(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			_, err := activator.NewRegex("escape", []domain.Rule{
				{Pattern: "hello)|(bye", Target: "/a"},
			}, activator.WithDialect(d))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidPattern)

			var pe *domain.PatternError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "hello)|(bye", pe.Pattern)
		})
	}
}

func TestRegex_BalancedGroupsStillMatchWholeInput(t *testing.T) {
	for _, d := range dialects {
		t.Run(string(d), func(t *testing.T) {
			r, err := activator.NewRegex("groups", []domain.Rule{
				{Pattern: "(hello)|(bye)", Target: "/a"},
			}, activator.WithDialect(d))
			require.NoError(t, err)

			_, ok := r.Match("hello world")
			assert.False(t, ok)

			act, ok := r.Match("bye")
			require.True(t, ok)
			assert.Equal(t, []string{"bye", "", "bye"}, act.Context.(domain.RegexContext).Groups)
		})
	}
}

func TestRegex_InvalidConfidence(t *testing.T) {
	_, err := activator.NewRegex("c", nil, activator.WithConfidence(1.5))
	assert.Error(t, err)
}

func TestRegex_CanHandle(t *testing.T) {
	r, err := activator.NewRegex("any", []domain.Rule{{Pattern: ".*", Target: "/any"}})
	require.NoError(t, err)

	assert.True(t, r.CanHandle(domain.Request{Query: "hi"}))
	assert.False(t, r.CanHandle(domain.Request{Event: "start"}))
	assert.False(t, r.CanHandle(domain.Request{}))

	_, ok := r.Activate(domain.Request{Event: "start"})
	assert.False(t, ok)

	act, ok := r.Activate(domain.Request{Query: "anything"})
	assert.True(t, ok)
	assert.Equal(t, "/any", act.Target)
}

func TestRegex_MatchTimeoutSkipsRule(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewWithWriter(&buf, slog.LevelDebug, logging.FormatText)

	r, err := activator.NewRegex("slow", []domain.Rule{
		{Pattern: `(a+)+b`, Target: "/catastrophic"},
		{Pattern: `a+`, Target: "/linear"},
	},
		activator.WithDialect(activator.DialectBacktracking),
		activator.WithMatchTimeout(10*time.Millisecond),
		activator.WithLogger(logger),
	)
	require.NoError(t, err)

	input := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	act, ok := r.Match(input)
	require.True(t, ok)
	assert.Equal(t, "/linear", act.Target)
	assert.Contains(t, buf.String(), "pattern match aborted")
}

func TestParseDialect(t *testing.T) {
	d, err := activator.ParseDialect("")
	require.NoError(t, err)
	assert.Equal(t, activator.DialectRE2, d)

	d, err = activator.ParseDialect("backtracking")
	require.NoError(t, err)
	assert.Equal(t, activator.DialectBacktracking, d)

	_, err = activator.ParseDialect("pcre")
	assert.Error(t, err)
}
