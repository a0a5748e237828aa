package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestRegexContext_Accessors(t *testing.T) {
	ctx := domain.RegexContext{
		Groups: []string{"paris weather", "paris"},
		Named:  map[string]string{"city": "paris"},
	}

	assert.Equal(t, domain.ContextRegex, ctx.Kind())
	assert.Equal(t, "paris", ctx.Group(1))
	assert.Equal(t, "", ctx.Group(2))
	assert.Equal(t, "", ctx.Group(-1))

	v, ok := ctx.Value("city")
	assert.True(t, ok)
	assert.Equal(t, "paris", v)

	_, ok = ctx.Value("country")
	assert.False(t, ok)
}

func TestActivation_Target(t *testing.T) {
	assert.False(t, domain.Activation{}.HasTarget())

	a := domain.Activation{Target: "/main/hello", Confidence: 1}
	assert.True(t, a.HasTarget())
	assert.Equal(t, []string{"main", "hello"}, a.TargetPath().Components())
}

func TestConfigError(t *testing.T) {
	cause := fmt.Errorf("missing closing )")
	err := &domain.ConfigError{
		Activator: "greetings",
		Errors: []error{
			&domain.PatternError{Index: 0, Pattern: "(", Target: "/a", Err: cause},
			&domain.PatternError{Index: 2, Pattern: "[", Target: "/b", Err: cause},
		},
	}

	assert.True(t, errors.Is(err, domain.ErrInvalidPattern))
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "2 configuration errors")

	var pe *domain.PatternError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, 0, pe.Index)

	single := &domain.ConfigError{Activator: "x", Errors: []error{cause}}
	assert.Equal(t, `activator "x": missing closing )`, single.Error())
}
