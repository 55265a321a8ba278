package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/spellint/pkg/check"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	spelling := []check.Finding{
		{Line: 2, Column: 5, Message: "s1", Source: check.SourceSpelling},
		{Line: 1, Column: 3, Message: "s2", Source: check.SourceSpelling},
		{Line: 2, Column: 5, Message: "s3", Source: check.SourceSpelling},
	}
	lint := []check.Finding{
		{Line: 2, Column: 5, Message: "l1", Source: check.SourceLint},
		{Line: 1, Column: 1, Message: "l2", Source: check.SourceLint},
		{Line: 2, Column: 5, Message: "l3", Source: check.SourceLint},
	}

	report := check.Aggregate(spelling, lint)

	messages := make([]string, 0, len(report))
	for _, f := range report {
		messages = append(messages, f.Message)
	}
	assert.Equal(t, []string{"l2", "s2", "l1", "l3", "s1", "s3"}, messages)
	assert.Equal(t, 3, report.Count(check.SourceLint))
	assert.False(t, report.Clean())
}

func TestAggregate_Empty(t *testing.T) {
	t.Parallel()

	report := check.Aggregate(nil, nil)
	assert.True(t, report.Clean())
	assert.Empty(t, report)
}

func TestSource_Text(t *testing.T) {
	t.Parallel()

	for _, src := range []check.Source{check.SourceLint, check.SourceSpelling} {
		text, err := src.MarshalText()
		assert.NoError(t, err)

		var got check.Source
		assert.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, src, got)
	}

	var bad check.Source
	assert.Error(t, bad.UnmarshalText([]byte("style")))
}
