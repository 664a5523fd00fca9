package formbridge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formbridge"
)

func TestViolations(t *testing.T) {
	t.Parallel()

	vs := formbridge.Violations{
		{Path: "email", Message: "field is required"},
		{Path: "email", Message: "must be a valid email address"},
		{Path: "items[1].sku", Message: "field is required"},
	}

	t.Run("error summarizes all violations", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t,
			"validation failed: email: field is required; email: must be a valid email address; items[1].sku: field is required",
			vs.Error())
	})

	t.Run("empty violations still satisfy error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "validation failed", formbridge.Violations{}.Error())
	})

	t.Run("has and get are path scoped", func(t *testing.T) {
		t.Parallel()
		assert.True(t, vs.Has("email"))
		assert.False(t, vs.Has("name"))
		assert.Len(t, vs.Get("email"), 2)
		assert.Nil(t, vs.Get("name"))
	})

	t.Run("paths are distinct in first seen order", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, []string{"email", "items[1].sku"}, vs.Paths())
	})

	t.Run("is empty", func(t *testing.T) {
		t.Parallel()
		assert.False(t, vs.IsEmpty())
		assert.True(t, formbridge.Violations(nil).IsEmpty())
	})
}

func TestTriggerString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "field_change", formbridge.TriggerFieldChange.String())
	assert.Equal(t, "submit", formbridge.TriggerSubmit.String())
	assert.Equal(t, "unknown", formbridge.Trigger(99).String())
}
