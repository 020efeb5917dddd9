package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bootcamper/authkit/pkg/field"
)

func TestTrigger_Has(t *testing.T) {
	both := field.TriggerBlur | field.TriggerChange

	assert.True(t, both.Has(field.TriggerBlur))
	assert.True(t, both.Has(field.TriggerChange))
	assert.True(t, field.TriggerBlur.Has(field.TriggerBlur))
	assert.False(t, field.TriggerBlur.Has(field.TriggerChange))
	assert.False(t, field.TriggerNone.Has(field.TriggerBlur))
	assert.False(t, both.Has(field.TriggerNone))
}

func TestTrigger_String(t *testing.T) {
	assert.Equal(t, "none", field.TriggerNone.String())
	assert.Equal(t, "blur", field.TriggerBlur.String())
	assert.Equal(t, "blur,change", (field.TriggerBlur | field.TriggerChange).String())
}

func TestParseTrigger(t *testing.T) {
	tr, err := field.ParseTrigger("blur")
	require.NoError(t, err)
	assert.Equal(t, field.TriggerBlur, tr)

	tr, err = field.ParseTrigger("Change, blur")
	require.NoError(t, err)
	assert.Equal(t, field.TriggerBlur|field.TriggerChange, tr)

	tr, err = field.ParseTrigger("change", "blur")
	require.NoError(t, err)
	assert.Equal(t, field.TriggerBlur|field.TriggerChange, tr)

	tr, err = field.ParseTrigger()
	require.NoError(t, err)
	assert.Equal(t, field.TriggerNone, tr)

	_, err = field.ParseTrigger("submit")
	assert.ErrorIs(t, err, field.ErrUnknownTrigger)
}
