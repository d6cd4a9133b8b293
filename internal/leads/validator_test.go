package leads

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	info, err := Validate("  Ada Lovelace ", " ada@example.com ", "")
	require.NoError(t, err)
	assert.Equal(t, UserInfo{Name: "Ada Lovelace", Email: "ada@example.com"}, info)
}

func TestValidateMissingName(t *testing.T) {
	_, err := Validate("   ", "ada@example.com", "555-0100")
	assert.ErrorIs(t, err, ErrNameRequired)
}

func TestValidateMissingEmail(t *testing.T) {
	_, err := Validate("Ada", "  ", "")
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestValidatePhoneOptional(t *testing.T) {
	info, err := Validate("Ada", "ada@example.com", " 555-0100 ")
	require.NoError(t, err)
	assert.Equal(t, "555-0100", info.Phone)

	info, err = Validate("Ada", "ada@example.com", "")
	require.NoError(t, err)
	assert.Empty(t, info.Phone)
}
