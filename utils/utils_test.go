package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	id1 := GenerateID("LOAN")
	id2 := GenerateID("LOAN")

	assert.True(t, strings.HasPrefix(id1, "LOAN_"))
	assert.True(t, strings.HasPrefix(id2, "LOAN_"))
	assert.NotEqual(t, id1, id2)
}

func TestValidateID(t *testing.T) {
	id := GenerateID("HIST")

	assert.NoError(t, ValidateID(id, "HIST"))
	assert.Error(t, ValidateID(id, "LOAN"))
	assert.Error(t, ValidateID("X", "HIST"))
}

func TestTimeRoundTrip(t *testing.T) {
	original := time.Date(2024, 6, 15, 12, 30, 45, 0, time.UTC)

	formatted := FormatTime(original)
	parsed, err := ParseTime(formatted)
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestParseTime_Invalid(t *testing.T) {
	_, err := ParseTime("not a timestamp")
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	type record struct {
		Name  string `json:"name"`
		Count uint64 `json:"count"`
	}

	data, err := MarshalJSON(record{Name: "pool", Count: 3})
	require.NoError(t, err)

	var decoded record
	require.NoError(t, UnmarshalJSON(data, &decoded))
	assert.Equal(t, "pool", decoded.Name)
	assert.Equal(t, uint64(3), decoded.Count)
}
