package dashboard

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const capturedResponse = `{
  "total_record": 41,
  "total_page": 3,
  "offset": 20,
  "limit": 20,
  "page": 2,
  "prev_page": 1,
  "next_page": 3,
  "data": [
    {"id": 9007199254740993, "first_name": "Ada", "last_name": "Lovelace", "balance": "10.5"},
    {"id": 12, "first_name": "Grace", "balance": 0}
  ]
}`

func TestDecodeEnvelope(t *testing.T) {
	env, err := DecodeEnvelope(strings.NewReader(capturedResponse))
	require.NoError(t, err)

	meta := env.Meta()
	assert.Equal(t, 41, meta.TotalRecord)
	assert.Equal(t, 3, meta.TotalPage)
	assert.Equal(t, 20, meta.Offset)
	assert.Equal(t, 2, meta.Page)
	require.NotNil(t, meta.PrevPage)
	assert.Equal(t, 1, *meta.PrevPage)

	require.Len(t, env.Data, 2)
	assert.Equal(t, json.Number("9007199254740993"), env.Data[0]["id"])
	assert.Equal(t, json.Number("0"), env.Data[1]["balance"])
}

func TestDecodeEnvelope_NullPages(t *testing.T) {
	env, err := DecodeEnvelope(strings.NewReader(`{"page": 1, "prev_page": null, "next_page": null, "data": []}`))
	require.NoError(t, err)

	assert.Nil(t, env.PrevPage)
	assert.Nil(t, env.NextPage)
	assert.Empty(t, env.Data)
}

func TestDecodeEnvelope_Invalid(t *testing.T) {
	_, err := DecodeEnvelope(strings.NewReader(`{"data": 1}`))
	assert.ErrorContains(t, err, "decode envelope")
}
