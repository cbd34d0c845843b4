package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paydash/internal/config"
	"paydash/internal/domain/dashboard"
	"paydash/internal/domain/filter"
	"paydash/pkg/logger"
)

func testApp() *app {
	cfg := config.Config{PageSize: 10, DateLayout: "2006-01-02", Locale: "en", Currency: "USD"}
	a := &app{
		cfg:   cfg,
		log:   logger.NewNop(),
		store: filter.NewStore(filter.DashboardRegistry()),
	}
	a.views = dashboard.DefaultViews(a.formatOptions())
	return a
}

func TestParamsCmd(t *testing.T) {
	a := testApp()
	cmd := paramsCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--view", "transactions", "--set", "status=FAILED,REVERSED", "--set", "merchant_id=42", "--page", "2"})

	require.NoError(t, cmd.Execute())

	var params map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &params))
	assert.Equal(t, "FAILED,REVERSED", params["status"])
	assert.Equal(t, "42", params["merchant_id"])
	assert.Equal(t, "2", params["page"])
	assert.Equal(t, "10", params["limit"])
}

func TestParamsCmd_BadSet(t *testing.T) {
	cmd := paramsCmd(testApp())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--view", "offers", "--set", "status"})

	assert.ErrorContains(t, cmd.Execute(), "want key=value")
}

func TestProjectCmd(t *testing.T) {
	input := filepath.Join(t.TempDir(), "customers.json")
	require.NoError(t, os.WriteFile(input, []byte(`{
		"total_record": 1, "total_page": 1, "page": 1, "limit": 10,
		"data": [{"id": 5, "first_name": "Ada", "last_name": "Lovelace", "email": "ada@x.test", "balance": "3"}]
	}`), 0o600))

	cmd := projectCmd(testApp())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--view", "customers", "--input", input})

	require.NoError(t, cmd.Execute())

	var page struct {
		Headers []string         `json:"headers"`
		Rows    []map[string]any `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &page))
	require.Len(t, page.Rows, 1)
	assert.Equal(t, "Ada Lovelace", page.Rows[0]["Name"])
	assert.Equal(t, "3.00 USD", page.Rows[0]["balance"])
	assert.Equal(t, "", page.Rows[0]["phone"])
	assert.Equal(t, []string{"Name", "Email", "Phone", "Balance", "Created"}, page.Headers)
}

func TestCategoriesCmd(t *testing.T) {
	cmd := categoriesCmd(testApp())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "offers")
	assert.Contains(t, out.String(), "product_id")
}
