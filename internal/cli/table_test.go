package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableCommand_Golden(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"table_rem", []string{"table", "rem", "--operands", "7,-3,0,2.5"}},
		{"table_mul", []string{"table", "*", "--operands", "65536,-1,0.5"}},
		{"table_not", []string{"table", "not"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			// Regenerate with:
			//   go test ./internal/cli -run TestTableCommand_Golden -update
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			g.Assert(t, tt.golden, []byte(out))
		})
	}
}

func TestTableCommand_DefaultOperands(t *testing.T) {
	out, _, err := execute(t, "table", "==")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+len(DefaultOperands)*len(DefaultOperands))
	assert.Equal(t, "eq (equality)", lines[0])
	assert.Contains(t, lines, "nan == nan => false (bool)")
	assert.Contains(t, lines, "0 == -0.0 => true (bool)")
}

func TestTableCommand_JSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "table", "bool", "--operands", "0,-0.0,nan")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   TableResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "bool", resp.Data.Op)
	assert.Equal(t, "truthiness", resp.Data.Description)
	require.Len(t, resp.Data.Rows, 3)
	assert.Equal(t, "false", resp.Data.Rows[0].Result)
	assert.Equal(t, "false", resp.Data.Rows[1].Result)
	assert.Equal(t, "true", resp.Data.Rows[2].Result)
}

func TestTableCommand_Errors(t *testing.T) {
	_, _, err := execute(t, "table", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, _, err := execute(t, "table", "+", "--operands", "1,two")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E003]")
}
