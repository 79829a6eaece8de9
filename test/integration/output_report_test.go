package integration

import (
	"os"
	"testing"

	"github.com/debtplan/payoff-engine/internal/config"
	"github.com/debtplan/payoff-engine/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryFormatterRendersEngineOutput(t *testing.T) {
	req, err := config.NewInputParser().LoadFromFile("../testdata/example_request.yaml")
	require.NoError(t, err)
	result := generate(t, req)

	for _, name := range output.AvailableFormatterNames() {
		t.Run(name, func(t *testing.T) {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f)
			data, err := f.Format(result)
			require.NoError(t, err)
			assert.NotEmpty(t, data)
		})
	}
}

func TestGenerateAllReports(t *testing.T) {
	req, err := config.NewInputParser().LoadFromFile("../testdata/example_request.yaml")
	require.NoError(t, err)
	result := generate(t, req)

	dir := t.TempDir()
	files, err := output.GenerateReport(result, "all", dir)
	require.NoError(t, err)
	assert.Len(t, files, len(output.AvailableFormatterNames()))
	for _, f := range files {
		fi, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, fi.Size(), int64(0), f)
	}
}
