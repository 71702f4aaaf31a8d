package presenter

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var results = []Result{
	{Method: "continuous", Distance: 0.385, Error: 0.0086},
	{Method: "hist", Distance: 0.31, Error: -0.0664},
}

func TestWriteResultsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResultsCSV(&buf, 0.3764, results))

	want := "method,distance,error\n" +
		"theoretical,0.3764,0\n" +
		"continuous,0.385,0.0086\n" +
		"hist,0.31,-0.0664\n"
	assert.Equal(t, want, buf.String())
}

func TestSaveResultsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	require.NoError(t, SaveResultsCSV(path, 0.3764, results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hist,0.31,-0.0664")

	err = SaveResultsCSV(filepath.Join(t.TempDir(), "missing", "results.csv"), 0, nil)
	assert.Error(t, err)
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(&buf, 0.3764, results)

	assert.Equal(t,
		"theoretical  0.376\n"+
			"continuous   0.385   Error: 0.008600\n"+
			"hist         0.310   Error: -0.066400\n",
		buf.String())
}
