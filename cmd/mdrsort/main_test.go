package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("MDRSORT_DIR", "")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)
	assert.Contains(t, out, `1. MDR2  cell("I13") == "Controlled Client Name"`)
	assert.Contains(t, out, `2. MDR1  cell("I13") == "Date from"`)
	assert.NotContains(t, out, "ERROR")
}

func TestRunCommand(t *testing.T) {
	root := t.TempDir()
	csv := "ip_base_number,AV ID\nI-1,42\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "av.csv"), []byte(csv), 0o644))

	out, err := execute(t, "run", root, "--encoding", "utf-8-bom")
	require.NoError(t, err)
	assert.Contains(t, out, "Processed files: 1\nSkipped files: 0\nExported files: 1\n")

	data, err := os.ReadFile(filepath.Join(root, "MDR4", "av.txt"))
	require.NoError(t, err)
	assert.Equal(t, "\xEF\xBB\xBFip_base_number\tAV ID\nI-1\t42\n", string(data))
}

func TestRunCommand_NoExport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "av.csv"), []byte("ip_base_number,Av ID\n"), 0o644))

	out, err := execute(t, "run", root, "--no-export")
	require.NoError(t, err)
	assert.Contains(t, out, "Exported files: 0")
	assert.FileExists(t, filepath.Join(root, "MDR4", "av.csv"))
}

func TestRunCommand_Errors(t *testing.T) {
	_, err := execute(t, "run")
	assert.ErrorContains(t, err, "no folder given")

	_, err = execute(t, "run", t.TempDir(), "--encoding", "ebcdic")
	assert.Error(t, err)

	_, err = execute(t, "run", t.TempDir(), "--retry-attempts", "0")
	assert.Error(t, err)

	_, err = execute(t, "run", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetCellValue("Sheet1", "I13", "Date from"))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	out, err := execute(t, "describe", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Category: MDR1")
	assert.FileExists(t, path)
}
