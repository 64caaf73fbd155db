package app

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExecuteHelp(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"--help"}, &stdout, &stderr)
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdout.String(), "Usage:")
	require.Empty(t, stderr.String())
}

func TestExecuteVersion(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"version"}, &stdout, &stderr)
	require.Equal(t, 0, exitCode)
	require.Contains(t, stdout.String(), "blitzdeck")
	require.Empty(t, stderr.String())
}

func TestExecuteUnknownCommand(t *testing.T) {
	var stdout bytes.Buffer
	var stderr bytes.Buffer

	exitCode := Execute(context.Background(), []string{"definitely-not-a-command"}, &stdout, &stderr)
	require.Equal(t, 2, exitCode)
	require.Contains(t, stderr.String(), "unknown command")
	require.Contains(t, stderr.String(), "Usage:")
}

type runnerPaths struct {
	configPath string
	inputPath  string
	outputPath string
}

func setupRunnerEnv(t *testing.T, words string) runnerPaths {
	t.Helper()

	t.Setenv("XDG_STATE_HOME", t.TempDir())

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(inputPath, []byte(words), 0o600))

	outputPath := filepath.Join(dir, "deck.pptx")

	configPath := filepath.Join(dir, "config.conf")
	contents := fmt.Sprintf(`{
  "input": {"path": %q},
  "output": {"path": %q},
  "deck": {"randomize_order": false}
}`, inputPath, outputPath)
	require.NoError(t, os.WriteFile(configPath, []byte(contents), 0o600))

	return runnerPaths{configPath: configPath, inputPath: inputPath, outputPath: outputPath}
}

func TestRunnerGenerateWritesDeck(t *testing.T) {
	paths := setupRunnerEnv(t, "eins\nzwei\ndrei\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", paths.configPath, "generate"})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Contains(t, stdout.String(), "3 slides")

	raw, err := os.ReadFile(paths.outputPath)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	require.True(t, names["ppt/presentation.xml"])
	require.True(t, names["ppt/slides/slide3.xml"])
}

func TestRunnerGenerateHonorsFlagOverrides(t *testing.T) {
	paths := setupRunnerEnv(t, "eins\nzwei\n")

	dir := t.TempDir()
	altInput := filepath.Join(dir, "other.txt")
	require.NoError(t, os.WriteFile(altInput, []byte("nur\n"), 0o600))
	altOutput := filepath.Join(dir, "other.pptx")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{
		"--config", paths.configPath,
		"--input", altInput,
		"--output", altOutput,
		"--seed", "7",
		"generate",
	})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Contains(t, stdout.String(), "1 slides")

	_, err := os.Stat(altOutput)
	require.NoError(t, err)
}

func TestRunnerGenerateFailsOnEmptyInput(t *testing.T) {
	paths := setupRunnerEnv(t, "\n  \n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", paths.configPath, "generate"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "error:")

	_, err := os.Stat(paths.outputPath)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunnerGenerateFailsOnMissingInput(t *testing.T) {
	paths := setupRunnerEnv(t, "eins\n")
	require.NoError(t, os.Remove(paths.inputPath))

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", paths.configPath, "generate"})
	require.Equal(t, 1, exitCode)
	require.Contains(t, stderr.String(), "error:")
}

func TestRunnerDoctorCommandDispatchesAndPrintsReport(t *testing.T) {
	paths := setupRunnerEnv(t, "eins\n")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", paths.configPath, "doctor"})
	require.Equal(t, 0, exitCode, stderr.String())
	require.Contains(t, stdout.String(), "config: loaded")
	require.Contains(t, stdout.String(), "input.path")
}

func TestRunnerMissingConfigWarnsAndContinuesWithDoctor(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	missing := filepath.Join(t.TempDir(), "nope.conf")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	runner := Runner{Stdout: &stdout, Stderr: &stderr}

	exitCode := runner.Execute(context.Background(), []string{"--config", missing, "doctor"})
	require.Contains(t, stderr.String(), "not found")
	// default input path does not exist here, so doctor reports failure
	require.Equal(t, 1, exitCode)
}
