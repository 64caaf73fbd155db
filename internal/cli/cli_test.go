package cli

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDefaultsToHelp(t *testing.T) {
	parsed, err := Parse(nil)
	require.NoError(t, err)
	require.True(t, parsed.ShowHelp)
	require.Equal(t, CommandHelp, parsed.Command)
}

func TestParseCommandWithConfig(t *testing.T) {
	parsed, err := Parse([]string{"--config", "/tmp/blitzdeck.conf", "doctor"})
	require.NoError(t, err)
	require.Equal(t, CommandDoctor, parsed.Command)
	require.Equal(t, "/tmp/blitzdeck.conf", parsed.ConfigPath)
	require.False(t, parsed.ShowHelp)
}

func TestParseGenerateWithOverrides(t *testing.T) {
	parsed, err := Parse([]string{"generate", "--input", "list.txt", "--output", "out.pptx", "--seed", "42"})
	require.NoError(t, err)
	require.Equal(t, CommandGenerate, parsed.Command)
	require.Equal(t, "list.txt", parsed.InputPath)
	require.Equal(t, "out.pptx", parsed.OutputPath)
	require.Equal(t, int64(42), parsed.Seed)
	require.True(t, parsed.SeedSet)
}

func TestParseArgMatrix(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  string
		wantCmd  Command
		wantHelp bool
		wantPath string
	}{
		{
			name:     "help short flag",
			args:     []string{"-h"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "help long flag",
			args:     []string{"--help"},
			wantCmd:  CommandHelp,
			wantHelp: true,
		},
		{
			name:     "version flag",
			args:     []string{"--version"},
			wantCmd:  CommandVersion,
			wantHelp: false,
		},
		{
			name:    "missing config path",
			args:    []string{"--config"},
			wantErr: "requires a path",
		},
		{
			name:    "missing seed value",
			args:    []string{"--seed"},
			wantErr: "requires a value",
		},
		{
			name:    "non-numeric seed",
			args:    []string{"--seed", "lots"},
			wantErr: "must be an integer",
		},
		{
			name:    "negative seed",
			args:    []string{"--seed", "-3"},
			wantErr: "non-negative",
		},
		{
			name:    "unknown flag",
			args:    []string{"--bogus"},
			wantErr: "unknown flag",
		},
		{
			name:    "unknown command",
			args:    []string{"bogus"},
			wantErr: "unknown command",
		},
		{
			name:     "valid generate command",
			args:     []string{"generate"},
			wantCmd:  CommandGenerate,
			wantHelp: false,
		},
		{
			name:     "valid doctor with config",
			args:     []string{"--config", "/tmp/cfg", "doctor"},
			wantCmd:  CommandDoctor,
			wantHelp: false,
			wantPath: "/tmp/cfg",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.args)
			if tc.wantErr != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.wantCmd, parsed.Command)
			require.Equal(t, tc.wantHelp, parsed.ShowHelp)
			require.Equal(t, tc.wantPath, parsed.ConfigPath)
		})
	}
}

func TestHelpTextIncludesCoreCommands(t *testing.T) {
	text := HelpText("blitzdeck")
	require.Contains(t, text, "generate")
	require.Contains(t, text, "doctor")
	require.Contains(t, text, "version")
	require.Contains(t, text, "--config PATH")
	require.Contains(t, text, "--seed N")
}
