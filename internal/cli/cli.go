package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type Command string

const (
	CommandGenerate Command = "generate"
	CommandDoctor   Command = "doctor"
	CommandVersion  Command = "version"
	CommandHelp     Command = "help"
)

var validCommands = map[Command]struct{}{
	CommandGenerate: {},
	CommandDoctor:   {},
	CommandVersion:  {},
	CommandHelp:     {},
}

type Parsed struct {
	Command    Command
	ConfigPath string
	InputPath  string
	OutputPath string
	Seed       int64
	SeedSet    bool
	ShowHelp   bool
}

func Parse(args []string) (Parsed, error) {
	parsed := Parsed{Command: CommandHelp, ShowHelp: true}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch arg {
		case "-h", "--help":
			parsed.ShowHelp = true
			parsed.Command = CommandHelp
		case "--version":
			parsed.ShowHelp = false
			parsed.Command = CommandVersion
		case "--config":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--config requires a path")
			}
			parsed.ConfigPath = args[i]
		case "--input":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--input requires a path")
			}
			parsed.InputPath = args[i]
		case "--output":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--output requires a path")
			}
			parsed.OutputPath = args[i]
		case "--seed":
			i++
			if i >= len(args) {
				return Parsed{}, errors.New("--seed requires a value")
			}
			seed, err := strconv.ParseInt(args[i], 10, 64)
			if err != nil {
				return Parsed{}, fmt.Errorf("--seed must be an integer: %q", args[i])
			}
			if seed < 0 {
				return Parsed{}, fmt.Errorf("--seed must be non-negative: %d", seed)
			}
			parsed.Seed = seed
			parsed.SeedSet = true
		default:
			if strings.HasPrefix(arg, "-") {
				return Parsed{}, fmt.Errorf("unknown flag: %s", arg)
			}

			cmd := Command(arg)
			if _, ok := validCommands[cmd]; !ok {
				return Parsed{}, fmt.Errorf("unknown command: %s", arg)
			}

			parsed.Command = cmd
			parsed.ShowHelp = cmd == CommandHelp
		}
	}

	return parsed, nil
}

func HelpText(binaryName string) string {
	return fmt.Sprintf(`Usage:
  %[1]s [flags] <command>

Commands:
  generate  Build a slide deck from the configured word list
  doctor    Run configuration and environment checks
  version   Print version information
  help      Show this help

Flags:
  --config PATH   Config file path (default: $XDG_CONFIG_HOME/blitzdeck/config.conf)
  --input PATH    Word list to read (overrides input.path)
  --output PATH   Deck file to write (overrides output.path)
  --seed N        Shuffle seed for reproducible slide order (overrides deck.seed)
  -h, --help      Show help
  --version       Show version
`, binaryName)
}
