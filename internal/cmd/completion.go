package cmd

import (
	"fmt"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish"`
}

func (c *CompletionCmd) Run() error {
	switch c.Shell {
	case "bash":
		return c.generateBash()
	case "zsh":
		return c.generateZsh()
	case "fish":
		return c.generateFish()
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}
}

func (c *CompletionCmd) generateBash() error {
	script := `# bash completion for rotationtest

_rotationtest_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="run check config version completion"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    # Options for run command
    if [[ ${COMP_WORDS[1]} == "run" ]]; then
        case "${prev}" in
            --direction)
                COMPREPLY=( $(compgen -W "cw ccw" -- ${cur}) )
                return 0
                ;;
            --interval|--duration|--threshold|--reset-after|--steps)
                return 0
                ;;
            *)
                opts="--direction --interval --duration --threshold --reset-after --no-reset --steps --plain -h --help"
                COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
                return 0
                ;;
        esac
    fi

    # Options for check command
    if [[ ${COMP_WORDS[1]} == "check" ]]; then
        if [[ ${cur} == -* ]]; then
            opts="--degrees --threshold -h --help"
            COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        fi
        return 0
    fi

    # Options for config command
    if [[ ${COMP_WORDS[1]} == "config" ]]; then
        opts="--path --reset -h --help"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    # Options for completion command
    if [[ ${COMP_WORDS[1]} == "completion" ]]; then
        if [[ ${COMP_CWORD} -eq 2 ]]; then
            opts="bash zsh fish"
            COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        fi
        return 0
    fi
}

complete -F _rotationtest_completions rotationtest
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) generateZsh() error {
	script := `#compdef rotationtest

_rotationtest() {
    local -a commands
    commands=(
        'run:Run the four-viewport rotation accuracy demo'
        'check:Check a single angle for drift'
        'config:Show or reset the persisted settings'
        'version:Show version information'
        'completion:Generate shell completion script'
    )

    local -a run_opts
    run_opts=(
        '--direction[Rotation direction]:direction:(cw ccw)'
        '--interval[Time between rotation starts]:interval:'
        '--duration[Length of each rotation animation]:duration:'
        '--threshold[Drift tolerance in degrees]:threshold:'
        '--reset-after[Rotations before the reset viewport rebuilds]:count:'
        '--no-reset[Disable the periodic scene rebuild]'
        '--steps[Stop after this many rotations per viewport]:count:'
        '--plain[Log one line per rotation instead of repainting]'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    local -a check_opts
    check_opts=(
        '--degrees[Interpret the angle as degrees]'
        '--threshold[Drift tolerance in degrees]:threshold:'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    local -a config_opts
    config_opts=(
        '--path[Print the settings file path]'
        '--reset[Restore the default settings]'
        '(-h --help)'{-h,--help}'[Show help]'
    )

    local -a completion_shells
    completion_shells=(
        'bash:Generate bash completion'
        'zsh:Generate zsh completion'
        'fish:Generate fish completion'
    )

    _arguments -C \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                run)
                    _arguments $run_opts
                    ;;
                check)
                    _arguments $check_opts
                    ;;
                config)
                    _arguments $config_opts
                    ;;
                completion)
                    _describe 'shell' completion_shells
                    ;;
                version)
                    _arguments '(-h --help)'{-h,--help}'[Show help]'
                    ;;
            esac
            ;;
    esac
}

_rotationtest
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) generateFish() error {
	script := `# fish completion for rotationtest

# Main commands
complete -c rotationtest -f -n "__fish_use_subcommand" -a "run" -d "Run the four-viewport rotation accuracy demo"
complete -c rotationtest -f -n "__fish_use_subcommand" -a "check" -d "Check a single angle for drift"
complete -c rotationtest -f -n "__fish_use_subcommand" -a "config" -d "Show or reset the persisted settings"
complete -c rotationtest -f -n "__fish_use_subcommand" -a "version" -d "Show version information"
complete -c rotationtest -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# run command options
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l direction -d "Rotation direction" -r -a "cw ccw"
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l interval -d "Time between rotation starts" -r
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l duration -d "Length of each rotation animation" -r
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l threshold -d "Drift tolerance in degrees" -r
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l reset-after -d "Rotations before the reset viewport rebuilds" -r
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l no-reset -d "Disable the periodic scene rebuild"
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l steps -d "Stop after this many rotations per viewport" -r
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -l plain -d "Log one line per rotation instead of repainting"
complete -c rotationtest -f -n "__fish_seen_subcommand_from run" -s h -l help -d "Show help"

# check command options
complete -c rotationtest -f -n "__fish_seen_subcommand_from check" -l degrees -d "Interpret the angle as degrees"
complete -c rotationtest -f -n "__fish_seen_subcommand_from check" -l threshold -d "Drift tolerance in degrees" -r
complete -c rotationtest -f -n "__fish_seen_subcommand_from check" -s h -l help -d "Show help"

# config command options
complete -c rotationtest -f -n "__fish_seen_subcommand_from config" -l path -d "Print the settings file path"
complete -c rotationtest -f -n "__fish_seen_subcommand_from config" -l reset -d "Restore the default settings"
complete -c rotationtest -f -n "__fish_seen_subcommand_from config" -s h -l help -d "Show help"

# completion command options
complete -c rotationtest -f -n "__fish_seen_subcommand_from completion" -a "bash" -d "Generate bash completion"
complete -c rotationtest -f -n "__fish_seen_subcommand_from completion" -a "zsh" -d "Generate zsh completion"
complete -c rotationtest -f -n "__fish_seen_subcommand_from completion" -a "fish" -d "Generate fish completion"

# version command options
complete -c rotationtest -f -n "__fish_seen_subcommand_from version" -s h -l help -d "Show help"
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) Help() string {
	return `
Generate shell completion scripts for rotationtest.

Examples:
  # Bash
  rotationtest completion bash > /etc/bash_completion.d/rotationtest
  # or
  rotationtest completion bash > ~/.local/share/bash-completion/completions/rotationtest

  # Zsh
  rotationtest completion zsh > ~/.zsh/completion/_rotationtest
  # or add to .zshrc:
  autoload -U compinit && compinit

  # Fish
  rotationtest completion fish > ~/.config/fish/completions/rotationtest.fish
`
}
