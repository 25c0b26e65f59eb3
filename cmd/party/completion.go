package main

import (
	"os"
	"strings"

	"github.com/jacksmith/party/internal/model"
	"github.com/jacksmith/party/internal/storage"
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for party.

To load completions:

Bash:
  $ source <(party completion bash)
  # To load completions for each session, execute once:
  # Linux:
  $ party completion bash > /etc/bash_completion.d/party
  # macOS:
  $ party completion bash > $(brew --prefix)/etc/bash_completion.d/party

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc
  # To load completions for each session, execute once:
  $ party completion zsh > "${fpath[1]}/_party"
  # You will need to start a new shell for this setup to take effect.

Fish:
  $ party completion fish | source
  # To load completions for each session, execute once:
  $ party completion fish > ~/.config/fish/completions/party.fish
`,
}

var completionBashCmd = &cobra.Command{
	Use:   "bash",
	Short: "Generate bash completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenBashCompletion(os.Stdout)
	},
}

var completionZshCmd = &cobra.Command{
	Use:   "zsh",
	Short: "Generate zsh completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenZshCompletion(os.Stdout)
	},
}

var completionFishCmd = &cobra.Command{
	Use:   "fish",
	Short: "Generate fish completion script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCmd.GenFishCompletion(os.Stdout, true)
	},
}

func init() {
	completionCmd.AddCommand(completionBashCmd)
	completionCmd.AddCommand(completionZshCmd)
	completionCmd.AddCommand(completionFishCmd)
	rootCmd.AddCommand(completionCmd)
}

// savedParty reads the saved party without seeding one, for completions.
func savedParty() *model.Party {
	s, err := storage.Open(workDir())
	if err != nil {
		return nil
	}
	parties, err := s.FindParties()
	if err != nil || len(parties) == 0 {
		return nil
	}
	return parties[0]
}

// completeGuestIDs completes short guest IDs, described by guest name.
func completeGuestIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	p := savedParty()
	if p == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, g := range p.Guests {
		id := model.ShortID(g.ID)
		if strings.HasPrefix(id, strings.ToLower(toComplete)) {
			completions = append(completions, id+"\t"+g.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeItemIDs completes short item IDs, described by item name.
func completeItemIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	p := savedParty()
	if p == nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, it := range p.GoodyBagItems {
		id := model.ShortID(it.ID)
		if strings.HasPrefix(id, strings.ToLower(toComplete)) {
			completions = append(completions, id+"\t"+it.Name)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// completeThemes completes predefined theme names.
func completeThemes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var completions []string
	for _, theme := range model.ThemeOptions {
		if theme == model.CustomTheme {
			continue
		}
		if strings.HasPrefix(strings.ToLower(theme), strings.ToLower(toComplete)) {
			completions = append(completions, theme)
		}
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
