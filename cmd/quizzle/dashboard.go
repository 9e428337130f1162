package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/quizzle-app/quizzle/internal/cli"
)

type ScopeFlag string

// Set implements pflag.Value.
func (s *ScopeFlag) Set(v string) error {
	switch v {
	case string(ScopeMine):
		*s = ScopeMine
	case string(ScopePublic):
		*s = ScopePublic
	default:
		return fmt.Errorf("invalid value %q, valid values are %q or %q", v, ScopeMine, ScopePublic)
	}
	return nil
}

// String implements pflag.Value.
func (s *ScopeFlag) String() string {
	if s == nil {
		return ""
	}
	return string(*s)
}

// Type implements pflag.Value.
func (s *ScopeFlag) Type() string {
	return "ScopeFlag"
}

var (
	_ pflag.Value = (*ScopeFlag)(nil)
)

const (
	ScopeMine   ScopeFlag = ScopeFlag(cli.ScopeMine)
	ScopePublic ScopeFlag = ScopeFlag(cli.ScopePublic)
)

func newDashboardCommand() *cobra.Command {
	scope := ScopeMine
	command := &cobra.Command{
		Use:   "dashboard",
		Short: "Browse your quizzes and quizzes shared by others",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, validator, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			interactive := cli.NewInteractiveQuizCLI(client)
			return interactive.Run(cmd.Context(), interactive.NewDashboardCLI(validator, cli.DashboardScope(scope)))
		},
	}
	command.Flags().Var(&scope, "scope", "Quizzes listed first. Options: mine, public")
	return command
}
