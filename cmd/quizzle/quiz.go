package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quizzle-app/quizzle/internal/assets"
	"github.com/quizzle-app/quizzle/internal/cli"
)

func newQuizCommand() *cobra.Command {
	quizCommand := &cobra.Command{
		Use:   "quiz",
		Short: "Quiz commands",
	}

	quizCommand.AddCommand(
		newQuizTakeCommand(),
		newQuizShowCommand(),
		newQuizCreateCommand(),
		newQuizEditCommand(),
		newQuizDeleteCommand(),
		newQuizImportCommand(),
		newQuizExportCommand(),
	)
	return quizCommand
}

func newQuizTakeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "take <quiz id>",
		Short: "Take a quiz",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			q, err := cli.FindQuiz(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			interactive := cli.NewInteractiveQuizCLI(client)
			return interactive.Run(cmd.Context(), interactive.NewDetailCLI(q).TakeOnOpen())
		},
	}
}

func newQuizShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <quiz id>",
		Short: "Show a quiz with a preview of its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			q, err := cli.FindQuiz(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			interactive := cli.NewInteractiveQuizCLI(client)
			return interactive.Run(cmd.Context(), interactive.NewDetailCLI(q))
		},
	}
}

func newQuizCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a quiz interactively",
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
			created, err := interactive.NewQuizFormCLI(validator).Create(cmd.Context())
			if cli.IsEnd(err) {
				return nil
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Quiz id: %s\n", created.ID)
			return err
		},
	}
}

func newQuizEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <quiz id>",
		Short: "Edit a quiz and its questions interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, validator, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			q, err := cli.FindQuiz(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			interactive := cli.NewInteractiveQuizCLI(client)
			if _, err := interactive.NewQuizFormCLI(validator).Edit(cmd.Context(), q); err != nil && !cli.IsEnd(err) {
				return err
			}
			return nil
		},
	}
}

func newQuizDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <quiz id>",
		Short: "Delete a quiz with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, _, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			q, err := cli.FindQuiz(cmd.Context(), client, args[0])
			if err != nil {
				return err
			}
			if err := client.DeleteQuiz(cmd.Context(), q); err != nil {
				return fmt.Errorf("client.DeleteQuiz(%s) > %w", q.ID, err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", q.Title)
			return err
		},
	}
}

func newQuizImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Create a quiz from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, validator, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			created, err := cli.ImportQuiz(cmd.Context(), client, validator, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Imported %s (%s)\n", created.Title, created.ID)
			return err
		},
	}
}

func newQuizExportCommand() *cobra.Command {
	var generatePDF bool
	var outputDir string
	command := &cobra.Command{
		Use:   "export <quiz id>",
		Short: "Export a quiz with its answers to Markdown or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, _, err := setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = client.Close()
			}()

			tmpl, err := assets.ParseQuizTemplate(cfg.Templates.QuizTemplate)
			if err != nil {
				return fmt.Errorf("assets.ParseQuizTemplate() > %w", err)
			}
			if outputDir == "" {
				outputDir = cfg.Outputs.ExportDirectory
			}
			path, err := cli.ExportQuiz(cmd.Context(), client, tmpl, outputDir, args[0], generatePDF)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
			return err
		},
	}
	command.Flags().BoolVar(&generatePDF, "pdf", false, "Convert the Markdown export to PDF")
	command.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory (defaults to outputs.export_directory)")
	return command
}
