package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/qoonic/forge/internal/llm"
)

var (
	flagDesignJSON   bool
	flagDesignSystem string
)

var designCmd = &cobra.Command{
	Use:   "design [prompt]",
	Short: "Produce a structured application design from a prompt",
	Long:  "Ask the model to design an application (entities, attributes, keys) from a natural-language prompt. With no prompt, starts an interactive session that keeps the recent conversation as context.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := llm.NewClient(viper.GetString("model"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitAuthError
			return nil
		}

		ctx := context.Background()

		if len(args) == 1 {
			if !converseOnce(ctx, client, args[0], nil) {
				exitCode = ExitRuntimeError
			}
			return nil
		}

		runInteractive(ctx, client)
		return nil
	},
}

func init() {
	designCmd.Flags().BoolVar(&flagDesignJSON, "json", false, "Print the raw design as JSON")
	designCmd.Flags().StringVar(&flagDesignSystem, "system", "", "System instruction for the model")
}

// converseOnce sends one prompt and prints the result. It reports whether
// a response was produced; model failures surface as an absent response.
func converseOnce(ctx context.Context, client *llm.Client, prompt string, history []llm.Turn) bool {
	result, err := client.Converse(ctx, prompt, history, flagDesignSystem)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No response from the model: %v\n", err)
		return false
	}
	printResult(result)
	return true
}

func runInteractive(ctx context.Context, client *llm.Client) {
	var history []llm.Turn
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Fprintln(os.Stderr, "Describe the application you want to design. Type \"exit\" to quit.")
	for {
		fmt.Fprint(os.Stderr, "> ")
		if !scanner.Scan() {
			return
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			return
		}

		result, err := client.Converse(ctx, prompt, history, flagDesignSystem)
		if err != nil {
			fmt.Fprintf(os.Stderr, "No response from the model: %v\n", err)
			continue
		}
		printResult(result)

		history = append(history,
			llm.Turn{Role: "user", Content: prompt},
			llm.Turn{Role: "assistant", Content: result.Response},
		)
	}
}

func printResult(result *llm.ToolResult) {
	if flagDesignJSON && result.Design != nil {
		data, err := json.MarshalIndent(result.Design, "", "  ")
		if err == nil {
			fmt.Fprintln(os.Stdout, string(data))
			return
		}
	}

	fmt.Fprintln(os.Stdout, result.Response)
	if result.Design != nil {
		fmt.Fprint(os.Stdout, formatDesign(result.Design))
	}
}

// formatDesign renders the entity tables of a design as indented text.
func formatDesign(design *llm.Design) string {
	var b strings.Builder

	if design.Application.Name != "" {
		fmt.Fprintf(&b, "\n%s", design.Application.Name)
		if design.Application.TablePrefix != "" {
			fmt.Fprintf(&b, " (%s)", design.Application.TablePrefix)
		}
		b.WriteString("\n")
		if design.Application.Description != "" {
			fmt.Fprintf(&b, "%s\n", design.Application.Description)
		}
	}

	for _, entity := range design.Entities {
		fmt.Fprintf(&b, "\nEntity %s", entity.Name)
		if entity.IsUser {
			b.WriteString(" (user)")
		}
		b.WriteString("\n")
		for _, attr := range entity.Attributes {
			fmt.Fprintf(&b, "  - %s %s", attr.Name, attr.DataType)
			if attr.IsPrimaryKey {
				b.WriteString(" [PK]")
			}
			if attr.ForeignKey.IsForeignKey {
				fmt.Fprintf(&b, " [FK -> %s.%s]", attr.ForeignKey.ReferenceEntity, attr.ForeignKey.ReferenceAttribute)
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
