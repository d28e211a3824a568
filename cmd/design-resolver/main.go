package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	designresolver "github.com/hellenic-development/design-resolver"
	"github.com/hellenic-development/design-resolver/pkg/formatter"
	"github.com/hellenic-development/design-resolver/pkg/registry"
)

const version = "0.1.0"

var (
	figmaToken   string
	githubToken  string
	registryFile string
	outputFile   string
	asJSON       bool
	verbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "design-resolver <url-or-name>",
		Short: "Resolve a URL or library name into a design-system component catalog",
		Long:  "A tool that resolves a design-system identifier (a URL or library name) into a structured component catalog, using a curated registry, the GitHub and Figma APIs, and HTML heuristics",
		Args:  cobra.ExactArgs(1),
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&figmaToken, "figma-token", "t", "", "Figma Personal Access Token (defaults to FIGMA_TOKEN)")
	rootCmd.Flags().StringVar(&githubToken, "github-token", "", "GitHub token for higher rate limits (defaults to GITHUB_TOKEN)")
	rootCmd.Flags().StringVarP(&registryFile, "registry", "r", "", "YAML file with extra curated registry entries")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the catalog as markdown to this file")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON instead of a table")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log strategy warnings to stderr")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the curated design systems",
		Run: func(cmd *cobra.Command, args []string) {
			resolver := designresolver.New(designresolver.Options{})
			for _, name := range resolver.CuratedNames() {
				fmt.Println(name)
			}
		},
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("design-resolver version %s\n", version)
		},
	}

	rootCmd.AddCommand(listCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	// .env is optional; flags and real environment variables win.
	_ = godotenv.Load()
	if figmaToken == "" {
		figmaToken = os.Getenv("FIGMA_TOKEN")
	}
	if githubToken == "" {
		githubToken = os.Getenv("GITHUB_TOKEN")
	}

	logger := zerolog.Nop()
	if verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	var extra []registry.Entry
	if registryFile != "" {
		entries, err := registry.LoadFile(registryFile)
		if err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		extra = entries
	}

	resolver := designresolver.New(designresolver.Options{
		FigmaToken:   figmaToken,
		GithubToken:  githubToken,
		ExtraEntries: extra,
		Logger:       logger,
		OnStatus: func(status designresolver.Status, message string) {
			if status == designresolver.StatusResolving {
				yellow.Println(message)
			}
		},
	})

	lib, err := resolver.Resolve(args[0])
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	green.Printf("\n✨ Resolved %s via %s (%d components)\n\n", lib.Name, lib.Source, len(lib.Components))

	switch {
	case asJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(lib); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	case outputFile != "":
		markdown := formatter.ToMarkdown(lib)
		if err := os.WriteFile(outputFile, []byte(markdown), 0644); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Printf("💾 Wrote catalog to %s\n", outputFile)
	default:
		for _, c := range lib.Components {
			cyan.Printf("  %-20s", c.Category)
			fmt.Println(c.Name)
		}
	}
}
