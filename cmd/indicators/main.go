package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/Swissbit92/MCP-CryptoResearch/internal/logger"
	"github.com/Swissbit92/MCP-CryptoResearch/internal/registry"
	"github.com/Swissbit92/MCP-CryptoResearch/internal/table"
)

func newRegistry(cmd *cli.Command) (*registry.Registry, error) {
	opts := []registry.Option{}
	if path := cmd.String("input-aliases"); path != "" {
		aliases, err := registry.LoadInputAliases(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load input aliases: %w", err)
		}
		opts = append(opts, registry.WithInputAliases(aliases))
	}

	return registry.New(opts...)
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := newRegistry(cmd)
	if err != nil {
		return err
	}

	for _, name := range reg.List() {
		def, err := reg.Describe(name)
		if err != nil {
			return err
		}
		fmt.Printf("%-12s %-12s %s\n", def.Name, def.Group, def.Description)
	}

	return nil
}

func describeAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := newRegistry(cmd)
	if err != nil {
		return err
	}

	def, err := reg.Describe(cmd.Args().First())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(def)
}

func exportAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := newRegistry(cmd)
	if err != nil {
		return err
	}

	out := cmd.String("out")
	if out == "" {
		return reg.WriteJSON(os.Stdout)
	}

	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	if err := reg.ExportJSON(out); err != nil {
		return err
	}
	log.Info(fmt.Sprintf("exported %d indicators to %s", len(reg.List()), out))

	return nil
}

func schemaAction(ctx context.Context, cmd *cli.Command) error {
	schema, err := registry.CatalogSchema()
	if err != nil {
		return err
	}
	fmt.Println(schema)

	return nil
}

func regexAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := newRegistry(cmd)
	if err != nil {
		return err
	}

	pkg, err := reg.RegexPackage(cmd.Args().First(), cmd.String("lang"))
	if err != nil {
		return err
	}

	fmt.Printf("synonyms: %s\n", pkg.Synonyms)
	for _, tmpl := range pkg.Templates {
		fmt.Printf("template: %s\n", tmpl)
	}
	if len(pkg.Keywords) > 0 {
		fmt.Printf("keywords: %s\n", strings.Join(pkg.Keywords, ", "))
	}
	for label, value := range pkg.DefaultThresholds {
		fmt.Printf("threshold: %s=%v\n", label, value)
	}

	return nil
}

// parseParams turns repeated key=value flags into override values; the
// registry's coercion accepts the raw strings.
func parseParams(raw []string) (map[string]any, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	params := make(map[string]any, len(raw))
	for _, kv := range raw {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("invalid param %q, expected key=value", kv)
		}
		params[key] = value
	}

	return params, nil
}

func computeAction(ctx context.Context, cmd *cli.Command) error {
	reg, err := newRegistry(cmd)
	if err != nil {
		return err
	}

	log, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	params, err := parseParams(cmd.StringSlice("param"))
	if err != nil {
		return err
	}

	tbl, err := table.FromCSV(cmd.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", cmd.String("csv"), err)
	}

	result, err := reg.Compute(tbl, cmd.Args().First(), params, cmd.String("backend"))
	if err != nil {
		return err
	}

	log.Info(fmt.Sprintf("computed %s over %d rows, %d new columns",
		result.Spec.Name, tbl.Len(), len(result.NewColumns)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(result)
}

func main() {
	aliasFlag := &cli.StringFlag{
		Name:  "input-aliases",
		Usage: "YAML file overriding the OHLCV column alias table",
	}

	cmd := &cli.Command{
		Name:  "indicators",
		Usage: "Inspect and compute technical indicators from the registry",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all registered indicators",
				Flags:  []cli.Flag{aliasFlag},
				Action: listAction,
			},
			{
				Name:      "describe",
				Usage:     "Print the full definition of an indicator as JSON",
				ArgsUsage: "<name-or-alias>",
				Flags:     []cli.Flag{aliasFlag},
				Action:    describeAction,
			},
			{
				Name:  "export",
				Usage: "Export the indicator catalog as a JSON array",
				Flags: []cli.Flag{
					aliasFlag,
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output file (stdout when omitted)",
					},
				},
				Action: exportAction,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of a catalog entry",
				Action: schemaAction,
			},
			{
				Name:      "regex",
				Usage:     "Print the NLP detection package of an indicator",
				ArgsUsage: "<name-or-alias>",
				Flags: []cli.Flag{
					aliasFlag,
					&cli.StringFlag{
						Name:    "lang",
						Aliases: []string{"l"},
						Usage:   "Language for per-language synonyms",
						Value:   "en",
					},
				},
				Action: regexAction,
			},
			{
				Name:      "compute",
				Usage:     "Compute an indicator over a CSV of OHLCV data",
				ArgsUsage: "<name-or-alias>",
				Flags: []cli.Flag{
					aliasFlag,
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Input CSV file with a header row",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "backend",
						Aliases: []string{"b"},
						Usage:   "Backend to dispatch to",
						Value:   "techan",
					},
					&cli.StringSliceFlag{
						Name:    "param",
						Aliases: []string{"p"},
						Usage:   "Parameter override as key=value (repeatable)",
					},
				},
				Action: computeAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
