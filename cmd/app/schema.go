package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/CortexBlog/blog-service/internal/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var schemaFormat string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the CMS schema and studio configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		studio := schema.NewStudio(cfg.Sanity.ProjectID, cfg.Sanity.Dataset, cfg.FrontendURL)

		switch schemaFormat {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(studio)
		case "yaml":
			out, err := yaml.Marshal(studio)
			if err != nil {
				return fmt.Errorf("error marshalling schema: %w", err)
			}
			_, err = os.Stdout.Write(out)
			return err
		default:
			return fmt.Errorf("unknown format %q (want json or yaml)", schemaFormat)
		}
	},
}

func init() {
	schemaCmd.Flags().StringVar(&schemaFormat, "format", "json", "output format: json or yaml")
}
