package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/briareos/pkg/domain/taxonomy"
	"github.com/secmon-lab/briareos/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// Taxonomy configures the category catalog. An optional TOML file adds
// keywords to existing categories without rebuilding the binary.
type Taxonomy struct {
	extensionPath string
}

// Extension is one keyword-extension entry of the TOML file
type Extension struct {
	Category string   `toml:"category"`
	Keywords []string `toml:"keywords"`
}

// ExtensionFile is the TOML keyword-extension file layout
type ExtensionFile struct {
	Extensions []Extension `toml:"extension"`
}

// Validate checks the extension entries
func (f *ExtensionFile) Validate() error {
	for _, ext := range f.Extensions {
		id := types.CategoryID(ext.Category)
		if err := id.Validate(); err != nil {
			return goerr.Wrap(err, "invalid extension category")
		}
		if len(ext.Keywords) == 0 {
			return goerr.New("extension has no keywords", goerr.V("category", ext.Category))
		}
		for _, kw := range ext.Keywords {
			if kw == "" {
				return goerr.New("extension has empty keyword", goerr.V("category", ext.Category))
			}
		}
	}
	return nil
}

func (x *Taxonomy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "keyword-extensions",
			Usage:       "TOML file adding keywords to existing categories",
			Category:    "Taxonomy",
			Sources:     cli.EnvVars("BRIAREOS_KEYWORD_EXTENSIONS"),
			Destination: &x.extensionPath,
		},
	}
}

// Configure builds the validated taxonomy, applying the keyword
// extension file when one is configured.
func (x *Taxonomy) Configure() (*taxonomy.Taxonomy, error) {
	var opts []taxonomy.Option

	if x.extensionPath != "" {
		// #nosec G304 - path is expected to be provided by CLI argument
		data, err := os.ReadFile(x.extensionPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read keyword extension file", goerr.V("path", x.extensionPath))
		}

		var file ExtensionFile
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, goerr.Wrap(err, "failed to parse keyword extension file", goerr.V("path", x.extensionPath))
		}
		if err := file.Validate(); err != nil {
			return nil, goerr.Wrap(err, "keyword extension validation failed", goerr.V("path", x.extensionPath))
		}

		for _, ext := range file.Extensions {
			opts = append(opts, taxonomy.WithExtraKeywords(types.CategoryID(ext.Category), ext.Keywords))
		}
	}

	tax, err := taxonomy.New(opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build taxonomy")
	}
	return tax, nil
}

// LogValue renders the config for startup logging
func (x Taxonomy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("keyword_extensions", x.extensionPath),
	)
}
