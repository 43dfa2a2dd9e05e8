package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/llrp-go/llrp/codegen"
	"github.com/llrp-go/llrp/ir"
	"github.com/llrp-go/llrp/schema"
)

var (
	generateIn      string
	generateOut     string
	generatePackage string
)

func init() {
	RootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateIn, "in", "", "path to the LLRP XML definition file")
	generateCmd.Flags().StringVar(&generateOut, "out", "./generated", "output directory for the generated package set")
	generateCmd.Flags().StringVar(&generatePackage, "package", "llrpgen_out", "import path the generated enums/parameters packages are reached under from messages.go")
	if err := generateCmd.MarkFlagRequired("in"); err != nil {
		log.Fatal(err)
	}
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "compile an LLRP XML definition file into enums/parameters/messages packages",
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerate(); err != nil {
			log.Fatal(err)
		}
	},
}

func runGenerate() error {
	log.WithField("in", generateIn).Info("parsing definition file")
	f, err := os.Open(generateIn)
	if err != nil {
		return fmt.Errorf("llrpgen: %w", err)
	}
	defer f.Close()

	doc, err := schema.Parse(f)
	if err != nil {
		return fmt.Errorf("llrpgen: parse %s: %w", generateIn, err)
	}

	log.WithField("count", len(doc.Definitions)).Info("normalizing definitions")
	defs, err := ir.Normalize(doc)
	if err != nil {
		return fmt.Errorf("llrpgen: normalize: %w", err)
	}

	log.WithField("package", generatePackage).Info("rendering Go source")
	files, err := codegen.Generate(defs, generatePackage)
	if err != nil {
		return fmt.Errorf("llrpgen: generate: %w", err)
	}

	for rel, src := range files {
		path := filepath.Join(generateOut, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("llrpgen: %w", err)
		}
		if err := os.WriteFile(path, src, 0o644); err != nil {
			return fmt.Errorf("llrpgen: %w", err)
		}
		log.WithField("file", path).Debug("wrote file")
	}

	log.WithField("out", generateOut).Info("generation complete")
	return nil
}
