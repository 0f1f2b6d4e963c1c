package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/projetoapollo/LICITANDO/internal/config"
	"github.com/projetoapollo/LICITANDO/internal/logger"
	"github.com/projetoapollo/LICITANDO/internal/pipeline"
)

func main() {
	defer logger.Sync()

	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch cmd := os.Args[1]; cmd {
	case "run":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		input := fs.String("input", "", "quotation pdf path")
		output := fs.String("out", "", "output xlsx path")
		catalogPath := fs.String("catalog", cfg.CatalogPath, "price catalog csv path")
		minSimilarity := fs.Float64("min-similarity", cfg.MinSimilarity, "minimum description similarity [0.0, 1.0]")
		_ = fs.Parse(os.Args[2:])
		if *input == "" {
			must(fmt.Errorf("--input is required"))
		}
		if *output == "" {
			*output = filepath.Join(cfg.OutputDir, "cotacao_final.xlsx")
		}

		cfg.CatalogPath = *catalogPath
		cfg.MinSimilarity = *minSimilarity
		svc, err := pipeline.NewService(cfg)
		must(err)

		content, err := os.ReadFile(*input)
		must(err)
		rows, err := svc.ProcessPDF(content)
		must(err)
		if len(rows) == 0 {
			fmt.Println("no items found in this pdf")
			return
		}

		must(pipeline.ExportQuoteTable(rows, *output))
		priced := 0
		for _, row := range rows {
			if row.AveragePrice != nil {
				priced++
			}
		}
		fmt.Printf("run done items=%d priced=%d output=%s\n", len(rows), priced, *output)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("usage: licitando <command>")
	fmt.Println("commands:")
	fmt.Println("  run --input=cotacao.pdf [--out=./out/cotacao_final.xlsx] [--catalog=./data/catalogo_precos.csv] [--min-similarity=0.70]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
