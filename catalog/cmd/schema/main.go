package main

import (
	"atlas-parts/catalog"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
)

func main() {
	var outPath string
	flag.StringVar(&outPath, "out", "", "output path for the JSON schema")
	flag.Parse()

	if outPath == "" {
		log.Fatal("schema: missing -out path")
	}

	data, err := json.MarshalIndent(catalog.Schema(), "", "  ")
	if err != nil {
		log.Fatalf("schema: marshal schema: %v", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		log.Fatalf("schema: create output dir: %v", err)
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		log.Fatalf("schema: write schema: %v", err)
	}
}
