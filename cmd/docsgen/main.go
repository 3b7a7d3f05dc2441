package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/for-the-queen/internal/catalog"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference", "catalogs")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateResourcesDoc(),
		generateServicesDoc(),
		generateSpeciesDoc(),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	export, err := generateCatalogYAML()
	if err != nil {
		fatal(err)
	}
	exportPath := filepath.Join(root, "catalog.yaml")
	if err := os.WriteFile(exportPath, export, 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", exportPath)

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Data Catalogs\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	b.WriteString("- [Machine-readable export](./catalog.yaml)\n")
	return b.String()
}

func generateResourcesDoc() docFile {
	var b strings.Builder
	b.WriteString("# Resources\n\n")
	b.WriteString("Source: `internal/catalog/resource.go`, `internal/catalog/recipe.go`.\n\n")
	b.WriteString(fmt.Sprintf("Total resources: **%d**.\n\n", len(catalog.AllResources())))
	for _, c := range catalog.Categories() {
		items := catalog.ResourcesIn(c)
		b.WriteString(fmt.Sprintf("## %s\n\n", c))
		b.WriteString("| Name | Symbol | Recipe |\n")
		b.WriteString("| --- | --- | --- |\n")
		for _, r := range items {
			b.WriteString("| ")
			b.WriteString(escape(r.String()))
			b.WriteString(" | ")
			b.WriteString(escape(r.Symbol()))
			b.WriteString(" | ")
			b.WriteString(escape(formatRecipe(r.Recipe())))
			b.WriteString(" |\n")
		}
		b.WriteString("\n")
	}
	return docFile{Name: "resources.md", Title: "Resources", Content: b.String()}
}

func generateServicesDoc() docFile {
	items := catalog.AllServices()
	var b strings.Builder
	b.WriteString("# Services\n\n")
	b.WriteString("Source: `internal/catalog/service.go`.\n\n")
	b.WriteString(fmt.Sprintf("Total services: **%d**.\n\n", len(items)))
	b.WriteString("| Service | Provided By |\n")
	b.WriteString("| --- | --- |\n")
	for _, s := range items {
		b.WriteString("| ")
		b.WriteString(escape(s.String()))
		b.WriteString(" | ")
		b.WriteString(escape(s.Provider().String()))
		b.WriteString(" |\n")
	}
	return docFile{Name: "services.md", Title: "Services", Content: b.String()}
}

func generateSpeciesDoc() docFile {
	items := catalog.AllSpecies()
	var b strings.Builder
	b.WriteString("# Species\n\n")
	b.WriteString("Source: `internal/catalog/species.go`.\n\n")
	b.WriteString(fmt.Sprintf("Total species: **%d**. Every species also needs housing: %s.\n\n",
		len(items), escape(formatNeeds(catalog.HousingNeeds()))))
	b.WriteString("| Species | Needs |\n")
	b.WriteString("| --- | --- |\n")
	housing := len(catalog.HousingNeeds())
	for _, s := range items {
		needs := s.Needs()
		b.WriteString("| ")
		b.WriteString(escape(s.String()))
		b.WriteString(" | ")
		b.WriteString(escape(formatNeeds(needs[:len(needs)-housing])))
		b.WriteString(" |\n")
	}
	return docFile{Name: "species.md", Title: "Species", Content: b.String()}
}

type catalogExport struct {
	Categories []categoryExport `yaml:"categories"`
	Services   []serviceExport  `yaml:"services"`
	Species    []speciesExport  `yaml:"species"`
}

type categoryExport struct {
	Name      string           `yaml:"name"`
	Resources []resourceExport `yaml:"resources"`
}

type resourceExport struct {
	Name   string     `yaml:"name"`
	Symbol string     `yaml:"symbol"`
	Recipe [][]string `yaml:"recipe,omitempty"`
}

type serviceExport struct {
	Name     string `yaml:"name"`
	Provider string `yaml:"provider"`
}

type speciesExport struct {
	Name  string   `yaml:"name"`
	Needs []string `yaml:"needs"`
}

func generateCatalogYAML() ([]byte, error) {
	var doc catalogExport
	for _, c := range catalog.Categories() {
		ce := categoryExport{Name: c.String()}
		for _, r := range catalog.ResourcesIn(c) {
			re := resourceExport{Name: r.String(), Symbol: r.Symbol()}
			for _, s := range r.Recipe() {
				re.Recipe = append(re.Recipe, s.Strings())
			}
			ce.Resources = append(ce.Resources, re)
		}
		doc.Categories = append(doc.Categories, ce)
	}
	for _, s := range catalog.AllServices() {
		doc.Services = append(doc.Services, serviceExport{Name: s.String(), Provider: s.Provider().String()})
	}
	for _, s := range catalog.AllSpecies() {
		se := speciesExport{Name: s.String()}
		for _, n := range s.Needs() {
			se.Needs = append(se.Needs, n.String())
		}
		doc.Species = append(doc.Species, se)
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal catalog: %w", err)
	}
	return out, nil
}

func formatRecipe(r catalog.Recipe) string {
	if len(r) == 0 {
		return "raw"
	}
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = strings.Join(s.Strings(), " / ")
	}
	return strings.Join(parts, " + ")
}

func formatNeeds(items []catalog.Need) string {
	parts := make([]string, len(items))
	for i, n := range items {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
