package main

import (
	"flag"
	"fmt"
	"os"

	"ordergen/internal/infra/catalog"

	"github.com/shopspring/decimal"
)

// Supported subcommands:
// - validate: Parse the catalog and report the first problem found
// - stats:    Print product count and price spread

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	statsCmd := flag.NewFlagSet("stats", flag.ExitOnError)

	validateFile := validateCmd.String("file", "./products.json", "Path to the catalog JSON file")
	statsFile := statsCmd.String("file", "./products.json", "Path to the catalog JSON file")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "validate":
		_ = validateCmd.Parse(os.Args[2:])
		err = runValidate(*validateFile)
	case "stats":
		_ = statsCmd.Parse(os.Args[2:])
		err = runStats(*statsFile)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: catalog <subcommand> [options]")
	fmt.Println("Subcommands:")
	fmt.Println("  validate -file <path>   Check that the catalog file is usable")
	fmt.Println("  stats    -file <path>   Print product count and price spread")
}

func runValidate(path string) error {
	products, err := catalog.NewLoader(path).Load()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return catalog.ErrEmptyCatalog
	}

	fmt.Printf("OK: %d products\n", len(products))

	return nil
}

func runStats(path string) error {
	products, err := catalog.NewLoader(path).Load()
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return catalog.ErrEmptyCatalog
	}

	minPrice := products[0].Price
	maxPrice := products[0].Price
	sum := decimal.Zero
	for _, product := range products {
		if product.Price.LessThan(minPrice) {
			minPrice = product.Price
		}
		if product.Price.GreaterThan(maxPrice) {
			maxPrice = product.Price
		}
		sum = sum.Add(product.Price)
	}
	avg := sum.Div(decimal.NewFromInt(int64(len(products)))).Round(2)

	fmt.Printf("products: %d\n", len(products))
	fmt.Printf("price min: %s\n", minPrice)
	fmt.Printf("price max: %s\n", maxPrice)
	fmt.Printf("price avg: %s\n", avg)

	return nil
}
