package main

import (
	"flag"
	"fmt"
	"os"

	"heatcompare/internal/config"
	"heatcompare/internal/engine"
	"heatcompare/internal/model"
	"heatcompare/internal/sensitivity"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "compare":
		cmdCompare(os.Args[2:])
	case "sensitivity":
		cmdSensitivity(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli compare --config examples/config.yaml [--out results/comparison.csv]")
	fmt.Println("  cli sensitivity --config examples/config.yaml --param jaz --from 2.5 --to 4.5 --step 0.5")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - compare prints annual cost and CO2 per heating variant")
	fmt.Println("  - sensitivity re-runs the comparison over a parameter range")
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	outPath := fs.String("out", "", "Optional output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	in, err := cfg.ToInputs()
	if err != nil {
		fatal(err)
	}
	cov, err := cfg.CoverageModel()
	if err != nil {
		fatal(err)
	}

	cmp, err := engine.New(cov).Compare(in)
	if err != nil {
		fatal(err)
	}

	printComparison(in, cmp)

	if *outPath != "" {
		if err := engine.WriteComparisonCSV(*outPath, cmp); err != nil {
			fatal(err)
		}
		fmt.Printf("\nWrote %s\n", *outPath)
	}
}

func cmdSensitivity(args []string) {
	fs := flag.NewFlagSet("sensitivity", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML config")
	paramName := fs.String("param", "jaz", "Parameter to sweep: jaz or specific_heat_demand")
	from := fs.Float64("from", 2.5, "Range start (inclusive)")
	to := fs.Float64("to", 4.5, "Range end (inclusive)")
	step := fs.Float64("step", 0.5, "Step size")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	in, err := cfg.ToInputs()
	if err != nil {
		fatal(err)
	}
	cov, err := cfg.CoverageModel()
	if err != nil {
		fatal(err)
	}
	param, err := sensitivity.ParseParameter(*paramName)
	if err != nil {
		fatal(err)
	}

	sw, err := sensitivity.Run(engine.New(cov), in, param, *from, *to, *step)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Sensitivity over %s (%g..%g step %g)\n\n", sw.Parameter, *from, *to, *step)
	fmt.Printf("%-10s", string(sw.Parameter))
	for _, v := range model.AllVariants() {
		fmt.Printf("  %18s", v.Label())
	}
	fmt.Println()
	for _, p := range sw.Points {
		fmt.Printf("%-10.2f", p.Value)
		for _, v := range model.AllVariants() {
			if r, ok := p.Comparison.ByVariant[v]; ok {
				fmt.Printf("  %14.0f EUR", r.EnergyCostEUR)
			} else {
				fmt.Printf("  %18s", "-")
			}
		}
		fmt.Println()
	}
}

func printComparison(in model.ComparisonInputs, cmp *engine.Comparison) {
	b := in.Building
	fmt.Printf("Project %s – %s, %s %s\n", b.ProjectNumber, b.Address, b.PostalCode, b.City)
	fmt.Printf("Built %d (%s), %d units, %.1f m2\n", b.ConstructionYear, b.BuildStandard, b.DwellingUnits, b.FloorAreaM2)
	fmt.Printf("Annual heat demand: %.0f kWh", cmp.HeatDemandKWh)
	if cmp.PVGenerationKWh > 0 {
		fmt.Printf(" | PV generation: %.0f kWh", cmp.PVGenerationKWh)
	}
	fmt.Print("\n\n")

	fmt.Printf("%-26s  %14s  %12s  %10s\n", "variant", "consumption", "cost/a", "CO2 t/a")
	for _, r := range cmp.Results {
		fmt.Printf("%-26s  %11.0f %-2s  %9.0f EUR  %10.2f\n",
			r.Variant.Label(), r.CarrierConsumption, r.CarrierUnit, r.EnergyCostEUR, r.CO2Kg/1000.0)
	}

	ranked := cmp.RankedByCost()
	if len(ranked) > 0 {
		fmt.Printf("\nCheapest: %s\n", ranked[0].Label())
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
