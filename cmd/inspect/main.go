// Variable-inspection fixture: builds the shapes a debugger's variable
// view renders (structs, maps, slices, nested data, NaN propagation) and
// pauses are expected at the marked lines.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"
)

type sale struct {
	Product string
	Region  string
	Sales   float64 // NaN marks a missing value
	Units   int
	Date    time.Time
}

type regionStats struct {
	Sum   float64
	Mean  float64
	Count int
}

func loadSalesData() []sale {
	day := func(n int) time.Time {
		return time.Date(2024, time.January, n, 0, 0, 0, 0, time.UTC)
	}
	return []sale{
		{Product: "Widget", Region: "East", Sales: 100, Units: 10, Date: day(1)},
		{Product: "Gadget", Region: "West", Sales: 200, Units: 20, Date: day(2)},
		{Product: "Gizmo", Region: "East", Sales: math.NaN(), Units: 15, Date: day(3)},
		{Product: "Widget", Region: "West", Sales: 150, Units: 15, Date: day(4)},
		{Product: "Gadget", Region: "East", Sales: 250, Units: 25, Date: day(5)},
		{Product: "Gizmo", Region: "West", Sales: 175, Units: 17, Date: day(6)},
		{Product: "Widget", Region: "East", Sales: math.NaN(), Units: 12, Date: day(7)},
		{Product: "Gadget", Region: "West", Sales: 225, Units: 22, Date: day(8)},
	}
}

// sumByProduct skips missing values, like a spreadsheet sum would.
func sumByProduct(rows []sale) map[string]float64 {
	totals := make(map[string]float64)
	for _, r := range rows {
		if math.IsNaN(r.Sales) {
			continue
		}
		totals[r.Product] += r.Sales
	}
	return totals
}

func maxSales(rows []sale) float64 {
	max := math.Inf(-1)
	for _, r := range rows {
		if !math.IsNaN(r.Sales) && r.Sales > max {
			max = r.Sales
		}
	}
	return max
}

// normalizeSales divides by the maximum; missing inputs stay NaN so the
// propagation is visible in the debugger.
func normalizeSales(rows []sale) []float64 {
	max := maxSales(rows)
	normalized := make([]float64, len(rows))
	for i, r := range rows {
		normalized[i] = r.Sales / max
	}
	return normalized
}

func statsByRegion(rows []sale) map[string]regionStats {
	stats := make(map[string]regionStats)
	for _, r := range rows {
		if math.IsNaN(r.Sales) {
			continue
		}
		s := stats[r.Region]
		s.Sum += r.Sales
		s.Count++
		stats[r.Region] = s
	}
	for region, s := range stats {
		s.Mean = s.Sum / float64(s.Count)
		stats[region] = s
	}
	return stats
}

func countMissing(rows []sale) int {
	missing := 0
	for _, r := range rows {
		if math.IsNaN(r.Sales) {
			missing++
		}
	}
	return missing
}

func uniqueProducts(rows []sale) []string {
	seen := make(map[string]bool)
	var products []string
	for _, r := range rows {
		if !seen[r.Product] {
			seen[r.Product] = true
			products = append(products, r.Product)
		}
	}
	sort.Strings(products)
	return products
}

// newMatrix builds a seeded rows x cols matrix: first column sequential,
// last column binary, the rest pseudo-random.
func newMatrix(rows, cols int) [][]float64 {
	rng := rand.New(rand.NewSource(42))
	matrix := make([][]float64, rows)
	for i := range matrix {
		matrix[i] = make([]float64, cols)
		for j := range matrix[i] {
			matrix[i][j] = rng.NormFloat64()
		}
		matrix[i][0] = float64(i)
		matrix[i][cols-1] = float64(rng.Intn(2))
	}
	return matrix
}

func main() {
	fmt.Println("Variable Inspection Demo")
	fmt.Println(strings.Repeat("=", 50))

	fmt.Println("\n1. Loading sales data...")
	rows := loadSalesData()
	fmt.Printf("   Loaded %d rows\n", len(rows))

	fmt.Println("\n2. Checking data quality...")
	fmt.Printf("   Missing sales values: %d\n", countMissing(rows))

	fmt.Println("\n3. Analyzing sales...")
	totals := sumByProduct(rows)
	normalized := normalizeSales(rows)
	byRegion := statsByRegion(rows)

	// breakpoint target: inspect totals, normalized, byRegion here
	fmt.Printf("   Analysis complete. Found %d products.\n", len(totals))

	fmt.Println("\n4. Building random matrix (100x50)...")
	matrix := newMatrix(100, 50)
	fmt.Printf("   Matrix shape: %dx%d\n", len(matrix), len(matrix[0]))

	fmt.Println("\n5. Building summary...")
	summary := map[string]any{
		"metadata": map[string]any{
			"source":  "sales_db",
			"version": "1.0",
			"records": len(rows),
		},
		"products": uniqueProducts(rows),
		"regions":  []string{"East", "West"},
		"date_range": []string{
			rows[0].Date.Format("2006-01-02"),
			rows[len(rows)-1].Date.Format("2006-01-02"),
		},
	}

	auditLog := []any{
		"Started analysis",
		map[string]string{"timestamp": "2024-01-01", "action": "load"},
		42,
		[]float64{normalized[0], normalized[1]},
	}

	// breakpoint target: inspect summary and auditLog here
	fmt.Printf("   Summary keys: %d, audit entries: %d\n", len(summary), len(auditLog))
	fmt.Printf("   Regions analyzed: %d\n", len(byRegion))
	fmt.Println("\nDone.")
}
