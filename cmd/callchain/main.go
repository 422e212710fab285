// Call-chain fixture: a four-deep call hierarchy for exercising stack
// and call-chain display (main -> processOrder -> applyPricing ->
// calculateDiscount).
package main

import (
	"fmt"
	"strings"
)

type item struct {
	Name  string
	Price float64
}

type pricing struct {
	Subtotal float64
	Discount float64
	Total    float64
}

type order struct {
	Customer string
	Tier     string
	Items    []item
}

var discountRates = map[string]float64{
	"bronze":   0.05,
	"silver":   0.10,
	"gold":     0.15,
	"platinum": 0.20,
}

func calculateDiscount(basePrice float64, customerTier string) float64 {
	rate := discountRates[customerTier]
	discount := basePrice * rate

	// breakpoint target: innermost frame of the call chain
	fmt.Printf("Applying %.0f%% discount: $%.2f\n", rate*100, discount)

	return discount
}

func applyPricing(items []item, customerTier string) pricing {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price
	}
	discount := calculateDiscount(subtotal, customerTier)

	return pricing{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}

func processOrder(o order) pricing {
	fmt.Printf("Processing order for %s...\n", o.Customer)
	return applyPricing(o.Items, o.Tier)
}

func main() {
	fmt.Println("Call Chain Demo")
	fmt.Println(strings.Repeat("=", 50))

	o := order{
		Customer: "Alice Johnson",
		Tier:     "gold",
		Items: []item{
			{Name: "Widget Pro", Price: 99.99},
			{Name: "Gadget Plus", Price: 149.99},
			{Name: "Accessory Pack", Price: 29.99},
		},
	}

	fmt.Printf("\nCustomer: %s (%s tier)\n", o.Customer, o.Tier)
	fmt.Printf("Items: %d\n\n", len(o.Items))

	result := processOrder(o)

	fmt.Println()
	fmt.Println("Order Summary:")
	fmt.Printf("  Subtotal: $%.2f\n", result.Subtotal)
	fmt.Printf("  Discount: -$%.2f\n", result.Discount)
	fmt.Printf("  Total:    $%.2f\n", result.Total)
}
