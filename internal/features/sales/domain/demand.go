package domain

import "sort"

// DemandPoint is one month's unit demand for a single product.
type DemandPoint struct {
	Month       string
	ProductName string
	Units       int
}

// DemandChart is the chart-ready view of the demand series: a sorted
// month axis plus one aligned unit series per product. Months missing
// a figure for a product are filled with zero so every series has the
// same length as the axis.
type DemandChart struct {
	Months []string
	Series map[string][]int
}

// BuildChart buckets raw demand points into a DemandChart.
func BuildChart(points []DemandPoint) DemandChart {
	monthSet := make(map[string]struct{})
	byProduct := make(map[string]map[string]int)

	for _, p := range points {
		monthSet[p.Month] = struct{}{}
		if byProduct[p.ProductName] == nil {
			byProduct[p.ProductName] = make(map[string]int)
		}
		byProduct[p.ProductName][p.Month] = p.Units
	}

	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	series := make(map[string][]int, len(byProduct))
	for product, figures := range byProduct {
		units := make([]int, len(months))
		for i, m := range months {
			units[i] = figures[m]
		}
		series[product] = units
	}

	return DemandChart{Months: months, Series: series}
}
