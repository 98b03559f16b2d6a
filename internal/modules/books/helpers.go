package books

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	NoCategory  = "No Category"
	NoPublisher = "No Publisher"

	AllValue = "all"

	Currency = "LKR"
)

type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type Filters struct {
	Category  string `json:"category,omitempty" form:"category"`
	Publisher string `json:"publisher,omitempty" form:"publisher"`
}

func CategoryName(b Book) string {
	if n := strings.TrimSpace(b.CategoryName); n != "" {
		return n
	}
	if b.Category != nil && strings.TrimSpace(b.Category.Name) != "" {
		return strings.TrimSpace(b.Category.Name)
	}
	return NoCategory
}

func PublisherName(b Book) string {
	if n := strings.TrimSpace(b.PublisherName); n != "" {
		return n
	}
	if b.Publisher != nil && strings.TrimSpace(b.Publisher.Name) != "" {
		return strings.TrimSpace(b.Publisher.Name)
	}
	return NoPublisher
}

// Normalize copies nested relation names into the flat fields. The API client
// applies it to every book it decodes.
func Normalize(b Book) Book {
	if strings.TrimSpace(b.CategoryName) == "" && b.Category != nil {
		b.CategoryName = strings.TrimSpace(b.Category.Name)
	}
	if strings.TrimSpace(b.PublisherName) == "" && b.Publisher != nil {
		b.PublisherName = strings.TrimSpace(b.Publisher.Name)
	}
	return b
}

func NormalizeAll(in []Book) []Book {
	out := make([]Book, len(in))
	for i, b := range in {
		out[i] = Normalize(b)
	}
	return out
}

// FormatPrice renders v as "LKR 0.00". Anything that does not coerce to a
// finite number renders as zero.
func FormatPrice(v any) string {
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	// the exact binary value is rounded, halves away from zero: 1.005 is
	// stored as 1.00499... and prints 1.00, while 0.125 prints 0.13
	return Currency + " " + new(big.Rat).SetFloat64(f).FloatString(2)
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint64:
		return float64(x), true
	case *float64:
		if x == nil {
			return 0, false
		}
		return *x, true
	case decimal.Decimal:
		f, _ := x.Float64()
		return f, true
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func CategoryOptions(list []Book, categories []Category) []Option {
	names := make([]string, 0, len(list)+len(categories))
	for _, b := range list {
		names = append(names, CategoryName(b))
	}
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return buildOptions("All Categories", names)
}

func PublisherOptions(list []Book, publishers []Publisher) []Option {
	names := make([]string, 0, len(list)+len(publishers))
	for _, b := range list {
		names = append(names, PublisherName(b))
	}
	for _, p := range publishers {
		names = append(names, p.Name)
	}
	return buildOptions("All Publishers", names)
}

// buildOptions dedups by value, first occurrence wins.
func buildOptions(allLabel string, names []string) []Option {
	out := []Option{{Value: AllValue, Label: allLabel}}
	seen := map[string]struct{}{AllValue: {}}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, Option{Value: n, Label: n})
	}
	return out
}

// Filter keeps books whose name contains query (case-insensitive) and whose
// resolved category/publisher match the filters. With no query and no
// filters the input is returned as is.
func Filter(list []Book, query string, f Filters) []Book {
	q := strings.ToLower(query)
	if q == "" && !active(f.Category) && !active(f.Publisher) {
		return list
	}

	out := make([]Book, 0, len(list))
	for _, b := range list {
		if q != "" && !strings.Contains(strings.ToLower(b.Name), q) {
			continue
		}
		if active(f.Category) && CategoryName(b) != f.Category {
			continue
		}
		if active(f.Publisher) && PublisherName(b) != f.Publisher {
			continue
		}
		out = append(out, b)
	}
	return out
}

func active(filter string) bool {
	return filter != "" && filter != AllValue
}
