package books

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooks() []Book {
	return []Book{
		{ID: 1, Name: "World Atlas", CategoryName: "Reference", Publisher: &Ref{ID: 7, Name: "Sarasavi"}},
		{ID: 2, Name: "Madol Doova", Category: &Ref{ID: 3, Name: "Fiction"}, PublisherName: "Godage"},
		{ID: 3, Name: "Atlas Shrugged", Category: &Ref{ID: 3, Name: "Fiction"}},
		{ID: 4, Name: "Grammar Basics"},
	}
}

func TestCategoryAndPublisherName(t *testing.T) {
	list := sampleBooks()

	assert.Equal(t, "Reference", CategoryName(list[0]))
	assert.Equal(t, "Fiction", CategoryName(list[1]))
	assert.Equal(t, NoCategory, CategoryName(list[3]))

	assert.Equal(t, "Sarasavi", PublisherName(list[0]))
	assert.Equal(t, "Godage", PublisherName(list[1]))
	assert.Equal(t, NoPublisher, PublisherName(list[2]))
}

func TestCategoryName_FlatWinsOverNested(t *testing.T) {
	b := Book{CategoryName: "Flat", Category: &Ref{Name: "Nested"}}
	assert.Equal(t, "Flat", CategoryName(b))
}

func TestNormalize(t *testing.T) {
	b := Normalize(Book{Category: &Ref{Name: " Fiction "}, Publisher: &Ref{Name: "Godage"}})
	assert.Equal(t, "Fiction", b.CategoryName)
	assert.Equal(t, "Godage", b.PublisherName)

	kept := Normalize(Book{CategoryName: "Flat", Category: &Ref{Name: "Nested"}})
	assert.Equal(t, "Flat", kept.CategoryName)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"float", 12.5, "LKR 12.50"},
		{"int", 1500, "LKR 1500.00"},
		{"numeric string", "99.999", "LKR 100.00"},
		{"json number", json.Number("4.2"), "LKR 4.20"},
		{"decimal", decimal.RequireFromString("7.1"), "LKR 7.10"},
		{"nil", nil, "LKR 0.00"},
		{"word", "abc", "LKR 0.00"},
		{"empty string", "", "LKR 0.00"},
		{"nil pointer", (*float64)(nil), "LKR 0.00"},
		{"nan", math.NaN(), "LKR 0.00"},
		{"struct", struct{}{}, "LKR 0.00"},
		{"binary half below", 1.005, "LKR 1.00"},
		{"binary half below 2", 2.675, "LKR 2.67"},
		{"binary half below 3", 1.045, "LKR 1.04"},
		{"exact half", 0.125, "LKR 0.13"},
		{"negative", -3.5, "LKR -3.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(tt.in))
		})
	}
}

func TestCategoryOptions_Empty(t *testing.T) {
	assert.Equal(t, []Option{{Value: "all", Label: "All Categories"}}, CategoryOptions(nil, nil))
	assert.Equal(t, []Option{{Value: "all", Label: "All Categories"}}, CategoryOptions([]Book{}, []Category{}))
}

func TestCategoryOptions_BookNamesFirstThenCatalog(t *testing.T) {
	opts := CategoryOptions(sampleBooks(), []Category{{ID: 3, Name: "Fiction"}, {ID: 9, Name: "Children"}})

	assert.Equal(t, []Option{
		{Value: "all", Label: "All Categories"},
		{Value: "Reference", Label: "Reference"},
		{Value: "Fiction", Label: "Fiction"},
		{Value: NoCategory, Label: NoCategory},
		{Value: "Children", Label: "Children"},
	}, opts)
}

func TestPublisherOptions(t *testing.T) {
	opts := PublisherOptions(sampleBooks()[:2], []Publisher{{ID: 7, Name: "Sarasavi"}, {ID: 8, Name: "Vijitha Yapa"}})

	assert.Equal(t, []Option{
		{Value: "all", Label: "All Publishers"},
		{Value: "Sarasavi", Label: "Sarasavi"},
		{Value: "Godage", Label: "Godage"},
		{Value: "Vijitha Yapa", Label: "Vijitha Yapa"},
	}, opts)
}

func TestFilter_IdentityWithoutCriteria(t *testing.T) {
	list := sampleBooks()
	assert.Equal(t, list, Filter(list, "", Filters{}))
	assert.Equal(t, list, Filter(list, "", Filters{Category: "all", Publisher: "all"}))
}

func TestFilter_Query(t *testing.T) {
	got := Filter(sampleBooks(), "atlas", Filters{})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Len(t, Filter(sampleBooks(), "ATLAS", Filters{}), 2)
	assert.Empty(t, Filter(sampleBooks(), "dictionary", Filters{}))
}

func TestFilter_CategoryAndPublisher(t *testing.T) {
	list := sampleBooks()

	fiction := Filter(list, "", Filters{Category: "Fiction"})
	require.Len(t, fiction, 2)

	both := Filter(list, "atlas", Filters{Category: "Fiction", Publisher: NoPublisher})
	require.Len(t, both, 1)
	assert.Equal(t, "Atlas Shrugged", both[0].Name)

	none := Filter(list, "", Filters{Category: "Reference", Publisher: "Godage"})
	assert.Empty(t, none)
}

func TestRef_UnmarshalShapes(t *testing.T) {
	var b struct {
		A *Ref `json:"a"`
		B *Ref `json:"b"`
		C *Ref `json:"c"`
		D *Ref `json:"d"`
	}
	raw := `{"a":{"id":3,"name":"Fiction"},"b":"Poetry","c":12,"d":{"id":4,"categoryName":"History"}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, &Ref{ID: 3, Name: "Fiction"}, b.A)
	assert.Equal(t, &Ref{Name: "Poetry"}, b.B)
	assert.Equal(t, &Ref{ID: 12}, b.C)
	assert.Equal(t, &Ref{ID: 4, Name: "History"}, b.D)
}
