package view

import (
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/books"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/shared/slug"
)

type BookCard struct {
	ID        int64  `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Author    string `json:"author,omitempty"`
	Cover     string `json:"cover,omitempty"`
	Price     string `json:"price"`
	Category  string `json:"category"`
	Publisher string `json:"publisher"`
	Stock     int    `json:"stock"`
	InStock   bool   `json:"inStock"`
}

type BookDetail struct {
	BookCard
	ISBN        string `json:"isbn,omitempty"`
	Description string `json:"description,omitempty"`
}

type Catalog struct {
	Books            []BookCard     `json:"books"`
	Count            int            `json:"count"`
	Query            string         `json:"q,omitempty"`
	Filters          books.Filters  `json:"filters"`
	CategoryOptions  []books.Option `json:"categoryOptions"`
	PublisherOptions []books.Option `json:"publisherOptions"`
}

func NewBookCard(b books.Book) BookCard {
	return BookCard{
		ID:        b.ID,
		Slug:      slug.WithID(b.Name, b.ID),
		Name:      b.Name,
		Author:    b.Author,
		Cover:     b.Cover,
		Price:     books.FormatPrice(b.Price),
		Category:  books.CategoryName(b),
		Publisher: books.PublisherName(b),
		Stock:     b.Stock,
		InStock:   b.Stock > 0,
	}
}

func NewBookDetail(b books.Book) BookDetail {
	return BookDetail{BookCard: NewBookCard(b), ISBN: b.ISBN, Description: b.Description}
}

// NewCatalog filters all and builds the option lists from the full list, so
// the selects keep every choice while a filter is active.
func NewCatalog(all []books.Book, cats []books.Category, pubs []books.Publisher, q string, f books.Filters) Catalog {
	filtered := books.Filter(all, q, f)
	cards := make([]BookCard, 0, len(filtered))
	for _, b := range filtered {
		cards = append(cards, NewBookCard(b))
	}
	return Catalog{
		Books:            cards,
		Count:            len(cards),
		Query:            q,
		Filters:          f,
		CategoryOptions:  books.CategoryOptions(all, cats),
		PublisherOptions: books.PublisherOptions(all, pubs),
	}
}
