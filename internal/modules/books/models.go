package books

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type Book struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Author      string  `json:"author,omitempty"`
	ISBN        string  `json:"isbn,omitempty"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Cover       string  `json:"cover,omitempty"`

	CategoryName  string `json:"categoryName,omitempty"`
	Category      *Ref   `json:"category,omitempty"`
	PublisherName string `json:"publisherName,omitempty"`
	Publisher     *Ref   `json:"publisher,omitempty"`
}

type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type Publisher struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Ref is a category or publisher relation as the backend sends it: a nested
// object, a flat name string, or a bare numeric id.
type Ref struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = Ref{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = Ref{Name: strings.TrimSpace(s)}
		return nil
	case '{':
		var obj struct {
			ID            json.Number `json:"id"`
			Name          string      `json:"name"`
			CategoryName  string      `json:"categoryName"`
			PublisherName string      `json:"publisherName"`
		}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&obj); err != nil {
			return err
		}
		name := firstNonEmpty(obj.Name, obj.CategoryName, obj.PublisherName)
		id, _ := obj.ID.Int64()
		*r = Ref{ID: id, Name: strings.TrimSpace(name)}
		return nil
	default:
		id, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return err
		}
		*r = Ref{ID: id}
		return nil
	}
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
