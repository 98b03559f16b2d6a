package books

// Input is the create/update payload for a book. Category and publisher are
// referenced by id.
type Input struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Author      string  `json:"author" binding:"required,max=120"`
	ISBN        string  `json:"isbn" binding:"omitempty,max=32"`
	Description string  `json:"description" binding:"omitempty,max=2000"`
	Price       float64 `json:"price" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Cover       string  `json:"cover" binding:"omitempty,url"`
	CategoryID  int64   `json:"categoryId" binding:"required,gt=0"`
	PublisherID int64   `json:"publisherId" binding:"required,gt=0"`
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required,max=80"`
	Description string `json:"description" binding:"omitempty,max=500"`
}

type PublisherInput struct {
	Name    string `json:"name" binding:"required,max=120"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" binding:"omitempty,max=20"`
	Address string `json:"address" binding:"omitempty,max=255"`
}
