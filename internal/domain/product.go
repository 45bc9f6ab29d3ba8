package domain

// Product описывает товар каталога
type Product struct {
	ID       int64
	Name     string
	Category string
	Price    int64 // Цена хранится в центах
	InStock  bool
}

func NewProduct(id int64, name string, category string, price int64, inStock bool) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		InStock:  inStock,
	}
}
