package products

// Product es un ítem de inventario de un usuario.
type Product struct {
	ID          int64
	Name        string
	Quantity    int
	MinQuantity int
	// nil o 0 => sin tope máximo.
	MaxQuantity *int
	Category    *string
	UserID      int64
}
