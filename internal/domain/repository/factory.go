package repository

// Factory describes access to SQL-backed domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Orders() OrderRepository
}
