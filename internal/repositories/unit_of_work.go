package repositories

import "gorm.io/gorm"

// RepoSet bundles the repositories that participate in one transaction.
type RepoSet struct {
	Users     UserRepository
	Products  ProductRepository
	Orders    OrderRepository
	Discounts DiscountRepository
	Payments  PaymentRepository
}

// UnitOfWork runs a function against a transaction-bound RepoSet. If fn
// returns an error every write made through the set is rolled back; otherwise
// the transaction commits. Services own the boundary: one call per business
// operation.
type UnitOfWork interface {
	Do(fn func(repos RepoSet) error) error
}

// GORMUnitOfWork implements UnitOfWork over gorm's transaction support.
type GORMUnitOfWork struct {
	db *gorm.DB
}

// NewGORMUnitOfWork creates a new instance of GORMUnitOfWork.
func NewGORMUnitOfWork(db *gorm.DB) *GORMUnitOfWork {
	return &GORMUnitOfWork{db: db}
}

// Do executes fn inside a database transaction with repositories bound to it.
func (u *GORMUnitOfWork) Do(fn func(repos RepoSet) error) error {
	return u.db.Transaction(func(tx *gorm.DB) error {
		return fn(RepoSet{
			Users:     NewGORMUserRepository(tx),
			Products:  NewGORMProductRepository(tx),
			Orders:    NewGORMOrderRepository(tx),
			Discounts: NewGORMDiscountRepository(tx),
			Payments:  NewGORMPaymentRepository(tx),
		})
	})
}
