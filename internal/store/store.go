package store

import (
	"context"

	"gorm.io/gorm/clause"

	"github.com/eos420/indexer-api/internal/store/schema"
)

//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore

// Store defines the interface for database operations.
// Lookups that match no row return (nil, nil); only storage failures return an error.
type Store interface {
	// FindBlocks retrieves blocks matching the query
	FindBlocks(ctx context.Context, q Query) ([]schema.Block, error)
	// CountBlocks counts blocks matching all filters
	CountBlocks(ctx context.Context, filters ...Filter) (int64, error)

	// FindTransactions retrieves transactions matching the query
	FindTransactions(ctx context.Context, q Query) ([]schema.Transaction, error)
	// CountTransactions counts transactions matching all filters
	CountTransactions(ctx context.Context, filters ...Filter) (int64, error)

	// FindExtrinsics retrieves extrinsics matching the query
	FindExtrinsics(ctx context.Context, q Query) ([]schema.Extrinsic, error)
	// CountExtrinsics counts extrinsics matching all filters
	CountExtrinsics(ctx context.Context, filters ...Filter) (int64, error)

	// GetContractByID retrieves a contract by its snowflake id
	GetContractByID(ctx context.Context, id int64) (*schema.Contract, error)
	// FindContracts retrieves contracts matching the query
	FindContracts(ctx context.Context, q Query) ([]schema.Contract, error)
	// CountContracts counts contracts matching all filters
	CountContracts(ctx context.Context, filters ...Filter) (int64, error)

	// GetClassByID retrieves a class by its snowflake id
	GetClassByID(ctx context.Context, id int64) (*schema.Class, error)

	// FindAssets retrieves assets matching the query
	FindAssets(ctx context.Context, q Query) ([]schema.Asset, error)
	// CountAssets counts assets matching all filters
	CountAssets(ctx context.Context, filters ...Filter) (int64, error)
	// AssetHolders returns the addresses holding the most asset rows of a contract, largest first
	AssetHolders(ctx context.Context, contractID int64, limit int) ([]HolderCount, error)
	// CountAssetHolders counts the distinct addresses holding assets of a contract
	CountAssetHolders(ctx context.Context, contractID int64) (int64, error)

	// FindLockedAssets retrieves locked assets matching the query
	FindLockedAssets(ctx context.Context, q Query) ([]schema.LockedAsset, error)
}

// HolderCount is one row of the holder aggregation
type HolderCount struct {
	Address string `gorm:"column:address"`
	Count   int64  `gorm:"column:count"`
}

// Query selects rows: all filters must match, orders apply left to right.
// A zero Limit means no limit.
type Query struct {
	Filters []Filter
	Orders  []Order
	Limit   int
	Offset  int
}

// Filter is a single condition on a table's columns
type Filter struct {
	expr clause.Expression
}

// Eq matches rows whose column equals value
func Eq(column string, value any) Filter {
	return Filter{expr: clause.Eq{Column: clause.Column{Name: column}, Value: value}}
}

// In matches rows whose column is one of values; an empty list matches nothing
func In[T any](column string, values []T) Filter {
	vals := make([]any, len(values))
	for i, v := range values {
		vals[i] = v
	}
	return Filter{expr: clause.IN{Column: clause.Column{Name: column}, Values: vals}}
}

// Or matches rows satisfying any of the filters
func Or(filters ...Filter) Filter {
	return Filter{expr: clause.Or(expressions(filters)...)}
}

func expressions(filters []Filter) []clause.Expression {
	exprs := make([]clause.Expression, len(filters))
	for i, f := range filters {
		exprs[i] = f.expr
	}
	return exprs
}

// Order sorts by a column
type Order struct {
	Column string
	Desc   bool
}

// Desc sorts descending
func Desc(column string) Order {
	return Order{Column: column, Desc: true}
}

// Latest is the ordering that puts the most recent row of an entity first
var Latest = Desc("id")
