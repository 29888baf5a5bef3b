package postgres

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cervejaria-pos/internal/domain"
)

type fakeTag int64

func (t fakeTag) RowsAffected() int64 { return int64(t) }

type fakeRow struct{}

func (fakeRow) Scan(dest ...any) error {
	if len(dest) == 1 {
		if id, ok := dest[0].(*int); ok {
			*id = 1
		}
	}
	return nil
}

// fakeTx scripts Exec outcomes by SQL fragment and records whether the
// tx committed or rolled back.
type fakeTx struct {
	affected   map[string]int64
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	for fragment, n := range t.affected {
		if strings.Contains(sql, fragment) {
			return fakeTag(n), nil
		}
	}
	return fakeTag(1), nil
}

func (t *fakeTx) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return nil, errors.New("unexpected query")
}

func (t *fakeTx) QueryRow(ctx context.Context, sql string, args ...any) Row {
	return fakeRow{}
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakeDB struct {
	tx *fakeTx
}

func (db *fakeDB) Begin(ctx context.Context) (Tx, error) { return db.tx, nil }

func (db *fakeDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	return nil, errors.New("unexpected query")
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) Row { return fakeRow{} }

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return fakeTag(1), nil
}

func (db *fakeDB) Close() {}

func TestPayGuardsSettledOrders(t *testing.T) {
	// Zero rows from the guarded update means another pay or a cancel
	// won the race; the cashier must not be credited.
	tx := &fakeTx{affected: map[string]int64{"UPDATE pedidos": 0}}
	repo := NewOrderRepository(&fakeDB{tx: tx})

	order := &domain.Order{ID: 1, Status: domain.StatusPaid}
	err := repo.Pay(context.Background(), order, 1, "caixa")
	if !errors.Is(err, domain.ErrAlreadyPaid) {
		t.Fatalf("Pay() error = %v, want %v", err, domain.ErrAlreadyPaid)
	}
	if tx.committed {
		t.Error("tx committed after guarded update matched no rows")
	}
	if !tx.rolledBack {
		t.Error("tx not rolled back")
	}
}

func TestPayRequiresOpenCashierRow(t *testing.T) {
	tx := &fakeTx{affected: map[string]int64{"UPDATE caixas": 0}}
	repo := NewOrderRepository(&fakeDB{tx: tx})

	order := &domain.Order{ID: 1, Status: domain.StatusPaid}
	err := repo.Pay(context.Background(), order, 1, "caixa")
	if !errors.Is(err, domain.ErrCashierNotOpen) {
		t.Fatalf("Pay() error = %v, want %v", err, domain.ErrCashierNotOpen)
	}
	if tx.committed {
		t.Error("tx committed after cashier credit matched no rows")
	}
}

func TestCreateRollsBackOnStockShortfall(t *testing.T) {
	tx := &fakeTx{affected: map[string]int64{"UPDATE produtos": 0}}
	repo := NewOrderRepository(&fakeDB{tx: tx})

	order := &domain.Order{
		Status: domain.StatusOpen,
		Items: []domain.OrderItem{
			{ProductID: 1, Quantity: 3},
		},
	}
	err := repo.Create(context.Background(), order)
	if !errors.Is(err, domain.ErrInsufficientStock) {
		t.Fatalf("Create() error = %v, want %v", err, domain.ErrInsufficientStock)
	}
	if tx.committed {
		t.Error("tx committed after stock decrement matched no rows")
	}
	if !tx.rolledBack {
		t.Error("tx not rolled back")
	}
}
