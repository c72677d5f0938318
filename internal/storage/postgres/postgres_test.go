package postgres

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
)

func TestEmbeddedMigrationsAreOrdered(t *testing.T) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		t.Fatalf("iofs: %v", err)
	}
	defer src.Close()

	first, err := src.First()
	if err != nil || first != 1 {
		t.Fatalf("first=%d err=%v", first, err)
	}
	next, err := src.Next(first)
	if err != nil || next != 2 {
		t.Fatalf("next=%d err=%v", next, err)
	}
	for _, v := range []uint{first, next} {
		r, _, err := src.ReadDown(v)
		if err != nil {
			t.Fatalf("version %d has no down migration: %v", v, err)
		}
		r.Close()
	}
}

func TestOrderItemsBlockProductDelete(t *testing.T) {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		t.Fatalf("iofs: %v", err)
	}
	defer src.Close()

	r, _, err := src.ReadUp(1)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	defer r.Close()
	b, _ := io.ReadAll(r)
	schema := string(b)
	if !strings.Contains(schema, "product_id BIGINT         NOT NULL REFERENCES tb_product (id),") {
		t.Fatalf("order items must reference products without cascade")
	}
}
