package category

import (
	"context"
	"errors"
	"testing"
)

type stubRepo struct {
	items []Category
	err   error
}

func (s *stubRepo) FindAll(ctx context.Context) ([]Category, error) { return s.items, s.err }

func TestServiceFindAll(t *testing.T) {
	svc := NewService(&stubRepo{items: []Category{{ID: 1, Name: "Books"}, {ID: 3, Name: "Computers"}}})
	got, err := svc.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Books" {
		t.Fatalf("unexpected categories: %+v", got)
	}
}

func TestServiceFindAllPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewService(&stubRepo{err: boom}).FindAll(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}
