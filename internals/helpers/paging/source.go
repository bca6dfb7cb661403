package paging

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	helper "kiadmin_backend/internals/helpers"
)

// PageRequest: "ambil NumItems berikutnya setelah Cursor" dengan filter Query.
type PageRequest struct {
	Cursor   string
	NumItems int
	Query    string
}

type PageResult[T any] struct {
	Page           []T    `json:"page"`
	ContinueCursor string `json:"continue_cursor"`
	IsDone         bool   `json:"is_done"`
}

// Source adalah sumber data berbasis cursor ("muat lagi").
type Source[T any] interface {
	Paginate(ctx context.Context, req PageRequest) (PageResult[T], error)
}

// GormSource: keyset pagination (created_at, id) ASC di atas satu tabel.
type GormSource[T any] struct {
	DB              *gorm.DB
	CreatedAtColumn string
	IDColumn        string
	// SearchColumn kosong = pencarian diabaikan.
	SearchColumn string
	// Scope untuk filter tambahan (pemilik data, preload relasi).
	Scope func(*gorm.DB) *gorm.DB
	KeyOf func(T) (time.Time, string)
}

func (s *GormSource[T]) Paginate(ctx context.Context, req PageRequest) (PageResult[T], error) {
	if req.NumItems <= 0 {
		return PageResult[T]{}, fmt.Errorf("NumItems harus > 0")
	}
	q := s.DB.WithContext(ctx).Model(new(T))
	if s.Scope != nil {
		q = s.Scope(q)
	}
	if term := helper.NormalizeSearchTerm(req.Query); term != "" && s.SearchColumn != "" {
		q = q.Where("LOWER("+s.SearchColumn+") LIKE ? ESCAPE '\\'", helper.LikePattern(term))
	}
	if req.Cursor != "" {
		cur, err := DecodeCursor(req.Cursor)
		if err != nil {
			return PageResult[T]{}, helper.Validation("Cursor tidak valid", map[string][]string{"cursor": {"tidak valid"}})
		}
		q = q.Where(
			"("+s.CreatedAtColumn+" > ? OR ("+s.CreatedAtColumn+" = ? AND "+s.IDColumn+" > ?))",
			cur.CreatedAt, cur.CreatedAt, cur.ID,
		)
	}

	var rows []T
	if err := q.Order(s.CreatedAtColumn + " ASC").Order(s.IDColumn + " ASC").
		Limit(req.NumItems + 1).Find(&rows).Error; err != nil {
		return PageResult[T]{}, err
	}

	res := PageResult[T]{IsDone: len(rows) <= req.NumItems, ContinueCursor: req.Cursor}
	if !res.IsDone {
		rows = rows[:req.NumItems]
	}
	res.Page = rows
	if n := len(rows); n > 0 {
		t, id := s.KeyOf(rows[n-1])
		res.ContinueCursor = EncodeCursor(Cursor{CreatedAt: t, ID: id})
	}
	return res, nil
}
