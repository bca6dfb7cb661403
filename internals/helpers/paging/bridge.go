// Package paging menjembatani sumber data cursor ("muat lagi") dengan
// tabel bernomor halaman (page/limit).
package paging

import (
	"context"

	helper "kiadmin_backend/internals/helpers"
)

type Status string

const (
	StatusLoadingFirstPage Status = "LoadingFirstPage"
	StatusCanLoadMore      Status = "CanLoadMore"
	StatusLoadingMore      Status = "LoadingMore"
	StatusExhausted        Status = "Exhausted"
)

// UnknownPageCount dilaporkan selama sumber belum habis.
const UnknownPageCount = -1

// MaxBridgeItems membatasi jumlah item yang boleh dimuat untuk satu halaman.
const MaxBridgeItems = 10000

type PageInfo struct {
	Page          int    `json:"page"`
	Limit         int    `json:"limit"`
	PageCount     int    `json:"page_count"`
	TotalLoaded   int    `json:"total_loaded"`
	CanGoNext     bool   `json:"can_go_next"`
	CanGoPrevious bool   `json:"can_go_previous"`
	IsExhausted   bool   `json:"is_exhausted"`
	Status        Status `json:"status"`
	Query         string `json:"query,omitempty"`
}

type Bridge[T any] struct {
	source Source[T]
	query  string
	cursor string
	items  []T
	status Status
	page   int
	limit  int
}

func NewBridge[T any](src Source[T]) *Bridge[T] {
	return &Bridge[T]{
		source: src,
		status: StatusLoadingFirstPage,
		page:   1,
		limit:  helper.DefaultPageLimit,
	}
}

// SetQuery mengganti kata kunci: halaman kembali ke 1 dan sumber dimuat ulang.
func (b *Bridge[T]) SetQuery(ctx context.Context, q string) error {
	b.query = q
	b.cursor = ""
	b.items = nil
	b.status = StatusLoadingFirstPage
	return b.SetPage(ctx, 1, b.limit)
}

// SetPage pindah halaman. Bila item yang dimuat belum cukup untuk page*limit
// dan sumber masih bisa memberi data, sisanya dimuat lebih dulu.
func (b *Bridge[T]) SetPage(ctx context.Context, page, limit int) error {
	if page < 1 || limit < 1 || limit > helper.MaxPageLimit {
		return helper.Validation("Parameter halaman tidak valid", map[string][]string{
			"page":  {"harus bilangan bulat ≥ 1"},
			"limit": {"harus di antara 1 dan 100"},
		})
	}
	required := page * limit
	if required > MaxBridgeItems {
		return helper.Validation("Halaman terlalu jauh, persempit pencarian", map[string][]string{
			"page": {"melebihi batas data yang bisa dimuat"},
		})
	}
	b.page, b.limit = page, limit

	if required > len(b.items) && b.canLoadMore() {
		return b.LoadMore(ctx, required-len(b.items))
	}
	return nil
}

// LoadMore memuat minimal n item tambahan (atau sampai sumber habis).
func (b *Bridge[T]) LoadMore(ctx context.Context, n int) error {
	if n <= 0 || !b.canLoadMore() {
		return nil
	}
	prev := b.status
	if prev != StatusLoadingFirstPage {
		b.status = StatusLoadingMore
	}
	for n > 0 {
		res, err := b.source.Paginate(ctx, PageRequest{Cursor: b.cursor, NumItems: n, Query: b.query})
		if err != nil {
			b.status = prev
			return err
		}
		b.items = append(b.items, res.Page...)
		b.cursor = res.ContinueCursor
		n -= len(res.Page)
		if res.IsDone {
			b.status = StatusExhausted
			return nil
		}
		if len(res.Page) == 0 {
			// sumber belum selesai tapi tidak memberi item; hindari loop tanpa akhir
			break
		}
	}
	b.status = StatusCanLoadMore
	return nil
}

func (b *Bridge[T]) canLoadMore() bool {
	return b.status == StatusLoadingFirstPage || b.status == StatusCanLoadMore
}

func (b *Bridge[T]) Items() []T { return b.items }

func (b *Bridge[T]) PageCount() int {
	if b.status != StatusExhausted {
		return UnknownPageCount
	}
	pc := (len(b.items) + b.limit - 1) / b.limit
	if pc < 1 {
		pc = 1
	}
	return pc
}

// CurrentPageItems = items[(page-1)*limit : page*limit], dipotong ke jumlah yang ada.
func (b *Bridge[T]) CurrentPageItems() []T {
	start := (b.page - 1) * b.limit
	if start >= len(b.items) {
		return []T{}
	}
	end := min(start+b.limit, len(b.items))
	return b.items[start:end]
}

func (b *Bridge[T]) Info() PageInfo {
	pc := b.PageCount()
	return PageInfo{
		Page:          b.page,
		Limit:         b.limit,
		PageCount:     pc,
		TotalLoaded:   len(b.items),
		CanGoPrevious: b.page > 1,
		CanGoNext:     (pc != UnknownPageCount && b.page < pc) || (pc == UnknownPageCount && b.status == StatusCanLoadMore),
		IsExhausted:   b.status == StatusExhausted,
		Status:        b.status,
		Query:         b.query,
	}
}

// Load adalah jalur satu kali untuk handler HTTP: set query lalu pindah ke halaman.
func Load[T any](ctx context.Context, src Source[T], pq helper.PageQuery) ([]T, PageInfo, error) {
	b := NewBridge(src)
	b.query = pq.Query
	if err := b.SetPage(ctx, pq.Page, pq.Limit); err != nil {
		return nil, PageInfo{}, err
	}
	return b.CurrentPageItems(), b.Info(), nil
}
