package paging

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "kiadmin_backend/internals/helpers"
)

// sliceSource melayani angka 0..n-1 dan mencatat NumItems yang diminta.
type sliceSource struct {
	items    []int
	requests []int
	fail     error
}

func newSliceSource(n int) *sliceSource {
	s := &sliceSource{}
	for i := 0; i < n; i++ {
		s.items = append(s.items, i)
	}
	return s
}

func (s *sliceSource) Paginate(_ context.Context, req PageRequest) (PageResult[int], error) {
	s.requests = append(s.requests, req.NumItems)
	if s.fail != nil {
		return PageResult[int]{}, s.fail
	}
	start := 0
	if req.Cursor != "" {
		start, _ = strconv.Atoi(req.Cursor)
	}
	end := min(start+req.NumItems, len(s.items))
	return PageResult[int]{
		Page:           s.items[start:end],
		ContinueCursor: strconv.Itoa(end),
		IsDone:         end >= len(s.items),
	}, nil
}

func TestSetPageLoadsMissingItems(t *testing.T) {
	ctx := context.Background()
	src := newSliceSource(100)
	b := NewBridge[int](src)

	require.NoError(t, b.SetPage(ctx, 1, 15))
	require.Len(t, b.Items(), 15)

	require.NoError(t, b.SetPage(ctx, 3, 10))
	require.Len(t, src.requests, 2)
	assert.GreaterOrEqual(t, src.requests[1], 15)
	assert.Equal(t, []int{20, 21, 22, 23, 24, 25, 26, 27, 28, 29}, b.CurrentPageItems())

	info := b.Info()
	assert.Equal(t, UnknownPageCount, info.PageCount)
	assert.True(t, info.CanGoNext)
	assert.True(t, info.CanGoPrevious)
	assert.Equal(t, StatusCanLoadMore, info.Status)
}

func TestSetPageDoesNotLoadWhenEnoughItems(t *testing.T) {
	ctx := context.Background()
	src := newSliceSource(100)
	b := NewBridge[int](src)

	require.NoError(t, b.SetPage(ctx, 3, 10))
	require.NoError(t, b.SetPage(ctx, 2, 10))
	assert.Len(t, src.requests, 1)
	assert.Equal(t, 10, b.CurrentPageItems()[0])
}

func TestExhaustedSourceReportsPageCount(t *testing.T) {
	ctx := context.Background()
	b := NewBridge[int](newSliceSource(23))

	require.NoError(t, b.SetPage(ctx, 5, 10))
	info := b.Info()
	assert.True(t, info.IsExhausted)
	assert.Equal(t, 3, info.PageCount)
	assert.False(t, info.CanGoNext)
	assert.Empty(t, b.CurrentPageItems())

	require.NoError(t, b.SetPage(ctx, 3, 10))
	assert.Equal(t, []int{20, 21, 22}, b.CurrentPageItems())
}

func TestEmptySourceHasOnePage(t *testing.T) {
	b := NewBridge[int](newSliceSource(0))
	require.NoError(t, b.SetPage(context.Background(), 1, 10))
	assert.Equal(t, 1, b.PageCount())
	assert.Empty(t, b.CurrentPageItems())
}

func TestSetQueryResetsToFirstPage(t *testing.T) {
	ctx := context.Background()
	src := newSliceSource(50)
	b := NewBridge[int](src)
	require.NoError(t, b.SetPage(ctx, 3, 10))

	require.NoError(t, b.SetQuery(ctx, "merek"))
	info := b.Info()
	assert.Equal(t, 1, info.Page)
	assert.Equal(t, "merek", info.Query)
	assert.Len(t, b.Items(), 10)
}

func TestSetPageRejectsInvalidParams(t *testing.T) {
	b := NewBridge[int](newSliceSource(10))
	for _, tc := range []struct{ page, limit int }{{0, 10}, {1, 0}, {1, helper.MaxPageLimit + 1}, {MaxBridgeItems, 2}} {
		err := b.SetPage(context.Background(), tc.page, tc.limit)
		assert.ErrorIs(t, err, helper.ErrValidation, "page=%d limit=%d", tc.page, tc.limit)
	}
}

func TestLoadMoreKeepsStatusOnError(t *testing.T) {
	src := newSliceSource(10)
	src.fail = errors.New("db down")
	b := NewBridge[int](src)

	err := b.SetPage(context.Background(), 1, 5)
	require.Error(t, err)
	assert.Equal(t, StatusLoadingFirstPage, b.Info().Status)
}

func TestLoadReturnsCurrentPage(t *testing.T) {
	rows, info, err := Load[int](context.Background(), newSliceSource(12), helper.PageQuery{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 6, 7, 8, 9}, rows)
	assert.Equal(t, 2, info.Page)
}

func TestCursorRoundTripAndGarbage(t *testing.T) {
	_, err := DecodeCursor("%%%")
	assert.ErrorIs(t, err, ErrInvalidCursor)
	_, err = DecodeCursor("")
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
