package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Page query (page / limit / query)
=================================*/

const (
	DefaultPage      = 1
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

type PageQuery struct {
	Page  int
	Limit int
	Query string
}

type CursorQuery struct {
	Cursor   string
	NumItems int
	Query    string
}

// ParsePageQuery membaca ?page=&limit=&query= (alias ?per_page=, ?q=).
// Nilai di luar batas ditolak, bukan dipotong.
func ParsePageQuery(c *fiber.Ctx) (PageQuery, error) {
	fields := map[string][]string{}

	page, ok := intQuery(c, DefaultPage, "page")
	if !ok || page < 1 {
		fields["page"] = []string{"harus bilangan bulat ≥ 1"}
	}
	limit, ok := intQuery(c, DefaultPageLimit, "limit", "per_page")
	if !ok || limit < 1 || limit > MaxPageLimit {
		fields["limit"] = []string{"harus di antara 1 dan " + strconv.Itoa(MaxPageLimit)}
	}
	if len(fields) > 0 {
		return PageQuery{}, Validation("Parameter halaman tidak valid", fields)
	}
	return PageQuery{Page: page, Limit: limit, Query: searchQuery(c)}, nil
}

// ParseCursorQuery membaca ?cursor=&num_items=&query= untuk mode "muat lagi".
func ParseCursorQuery(c *fiber.Ctx) (CursorQuery, error) {
	n, ok := intQuery(c, DefaultPageLimit, "num_items", "limit")
	if !ok || n < 1 || n > MaxPageLimit {
		return CursorQuery{}, Validation("Parameter halaman tidak valid", map[string][]string{
			"num_items": {"harus di antara 1 dan " + strconv.Itoa(MaxPageLimit)},
		})
	}
	return CursorQuery{
		Cursor:   strings.TrimSpace(c.Query("cursor")),
		NumItems: n,
		Query:    searchQuery(c),
	}, nil
}

func searchQuery(c *fiber.Ctx) string {
	q := c.Query("query")
	if strings.TrimSpace(q) == "" {
		q = c.Query("q")
	}
	return strings.TrimSpace(q)
}

func intQuery(c *fiber.Ctx, def int, keys ...string) (int, bool) {
	for _, k := range keys {
		raw := strings.TrimSpace(c.Query(k))
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return def, true
}
