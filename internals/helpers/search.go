package helper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeSearchTerm merapikan kata kunci pencarian. String kosong berarti tanpa filter.
func NormalizeSearchTerm(q string) string {
	q = norm.NFKC.String(q)
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

// LikePattern membungkus term menjadi pola substring untuk LIKE, dengan escape wildcard.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
