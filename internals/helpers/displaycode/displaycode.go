// Package displaycode membuat kode tampilan berurutan seperti PKS-001 dan SKI-012.
package displaycode

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Format → PREFIX-NNN, minimal tiga digit; lebih dari 999 melebar sendiri.
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s-%03d", prefix, n)
}

// ParseSuffix membaca angka di belakang "PREFIX-".
func ParseSuffix(prefix, code string) (int64, bool) {
	digits, ok := strings.CutPrefix(code, prefix+"-")
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxSuffix mengambil suffix terbesar dari kumpulan kode.
func MaxSuffix(prefix string, codes []string) int64 {
	var max int64
	for _, c := range codes {
		if n, ok := ParseSuffix(prefix, c); ok && n > max {
			max = n
		}
	}
	return max
}

// NextFromExisting = suffix terbesar + 1 (atau 1 bila belum ada).
func NextFromExisting(prefix string, codes []string) string {
	return Format(prefix, MaxSuffix(prefix, codes)+1)
}

// Counter menyimpan nilai terakhir per prefix di tabel display_code_counters.
type Counter struct {
	Prefix    string    `gorm:"column:prefix;type:varchar(16);primaryKey" json:"prefix"`
	LastValue int64     `gorm:"column:last_value;not null;default:0" json:"last_value"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Counter) TableName() string { return "display_code_counters" }

// SeedFunc mengembalikan kode yang sudah ada (untuk inisialisasi counter pertama kali).
type SeedFunc func(tx *gorm.DB) ([]string, error)

// Next mengambil nomor berikutnya secara atomik. Dipanggil di dalam transaksi
// yang sama dengan insert record supaya nomor tidak terpakai bila insert gagal.
//
// Langkah 1 mengisi baris counter dari kode yang sudah ada (ON CONFLICT DO NOTHING,
// jadi hanya sekali). Langkah 2 menaikkan counter dengan satu UPSERT ... RETURNING,
// sehingga dua create bersamaan tidak pernah mendapat nomor yang sama.
func Next(ctx context.Context, tx *gorm.DB, prefix string, seed SeedFunc) (string, error) {
	db := tx.WithContext(ctx)

	var exists int64
	if err := db.Model(&Counter{}).Where("prefix = ?", prefix).Count(&exists).Error; err != nil {
		return "", err
	}
	if exists == 0 {
		var start int64
		if seed != nil {
			codes, err := seed(db)
			if err != nil {
				return "", err
			}
			start = MaxSuffix(prefix, codes)
		}
		if err := db.Exec(
			`INSERT INTO display_code_counters (prefix, last_value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT (prefix) DO NOTHING`,
			prefix, start, time.Now().UTC(),
		).Error; err != nil {
			return "", err
		}
	}

	var next int64
	if err := db.Raw(
		`INSERT INTO display_code_counters (prefix, last_value, updated_at) VALUES (?, 1, ?)
		 ON CONFLICT (prefix) DO UPDATE SET last_value = display_code_counters.last_value + 1, updated_at = excluded.updated_at
		 RETURNING last_value`,
		prefix, time.Now().UTC(),
	).Scan(&next).Error; err != nil {
		return "", err
	}
	return Format(prefix, next), nil
}
