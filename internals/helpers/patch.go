package helper

import "github.com/bytedance/sonic"

/* =========================================================
   PatchField (tri-state): absent | null | value
   ========================================================= */

// PatchField membedakan field yang tidak dikirim dengan field yang dikirim null.
type PatchField[T any] struct {
	Present bool
	Value   *T
}

func (p *PatchField[T]) UnmarshalJSON(b []byte) error {
	p.Present = true
	if string(b) == "null" {
		p.Value = nil
		return nil
	}
	var v T
	if err := sonic.Unmarshal(b, &v); err != nil {
		return err
	}
	p.Value = &v
	return nil
}

func (p PatchField[T]) Get() (*T, bool) { return p.Value, p.Present }

// Set dipakai dari kode (mis. multipart) untuk mengisi patch secara eksplisit.
func Set[T any](v T) PatchField[T] { return PatchField[T]{Present: true, Value: &v} }

// Clear → present tapi null.
func Clear[T any]() PatchField[T] { return PatchField[T]{Present: true} }
