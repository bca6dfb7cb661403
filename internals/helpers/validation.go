package helper

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"kiadmin_backend/internals/constants"
	"kiadmin_backend/internals/helpers/kidate"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator mengembalikan instance validator bersama dengan tag kustom:
//   - ki_type  : jenis KI yang dikenal (alias DTLST diterima)
//   - ki_date  : tanggal ISO / M/D/YYYY
//   - mdy_date : tanggal M/D/YYYY
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("ki_type", func(fl validator.FieldLevel) bool {
			_, ok := constants.NormalizeKiType(fl.Field().String())
			return ok
		})
		_ = v.RegisterValidation("ki_date", func(fl validator.FieldLevel) bool {
			return kidate.Valid(fl.Field().String())
		})
		_ = v.RegisterValidation("mdy_date", func(fl validator.FieldLevel) bool {
			return kidate.ValidMDY(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// ValidateStruct menjalankan validator dan mengubah hasilnya menjadi AppError.
func ValidateStruct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return Validation("Permintaan tidak valid", nil)
	}
	fields := make(map[string][]string, len(ve))
	for _, fe := range ve {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return Validation("Validasi gagal", fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "wajib diisi"
	case "min":
		if fe.Kind() == reflect.String {
			return "minimal " + fe.Param() + " karakter"
		}
		return "minimal " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "maksimal " + fe.Param() + " karakter"
		}
		return "maksimal " + fe.Param()
	case "email":
		return "format email tidak valid"
	case "oneof":
		return "harus salah satu dari: " + fe.Param()
	case "uuid", "uuid4":
		return "format ID tidak valid"
	case "ki_type":
		return "jenis KI tidak dikenal"
	case "ki_date", "mdy_date":
		return "format tanggal tidak valid"
	case "latitude", "longitude":
		return "koordinat tidak valid"
	default:
		return "tidak valid (" + fe.Tag() + ")"
	}
}
