package database

import (
	"context"

	"gorm.io/gorm"

	documentModel "kiadmin_backend/internals/features/documents/model"
	daftarKiModel "kiadmin_backend/internals/features/ki/daftar_ki/model"
	informasiKiModel "kiadmin_backend/internals/features/ki/informasi_ki/model"
	permohonanKiModel "kiadmin_backend/internals/features/ki/permohonan_ki/model"
	instansiModel "kiadmin_backend/internals/features/master/instansi/model"
	pksModel "kiadmin_backend/internals/features/sentra/pks/model"
	sentraKiModel "kiadmin_backend/internals/features/sentra/sentra_ki/model"
	userModel "kiadmin_backend/internals/features/users/user/model"
	helperAuth "kiadmin_backend/internals/helpers/auth"
	"kiadmin_backend/internals/helpers/displaycode"
	"kiadmin_backend/internals/helpers/logger"
)

// Models: urutan induk sebelum anak.
func Models() []any {
	return []any{
		&instansiModel.InstansiModel{},
		&userModel.UserModel{},
		&sentraKiModel.SentraKiModel{},
		&documentModel.DocumentModel{},
		&pksModel.PksModel{},
		&daftarKiModel.DaftarKiModel{},
		&permohonanKiModel.PermohonanKiModel{},
		&informasiKiModel.InformasiKiModel{},
		&helperAuth.BlacklistedToken{},
		&displaycode.Counter{},
	}
}

// Migrate menjalankan AutoMigrate untuk seluruh tabel aplikasi.
func Migrate(ctx context.Context, db *gorm.DB) error {
	log := logger.L()
	for _, m := range Models() {
		if err := db.WithContext(ctx).AutoMigrate(m); err != nil {
			log.Error("❌ migrate gagal", "model", m, "err", err)
			return err
		}
	}
	log.Info("✅ migrate selesai", "tables", len(Models()))
	return nil
}
