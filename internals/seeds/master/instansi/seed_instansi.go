package instansi

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"kiadmin_backend/internals/features/master/instansi/model"
	"kiadmin_backend/internals/helpers/logger"
)

type InstansiSeed struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// SeedInstansi menambah instansi yang namanya belum terdaftar.
func SeedInstansi(ctx context.Context, db *gorm.DB, inputs []InstansiSeed) (int, error) {
	created := 0
	for _, in := range inputs {
		name := strings.TrimSpace(in.Name)
		if name == "" {
			continue
		}
		var existing model.InstansiModel
		err := db.WithContext(ctx).Where("instansi_name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, err
		}
		row := model.InstansiModel{InstansiName: name, InstansiType: strings.TrimSpace(in.Type)}
		if err := db.WithContext(ctx).Create(&row).Error; err != nil {
			return created, err
		}
		created++
	}
	logger.L().Info("✅ Seed instansi selesai", "created", created)
	return created, nil
}
