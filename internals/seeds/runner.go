package seeds

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	instansiSeed "kiadmin_backend/internals/seeds/master/instansi"
	userSeed "kiadmin_backend/internals/seeds/users/auth"
)

// File adalah isi seed.yaml.
type File struct {
	Instansi []instansiSeed.InstansiSeed `yaml:"instansi"`
	Users    []userSeed.UserSeed         `yaml:"users"`
}

type Result struct {
	Instansi int
	Users    int
}

func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("baca file seed: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("decode yaml seed: %w", err)
	}
	return &f, nil
}

// RunAllSeeds: instansi dulu supaya user bisa merujuk instansi berdasarkan nama.
func RunAllSeeds(ctx context.Context, db *gorm.DB, f *File) (Result, error) {
	var res Result
	n, err := instansiSeed.SeedInstansi(ctx, db, f.Instansi)
	res.Instansi = n
	if err != nil {
		return res, err
	}
	n, err = userSeed.SeedUsers(ctx, db, f.Users)
	res.Users = n
	return res, err
}
