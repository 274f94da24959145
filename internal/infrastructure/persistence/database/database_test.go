package database

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB abre um banco SQLite descartável com o schema de usuario e funcionario
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), NewGormConfig("error"))
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}

	if err := db.AutoMigrate(&UsuarioModel{}, &FuncionarioModel{}); err != nil {
		t.Fatalf("falha ao criar schema: %v", err)
	}

	t.Cleanup(func() { _ = Close(db) })
	return db
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
