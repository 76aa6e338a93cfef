package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-reservation/models"
)

// GormBackend stores each collection document in the collection_documents
// table, one row per collection.
type GormBackend struct {
	DB *gorm.DB
}

func NewGormBackend(db *gorm.DB) (*GormBackend, error) {
	if err := db.AutoMigrate(&models.CollectionDocument{}); err != nil {
		return nil, fmt.Errorf("migrate collection_documents: %w", err)
	}
	return &GormBackend{DB: db}, nil
}

func (b *GormBackend) Describe(name string) string {
	return "collection_documents/" + name
}

func (b *GormBackend) Load(name string) ([]byte, error) {
	var doc models.CollectionDocument
	err := b.DB.Where("name = ?", name).First(&doc).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query %s: %w", b.Describe(name), err)
	}
	if len(doc.Document) == 0 {
		return nil, nil
	}
	return []byte(doc.Document), nil
}

func (b *GormBackend) Save(name string, data []byte) error {
	doc := models.CollectionDocument{
		Name:      name,
		Document:  datatypes.JSON(data),
		UpdatedAt: time.Now(),
	}
	err := b.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		if isReadOnlyError(err) {
			return fmt.Errorf("save %s: database is read-only: %w", b.Describe(name), err)
		}
		return fmt.Errorf("save %s: %w", b.Describe(name), err)
	}
	return nil
}

// isReadOnlyError detects MySQL 1290 (--read-only) and 1792 (read-only transaction).
func isReadOnlyError(err error) bool {
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1290 || merr.Number == 1792
	}
	return false
}
