package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MeckMan2025/Meckman-Finance/internal/feature/lastsearch/usecase"
)

// recordID は単一エントリの固定主キーです。テーブルには常に最大1行しか存在しません。
const recordID = 1

// LastSearchModel は最後に検索されたシンボルを保持する単一行テーブルのgormモデルです。
// 元のブラウザ版ではlocalStorageの1エントリだったものを、ローカルのSQLiteファイルで代替します。
type LastSearchModel struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"size:20;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName はこのモデルのテーブル名を指定します。
func (LastSearchModel) TableName() string {
	return "last_search"
}

// lastSearchSQLite はusecase.RepositoryインターフェースのSQLite実装です。
type lastSearchSQLite struct {
	db *gorm.DB
}

var _ usecase.Repository = (*lastSearchSQLite)(nil)

// NewLastSearchSQLite は指定されたDB接続でリポジトリを生成し、テーブルを初期化します。
func NewLastSearchSQLite(db *gorm.DB) (*lastSearchSQLite, error) {
	if err := db.AutoMigrate(&LastSearchModel{}); err != nil {
		return nil, err
	}
	return &lastSearchSQLite{db: db}, nil
}

// Get は記録済みのシンボルを返します。未記録の場合はErrNotFoundを返します。
func (r *lastSearchSQLite) Get(ctx context.Context) (string, error) {
	var m LastSearchModel
	if err := r.db.WithContext(ctx).First(&m, recordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", usecase.ErrNotFound
		}
		return "", err
	}
	return m.Symbol, nil
}

// Set は固定主キーでのupsertにより単一エントリを上書きします。
func (r *lastSearchSQLite) Set(ctx context.Context, symbol string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"symbol", "updated_at"}),
		}).
		Create(&LastSearchModel{ID: recordID, Symbol: symbol}).Error
}
