package db

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"

	"github.com/sharkoil/csec-tutor/internal/config"
)

// ContentRecord is one embedded chunk in the csec_content table. A chunk
// tagged with N topics is stored as N rows that differ only in topic.
type ContentRecord struct {
	bun.BaseModel `bun:"table:csec_content,alias:cc"`

	ID          uuid.UUID      `bun:"id,pk,type:uuid,nullzero,default:gen_random_uuid()"`
	Subject     string         `bun:"subject,notnull"`
	Topic       string         `bun:"topic,notnull"`
	Subtopic    string         `bun:"subtopic"`
	ContentType string         `bun:"content_type,notnull"`
	Content     string         `bun:"content,notnull"`
	Metadata    map[string]any `bun:"metadata,type:jsonb"`
	Embedding   []float32      `bun:"embedding,notnull,type:vector(384)"`
}

func Connect(cfg *config.DatabaseConfig) *bun.DB {
	dsn := cfg.URL + "?sslmode=disable"
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn), pgdriver.WithPassword(cfg.Key)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db
}

func InitContentTable(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model((*ContentRecord)(nil)).IfNotExists().Exec(ctx)
	return err
}

// ClearContent bulk-deletes every row before a repopulation run.
func ClearContent(ctx context.Context, db *bun.DB) error {
	_, err := db.NewDelete().Model((*ContentRecord)(nil)).Where("id != ?", uuid.Nil).Exec(ctx)
	return err
}

// insertFunc inserts a slice of records in a single statement.
type insertFunc func(ctx context.Context, records []ContentRecord) error

// StoreRecords inserts records in batches. A failed batch falls back to
// per-record inserts; a record that still fails is logged and dropped.
// Returns how many records were stored and how many were dropped.
func StoreRecords(ctx context.Context, db *bun.DB, records []ContentRecord, batchSize int) (stored, failed int) {
	return storeBatches(ctx, func(ctx context.Context, batch []ContentRecord) error {
		_, err := db.NewInsert().Model(&batch).Exec(ctx)
		return err
	}, records, batchSize)
}

func storeBatches(ctx context.Context, insert insertFunc, records []ContentRecord, batchSize int) (stored, failed int) {
	if batchSize <= 0 {
		batchSize = len(records)
	}

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		batch := records[start:end]

		err := insert(ctx, batch)
		if err == nil {
			stored += len(batch)
			continue
		}
		log.Warn().Err(err).Int("batch_size", len(batch)).Msg("Batch insert failed, retrying records individually")

		for i := range batch {
			if err := insert(ctx, batch[i:i+1]); err != nil {
				log.Error().Err(err).Str("subject", batch[i].Subject).Str("subtopic", batch[i].Subtopic).Msg("Record insert failed, dropping record")
				failed++
				continue
			}
			stored++
		}
	}

	return stored, failed
}
