// Package chromemdb persists content records into a local chromem-go
// collection for runs without Supabase access.
package chromemdb

import (
	"context"
	"fmt"
	"runtime"
	"strconv"

	"github.com/google/uuid"
	"github.com/philippgille/chromem-go"

	"github.com/sharkoil/csec-tutor/internal/db"
)

const compress = false

type Store struct {
	db             *chromem.DB
	collection     *chromem.Collection
	collectionName string
}

func NewStore(dbPath, collectionName string) (*Store, error) {
	cdb, err := chromem.NewPersistentDB(dbPath, compress)
	if err != nil {
		return nil, fmt.Errorf("creating local vector database: %w", err)
	}
	collection, err := cdb.GetOrCreateCollection(collectionName, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("creating collection %s: %w", collectionName, err)
	}
	return &Store{db: cdb, collection: collection, collectionName: collectionName}, nil
}

// Clear drops and recreates the collection, the local equivalent of the
// remote bulk delete.
func (s *Store) Clear() error {
	if err := s.db.DeleteCollection(s.collectionName); err != nil {
		return fmt.Errorf("dropping collection: %w", err)
	}
	collection, err := s.db.GetOrCreateCollection(s.collectionName, nil, nil)
	if err != nil {
		return fmt.Errorf("recreating collection: %w", err)
	}
	s.collection = collection
	return nil
}

// StoreRecords adds all records with their precomputed embeddings. chromem
// only takes string metadata, so numeric fields are stringified.
func (s *Store) StoreRecords(ctx context.Context, records []db.ContentRecord) error {
	if len(records) == 0 {
		return nil
	}

	docs := make([]chromem.Document, 0, len(records))
	for _, rec := range records {
		docs = append(docs, chromem.Document{
			ID:        uuid.NewString(),
			Content:   rec.Content,
			Metadata:  recordMetadata(rec),
			Embedding: rec.Embedding,
		})
	}

	if err := s.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("adding documents: %w", err)
	}
	return nil
}

// Count reports how many documents the collection holds.
func (s *Store) Count() int {
	return s.collection.Count()
}

func recordMetadata(rec db.ContentRecord) map[string]string {
	meta := map[string]string{
		"subject":      rec.Subject,
		"topic":        rec.Topic,
		"subtopic":     rec.Subtopic,
		"content_type": rec.ContentType,
	}
	for k, v := range rec.Metadata {
		switch val := v.(type) {
		case string:
			meta[k] = val
		case int:
			meta[k] = strconv.Itoa(val)
		default:
			meta[k] = fmt.Sprint(val)
		}
	}
	return meta
}
