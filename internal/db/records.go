package db

import (
	"fmt"

	"github.com/sharkoil/csec-tutor/internal/models"
)

// BuildRecords fans one document's chunks out into content records: one row
// per chunk per topic, each carrying the file metadata plus its chunk index
// and the total chunk count. embeddings may be nil on a dry run; otherwise
// it must be chunk-aligned.
func BuildRecords(src models.SourceFile, fileMeta map[string]any, topicList, chunks []string, embeddings [][]float32) []ContentRecord {
	records := make([]ContentRecord, 0, len(chunks)*len(topicList))

	for i, chunk := range chunks {
		meta := make(map[string]any, len(fileMeta)+2)
		for k, v := range fileMeta {
			meta[k] = v
		}
		meta["chunk_index"] = i
		meta["total_chunks"] = len(chunks)

		var vector []float32
		if embeddings != nil {
			vector = embeddings[i]
		}

		for _, topic := range topicList {
			records = append(records, ContentRecord{
				Subject:     src.Subject,
				Topic:       topic,
				Subtopic:    fmt.Sprintf("Chunk %d", i+1),
				ContentType: src.ContentType,
				Content:     chunk,
				Metadata:    meta,
				Embedding:   vector,
			})
		}
	}

	return records
}
