package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tmc/langchaingo/embeddings"

	"github.com/sharkoil/csec-tutor/internal/chromemdb"
	"github.com/sharkoil/csec-tutor/internal/config"
	"github.com/sharkoil/csec-tutor/internal/corpus"
	"github.com/sharkoil/csec-tutor/internal/db"
	"github.com/sharkoil/csec-tutor/internal/embedding"
	"github.com/sharkoil/csec-tutor/internal/helper"
	"github.com/sharkoil/csec-tutor/internal/models"
	"github.com/sharkoil/csec-tutor/internal/parser"
	"github.com/sharkoil/csec-tutor/internal/topics"
)

const (
	configFilePath  = "./configs/config.yaml"
	localDBPath     = "./chromemdb"
	localCollection = "csec_content"
	sampleRecords   = 3
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	dataDir := flag.String("data-dir", "./data", "Root directory holding past-papers/ and syllabi/")
	configPath := flag.String("config", configFilePath, "Path to the config file")
	clearFlag := flag.Bool("clear", false, "Clear existing content before populating")
	noClear := flag.Bool("no-clear", false, "Skip the clear prompt and keep existing content")
	dryRun := flag.Bool("dry-run", false, "Parse, chunk and tag only; do not embed or upload")
	local := flag.Bool("local", false, "Store into a local chromem database instead of Supabase")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}

	files, err := corpus.Scan(*dataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Error scanning corpus")
	}
	if len(files) == 0 {
		log.Fatal().
			Str("data_dir", *dataDir).
			Msg("No documents found; expected past-papers/{subject}/*.pdf and syllabi/{subject}/*.pdf")
	}
	log.Info().Int("files", len(files)).Msg("Found corpus documents")

	if *dryRun {
		runDry(ctx, cfg, files)
		return
	}

	embedder, err := embedding.NewEmbedder(&cfg.Embedding)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}

	if *local {
		runLocal(ctx, cfg, files, embedder, shouldClear(*clearFlag, *noClear))
		return
	}
	runRemote(ctx, cfg, files, embedder, shouldClear(*clearFlag, *noClear))
}

// shouldClear decides whether to wipe existing content: --clear forces it,
// --no-clear (or a non-interactive stdin) keeps it, otherwise ask.
func shouldClear(clearFlag, noClear bool) bool {
	if clearFlag {
		return true
	}
	if noClear || !isatty.IsTerminal(os.Stdin.Fd()) {
		log.Info().Msg("Keeping existing content (non-interactive mode or --no-clear flag)")
		return false
	}

	fmt.Print("Clear existing content before populating? (y/N): ")
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

func runRemote(ctx context.Context, cfg *config.Config, files []models.SourceFile, embedder *embeddings.EmbedderImpl, clear bool) {
	if err := cfg.ValidateRemote(); err != nil {
		log.Fatal().Err(err).Msg("Error validating config")
	}

	dbInstance := db.Connect(&cfg.Database)
	defer dbInstance.Close()

	if clear {
		if err := db.ClearContent(ctx, dbInstance); err != nil {
			log.Warn().Err(err).Msg("Could not clear existing content")
		} else {
			log.Info().Msg("Existing content cleared")
		}
	}

	if err := db.InitContentTable(ctx, dbInstance); err != nil {
		log.Fatal().Err(err).Msg("Error initializing content table")
	}

	records, processed := processFiles(ctx, cfg, files, embedder)
	log.Info().Int("records", len(records)).Msg("Uploading to Supabase")

	stored, failed := db.StoreRecords(ctx, dbInstance, records, cfg.Upload.BatchSize)
	logSummary(processed, len(files), len(records), stored, failed)
}

func runLocal(ctx context.Context, cfg *config.Config, files []models.SourceFile, embedder *embeddings.EmbedderImpl, clear bool) {
	if err := helper.CreateFolder(localDBPath); err != nil {
		log.Fatal().Err(err).Msg("Error creating local database folder")
	}

	store, err := chromemdb.NewStore(localDBPath, localCollection)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating local vector store")
	}

	if clear {
		if err := store.Clear(); err != nil {
			log.Warn().Err(err).Msg("Could not clear local collection")
		} else {
			log.Info().Msg("Local collection cleared")
		}
	}

	records, processed := processFiles(ctx, cfg, files, embedder)
	log.Info().Int("records", len(records)).Msg("Storing in local vector database")

	stored, failed := len(records), 0
	if err := store.StoreRecords(ctx, records); err != nil {
		log.Error().Err(err).Msg("Error storing records locally")
		stored, failed = 0, len(records)
	}
	logSummary(processed, len(files), len(records), stored, failed)
}

func runDry(ctx context.Context, cfg *config.Config, files []models.SourceFile) {
	records, processed := processFiles(ctx, cfg, files, nil)

	for i, rec := range records {
		if i >= sampleRecords {
			break
		}
		helper.PrettyPrint(rec)
	}
	logSummary(processed, len(files), len(records), 0, 0)
}

// processFiles runs the extract, chunk, tag and embed steps over every file
// sequentially. One file's failure never halts the run. A nil embedder
// skips embedding (dry run).
func processFiles(ctx context.Context, cfg *config.Config, files []models.SourceFile, embedder *embeddings.EmbedderImpl) ([]db.ContentRecord, int) {
	var allRecords []db.ContentRecord
	processed := 0

	for _, src := range files {
		log.Info().Str("subject", src.Subject).Str("file", src.Path).Msg("Processing")

		records, err := processFile(ctx, cfg, src, embedder)
		if err != nil {
			log.Error().Err(err).Str("file", src.Path).Msg("Error processing document, skipping")
			continue
		}
		if records == nil {
			continue
		}

		allRecords = append(allRecords, records...)
		processed++
		log.Info().Str("file", src.Path).Int("records", len(records)).Msg("Generated records")
	}

	return allRecords, processed
}

func processFile(ctx context.Context, cfg *config.Config, src models.SourceFile, embedder *embeddings.EmbedderImpl) ([]db.ContentRecord, error) {
	text, err := parser.ExtractText(src.Path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		log.Warn().Str("file", src.Path).Msg("Skipping: no text extracted")
		return nil, nil
	}

	fileMeta := corpus.ExtractFileMetadata(filepath.Base(src.Path), src.ContentType)
	topicList := topics.Detect(text, src.Subject)

	chunks := parser.ChunkText(text, cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap, cfg.RAG.MinChunkSize)
	if len(chunks) == 0 {
		log.Warn().Str("file", src.Path).Msg("Skipping: no valid chunks")
		return nil, nil
	}

	var vectors [][]float32
	if embedder != nil {
		vectors, err = embedding.EmbedChunks(ctx, embedder, chunks, cfg.Embedding.Dimension)
		if err != nil {
			return nil, err
		}
	}

	return db.BuildRecords(src, fileMeta, topicList, chunks, vectors), nil
}

func logSummary(processed, total, generated, stored, failed int) {
	log.Info().
		Int("files_processed", processed).
		Int("files_total", total).
		Int("records_generated", generated).
		Int("records_stored", stored).
		Int("records_failed", failed).
		Msg("Complete")
}
