// Package extractor shells out to the embedding pipeline script to turn an
// uploaded document into text chunks with embedding vectors.
package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/storage"
	"go.opentelemetry.io/otel/codes"
)

type Script struct {
	store   storage.Storage
	command string
	bucket  string
	ins     instrument.Instrumentation
}

func NewScript(store storage.Storage, cfg config.Config, ins instrument.Instrumentation) *Script {
	return &Script{
		store:   store,
		command: cfg.GetString("modules.document.extractor_command"),
		bucket:  cfg.GetString("modules.document.bucket"),
		ins:     ins,
	}
}

// pipelineChunk is the output row format of the pipeline script.
type pipelineChunk struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Embedding []float64 `json:"embedding"`
}

// Extract downloads the object, runs `<command> <input> <output>` and
// parses the produced JSON. The context deadline bounds the whole run.
func (s *Script) Extract(ctx context.Context, doc entity.Document) (chunks []entity.DocumentChunk, err error) {
	ctx, span := s.ins.Tracer("document.outbound.extractor").Start(ctx, "Extract")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if doc.IsExternal() {
		return nil, errors.New("extractor: external documents are not downloadable")
	}
	if s.command == "" {
		return nil, errors.New("extractor: command not configured")
	}

	tmpDir, err := os.MkdirTemp("", "goalnet-extract-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	inputPath := filepath.Join(tmpDir, "input"+filepath.Ext(doc.URL))
	outputPath := filepath.Join(tmpDir, "chunks.json")

	if err := s.download(ctx, doc.URL, inputPath); err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, s.command, inputPath, outputPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return nil, fmt.Errorf("extractor: pipeline failed: %w: %s", err, out)
	}

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("extractor: pipeline produced no output: %w", err)
	}

	var rows []pipelineChunk
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("extractor: malformed pipeline output: %w", err)
	}

	chunks = make([]entity.DocumentChunk, 0, len(rows))
	for _, row := range rows {
		chunks = append(chunks, entity.DocumentChunk{
			DocumentID: doc.ID,
			ChunkID:    row.ID,
			Text:       row.Text,
			Embedding:  row.Embedding,
		})
	}

	return chunks, nil
}

func (s *Script) download(ctx context.Context, key, dst string) error {
	rc, _, err := s.store.GetObject(ctx, s.bucket, key, storage.GetOptions{})
	if err != nil {
		return fmt.Errorf("extractor: fetch object %q: %w", key, err)
	}
	defer rc.Close()

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, rc); err != nil {
		return err
	}

	return f.Sync()
}
