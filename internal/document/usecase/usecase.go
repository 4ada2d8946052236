package usecase

import (
	"context"

	"github.com/tracksense/goalnet/internal/document/entity"
	"github.com/tracksense/goalnet/internal/pkg/clock"
	"github.com/tracksense/goalnet/internal/pkg/config"
	"github.com/tracksense/goalnet/internal/pkg/goerror"
	"github.com/tracksense/goalnet/internal/pkg/instrument"
	"github.com/tracksense/goalnet/internal/pkg/jwt"
	"github.com/tracksense/goalnet/internal/pkg/storage"
	"github.com/tracksense/goalnet/internal/pkg/uid"
	"github.com/tracksense/goalnet/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type DocumentUploadedEvent struct {
	DocumentID int64
	UserID     int64
	Title      string
	URL        string
	MimeType   string
}

type repoMessaging interface {
	PublishDocumentUploaded(ctx context.Context, msg DocumentUploadedEvent) error
}

// extractor runs the out-of-process text and embedding pipeline over an
// uploaded document.
type extractor interface {
	Extract(ctx context.Context, doc entity.Document) ([]entity.DocumentChunk, error)
}

type repoDB interface {
	ListDocuments(ctx context.Context, userID int64) ([]entity.Document, error)
	GetDocument(ctx context.Context, userID, id int64) (*entity.Document, error)
	CreateDocument(ctx context.Context, in entity.Document) error
	DeleteDocument(ctx context.Context, userID, id int64) error
	ReplaceDocumentChunks(ctx context.Context, documentID int64, chunks []entity.DocumentChunk) error
}

type Usecase struct {
	repoDB        repoDB
	repoMessaging repoMessaging
	extractor     extractor
	store         storage.Storage
	validator     validator.Validator
	cfg           config.Config
	uid           uid.NumberID
	keys          uid.StringID
	clock         clock.Clocker
	ins           instrument.Instrumentation
}

type Dependency struct {
	RepoDB        repoDB
	RepoMessaging repoMessaging
	Extractor     extractor
	Storage       storage.Storage
	Validator     validator.Validator
	Config        config.Config
	UID           uid.NumberID
	Keys          uid.StringID
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:        dep.RepoDB,
		repoMessaging: dep.RepoMessaging,
		extractor:     dep.Extractor,
		store:         dep.Storage,
		validator:     dep.Validator,
		cfg:           dep.Config,
		uid:           dep.UID,
		keys:          dep.Keys,
		clock:         dep.Clock,
		ins:           dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("document.usecase").Start(ctx, name)
}

func (s *Usecase) bucket() string {
	return s.cfg.GetString("modules.document.bucket")
}

func authUserID(ctx context.Context) (int64, error) {
	clm := jwt.GetAuth(ctx)
	if clm == nil {
		return 0, goerror.NewBusiness("authentication required", goerror.CodeUnauthorized)
	}
	return clm.UserID, nil
}
