package reconciliation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"bank-reconciler/core/reconcile"
	"bank-reconciler/core/report"
	"bank-reconciler/core/storage"
	"bank-reconciler/core/table"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

var (
	// ErrMissingInput is returned when a side has no source.
	ErrMissingInput = errors.New("missing input")
	// ErrInvalidMode is returned for an unknown match mode.
	ErrInvalidMode = errors.New("invalid match mode")
	// ErrStorageUnavailable is returned when an operation needs object storage but none is configured.
	ErrStorageUnavailable = errors.New("object storage is not configured")
)

// Source describes where one side of a run is read from. Exactly one of Reader, Object or
// Query is used, in that order of precedence.
type Source struct {
	// Name is the file name used for format detection and messages.
	Name string
	// Reader holds the file content.
	Reader io.Reader
	// Object is a key in the storage bucket.
	Object string
	// Query is a SQL query run against the accounting database.
	Query string
}

func (s Source) empty() bool {
	return s.Reader == nil && s.Object == "" && s.Query == ""
}

// label names the source in logs.
func (s Source) label() string {
	switch {
	case s.Reader != nil:
		return s.Name
	case s.Object != "":
		return s.Object
	case s.Query != "":
		return "query"
	}
	return ""
}

// Service runs reconciliations and publishes their reports.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	db     *gorm.DB
	cfg    reconcile.Config
}

// NewService creates a new reconciliation service. client and db may be nil when the
// corresponding sources are not used.
func NewService(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg reconcile.Config) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		db:     db,
		cfg:    cfg,
	}
}

// Config returns the reconciliation defaults of the service.
func (s *Service) Config() reconcile.Config {
	return s.cfg
}

// Mode resolves the requested match mode, falling back to the configured default.
func (s *Service) Mode(requested string) (reconcile.Mode, error) {
	if strings.TrimSpace(requested) == "" {
		requested = s.cfg.Mode
	}
	mode, err := reconcile.ParseMode(requested)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMode, err)
	}
	return mode, nil
}

// Reconcile loads both sides concurrently and matches them.
// A failure on either side aborts the run and no result is returned.
func (s *Service) Reconcile(ctx context.Context, company, bank Source, mode string) (*reconcile.Result, error) {
	m, err := s.Mode(mode)
	if err != nil {
		return nil, err
	}

	var companyTable, bankTable *table.Table
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.Load(gctx, reconcile.Company, company)
		companyTable = t
		return err
	})
	g.Go(func() error {
		t, err := s.Load(gctx, reconcile.Bank, bank)
		bankTable = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res, err := reconcile.Reconcile(companyTable, bankTable, reconcile.Options{Mode: m})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Reconciliation finished",
		zap.String("company", company.label()),
		zap.String("bank", bank.label()),
		zap.String("mode", string(m)),
		zap.Int("company_rows", res.Summary.CompanyRows),
		zap.Int("bank_rows", res.Summary.BankRows),
		zap.Int("pending_company", res.Summary.PendingCompany),
		zap.Int("pending_bank", res.Summary.PendingBank),
	)

	return res, nil
}

// Load reads one side into a table.
func (s *Service) Load(ctx context.Context, side reconcile.Side, src Source) (*table.Table, error) {
	if src.empty() {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, side)
	}

	var (
		t   *table.Table
		err error
	)
	switch {
	case src.Reader != nil:
		t, err = table.Load(src.Reader, s.loadOptions(side, src.Name))
	case src.Object != "":
		t, err = s.loadObject(ctx, side, src.Object)
	default:
		t, err = table.LoadQuery(ctx, s.db, src.Query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", side, err)
	}
	return t, nil
}

func (s *Service) loadObject(ctx context.Context, side reconcile.Side, object string) (*table.Table, error) {
	obj, err := s.FetchObject(ctx, object)
	if err != nil {
		return nil, err
	}
	defer obj.Close()

	return table.Load(obj, s.loadOptions(side, object))
}

func (s *Service) loadOptions(side reconcile.Side, name string) table.LoadOptions {
	skip := s.cfg.CompanySkipRows
	if side == reconcile.Bank {
		skip = s.cfg.BankSkipRows
	}
	return table.LoadOptions{Name: name, SkipRows: skip}
}

// FetchObject opens an object of the configured bucket.
func (s *Service) FetchObject(ctx context.Context, object string) (io.ReadCloser, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}
	obj, err := s.client.GetObject(ctx, s.bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", object, err)
	}
	return obj, nil
}

// Report encodes the report workbook of a result.
func (s *Service) Report(res *reconcile.Result) ([]byte, error) {
	return report.Bytes(res)
}

// Publish uploads an encoded report and returns its object key.
func (s *Service) Publish(ctx context.Context, data []byte) (string, error) {
	if s.client == nil {
		return "", ErrStorageUnavailable
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return "", fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return "", fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
		s.logger.Info("Created report bucket", zap.String("bucket", s.bucket))
	}

	object := path.Join(s.cfg.ReportPrefix, uuid.NewString(), report.FileName)
	_, err = s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: report.ContentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload report: %w", err)
	}

	s.logger.Info("Report published", zap.String("bucket", s.bucket), zap.String("object", object))
	return object, nil
}
