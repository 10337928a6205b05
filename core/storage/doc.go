// Package storage provides an abstraction layer over S3 compatible object storage.
//
// It wraps the MinIO Go client. The reconciler uses it to read ledger and statement exports
// that were dropped into a bucket and to publish generated reports.
//
// # Client Interface
//
// The Client interface keeps only the operations the reconciler needs, so tests can use the
// testify mock in core/storage/mocks.
//
//   - BucketExists / MakeBucket: ensure the report bucket exists before publishing.
//   - PutObject: upload a report.
//   - GetObject: stream an input export.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	obj, err := client.GetObject(ctx, cfg.Storage.Bucket, "exports/bank.xls", minio.GetObjectOptions{})
package storage
