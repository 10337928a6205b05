package reconciliation

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"bank-reconciler/core/database"
	"bank-reconciler/core/reconcile"
	"bank-reconciler/core/storage/mocks"
	"bank-reconciler/core/table"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(client *mocks.Client) *Service {
	if client == nil {
		return NewService(nil, "test-bucket", zap.NewNop(), nil, testConfig)
	}
	return NewService(client, "test-bucket", zap.NewNop(), nil, testConfig)
}

func TestService_Reconcile(t *testing.T) {
	svc := newTestService(nil)

	res, err := svc.Reconcile(context.Background(),
		Source{Name: "ledger.csv", Reader: strings.NewReader(companyCSV)},
		Source{Name: "statement.csv", Reader: strings.NewReader(bankCSV)},
		"",
	)
	require.NoError(t, err)

	assert.Equal(t, reconcile.MatchMembership, res.Summary.Mode)
	assert.Equal(t, 1, res.Summary.PendingCompany)
	assert.Equal(t, 1, res.Summary.PendingBank)
	assert.Equal(t, 1, res.Summary.CompanySkipped)
	assert.Equal(t, "supplier payment", res.PendingCompany.Rows[0].Get("DESCRIPCION").String())
	assert.Equal(t, "fee", res.PendingBank.Rows[0].Get("Descripcion").String())
}

func TestService_ReconcileErrors(t *testing.T) {
	svc := newTestService(nil)
	ctx := context.Background()
	bank := func() Source { return Source{Name: "statement.csv", Reader: strings.NewReader(bankCSV)} }

	t.Run("MissingCompany", func(t *testing.T) {
		_, err := svc.Reconcile(ctx, Source{}, bank(), "")
		assert.ErrorIs(t, err, ErrMissingInput)
	})

	t.Run("InvalidMode", func(t *testing.T) {
		_, err := svc.Reconcile(ctx, Source{Name: "a.csv", Reader: strings.NewReader(companyCSV)}, bank(), "fuzzy")
		assert.ErrorIs(t, err, ErrInvalidMode)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := svc.Reconcile(ctx, Source{Name: "ledger.xlsx", Reader: strings.NewReader("not a workbook")}, bank(), "")
		var malformed *table.MalformedInputError
		assert.True(t, errors.As(err, &malformed))
	})

	t.Run("BadAmount", func(t *testing.T) {
		bad := "DESCRIPCION,VALOR CARGOS,VALOR ABONOS\nx,abc,\n"
		_, err := svc.Reconcile(ctx, Source{Name: "ledger.csv", Reader: strings.NewReader(bad)}, bank(), "")
		var amount *reconcile.AmountParseError
		assert.True(t, errors.As(err, &amount))
	})

	t.Run("StorageNotConfigured", func(t *testing.T) {
		_, err := svc.Reconcile(ctx, Source{Object: "exports/ledger.csv"}, bank(), "")
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}

func TestService_ReconcileFromObjects(t *testing.T) {
	client := new(mocks.Client)
	svc := newTestService(client)

	client.On("GetObject", mock.Anything, "test-bucket", "exports/ledger.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(companyCSV)), nil)
	client.On("GetObject", mock.Anything, "test-bucket", "exports/statement.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(bankCSV)), nil)

	res, err := svc.Reconcile(context.Background(),
		Source{Object: "exports/ledger.csv"},
		Source{Object: "exports/statement.csv"},
		"multiset",
	)
	require.NoError(t, err)
	assert.Equal(t, reconcile.MatchMultiset, res.Summary.Mode)
	assert.Equal(t, 1, res.Summary.PendingCompany)
	client.AssertExpectations(t)
}

func TestService_ReconcileFromQuery(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	require.NoError(t, db.Exec("CREATE TABLE libro (descripcion TEXT, cargos REAL, abonos REAL)").Error)
	require.NoError(t, db.Exec("INSERT INTO libro VALUES ('deposit', NULL, 100.0), ('payment', 50.0, NULL)").Error)

	svc := NewService(nil, "test-bucket", zap.NewNop(), db, testConfig)
	query := `SELECT descripcion AS "DESCRIPCION", cargos AS "VALOR CARGOS", abonos AS "VALOR ABONOS" FROM libro`

	res, err := svc.Reconcile(context.Background(),
		Source{Query: query},
		Source{Name: "statement.csv", Reader: strings.NewReader(bankCSV)},
		"",
	)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Summary.CompanyRows)
	assert.Equal(t, 1, res.Summary.PendingCompany)
	assert.Equal(t, "payment", res.PendingCompany.Rows[0].Get("DESCRIPCION").String())
}

func TestService_Publish(t *testing.T) {
	t.Run("ExistingBucket", func(t *testing.T) {
		client := new(mocks.Client)
		svc := newTestService(client)

		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, "test-bucket", mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "reports/") && strings.HasSuffix(key, "/pending_reconciliation.xlsx")
		}), mock.Anything, int64(4), mock.Anything).Return(minio.UploadInfo{}, nil)

		object, err := svc.Publish(context.Background(), []byte("xlsx"))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(object, "reports/"))
		client.AssertExpectations(t)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CreatesBucket", func(t *testing.T) {
		client := new(mocks.Client)
		svc := newTestService(client)

		client.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "test-bucket", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil)

		_, err := svc.Publish(context.Background(), []byte("xlsx"))
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("UploadFails", func(t *testing.T) {
		client := new(mocks.Client)
		svc := newTestService(client)

		client.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection refused"))

		_, err := svc.Publish(context.Background(), []byte("xlsx"))
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("NoStorage", func(t *testing.T) {
		_, err := newTestService(nil).Publish(context.Background(), []byte("xlsx"))
		assert.ErrorIs(t, err, ErrStorageUnavailable)
	})
}
