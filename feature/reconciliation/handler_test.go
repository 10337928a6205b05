package reconciliation

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"bank-reconciler/core/report"
	"bank-reconciler/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	app := fiber.New()
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "test-bucket", zap.NewNop(), nil, testConfig)
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient
}

func TestHandleReconcile(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(multipartRequest(t, "/reconciliation", bothUploads(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, report.ContentType, resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), report.FileName)
	assert.Equal(t, "1", resp.Header.Get(HeaderPendingCompany))
	assert.Equal(t, "1", resp.Header.Get(HeaderPendingBank))
	assert.Equal(t, "Process finished. Found 1 pending in company and 1 in bank.", resp.Header.Get(HeaderMessage))
	assert.Empty(t, resp.Header.Get(HeaderReportObject))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.SheetPendingCompany)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "supplier payment", rows[1][1])

	rows, err = f.GetRows(report.SheetPendingBank)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "fee", rows[1][1])
}

func TestHandleReconcile_Publish(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)

	resp, err := app.Test(multipartRequest(t, "/reconciliation?publish=true", bothUploads(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	object := resp.Header.Get(HeaderReportObject)
	assert.True(t, strings.HasPrefix(object, "reports/"))
	assert.True(t, strings.HasSuffix(object, report.FileName))
	mockClient.AssertExpectations(t)
}

func TestHandleReconcile_PublishFails(t *testing.T) {
	app, mockClient := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, assert.AnError)

	resp, err := app.Test(multipartRequest(t, "/reconciliation?publish=true", bothUploads(), nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleReconcile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		uploads []upload
		values  map[string]string
		want    int
	}{
		{"MissingBank", []upload{{"company", "ledger.csv", companyCSV}}, nil, fiber.StatusBadRequest},
		{"MissingCompany", []upload{{"bank", "statement.csv", bankCSV}}, nil, fiber.StatusBadRequest},
		{"InvalidMode", bothUploads(), map[string]string{"mode": "fuzzy"}, fiber.StatusBadRequest},
		{"Malformed", []upload{{"company", "ledger.xlsx", "garbage"}, {"bank", "statement.csv", bankCSV}}, nil, fiber.StatusUnprocessableEntity},
		{"BadAmount", []upload{{"company", "ledger.csv", "DESCRIPCION,VALOR CARGOS\nx,N/D\n"}, {"bank", "statement.csv", bankCSV}}, nil, fiber.StatusUnprocessableEntity},
		{"MissingHeader", []upload{{"company", "ledger.csv", ""}, {"bank", "statement.csv", bankCSV}}, nil, fiber.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _ := setupTestApp(t)

			resp, err := app.Test(multipartRequest(t, "/reconciliation", tt.uploads, tt.values))
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)

			var body map[string]string
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandleReconcile_NotMultipart(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/reconciliation", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleSummary(t *testing.T) {
	app, _ := setupTestApp(t)

	req := multipartRequest(t, "/reconciliation/summary", bothUploads(), map[string]string{"mode": "multiset"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Summary map[string]any `json:"summary"`
		Message string         `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "multiset", body.Summary["mode"])
	assert.EqualValues(t, 3, body.Summary["company_rows"])
	assert.EqualValues(t, 1, body.Summary["pending_company"])
	assert.Equal(t, "Process finished. Found 1 pending in company and 1 in bank.", body.Message)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, fiber.StatusBadRequest, StatusFor(ErrMissingInput))
	assert.Equal(t, fiber.StatusInternalServerError, StatusFor(assert.AnError))
}
