package reconciliation

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bank-reconciler/core/reconcile"

	"github.com/stretchr/testify/require"
)

// Header rows start at the first line in the fixtures.
var testConfig = reconcile.Config{Mode: "membership", ReportPrefix: "reports"}

const companyCSV = "FECHA,DESCRIPCION,VALOR CARGOS,VALOR ABONOS\n" +
	"2024-01-02,deposit,,100.00\n" +
	"2024-01-03,supplier payment,50.00,\n" +
	"2024-01-04,opening,0,0\n"

const bankCSV = "Fecha,Descripcion,Cargo (US$),Abono (US$)\n" +
	"02/01/2024,cheque,100.00,\n" +
	"05/01/2024,fee,,3.00\n"

type upload struct {
	field, name, content string
}

// multipartRequest builds a POST request with the given file uploads and form values.
func multipartRequest(t *testing.T, target string, uploads []upload, values map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := w.CreateFormFile(u.field, u.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(u.content))
		require.NoError(t, err)
	}
	for k, v := range values {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func bothUploads() []upload {
	return []upload{
		{"company", "ledger.csv", companyCSV},
		{"bank", "statement.csv", bankCSV},
	}
}
