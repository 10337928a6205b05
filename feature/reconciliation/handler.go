package reconciliation

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"bank-reconciler/core/logger"
	"bank-reconciler/core/reconcile"
	"bank-reconciler/core/report"
	"bank-reconciler/core/table"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response headers sent with the report download.
const (
	// HeaderPendingCompany carries the number of pending company rows.
	HeaderPendingCompany = "X-Pending-Company"
	// HeaderPendingBank carries the number of pending bank rows.
	HeaderPendingBank = "X-Pending-Bank"
	// HeaderMessage carries the human-readable reconciliation outcome.
	HeaderMessage = "X-Reconciliation-Message"
	// HeaderReportObject carries the storage key of the published report when publish=true.
	HeaderReportObject = "X-Report-Object"
)

// SummaryResponse is the body of the summary endpoint.
type SummaryResponse struct {
	Summary reconcile.Summary `json:"summary"`
	Message string            `json:"message"`
}

// Handler handles HTTP requests for reconciliation runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the reconciliation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/reconciliation")
	group.Post("/", h.HandleReconcile)
	group.Post("/summary", h.HandleSummary)
}

// HandleReconcile reconciles an uploaded ledger against a bank statement and returns the report.
// @Summary Reconcile Ledger and Statement
// @Description Matches the company ledger against the bank statement and returns the pending movements of both sides as an xlsx workbook.
// @Tags reconciliation
// @Accept multipart/form-data
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param company formData file false "Company ledger export (optional when a ledger query is configured)"
// @Param bank formData file true "Bank statement export"
// @Param mode formData string false "Match mode (membership, multiset)"
// @Param publish query bool false "Also upload the report to object storage"
// @Success 200 {file} file "Pending reconciliation workbook"
// @Failure 400 {object} map[string]string "Missing upload or invalid mode"
// @Failure 422 {object} map[string]string "Unreadable file or invalid amount"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation [post]
func (h *Handler) HandleReconcile(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.run(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	data, err := h.service.Report(res)
	if err != nil {
		return h.fail(c, l, err)
	}

	if c.QueryBool("publish") {
		object, err := h.service.Publish(c.Context(), data)
		if err != nil {
			return h.fail(c, l, err)
		}
		c.Set(HeaderReportObject, object)
	}

	c.Set(HeaderPendingCompany, strconv.Itoa(res.Summary.PendingCompany))
	c.Set(HeaderPendingBank, strconv.Itoa(res.Summary.PendingBank))
	c.Set(HeaderMessage, res.Summary.Message())
	c.Attachment(report.FileName)
	c.Set(fiber.HeaderContentType, report.ContentType)
	return c.Send(data)
}

// HandleSummary reconciles the uploads and returns only the aggregate figures.
// @Summary Reconciliation Summary
// @Description Same inputs as /reconciliation, returns the summary as JSON instead of the workbook.
// @Tags reconciliation
// @Accept multipart/form-data
// @Produce json
// @Param company formData file false "Company ledger export (optional when a ledger query is configured)"
// @Param bank formData file true "Bank statement export"
// @Param mode formData string false "Match mode (membership, multiset)"
// @Success 200 {object} SummaryResponse "Summary"
// @Failure 400 {object} map[string]string "Missing upload or invalid mode"
// @Failure 422 {object} map[string]string "Unreadable file or invalid amount"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /reconciliation/summary [post]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	res, err := h.run(c)
	if err != nil {
		return h.fail(c, l, err)
	}

	return c.JSON(SummaryResponse{Summary: res.Summary, Message: res.Summary.Message()})
}

// run reads both sides from the multipart form and reconciles them.
func (h *Handler) run(c *fiber.Ctx) (*reconcile.Result, error) {
	company, closeCompany, err := formSource(c, "company")
	if err != nil {
		return nil, err
	}
	defer closeCompany()

	bank, closeBank, err := formSource(c, "bank")
	if err != nil {
		return nil, err
	}
	defer closeBank()

	// Without an uploaded ledger the configured query is used
	if company.Reader == nil {
		company.Query = h.service.Config().CompanyQuery
	}

	return h.service.Reconcile(c.Context(), company, bank, c.FormValue("mode"))
}

// formSource opens an uploaded file. A missing field yields an empty Source.
func formSource(c *fiber.Ctx, field string) (Source, func(), error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Not a multipart request or no file under this field
		return Source{}, func() {}, nil
	}

	f, err := fh.Open()
	if err != nil {
		return Source{}, func() {}, fmt.Errorf("failed to open upload %s: %w", field, err)
	}
	return Source{Name: fh.Filename, Reader: f}, closer(f), nil
}

func closer(c io.Closer) func() {
	return func() { _ = c.Close() }
}

// fail logs err and writes the matching JSON error response.
func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := StatusFor(err)
	if status >= fiber.StatusInternalServerError {
		l.Error("Reconciliation failed", zap.Error(err))
	} else {
		l.Warn("Reconciliation rejected", zap.Int("status", status), zap.Error(err))
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}

// StatusFor maps a run error to its HTTP status code.
func StatusFor(err error) int {
	var (
		malformed *table.MalformedInputError
		amount    *reconcile.AmountParseError
	)
	switch {
	case errors.Is(err, ErrMissingInput), errors.Is(err, ErrInvalidMode):
		return fiber.StatusBadRequest
	case errors.As(err, &malformed), errors.As(err, &amount):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
