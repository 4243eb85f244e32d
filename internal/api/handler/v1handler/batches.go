package v1handler

import (
	"net/http"
	"sattva/internal/traceability"
	"sattva/pkg/domain"
	"sattva/pkg/qrcode"
	"sattva/pkg/serrors"
)

// qrCellSize is the edge length in pixels of one cell of the rendered QR pattern.
const qrCellSize = 8

// ListBatches lists batches filtered by the status and search query parameters.
func (h Handler) ListBatches(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	batches, err := h.deps.Traceability.Batches(r.Context(), traceability.BatchQuery{
		Status: q.Get("status"),
		Search: q.Get("search"),
	})
	if err != nil {
		return err //nolint: wrapcheck
	}
	if batches == nil {
		batches = []domain.Batch{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"batches": batches, "total": len(batches)})

	return nil
}

// CreateBatch registers a new harvested batch. Anonymous requests are
// attributed to the demo farmer.
func (h Handler) CreateBatch(w http.ResponseWriter, r *http.Request) error {
	var actor *domain.UserID
	if ctx := r.Context(); authenticated(ctx) {
		if !GetRoleFromContext(ctx).Can(domain.CapBatchesCreate) {
			return serrors.With(serrors.ErrForbidden, "forbidden")
		}
		id := GetUserIDFromContext(ctx)
		actor = &id
	}

	var req traceability.NewBatch
	if err := decode(w, r, &req); err != nil {
		return err
	}

	batch, err := h.deps.Traceability.CreateBatch(r.Context(), actor, req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusCreated, map[string]any{"batch": batch})

	return nil
}

// GetBatch returns a batch by id.
func (h Handler) GetBatch(w http.ResponseWriter, r *http.Request) error {
	batch, err := h.deps.Traceability.Batch(r.Context(), r.PathValue("id"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"batch": batch})

	return nil
}

// VerifyBatch returns the provenance of the batch in the batchId query parameter.
func (h Handler) VerifyBatch(w http.ResponseWriter, r *http.Request) error {
	res, err := h.deps.Traceability.Verify(r.Context(), r.URL.Query().Get("batchId"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, res)

	return nil
}

// GetBatchQR returns the QR record of a batch, if issued, and its placeholder pattern.
func (h Handler) GetBatchQR(w http.ResponseWriter, r *http.Request) error {
	id := r.PathValue("id")
	record, err := h.deps.Traceability.QRRecord(r.Context(), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{
		"record":  record,
		"pattern": qrcode.New(id).Bools(),
		"size":    qrcode.Size,
	})

	return nil
}

// GetBatchQRSVG renders the placeholder pattern of a batch.
func (h Handler) GetBatchQRSVG(w http.ResponseWriter, r *http.Request) error {
	batch, err := h.deps.Traceability.Batch(r.Context(), r.PathValue("id"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write([]byte(qrcode.SVG(qrcode.New(batch.ID), qrCellSize)))

	return nil
}

// GenerateBatchQR issues the QR record of a batch.
func (h Handler) GenerateBatchQR(w http.ResponseWriter, r *http.Request) error {
	record, err := h.deps.Traceability.GenerateQR(r.Context(), GetUserIDFromContext(r.Context()), r.PathValue("id"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"record": record})

	return nil
}

// UploadLabReport attaches lab results to a batch.
func (h Handler) UploadLabReport(w http.ResponseWriter, r *http.Request) error {
	var req domain.LabResults
	if err := decode(w, r, &req); err != nil {
		return err
	}

	report, err := h.deps.Traceability.UploadLabReport(r.Context(),
		GetUserIDFromContext(r.Context()), r.PathValue("id"), req)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusCreated, map[string]any{"labReport": report})

	return nil
}

type transferRequest struct {
	BatchID  string `json:"batchId"`
	ToUserID string `json:"toUserId"`
}

// ListTransfers lists custody transfers, optionally of one batch.
func (h Handler) ListTransfers(w http.ResponseWriter, r *http.Request) error {
	transfers, err := h.deps.Traceability.Transfers(r.Context(), r.URL.Query().Get("batchId"))
	if err != nil {
		return err //nolint: wrapcheck
	}
	if transfers == nil {
		transfers = []domain.Transfer{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"transfers": transfers})

	return nil
}

// CreateTransfer hands a batch over to a manufacturer.
func (h Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) error {
	var req transferRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}
	if req.BatchID == "" || req.ToUserID == "" {
		return serrors.With(serrors.ErrBadRequest, "batchId and toUserId are required")
	}
	to, err := domain.ParseUserID(req.ToUserID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "Invalid toUserId")
	}

	transfer, err := h.deps.Traceability.Transfer(r.Context(), GetUserIDFromContext(r.Context()), req.BatchID, to)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusCreated, map[string]any{"transfer": transfer})

	return nil
}

// ListLabReports lists lab reports filtered by the status query parameter.
func (h Handler) ListLabReports(w http.ResponseWriter, r *http.Request) error {
	reports, err := h.deps.Traceability.LabReports(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		return err //nolint: wrapcheck
	}
	if reports == nil {
		reports = []domain.LabReport{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"labReports": reports})

	return nil
}

// ListQRRecords lists every issued QR record.
func (h Handler) ListQRRecords(w http.ResponseWriter, r *http.Request) error {
	records, err := h.deps.Traceability.QRRecords(r.Context())
	if err != nil {
		return err //nolint: wrapcheck
	}
	if records == nil {
		records = []domain.QRRecord{}
	}

	writeJSON(r.Context(), w, http.StatusOK, map[string]any{"records": records})

	return nil
}

// DashboardStats returns the dashboard counters. Farmers see their own
// batches, manufacturers the whole chain.
func (h Handler) DashboardStats(w http.ResponseWriter, r *http.Request) error {
	var createdBy *domain.UserID
	if GetRoleFromContext(r.Context()) == domain.RoleFarmer {
		id := GetUserIDFromContext(r.Context())
		createdBy = &id
	}

	stats, err := h.deps.Traceability.Stats(r.Context(), createdBy)
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, stats)

	return nil
}

// DashboardAnalytics returns the batch charts data.
func (h Handler) DashboardAnalytics(w http.ResponseWriter, r *http.Request) error {
	analytics, err := h.deps.Traceability.Analytics(r.Context())
	if err != nil {
		return err //nolint: wrapcheck
	}

	writeJSON(r.Context(), w, http.StatusOK, analytics)

	return nil
}
