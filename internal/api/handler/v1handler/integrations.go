package v1handler

import (
	"encoding/json"
	"net/http"
	"sattva/pkg/serrors"
	"strings"
)

const (
	actionPredictShelfLife = "predict-shelf-life"

	actionWrite   = "write"
	actionVerify  = "verify"
	actionHistory = "history"
)

type aiVerifyRequest struct {
	HerbName     string  `json:"herbName"`
	BatchID      string  `json:"batchId"`
	Action       string  `json:"action"`
	QualityScore float64 `json:"qualityScore"`
}

// AIVerify runs the AI quality check of a batch or predicts its shelf life.
func (h Handler) AIVerify(w http.ResponseWriter, r *http.Request) error {
	var req aiVerifyRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}
	req.HerbName = strings.TrimSpace(req.HerbName)

	if req.Action == actionPredictShelfLife {
		if req.HerbName == "" || req.QualityScore == 0 {
			return serrors.With(serrors.ErrBadRequest, "Missing fields")
		}

		prediction, err := h.deps.Quality.PredictShelfLife(r.Context(), req.HerbName, req.QualityScore)
		if err != nil {
			return err //nolint: wrapcheck
		}
		writeJSON(r.Context(), w, http.StatusOK, prediction)

		return nil
	}

	if req.HerbName == "" || req.BatchID == "" {
		return serrors.With(serrors.ErrBadRequest, "herbName and batchId are required")
	}

	report, err := h.deps.Quality.VerifyHerb(r.Context(), req.HerbName, req.BatchID)
	if err != nil {
		return err //nolint: wrapcheck
	}
	writeJSON(r.Context(), w, http.StatusOK, report)

	return nil
}

type blockchainRequest struct {
	Action  string          `json:"action"`
	BatchID string          `json:"batchId"`
	Data    json.RawMessage `json:"data"`
	Hash    string          `json:"hash"`
}

// Blockchain writes, verifies or lists ledger records.
func (h Handler) Blockchain(w http.ResponseWriter, r *http.Request) error {
	var req blockchainRequest
	if err := decode(w, r, &req); err != nil {
		return err
	}

	ctx := r.Context()
	switch req.Action {
	case actionWrite:
		if req.BatchID == "" {
			return serrors.With(serrors.ErrBadRequest, "Batch ID is required")
		}
		data := []byte(req.Data)
		if len(data) == 0 || string(data) == "null" {
			data = []byte("{}")
		}

		receipt, err := h.deps.Ledger.Write(ctx, req.BatchID, data)
		if err != nil {
			return err //nolint: wrapcheck
		}
		writeJSON(ctx, w, http.StatusOK, receipt)

	case actionVerify:
		if req.Hash == "" {
			return serrors.With(serrors.ErrBadRequest, "Hash is required")
		}

		verification, err := h.deps.Ledger.Verify(ctx, req.Hash)
		if err != nil {
			return err //nolint: wrapcheck
		}
		writeJSON(ctx, w, http.StatusOK, verification)

	case actionHistory:
		if req.BatchID == "" {
			return serrors.With(serrors.ErrBadRequest, "Batch ID is required")
		}

		history, err := h.deps.Ledger.History(ctx, req.BatchID)
		if err != nil {
			return err //nolint: wrapcheck
		}
		writeJSON(ctx, w, http.StatusOK, map[string]any{"history": history})

	default:
		return serrors.With(serrors.ErrBadRequest, "Unknown action")
	}

	return nil
}
