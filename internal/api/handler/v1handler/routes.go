package v1handler

import (
	"net/http"
	"sattva/pkg/domain"
)

// Register mounts every v1 route on mux.
func (h Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	route := func(pattern string, fn handlerFunc) {
		mux.Handle(pattern, h.serve(fn))
	}

	route("POST /api/auth/login", h.Login)
	route("POST /api/auth/register", h.Register)
	route("GET /api/auth/me", sec.Require("", h.Me))
	route("GET /api/navigation", sec.Require("", h.Navigation))

	route("POST /api/ai-verify", h.AIVerify)
	route("POST /api/blockchain", h.Blockchain)
	route("GET /api/verify", h.VerifyBatch)

	route("GET /api/batches", h.ListBatches)
	route("POST /api/batches", sec.Optional(h.CreateBatch))
	route("GET /api/batches/{id}", h.GetBatch)
	route("GET /api/batches/{id}/qr", h.GetBatchQR)
	route("GET /api/batches/{id}/qr.svg", h.GetBatchQRSVG)
	route("POST /api/batches/{id}/qr", sec.Require(domain.CapQRManage, h.GenerateBatchQR))
	route("POST /api/batches/{id}/lab-report", sec.Require(domain.CapVerificationManage, h.UploadLabReport))

	route("GET /api/transfers", sec.Require(domain.CapTransfersRead, h.ListTransfers))
	route("POST /api/transfers", sec.Require(domain.CapTransfersCreate, h.CreateTransfer))
	route("GET /api/lab-reports", sec.Require(domain.CapVerificationManage, h.ListLabReports))
	route("GET /api/qr-records", sec.Require(domain.CapQRManage, h.ListQRRecords))
	route("GET /api/dashboard/stats", sec.Require(domain.CapAnalyticsRead, h.DashboardStats))
	route("GET /api/dashboard/analytics", sec.Require(domain.CapAnalyticsRead, h.DashboardAnalytics))

	route("GET /api/products", h.ListProducts)
	route("GET /api/products/{id}", h.GetProduct)
	route("GET /api/orders", sec.Require(domain.CapOrdersRead, h.ListOrders))
	route("POST /api/orders", sec.Require(domain.CapOrdersCreate, h.PlaceOrder))
	route("GET /api/profile", sec.Require(domain.CapProfileManage, h.GetProfile))
	route("PUT /api/profile", sec.Require(domain.CapProfileManage, h.UpdateProfile))
}
