package postgres

import (
	"context"
	"fmt"
	"sattva/pkg/domain"
	"sattva/pkg/storage"

	"github.com/doug-martin/goqu/v9"
)

func (p *PgSQL) StoreEvents(ctx context.Context, events []domain.SupplyChainEvent) error {
	if len(events) == 0 {
		return nil
	}

	rows := make([]PgEvent, len(events))
	for i := range events {
		rows[i].FromDomain(events[i])
	}

	if _, err := p.Builder.Insert(eventsTable).Rows(rows).Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store events into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) BatchEvents(ctx context.Context, batchID string) ([]domain.SupplyChainEvent, error) {
	var rows []PgEvent
	if err := p.Builder.From(eventsTable).
		Where(goqu.I("batch_id").Eq(batchID)).
		Order(goqu.I("occurred_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch batch events from pg: %w", err)
	}

	out := make([]domain.SupplyChainEvent, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreLabReport(ctx context.Context, report domain.LabReport) (*domain.LabReport, error) {
	var row PgLabReport
	row.FromDomain(report)

	var stored PgLabReport
	if _, err := p.Builder.Insert(labReportsTable).
		Rows(row).
		Returning(&PgLabReport{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store lab report into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) LabReportByBatch(ctx context.Context, batchID string) (*domain.LabReport, error) {
	var row PgLabReport
	found, err := p.Builder.From(labReportsTable).
		Where(goqu.I("batch_id").Eq(batchID)).
		Order(goqu.I("test_date").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lab report by batch: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LabReports(ctx context.Context, status domain.LabReportStatus) ([]domain.LabReport, error) {
	ds := p.Builder.From(labReportsTable).Order(goqu.I("test_date").Desc(), goqu.I("id").Desc())
	if status != "" {
		ds = ds.Where(goqu.I("verification_status").Eq(string(status)))
	}

	var rows []PgLabReport
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch lab reports from pg: %w", err)
	}

	out := make([]domain.LabReport, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) TransportLogs(ctx context.Context, batchID string) ([]domain.TransportLog, error) {
	var rows []PgTransportLog
	if err := p.Builder.From(transportLogsTable).
		Where(goqu.I("batch_id").Eq(batchID)).
		Order(goqu.I("logged_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch transport logs from pg: %w", err)
	}

	out := make([]domain.TransportLog, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) FarmByID(ctx context.Context, id string) (*domain.Farm, error) {
	var row PgFarm
	found, err := p.Builder.From(farmsTable).
		Where(goqu.I("id").Eq(id)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch farm by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreTransfer(ctx context.Context, transfer domain.Transfer) (*domain.Transfer, error) {
	var row PgTransfer
	row.FromDomain(transfer)

	var stored PgTransfer
	if _, err := p.Builder.Insert(transfersTable).
		Rows(row).
		Returning(&PgTransfer{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store transfer into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) Transfers(ctx context.Context, batchID string) ([]domain.Transfer, error) {
	ds := p.Builder.From(transfersTable).Order(goqu.I("transferred_at").Desc(), goqu.I("id").Desc())
	if batchID != "" {
		ds = ds.Where(goqu.I("batch_id").Eq(batchID))
	}

	var rows []PgTransfer
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch transfers from pg: %w", err)
	}

	out := make([]domain.Transfer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) StoreQRRecord(ctx context.Context, record domain.QRRecord) (*domain.QRRecord, error) {
	var row PgQRRecord
	row.FromDomain(record)

	var stored PgQRRecord
	if _, err := p.Builder.Insert(qrRecordsTable).
		Rows(row).
		Returning(&PgQRRecord{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		if isUniqueViolation(err) {
			return nil, storage.ErrDuplicate
		}

		return nil, fmt.Errorf("could not store qr record into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) QRRecordByBatch(ctx context.Context, batchID string) (*domain.QRRecord, error) {
	var row PgQRRecord
	found, err := p.Builder.From(qrRecordsTable).
		Where(goqu.I("batch_id").Eq(batchID)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch qr record by batch: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) QRRecords(ctx context.Context) ([]domain.QRRecord, error) {
	var rows []PgQRRecord
	if err := p.Builder.From(qrRecordsTable).
		Order(goqu.I("generated_at").Desc(), goqu.I("id").Desc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch qr records from pg: %w", err)
	}

	out := make([]domain.QRRecord, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
