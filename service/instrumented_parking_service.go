package service

import (
	"context"
	"time"

	"parkingsys/pkg/models"
	"parkingsys/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentedParkingService records a span, an operation counter and a
// latency histogram for every call to the wrapped service.
type instrumentedParkingService struct {
	next   ParkingService
	tracer trace.Tracer

	operations        metric.Int64Counter
	occupancy         metric.Int64UpDownCounter
	operationDuration metric.Float64Histogram
	fees              metric.Float64Histogram
}

func NewInstrumentedParkingService(next ParkingService, tel *telemetry.Provider) (ParkingService, error) {
	meter := tel.Meter()

	operations, err := meter.Int64Counter("parking_operations_total",
		metric.WithDescription("Total number of parking system operations"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	occupancy, err := meter.Int64UpDownCounter("parking_lot_occupancy",
		metric.WithDescription("Current number of parked vehicles"),
		metric.WithUnit("1"))
	if err != nil {
		return nil, err
	}

	operationDuration, err := meter.Float64Histogram("parking_operation_duration_seconds",
		metric.WithDescription("Duration of parking system operations"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	fees, err := meter.Float64Histogram("parking_fee_amount",
		metric.WithDescription("Fees billed on exit"),
		metric.WithUnit("TL"))
	if err != nil {
		return nil, err
	}

	return &instrumentedParkingService{
		next:              next,
		tracer:            tel.Tracer(),
		operations:        operations,
		occupancy:         occupancy,
		operationDuration: operationDuration,
		fees:              fees,
	}, nil
}

func (s *instrumentedParkingService) record(ctx context.Context, span trace.Span, op string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "failed"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if code := models.GetErrorCode(err); code != models.ErrCodeNone {
			span.SetAttributes(attribute.String("parking.error_code", code.String()))
		}
	}

	labels := metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("status", status),
	)
	s.operations.Add(ctx, 1, labels)
	s.operationDuration.Record(ctx, time.Since(start).Seconds(), labels)
}

func (s *instrumentedParkingService) Register(ctx context.Context, fullName, driverID, plate, vehicleType string) (*models.Driver, error) {
	ctx, span := s.tracer.Start(ctx, "parking.register",
		trace.WithAttributes(
			attribute.String("vehicle.plate", models.NormalizePlate(plate)),
			attribute.String("vehicle.type", vehicleType),
		))
	defer span.End()

	start := time.Now()
	driver, err := s.next.Register(ctx, fullName, driverID, plate, vehicleType)
	s.record(ctx, span, "register", start, err)
	return driver, err
}

func (s *instrumentedParkingService) IssuePass(ctx context.Context, plate, passType string) (models.ParkingPass, error) {
	ctx, span := s.tracer.Start(ctx, "parking.issue_pass",
		trace.WithAttributes(
			attribute.String("vehicle.plate", models.NormalizePlate(plate)),
			attribute.String("pass.type", passType),
		))
	defer span.End()

	start := time.Now()
	pass, err := s.next.IssuePass(ctx, plate, passType)
	if err == nil {
		span.SetAttributes(attribute.String("pass.id", pass.ID()))
	}
	s.record(ctx, span, "issue_pass", start, err)
	return pass, err
}

func (s *instrumentedParkingService) Park(ctx context.Context, plate string) (time.Time, error) {
	ctx, span := s.tracer.Start(ctx, "parking.park",
		trace.WithAttributes(attribute.String("vehicle.plate", models.NormalizePlate(plate))))
	defer span.End()

	start := time.Now()
	entry, err := s.next.Park(ctx, plate)
	if err == nil {
		span.AddEvent("vehicle_entered")
		s.occupancy.Add(ctx, 1)
	}
	s.record(ctx, span, "park", start, err)
	return entry, err
}

func (s *instrumentedParkingService) RemoveAndBill(ctx context.Context, plate string) (*models.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "parking.remove_and_bill",
		trace.WithAttributes(attribute.String("vehicle.plate", models.NormalizePlate(plate))))
	defer span.End()

	start := time.Now()
	receipt, err := s.next.RemoveAndBill(ctx, plate)
	if err == nil {
		span.AddEvent("vehicle_exited")
		span.SetAttributes(
			attribute.String("pass.tier", string(receipt.Tier)),
			attribute.Float64("parking.hours", receipt.Hours),
			attribute.Float64("parking.fee", receipt.Fee),
		)
		s.occupancy.Add(ctx, -1)
		s.fees.Record(ctx, receipt.Fee, metric.WithAttributes(attribute.String("tier", string(receipt.Tier))))
	}
	s.record(ctx, span, "remove_and_bill", start, err)
	return receipt, err
}

func (s *instrumentedParkingService) ListPasses(ctx context.Context) ([]models.PassStatus, error) {
	ctx, span := s.tracer.Start(ctx, "parking.list_passes")
	defer span.End()

	start := time.Now()
	passes, err := s.next.ListPasses(ctx)
	span.SetAttributes(attribute.Int("pass.count", len(passes)))
	s.record(ctx, span, "list_passes", start, err)
	return passes, err
}

func (s *instrumentedParkingService) Receipts(ctx context.Context) ([]*models.Receipt, error) {
	ctx, span := s.tracer.Start(ctx, "parking.receipts")
	defer span.End()

	start := time.Now()
	receipts, err := s.next.Receipts(ctx)
	s.record(ctx, span, "receipts", start, err)
	return receipts, err
}

func (s *instrumentedParkingService) Occupancy(ctx context.Context) models.Occupancy {
	return s.next.Occupancy(ctx)
}
