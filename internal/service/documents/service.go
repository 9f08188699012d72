package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/payment"
)

// Service формирует документы: пропуск на выезд (PDF) и отчет (XLSX)
type Service struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса документов
func NewService(bookingRepo BookingRepository, paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GatePass формирует PDF пропуск для оплаченного платежа
// Пропуск не сохраняется, время выезда - момент запроса.
func (s *Service) GatePass(ctx context.Context, paymentID string) (*domain.GatePass, []byte, error) {
	s.logger.Info("GatePass: payment=%s", paymentID)

	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, nil, fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GatePass: payment id=%s not found", paymentID)
			return nil, nil, ErrPaymentNotFound
		}
		s.logger.Error("GatePass: repository error for payment id=%s: %v", paymentID, err)
		return nil, nil, fmt.Errorf("%w: GatePass - repository error: %v", ErrInternal, err)
	}

	if !payment.IsPaid() {
		s.logger.Warn("GatePass: payment id=%s is %s", paymentID, payment.Status)
		return nil, nil, ErrPaymentNotPaid
	}

	pass := &domain.GatePass{
		BookingID:     payment.BookingID,
		PaymentID:     payment.ID,
		CustomerName:  payment.CustomerName,
		BikeNumber:    payment.BikeNumber,
		Service:       payment.Service,
		PartsUsed:     payment.PartsUsed,
		PaymentMethod: payment.Method,
		ExitTime:      s.timeProvider.Now(),
	}

	data, err := renderGatePass(pass)
	if err != nil {
		s.logger.Error("GatePass: failed to render pdf for payment id=%s: %v", paymentID, err)
		return nil, nil, fmt.Errorf("%w: gate pass: %v", ErrRender, err)
	}

	s.logger.Info("GatePass: rendered %d bytes for booking id=%s", len(data), pass.BookingID)
	return pass, data, nil
}

// Report формирует XLSX отчет по бронированиям и платежам
// Непустой date оставляет бронирования на эту дату и их платежи.
func (s *Service) Report(ctx context.Context, date string) ([]byte, error) {
	date = strings.TrimSpace(date)
	s.logger.Info("Report: date=%q", date)

	var (
		bookings []*domain.Booking
		payments []*domain.Payment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		bookings, err = s.bookingRepo.ListAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = s.paymentRepo.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("Report: failed to load data: %v", err)
		return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
	}

	if date != "" {
		bookings, payments = filterByDate(bookings, payments, date)
	}

	data, err := renderReport(bookings, payments, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Report: failed to render workbook: %v", err)
		return nil, fmt.Errorf("%w: report: %v", ErrRender, err)
	}

	s.logger.Info("Report: %d bookings, %d payments", len(bookings), len(payments))
	return data, nil
}

func filterByDate(bookings []*domain.Booking, payments []*domain.Payment, date string) ([]*domain.Booking, []*domain.Payment) {
	keep := make(map[string]struct{})
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Date == date {
			filtered = append(filtered, b)
			keep[b.ID] = struct{}{}
		}
	}

	filteredPayments := make([]*domain.Payment, 0, len(payments))
	for _, p := range payments {
		if _, ok := keep[p.BookingID]; ok {
			filteredPayments = append(filteredPayments, p)
		}
	}
	return filtered, filteredPayments
}
