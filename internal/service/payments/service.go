package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/payment"
	"github.com/m04kA/SMC-BikeService/internal/service/payments/models"
)

// Service сервис кассы: чтение платежей
type Service struct {
	paymentRepo PaymentRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса платежей
func NewService(paymentRepo PaymentRepository, logger Logger) *Service {
	return &Service{
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// GetByID получает платеж по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PaymentResponse, error) {
	s.logger.Info("GetByID: fetching payment id=%s", id)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: payment id is required", ErrInvalidInput)
	}

	payment, err := s.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			s.logger.Warn("GetByID: payment id=%s not found", id)
			return nil, ErrPaymentNotFound
		}
		s.logger.Error("GetByID: repository error for payment id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPayment(payment), nil
}

// List возвращает платежи для кассы
// status=pending читает список ожидающих, пустой статус - все платежи
func (s *Service) List(ctx context.Context, req *models.ListPaymentsRequest) (*models.PaymentListResponse, error) {
	status := strings.ToLower(strings.TrimSpace(req.Status))
	s.logger.Info("List: fetching payments, status=%q", status)

	var (
		payments []*domain.Payment
		err      error
	)
	switch domain.PaymentStatus(status) {
	case domain.PaymentStatusPending:
		payments, err = s.paymentRepo.ListPending(ctx)
	case "":
		payments, err = s.paymentRepo.ListAll(ctx)
	case domain.PaymentStatusPaid:
		payments, err = s.paymentRepo.ListAll(ctx)
		payments = onlyPaid(payments)
	default:
		s.logger.Warn("List: unknown status=%q", req.Status)
		return nil, fmt.Errorf("%w: unknown payment status %q", ErrInvalidInput, req.Status)
	}
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d payments", len(payments))
	return models.FromDomainPaymentList(payments), nil
}

func onlyPaid(payments []*domain.Payment) []*domain.Payment {
	paid := make([]*domain.Payment, 0, len(payments))
	for _, p := range payments {
		if p.IsPaid() {
			paid = append(paid, p)
		}
	}
	return paid
}
