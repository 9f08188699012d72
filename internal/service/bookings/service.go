package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BikeService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-BikeService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BikeService/internal/service/bookings/models"
)

// Service сервис чтения бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListAll возвращает все бронирования в порядке создания
// Опционально фильтрует по статусу
func (s *Service) ListAll(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListAll: fetching bookings, status=%v", req.Status)

	status, err := req.DomainStatus()
	if err != nil {
		s.logger.Warn("ListAll: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	bookings = filterByStatus(bookings, status)
	s.logger.Info("ListAll: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// ListByMechanic возвращает бронирования механика по его индексу
func (s *Service) ListByMechanic(ctx context.Context, mechanic string) (*models.BookingListResponse, error) {
	s.logger.Info("ListByMechanic: fetching bookings for mechanic=%s", mechanic)

	mechanic = strings.TrimSpace(mechanic)
	if mechanic == "" {
		return nil, fmt.Errorf("%w: mechanic name is required", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.ListByMechanic(ctx, mechanic)
	if err != nil {
		s.logger.Error("ListByMechanic: repository error for mechanic=%s: %v", mechanic, err)
		return nil, fmt.Errorf("%w: ListByMechanic - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByMechanic: successfully fetched %d bookings for mechanic=%s", len(bookings), mechanic)
	return models.FromDomainBookingList(bookings), nil
}

func filterByStatus(bookings []*domain.Booking, status *domain.BookingStatus) []*domain.Booking {
	if status == nil {
		return bookings
	}
	filtered := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status == *status {
			filtered = append(filtered, b)
		}
	}
	return filtered
}
