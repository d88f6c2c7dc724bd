package service

import (
	"context"
	"fmt"

	"github.com/sefazor/recipeai-backend/internal/models"
	"github.com/sefazor/recipeai-backend/internal/repository"
	"github.com/sefazor/recipeai-backend/pkg/email"
	"github.com/sefazor/recipeai-backend/pkg/meeting"
	"github.com/sefazor/recipeai-backend/pkg/utils"
	"go.uber.org/zap"
)

const (
	meetingDuration = 30 // dakika
	defaultTimezone = "UTC"
)

type BookingService struct {
	bookingRepo *repository.BookingRepository
	meetings    meeting.Provider
	mailer      email.Sender
	logger      *zap.Logger
}

func NewBookingService(bookingRepo *repository.BookingRepository, meetings meeting.Provider, mailer email.Sender, logger *zap.Logger) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		meetings:    meetings,
		mailer:      mailer,
		logger:      logger,
	}
}

// CreateBooking toplantıyı sağlayıcıda açar, onay e-postasını gönderir
// ve kaydı ancak ikisi de başarılıysa yazar. Sıra katidir: sağlayıcı
// başarısızsa hiçbir kalıcı iz bırakılmaz.
func (s *BookingService) CreateBooking(ctx context.Context, userID uint, req models.CreateBookingRequest) (*models.Booking, error) {
	time24, err := utils.To24Hour(req.Time)
	if err != nil {
		return nil, models.ErrInvalidTimeFormat
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = defaultTimezone
	}
	startTime := req.Date + "T" + time24 + ":00"

	created, err := s.meetings.CreateMeeting(ctx, meeting.CreateMeetingParams{
		Topic:     req.Topic,
		StartTime: startTime,
		Timezone:  timezone,
		Duration:  meetingDuration,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMeetingProvider, err)
	}
	if created.ID == "" || created.JoinURL == "" {
		return nil, fmt.Errorf("%w: provider returned incomplete meeting data", models.ErrMeetingProvider)
	}

	confirmedStart := created.StartTime
	if confirmedStart == "" {
		confirmedStart = startTime
	}

	displayTime := req.Date + " at " + req.Time
	if err := s.mailer.SendBookingConfirmation(req.Email, created.JoinURL, displayTime, timezone); err != nil {
		return nil, s.compensate(ctx, created.ID, fmt.Errorf("%w: %v", models.ErrNotification, err))
	}

	booking := &models.Booking{
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Topic:      req.Topic,
		Notes:      req.Notes,
		Date:       req.Date,
		Time:       req.Time,
		Timezone:   timezone,
		MeetingID:  created.ID,
		MeetingURL: created.JoinURL,
		StartTime:  confirmedStart,
		Status:     models.BookingStatusConfirmed,
	}
	if err := s.bookingRepo.Create(booking); err != nil {
		return nil, s.compensate(ctx, created.ID, err)
	}

	s.logger.Info("booking created",
		zap.Uint("user_id", userID),
		zap.String("meeting_id", booking.MeetingID),
		zap.String("start_time", booking.StartTime))
	return booking, nil
}

// compensate toplantı açıldıktan sonraki bir adım başarısız olduğunda
// sahipsiz toplantı bırakmamak için sağlayıcıdan silmeyi dener. Silme
// de başarısızsa hata ErrPartialFailure olarak yükselir.
func (s *BookingService) compensate(ctx context.Context, meetingID string, cause error) error {
	if delErr := s.meetings.DeleteMeeting(ctx, meetingID); delErr != nil {
		s.logger.Error("compensating meeting delete failed",
			zap.String("meeting_id", meetingID), zap.Error(delErr))
		return fmt.Errorf("%w: %v (meeting %s left on provider)", models.ErrPartialFailure, cause, meetingID)
	}

	s.logger.Warn("booking rolled back, meeting deleted",
		zap.String("meeting_id", meetingID), zap.Error(cause))
	return cause
}

// RescheduleBooking aynı toplantı kimliği üzerinde yeni tarih/saat uygular.
// İptal edilmiş kayıt yeniden planlanamaz. Referans davranış gereği
// yeni bir onay e-postası gönderilmez.
func (s *BookingService) RescheduleBooking(ctx context.Context, userID, bookingID uint, req models.RescheduleBookingRequest) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetUserBooking(userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCanceled {
		return nil, models.ErrAlreadyCanceled
	}

	time24, err := utils.To24Hour(req.Time)
	if err != nil {
		return nil, models.ErrInvalidTimeFormat
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = booking.Timezone
	}
	if timezone == "" {
		timezone = defaultTimezone
	}
	startTime := req.Date + "T" + time24 + ":00"

	err = s.meetings.UpdateMeeting(ctx, booking.MeetingID, meeting.UpdateMeetingParams{
		Topic:     booking.Topic,
		StartTime: startTime,
		Timezone:  timezone,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMeetingProvider, err)
	}

	booking.Date = req.Date
	booking.Time = req.Time
	booking.Timezone = timezone
	booking.StartTime = startTime
	booking.Status = models.BookingStatusRescheduled
	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking rescheduled",
		zap.Uint("booking_id", booking.ID),
		zap.String("meeting_id", booking.MeetingID),
		zap.String("start_time", booking.StartTime))
	return booking, nil
}

// CancelBooking idempotenttir: zaten iptal edilmiş kayıt için sağlayıcıya
// ikinci bir silme isteği gönderilmez.
func (s *BookingService) CancelBooking(ctx context.Context, userID, bookingID uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.GetUserBooking(userID, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status == models.BookingStatusCanceled {
		return booking, nil
	}

	if err := s.meetings.DeleteMeeting(ctx, booking.MeetingID); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrMeetingProvider, err)
	}

	booking.Status = models.BookingStatusCanceled
	if err := s.bookingRepo.Update(booking); err != nil {
		return nil, err
	}

	s.logger.Info("booking canceled",
		zap.Uint("booking_id", booking.ID),
		zap.String("meeting_id", booking.MeetingID))
	return booking, nil
}

func (s *BookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	return s.bookingRepo.GetUserBookings(userID)
}
