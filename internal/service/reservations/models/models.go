package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-FieldReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidPeriod возвращается, когда конец периода не позже начала
	ErrInvalidPeriod = errors.New("end must be after start")
)

// Request модели

// ListReservationsRequest запрос списка бронирований
type ListReservationsRequest struct {
	Status  *string    `json:"status,omitempty"`
	FieldID *int64     `json:"fieldId,omitempty"`
	Start   *time.Time `json:"start,omitempty"`
	End     *time.Time `json:"end,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		FieldID: r.FieldID,
		Start:   r.Start,
		End:     r.End,
	}

	if r.Status != nil {
		status, ok := domain.ParseReservationStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	if r.Start != nil && r.End != nil && !r.Start.Before(*r.End) {
		return filter, ErrInvalidPeriod
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID       int64  `json:"id"`
	FieldID  int64  `json:"fieldId"`
	WindowID *int64 `json:"windowId,omitempty"`
	UserID   *int64 `json:"userId,omitempty"`

	GuestName  string  `json:"guestName"`
	GuestEmail string  `json:"guestEmail"`
	GuestPhone *string `json:"guestPhone,omitempty"`

	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`

	PlayerCount *int    `json:"playerCount,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	Status      string     `json:"status"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// StatsResponse количество бронирований по статусам и число окон календаря
type StatsResponse struct {
	Total        int            `json:"total"`
	ByStatus     map[string]int `json:"byStatus"`
	TotalWindows int            `json:"totalWindows"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:          r.ID,
		FieldID:     r.FieldID,
		WindowID:    r.WindowID,
		UserID:      r.UserID,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		GuestPhone:  r.GuestPhone,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		PlayerCount: r.PlayerCount,
		Notes:       r.Notes,
		Status:      string(r.Status),
		ConfirmedAt: r.ConfirmedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(list)),
	}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}

// FromStatusCounts собирает статистику; отсутствующие статусы получают 0
func FromStatusCounts(counts []domain.StatusCount) *StatsResponse {
	resp := &StatsResponse{
		ByStatus: map[string]int{
			string(domain.StatusPending):   0,
			string(domain.StatusConfirmed): 0,
			string(domain.StatusCancelled): 0,
		},
	}
	for _, c := range counts {
		resp.ByStatus[string(c.Status)] = c.Count
		resp.Total += c.Count
	}
	return resp
}
