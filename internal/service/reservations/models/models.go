package models

import (
	"time"

	"github.com/elitecuts/booking-service/internal/domain"
)

// Представления списка бронирований для админ-панели
const (
	ViewUpcoming  = "upcoming"
	ViewPast      = "past"
	ViewCancelled = "cancelled"
	ViewAll       = "all"
)

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Date    string `json:"date"` // "2025-10-15"
	Time    string `json:"time"` // "2:00 PM"
	Status  string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Service:   r.Service,
		Date:      r.Date.Format(domain.DateFormat),
		Time:      string(r.Time),
		Status:    string(r.Status),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в response
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	result := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		result = append(result, *FromDomainReservation(r))
	}
	return &ReservationListResponse{
		Reservations: result,
		Total:        len(result),
	}
}
