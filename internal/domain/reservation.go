package domain

import (
	"time"

	"github.com/elitecuts/booking-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a customer appointment in the system.
// Time is the slot identity in 12-hour display form; Date carries only
// the calendar day, its time-of-day component is ignored for matching.
type Reservation struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	Service string
	Date    time.Time
	Time    types.DisplayTime
	Status  ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusActive
}

// IsCancelled returns true if the reservation has been cancelled.
// Cancelled is a terminal state: a reservation never becomes active again.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusActive
}

// IsPast returns true if the reservation date is strictly before today
func (r *Reservation) IsPast(now time.Time) bool {
	dateOnly := time.Date(r.Date.Year(), r.Date.Month(), r.Date.Day(), 0, 0, 0, 0, r.Date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}

// ReservationsFilter describes an admin-side reservation listing
type ReservationsFilter struct {
	Date       *time.Time         // exact calendar date (optional)
	DateFrom   *time.Time         // inclusive lower bound on date (optional)
	DateBefore *time.Time         // exclusive upper bound on date (optional)
	Status     *ReservationStatus // filter by status (optional)
}
