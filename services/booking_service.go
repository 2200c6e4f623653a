package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rental-backend/engine"
	"rental-backend/models"
)

var (
	ErrTransactionNotFound = errors.New("transaction_not_found")
	ErrInvalidStatusChange = errors.New("invalid_status_change")
	ErrUserNotFound        = errors.New("user_not_found")
)

// statusTransitions is the allowed lifecycle of a transaction. Payment
// capture itself lives in an external collaborator; this is only the
// status input availability needs.
var statusTransitions = map[string][]string{
	models.StatusWaitingForPayment:      {models.StatusWaitingForConfirmation, models.StatusCancelled},
	models.StatusWaitingForConfirmation: {models.StatusAccepted, models.StatusCancelled},
	models.StatusAccepted:               {models.StatusCancelled},
	models.StatusCancelled:              {},
}

// BookingService runs the quote and book flows. Booking validates and
// prices inside one DB transaction holding a row lock on the room type,
// so the remaining-quota check and the insert are atomic per room type.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookRequest is one incoming booking or quote.
type BookRequest struct {
	UserID     uint
	RoomTypeID uint
	CheckIn    time.Time
	CheckOut   time.Time
	Qty        int
	Adults     int
	Children   int
}

// Quote prices a stay without persisting anything or taking locks. Used
// by the pre-booking preview; the math is identical to Book.
func (s *BookingService) Quote(roomTypeID uint, checkIn, checkOut time.Time, qty int) (engine.StayQuote, error) {
	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return engine.StayQuote{}, ErrRoomTypeNotFound
		}
		return engine.StayQuote{}, fmt.Errorf("failed to load room type: %w", err)
	}

	rules, err := s.rulesFor(s.DB, roomTypeID)
	if err != nil {
		return engine.StayQuote{}, err
	}

	return engine.ComputeStay(rt.BasePrice, rules, checkIn, checkOut, qty)
}

// Book validates the stay against current reservations, prices it and
// persists a WAITING_FOR_PAYMENT transaction, all under a FOR UPDATE
// lock on the room-type row.
func (s *BookingService) Book(req BookRequest) (models.Transaction, error) {
	var result models.Transaction

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var rt models.RoomType
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&rt, req.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomTypeNotFound
			}
			return fmt.Errorf("failed to lock room type: %w", err)
		}

		var user models.User
		if err := tx.First(&user, req.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to load user: %w", err)
		}

		rules, err := s.rulesFor(tx, req.RoomTypeID)
		if err != nil {
			return err
		}
		reservations, err := s.activeReservations(tx, req.RoomTypeID, req.CheckIn, req.CheckOut)
		if err != nil {
			return err
		}

		stay := engine.StayRequest{
			RoomTypeID: req.RoomTypeID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Qty:        req.Qty,
			Adults:     req.Adults,
			Children:   req.Children,
		}
		if err := engine.ValidateStay(stay, rt, rules, reservations, time.Now().UTC()); err != nil {
			return err
		}

		quote, err := engine.ComputeStay(rt.BasePrice, rules, req.CheckIn, req.CheckOut, req.Qty)
		if err != nil {
			return err
		}

		breakdown, err := json.Marshal(quote.Nights)
		if err != nil {
			return fmt.Errorf("failed to marshal breakdown: %w", err)
		}

		result = models.Transaction{
			ReferenceCode: newReferenceCode(),
			UserID:        req.UserID,
			RoomTypeID:    req.RoomTypeID,
			CheckIn:       engine.DateOnly(req.CheckIn),
			CheckOut:      engine.DateOnly(req.CheckOut),
			Qty:           req.Qty,
			Adults:        req.Adults,
			Children:      req.Children,
			Status:        models.StatusWaitingForPayment,
			Total:         quote.Total,
			Breakdown:     datatypes.JSON(breakdown),
		}

		if err := tx.Create(&result).Error; err != nil {
			if isDuplicateEntry(err) {
				// Reference collision is vanishingly rare; one retry is enough.
				result.ReferenceCode = newReferenceCode()
				if err := tx.Create(&result).Error; err != nil {
					return fmt.Errorf("failed to create transaction: %w", err)
				}
				return nil
			}
			return fmt.Errorf("failed to create transaction: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return models.Transaction{}, txErr
	}

	logrus.WithFields(logrus.Fields{
		"reference": result.ReferenceCode,
		"room_type": result.RoomTypeID,
		"total":     result.Total,
	}).Info("transaction created")
	return result, nil
}

// UpdateStatus applies one lifecycle transition by reference code.
func (s *BookingService) UpdateStatus(referenceCode, newStatus string) (models.Transaction, error) {
	var trx models.Transaction

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("reference_code = ?", referenceCode).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTransactionNotFound
			}
			return fmt.Errorf("failed to load transaction: %w", err)
		}

		allowed := statusTransitions[trx.Status]
		ok := false
		for _, st := range allowed {
			if st == newStatus {
				ok = true
				break
			}
		}
		if !ok {
			return ErrInvalidStatusChange
		}

		if err := tx.Model(&trx).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}
		trx.Status = newStatus
		return nil
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return trx, nil
}

// GetByReference loads one transaction with its relations.
func (s *BookingService) GetByReference(referenceCode string) (models.Transaction, error) {
	var trx models.Transaction
	if err := s.DB.
		Preload("User").
		Preload("RoomType").
		Where("reference_code = ?", referenceCode).
		First(&trx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, ErrTransactionNotFound
		}
		return models.Transaction{}, fmt.Errorf("failed to load transaction: %w", err)
	}
	return trx, nil
}

// GetAll lists transactions for dashboards, newest first, optionally
// filtered by status.
func (s *BookingService) GetAll(status string) ([]models.Transaction, error) {
	q := s.DB.
		Preload("User").
		Preload("RoomType").
		Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var list []models.Transaction
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return list, nil
}

// GetByRoomType lists a room type's reservations, optionally filtered
// by status. Feeds the occupancy report alongside the availability
// calendar.
func (s *BookingService) GetByRoomType(roomTypeID uint, status string) ([]models.Transaction, error) {
	q := s.DB.
		Preload("User").
		Where("room_type_id = ?", roomTypeID).
		Order("check_in")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var list []models.Transaction
	if err := q.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

func (s *BookingService) rulesFor(tx *gorm.DB, roomTypeID uint) ([]models.SeasonRule, error) {
	var rules []models.SeasonRule
	if err := tx.Where("room_type_id = ?", roomTypeID).Find(&rules).Error; err != nil {
		return nil, fmt.Errorf("failed to load season rules: %w", err)
	}
	return rules, nil
}

// activeReservations loads quota-consuming reservations overlapping
// [checkIn, checkOut). Checkout-exclusive on both sides: a reservation
// leaving on checkIn does not overlap.
func (s *BookingService) activeReservations(tx *gorm.DB, roomTypeID uint, checkIn, checkOut time.Time) ([]models.Transaction, error) {
	var list []models.Transaction
	if err := tx.
		Where("room_type_id = ? AND status <> ? AND check_in < ? AND check_out > ?",
			roomTypeID, models.StatusCancelled, engine.DateOnly(checkOut), engine.DateOnly(checkIn)).
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to load reservations: %w", err)
	}
	return list, nil
}

func newReferenceCode() string {
	return "TRX-" + strings.ToUpper(uuid.NewString()[:13])
}

func isDuplicateEntry(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
