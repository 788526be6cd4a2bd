package services

import (
	"errors"
	"strings"
	"time"

	"github.com/aisyahz/tepico88/entity"
	"github.com/aisyahz/tepico88/metrics"
	"github.com/aisyahz/tepico88/repository"
	"github.com/aisyahz/tepico88/ws"
	"gorm.io/gorm"
)

// Submission preconditions. Any violation blocks the whole batch before a
// single store call is made.
var (
	ErrNameRequired   = errors.New("customer name is required")
	ErrPickupRequired = errors.New("pickup time is required")
	ErrCartEmpty      = errors.New("cart is empty")

	ErrUnknownStatus    = errors.New("unknown status")
	ErrPreorderNotFound = errors.New("preorder not found")
)

// IsValidationErr reports whether err is a submission precondition failure,
// as opposed to a store failure.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrNameRequired) ||
		errors.Is(err, ErrPickupRequired) ||
		errors.Is(err, ErrCartEmpty) ||
		errors.Is(err, ErrUnknownStatus)
}

// ChangeFeed receives one event per committed write. The hub implements it;
// a nil feed disables publishing.
type ChangeFeed interface {
	Publish(table, kind string, row any)
}

type PreorderService struct {
	DB      *gorm.DB
	Repo    *repository.PreorderRepository
	Catalog *CatalogService
	Feed    ChangeFeed
}

func NewPreorderService(db *gorm.DB, repo *repository.PreorderRepository, catalog *CatalogService, feed ChangeFeed) *PreorderService {
	return &PreorderService{DB: db, Repo: repo, Catalog: catalog, Feed: feed}
}

type SubmitRequest struct {
	CustomerName string
	PickupTime   string
	Cart         Cart
}

// Submit persists one preorder row per cart line as a single batch and
// synthesizes a receipt from the pre-submission cart snapshot. The rows share
// customer name and pickup time but carry no order-group id, and nothing
// deduplicates a resubmitted identical cart — both are observed storefront
// behavior, kept as is.
func (s *PreorderService) Submit(req *SubmitRequest) (*Receipt, error) {
	name := strings.TrimSpace(req.CustomerName)
	pickup := strings.TrimSpace(req.PickupTime)

	var violations []error
	if name == "" {
		violations = append(violations, ErrNameRequired)
	}
	if pickup == "" {
		violations = append(violations, ErrPickupRequired)
	}
	if req.Cart.IsEmpty() {
		violations = append(violations, ErrCartEmpty)
	}
	if len(violations) > 0 {
		return nil, errors.Join(violations...)
	}

	snap := s.Catalog.Load()

	rows := make([]*entity.Preorder, 0, len(req.Cart))
	for _, line := range req.Cart.Lines() {
		rows = append(rows, &entity.Preorder{
			CustomerName: name,
			MenuItemID:   line.MenuItemID,
			Quantity:     line.Qty,
			PickupTime:   pickup,
			Status:       entity.StatusPending,
		})
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateBatch(tx, rows)
	})
	if err != nil {
		return nil, err
	}

	metrics.PreordersCreated.Add(float64(len(rows)))
	if s.Feed != nil {
		for _, row := range rows {
			if item, ok := snap.Item(row.MenuItemID); ok {
				row.MenuItem = *item
			}
			s.Feed.Publish(ws.TablePreorders, ws.EventInsert, row)
		}
	}

	return BuildReceipt(name, pickup, req.Cart, snap, time.Now()), nil
}

// List returns the joined order list, newest first.
func (s *PreorderService) List() ([]entity.Preorder, error) {
	return s.Repo.ListWithItems()
}

// UpdateStatus sets one preorder to any member of the status set, regardless
// of its current state. On success an update event is published; clients
// reload the full list rather than patching optimistically.
func (s *PreorderService) UpdateStatus(id uint, to entity.Status) (*entity.Preorder, error) {
	if !to.Valid() {
		return nil, ErrUnknownStatus
	}

	affected, err := s.Repo.UpdateStatus(id, to)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrPreorderNotFound
	}

	row, err := s.Repo.FindWithItem(id)
	if err != nil {
		return nil, err
	}

	metrics.StatusUpdates.WithLabelValues(string(to)).Inc()
	if s.Feed != nil {
		s.Feed.Publish(ws.TablePreorders, ws.EventUpdate, row)
	}
	return row, nil
}
