package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"fbs-backend/internal/dropbox"
	"fbs-backend/internal/easybargain"
	"fbs-backend/internal/models"
	"fbs-backend/internal/sheets"
)

// Flat fee debited per fulfilled order, in credits.
const orderFee = 5

// Defaults for the polling phase: 25 attempts at 3 second spacing gives the
// provider roughly 75 seconds to finish a job.
const (
	DefaultPollInterval    = 3 * time.Second
	DefaultMaxPollAttempts = 25
)

var (
	// ErrUserNotFound means the user id is absent from the users collection.
	// Checked before any external job is created so unknown callers never
	// spend provider quota.
	ErrUserNotFound = errors.New("user not found")

	// ErrProviderTimeout means the polling budget ran out before the
	// provider reported the job ready. The order record stays in processing
	// state; there is no compensation.
	ErrProviderTimeout = errors.New("file not ready in time")
)

// PlacedOrder is the successful result of a fulfillment run.
type PlacedOrder struct {
	OrderID string
	Link    string
}

// FulfillmentService runs the order pipeline: resolve the user, submit the
// conversion job, record the order, poll until the job is ready, relay the
// artifact to the file host, finalize the order and debit the fee.
//
// Each inbound request gets its own sequential run. There is no coordination
// between concurrent runs: two requests for the same user can read the same
// starting balance and both write their own debit, losing one update. The
// record store offers no conditional update, so this stays a documented gap.
type FulfillmentService struct {
	provider *easybargain.Client
	users    *sheets.UsersClient
	orders   *sheets.OrdersClient
	host     *dropbox.Client

	pollInterval    time.Duration
	maxPollAttempts int
}

func NewFulfillmentService(
	provider *easybargain.Client,
	users *sheets.UsersClient,
	orders *sheets.OrdersClient,
	host *dropbox.Client,
	pollInterval time.Duration,
	maxPollAttempts int,
) *FulfillmentService {
	return &FulfillmentService{
		provider:        provider,
		users:           users,
		orders:          orders,
		host:            host,
		pollInterval:    pollInterval,
		maxPollAttempts: maxPollAttempts,
	}
}

// PlaceOrder runs the full pipeline for one request. Completed steps are not
// rolled back on a later failure; an order created before a fatal error
// keeps its processing status.
func (s *FulfillmentService) PlaceOrder(userID, rawURL, source string) (*PlacedOrder, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	taskID, err := s.provider.Submit(rawURL, source)
	if err != nil {
		return nil, fmt.Errorf("submit conversion job: %w", err)
	}

	orderID, err := NewOrderID()
	if err != nil {
		return nil, fmt.Errorf("generate order id: %w", err)
	}

	if err := s.orders.Create(models.Order{
		ID:        orderID,
		UserID:    userID,
		URL:       rawURL,
		Source:    source,
		TaskID:    taskID,
		Status:    models.OrderStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}); err != nil {
		return nil, fmt.Errorf("create order record: %w", err)
	}

	status, err := s.awaitReady(taskID)
	if err != nil {
		return nil, err
	}

	data, err := s.provider.DownloadFile(status.Download)
	if err != nil {
		return nil, fmt.Errorf("download artifact: %w", err)
	}

	link, err := s.host.Relay(data, status.Filename)
	if err != nil {
		return nil, fmt.Errorf("relay artifact: %w", err)
	}

	if err := s.orders.MarkReady(orderID, status.Filename, link, time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("finalize order record: %w", err)
	}

	if err := s.debitCredits(user); err != nil {
		return nil, err
	}

	return &PlacedOrder{OrderID: orderID, Link: link}, nil
}

func (s *FulfillmentService) findUser(userID string) (*models.User, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}

	return nil, ErrUserNotFound
}

// awaitReady polls the provider at a fixed interval until the job is ready
// or the attempt budget runs out. The sleep holds nothing but the goroutine,
// so any number of pipelines can wait concurrently.
func (s *FulfillmentService) awaitReady(taskID string) (*easybargain.DownloadStatus, error) {
	for attempt := 0; attempt < s.maxPollAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(s.pollInterval)
		}

		status, err := s.provider.Poll(taskID)
		if err != nil {
			return nil, fmt.Errorf("poll task %s: %w", taskID, err)
		}
		if status.Ready {
			return status, nil
		}
	}

	return nil, ErrProviderTimeout
}

// debitCredits rewrites the balance as credits - fee. No floor check; the
// balance can go negative, matching the store's own accounting.
func (s *FulfillmentService) debitCredits(user *models.User) error {
	credits, err := strconv.ParseFloat(user.Credits, 64)
	if err != nil {
		return fmt.Errorf("parse credits for user %s: %w", user.ID, err)
	}

	newCredits := strconv.FormatFloat(credits-orderFee, 'f', -1, 64)
	if err := s.users.UpdateCredits(user.ID, newCredits); err != nil {
		return fmt.Errorf("debit credits for user %s: %w", user.ID, err)
	}

	return nil
}
