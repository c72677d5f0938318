package order

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/MikeMC777/commerce-api/internal/apperr"
	"github.com/MikeMC777/commerce-api/internal/auth"
	"github.com/MikeMC777/commerce-api/internal/product"
	"github.com/MikeMC777/commerce-api/internal/user"
	"github.com/MikeMC777/commerce-api/internal/validation"
)

const EventOrderCreated = "order.created"

// publishTimeout bounds how long a placed order waits on the event publisher.
const publishTimeout = 2 * time.Second

type ProductReader interface {
	GetByID(ctx context.Context, id int64) (*product.Product, error)
}

type CurrentUser interface {
	Authenticated(ctx context.Context) (*user.User, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key, eventType string, payload any) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Service struct {
	repo     Repository
	products ProductReader
	users    CurrentUser
	tx       TxManager
	events   EventPublisher
	log      *slog.Logger
	now      func() time.Time

	publishTimeout time.Duration
}

func NewService(repo Repository, products ProductReader, users CurrentUser, tx TxManager,
	events EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		users:    users,
		tx:       tx,
		events:   events,
		log:      log,
		now:      time.Now,

		publishTimeout: publishTimeout,
	}
}

// FindByID returns the order to an admin or to the client who placed it.
// A missing order is NotFound for every caller.
func (s *Service) FindByID(ctx context.Context, id int64) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, apperr.NotFound("resource not found", err)
	}
	if err != nil {
		return nil, err
	}
	me, err := s.users.Authenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !me.HasRole(auth.RoleAdmin) && me.ID != o.Client.ID {
		return nil, apperr.Forbidden("access denied")
	}
	return o, nil
}

// Insert places an order for the caller at current product prices.
func (s *Service) Insert(ctx context.Context, in Payload) (*Order, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	lines, err := in.lines()
	if err != nil {
		return nil, err
	}
	me, err := s.users.Authenticated(ctx)
	if err != nil {
		return nil, err
	}

	o := &Order{
		Moment: s.now().UTC().Truncate(time.Microsecond),
		Status: StatusWaitingPayment,
		Client: Client{ID: me.ID, Name: me.Name},
	}
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		o.Items = o.Items[:0]
		for _, line := range lines {
			p, err := s.products.GetByID(ctx, line.ProductID)
			if errors.Is(err, product.ErrNotFound) {
				return apperr.NotFound("resource not found", err)
			}
			if err != nil {
				return err
			}
			o.Items = append(o.Items, Item{
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  line.Quantity,
				ImgURL:    p.ImgURL,
			})
		}
		return s.repo.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}

	s.publishCreated(ctx, o)
	return o, nil
}

// publishCreated outlives a cancelled request but never holds the response
// longer than publishTimeout.
func (s *Service) publishCreated(ctx context.Context, o *Order) {
	if s.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
	defer cancel()
	if err := s.events.Publish(ctx, strconv.FormatInt(o.ID, 10), EventOrderCreated, o); err != nil {
		s.log.Warn("publish order event failed", "order_id", o.ID, "err", err)
	}
}
