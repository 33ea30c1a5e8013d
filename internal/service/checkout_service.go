package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"bookstore-be/internal/cart"
	"bookstore-be/internal/config"
	"bookstore-be/internal/dto"
	"bookstore-be/internal/entity"
	"bookstore-be/internal/pkg/logger"
	"bookstore-be/internal/pkg/mailer"
	"bookstore-be/internal/repository/specification"
	"bookstore-be/internal/repository/unitofwork"
	"bookstore-be/pkg/events"
	pktNats "bookstore-be/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type ICheckoutService interface {
	Checkout(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error
	GetShippingAddress(ctx context.Context, userId uuid.UUID) (*dto.ShippingAddressResponse, error)
	SaveShippingAddress(ctx context.Context, userId uuid.UUID, req *dto.ShippingAddressRequest) (*dto.ShippingAddressResponse, error)
}

type checkoutService struct {
	cfg            *config.Config
	store          cart.Store
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pktNats.Publisher
	logger         logger.ILogger
}

func NewCheckoutService(
	cfg *config.Config,
	store cart.Store,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
	eventPublisher *pktNats.Publisher,
	log logger.ILogger,
) ICheckoutService {
	return &checkoutService{
		cfg:            cfg,
		store:          store,
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID string, userId *uuid.UUID, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	c, err := cart.Load(ctx, s.store, sessionID)
	if err != nil {
		return nil, err
	}
	if c.Len() == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cart is empty")
	}

	quantities := c.Quantities()
	ids := make([]uuid.UUID, 0, len(quantities))
	for key := range quantities {
		id, parseErr := uuid.Parse(key)
		if parseErr != nil {
			continue
		}
		ids = append(ids, id)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	books, err := uow.BookRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "no purchasable items in cart")
	}

	order := &entity.Order{
		Id:       uuid.New(),
		UserId:   userId,
		FullName: fmt.Sprintf("%s %s", req.FirstName, req.LastName),
		Email:    req.Email,
		ShippingAddress: fmt.Sprintf("%s %s, %s, %s %s, %s",
			req.AddressLine1, req.AddressLine2, req.City, req.State, req.PostalCode, req.Country),
		Status:      entity.OrderStatusPending,
		DateOrdered: time.Now(),
	}

	// Order items snapshot the effective price; later catalog changes must
	// not rewrite order history.
	var items []*entity.OrderItem
	var midtransItems []midtrans.ItemDetails
	var total float64
	for _, book := range books {
		quantity := quantities[book.Id.String()]
		if quantity <= 0 {
			continue
		}
		price := book.EffectivePrice()
		items = append(items, &entity.OrderItem{
			Id:       uuid.New(),
			OrderId:  order.Id,
			BookId:   book.Id,
			Quantity: quantity,
			Price:    price,
		})
		midtransItems = append(midtransItems, midtrans.ItemDetails{
			ID:    book.Id.String(),
			Price: int64(price),
			Qty:   int32(quantity),
			Name:  truncate(book.Title, 50),
		})
		total += price * float64(quantity)
	}
	order.AmountPaid = total

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}
	if err := uow.OrderItemRepository().CreateBulk(ctx, items); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	// External calls stay outside the DB transaction.
	snapResp, err := s.createSnapTransaction(order, req, midtransItems)
	if err != nil {
		return nil, err
	}

	// The session cart is done once the order exists; payment status is
	// tracked on the order, not the cart.
	if err := c.Clear(ctx); err != nil {
		s.logger.Warn("checkout", "failed to clear session cart", map[string]interface{}{
			"order_id": order.Id.String(),
			"error":    err.Error(),
		})
	}

	if s.eventPublisher != nil {
		evt := events.NewOrderCreated(order.Id, userId, req.Email, total)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			s.logger.Warn("checkout", "failed to publish ORDER_CREATED event", map[string]interface{}{
				"order_id": order.Id.String(),
				"error":    err.Error(),
			})
		}
	}

	return &dto.CheckoutResponse{
		OrderId:         order.Id,
		SnapToken:       snapResp.Token,
		SnapRedirectUrl: snapResp.RedirectURL,
		Total:           total,
	}, nil
}

func (s *checkoutService) createSnapTransaction(order *entity.Order, req *dto.CheckoutRequest, items []midtrans.ItemDetails) (*snap.Response, error) {
	var sClient snap.Client
	env := midtrans.Sandbox
	if s.cfg.Payment.MidtransEnv == "production" {
		env = midtrans.Production
	}
	sClient.New(s.cfg.Payment.MidtransServerKey, env)

	finishRedirectURL := fmt.Sprintf("%s/orders?payment=success", s.cfg.App.ClientURL)

	postalCode := req.PostalCode
	if len(postalCode) > 5 {
		postalCode = postalCode[:5]
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.Id.String(),
			GrossAmt: int64(order.AmountPaid),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: finishRedirectURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.FirstName,
			LName: req.LastName,
			Email: req.Email,
			Phone: req.Phone,
			ShipAddr: &midtrans.CustomerAddress{
				FName:    req.FirstName,
				LName:    req.LastName,
				Phone:    req.Phone,
				Address:  req.AddressLine1,
				City:     req.City,
				Postcode: postalCode,
			},
		},
		Items:           &items,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return snapResp, nil
}

func (s *checkoutService) HandleNotification(ctx context.Context, req *dto.MidtransWebhookRequest) error {
	serverKey := s.cfg.Payment.MidtransServerKey
	if serverKey == "" {
		return fmt.Errorf("server configuration error")
	}

	// Midtrans signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + serverKey
	expectedSignature := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expectedSignature {
		s.logger.Warn("checkout", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return fmt.Errorf("invalid signature")
	}

	orderId, err := uuid.Parse(req.OrderId)
	if err != nil {
		return fmt.Errorf("invalid order id format")
	}

	var newStatus string
	switch req.TransactionStatus {
	case "capture", "settlement":
		newStatus = entity.OrderStatusPaid
	case "deny", "cancel", "expire":
		newStatus = entity.OrderStatusFailed
	case "pending":
		return nil
	default:
		s.logger.Info("checkout", "unhandled transaction status", map[string]interface{}{
			"order_id": req.OrderId,
			"status":   req.TransactionStatus,
		})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	order, err := uow.OrderRepository().FindOne(ctx, specification.ByID{ID: orderId})
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order not found")
	}
	if order.Status == newStatus {
		return nil
	}

	order.Status = newStatus
	if err := uow.OrderRepository().Update(ctx, order); err != nil {
		return err
	}

	items, err := uow.OrderItemRepository().FindByOrderId(ctx, orderId)
	if err != nil {
		return err
	}

	// Paid orders append purchase rows, which feed the user's
	// recommendation centroid.
	if newStatus == entity.OrderStatusPaid && order.UserId != nil {
		for _, item := range items {
			purchase := &entity.Purchase{
				Id:          uuid.New(),
				UserId:      *order.UserId,
				BookId:      item.BookId,
				PurchasedAt: time.Now(),
			}
			if err := uow.PurchaseRepository().Create(ctx, purchase); err != nil {
				return err
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if newStatus == entity.OrderStatusPaid {
		s.afterPayment(ctx, order, items)
	}
	return nil
}

// afterPayment sends the confirmation email. Auxiliary; the webhook
// already committed.
func (s *checkoutService) afterPayment(ctx context.Context, order *entity.Order, items []*entity.OrderItem) {
	if s.emailService != nil {
		lines := s.buildEmailLines(ctx, items)
		if err := s.emailService.SendOrderConfirmation(order.Email, order.FullName, order.Id.String(), lines, order.AmountPaid); err != nil {
			s.logger.Warn("checkout", "failed to send confirmation email", map[string]interface{}{
				"order_id": order.Id.String(),
				"error":    err.Error(),
			})
		}
	}
}

func (s *checkoutService) buildEmailLines(ctx context.Context, items []*entity.OrderItem) []mailer.OrderLine {
	ids := make([]uuid.UUID, len(items))
	for i, item := range items {
		ids[i] = item.BookId
	}

	titles := make(map[uuid.UUID]string)
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if books, err := uow.BookRepository().FindAll(ctx, specification.ByIDs{IDs: ids}); err == nil {
		for _, b := range books {
			titles[b.Id] = b.Title
		}
	}

	lines := make([]mailer.OrderLine, len(items))
	for i, item := range items {
		title := titles[item.BookId]
		if title == "" {
			title = item.BookId.String()
		}
		lines[i] = mailer.OrderLine{
			Title:     title,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
		}
	}
	return lines
}

func (s *checkoutService) GetShippingAddress(ctx context.Context, userId uuid.UUID) (*dto.ShippingAddressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	address, err := uow.ShippingAddressRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if address == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "no shipping address on file")
	}
	return shippingToResponse(address), nil
}

func (s *checkoutService) SaveShippingAddress(ctx context.Context, userId uuid.UUID, req *dto.ShippingAddressRequest) (*dto.ShippingAddressResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	address, err := uow.ShippingAddressRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if address == nil {
		address = &entity.ShippingAddress{
			Id:     uuid.New(),
			UserId: userId,
		}
	}

	address.FullName = req.FullName
	address.Email = req.Email
	address.Phone = req.Phone
	address.Address1 = req.AddressLine1
	address.Address2 = req.AddressLine2
	address.City = req.City
	address.State = req.State
	address.Pincode = req.PostalCode
	address.Country = req.Country

	if err := uow.ShippingAddressRepository().Save(ctx, address); err != nil {
		return nil, err
	}
	return shippingToResponse(address), nil
}

func shippingToResponse(a *entity.ShippingAddress) *dto.ShippingAddressResponse {
	return &dto.ShippingAddressResponse{
		Id:           a.Id,
		FullName:     a.FullName,
		Email:        a.Email,
		Phone:        a.Phone,
		AddressLine1: a.Address1,
		AddressLine2: a.Address2,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.Pincode,
		Country:      a.Country,
	}
}
