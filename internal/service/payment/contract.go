//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"shipping/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	Save(ctx context.Context, shipmentEntity *entities.Shipment) (*entities.Shipment, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type NotificationService interface {
	CreateNotification(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
}

type Mailer interface {
	SendPaymentVerificationRequested(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User) error
	SendPaymentConfirmation(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User) error
	SendPaymentRejectionNotification(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User, reason string) error
	SendRefundConfirmation(ctx context.Context, shipmentEntity *entities.Shipment, user *entities.User, amount float64, reason string) error
}

type Broadcaster interface {
	SendPaymentUpdate(userID int64, update entities.PaymentUpdate)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
