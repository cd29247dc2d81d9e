//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ws_get_test
package ws_get

import (
	"github.com/gorilla/websocket"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Hub interface {
	Subscribe(userID int64, conn *websocket.Conn)
	Unsubscribe(userID int64, conn *websocket.Conn)
}
