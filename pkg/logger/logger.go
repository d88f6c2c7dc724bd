package logger

import (
	"os"

	"go.uber.org/zap"
)

// New üretim ayarlı bir zap logger döndürür. APP_ENV=development ise
// okunabilir konsol çıktısı kullanılır.
func New() *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("APP_ENV") == "development" {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return l
}
