package models

import "errors"

// Servis katmanının hata sözlüğü. Handler'lar errors.Is ile
// HTTP durum koduna çevirir, sarmalanan metin tanılama için kalır.
var (
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrInsufficientCredit = errors.New("insufficient credits")
	ErrInvalidTimeFormat  = errors.New("invalid time format")
	ErrInvalidPackage     = errors.New("invalid credit package")
	ErrAlreadyCanceled    = errors.New("booking is already canceled")
	ErrMeetingProvider    = errors.New("meeting provider error")
	ErrNotification       = errors.New("notification error")
	ErrGenerationFailed   = errors.New("recipe generation failed")
	ErrCheckout           = errors.New("failed to create checkout session")

	// ErrPartialFailure: toplantı sağlayıcıda oluştu ama sonraki adım
	// başarısız oldu ve telafi silmesi de yapılamadı. Kayıt yazılmaz,
	// sağlayıcı tarafında sahipsiz toplantı kalmış olabilir.
	ErrPartialFailure = errors.New("booking partially failed")
)
