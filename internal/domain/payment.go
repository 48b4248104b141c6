package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPaymentMethod возвращается при неизвестном способе оплаты
var ErrInvalidPaymentMethod = errors.New("invalid payment method")

// PaymentMethod способ оплаты бронирования
type PaymentMethod string

const (
	PaymentCard         PaymentMethod = "card"
	PaymentCash         PaymentMethod = "cash"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
)

// PaymentMethods все допустимые способы оплаты в порядке отображения
var PaymentMethods = []PaymentMethod{
	PaymentCard,
	PaymentCash,
	PaymentBankTransfer,
}

// paymentLabels подписи для формы (форма исторически отправляет текст опции)
var paymentLabels = map[PaymentMethod]string{
	PaymentCard:         "카드",
	PaymentCash:         "현금",
	PaymentBankTransfer: "계좌이체",
}

// ParsePaymentMethod принимает код ("card") или подпись ("카드")
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "-", "_")

	for _, method := range PaymentMethods {
		if value == string(method) || value == paymentLabels[method] {
			return method, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentMethod, raw)
}

// IsValid возвращает true для известных способов оплаты
func (p PaymentMethod) IsValid() bool {
	_, ok := paymentLabels[p]
	return ok
}

// Label возвращает подпись способа оплаты для отображения
func (p PaymentMethod) Label() string {
	if label, ok := paymentLabels[p]; ok {
		return label
	}
	return string(p)
}
