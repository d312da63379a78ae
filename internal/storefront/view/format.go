package view

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Messages holds user-facing strings.
type Messages struct {
	EmptyCart       string
	AddToCart       string
	EmptyCheckout   string
	ConfirmCheckout string // takes the formatted total
	ThankYou        string
	OrderNumber     string // takes the receipt id
}

func JapaneseMessages() Messages {
	return Messages{
		EmptyCart:       "カートは空です",
		AddToCart:       "カートに追加",
		EmptyCheckout:   "カートに商品が入っていません。",
		ConfirmCheckout: "合計金額 %s のお買い上げを確定しますか？",
		ThankYou:        "お買い上げありがとうございました！",
		OrderNumber:     "ご注文番号: %s",
	}
}

func (m Messages) Confirm(total string) string {
	return fmt.Sprintf(m.ConfirmCheckout, total)
}

func (m Messages) Order(id string) string {
	return fmt.Sprintf(m.OrderNumber, id)
}

type Formatter struct {
	printer *message.Printer
	symbol  string
}

func NewFormatter() Formatter {
	return Formatter{printer: message.NewPrinter(language.Japanese), symbol: "¥"}
}

// Yen formats with the locale's digit grouping, e.g. ¥17,000.
func (f Formatter) Yen(amount int64) string {
	return f.symbol + f.printer.Sprintf("%d", amount)
}
