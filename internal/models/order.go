package models

// Side/OrdType — значения Upbit API как есть.
const (
	SideBid = "bid" // покупка
	SideAsk = "ask" // продажа

	OrdTypeLimit  = "limit"  // лимитный
	OrdTypePrice  = "price"  // рыночная покупка (сумма в KRW)
	OrdTypeMarket = "market" // рыночная продажа (объём в монете)
)

type Market struct {
	Code        string // например KRW-BTC
	KoreanName  string
	EnglishName string
	Warning     string // "CAUTION" у рискованных
}

type OrderRequest struct {
	Market  string
	Side    string
	Volume  string // обязателен для limit / market
	Price   string // обязателен для limit / price
	OrdType string
}

type OrderResponse struct {
	UUID    string
	Side    string
	OrdType string
	Volume  string
}

// OrderDetail — выборка из истории ордеров; нужен исполненный объём для продажи.
type OrderDetail struct {
	UUID           string
	State          string
	ExecutedVolume string
}
