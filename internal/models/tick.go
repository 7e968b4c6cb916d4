package models

// Tick — одно обновление цены из ticker-стрима.
type Tick struct {
	Code         string  // символ, например KRW-BTC
	TradePrice   float64 // цена последней сделки
	OpeningPrice float64 // цена открытия текущей сессии
}
