package models

type Action string

const (
	ActionHold Action = ""
	ActionBuy  Action = "BUY"
	ActionSell Action = "SELL"
)

// Decision — результат оценки стратегии по одному тику. Не персистится.
// Conditions — именованные проверки, по которым принято решение.
type Decision struct {
	Action     Action
	Conditions map[string]bool
}

func Hold() Decision { return Decision{Action: ActionHold} }
