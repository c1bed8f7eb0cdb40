package domain

import "time"

// CafeItem позиция кафе-меню со складским остатком
type CafeItem struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category,omitempty" bson:"category,omitempty"`
	Quantity    int64     `json:"quantity" bson:"quantity"`
	InStock     bool      `json:"inStock" bson:"inStock"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BarGame настольная игра, сдаваемая в почасовую аренду
type BarGame struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	PricePerHour float64   `json:"pricePerHour" bson:"pricePerHour"`
	Available    bool      `json:"available" bson:"available"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// GameSession аренда игры клиентом; endTime и cost проставляются один раз при check-out
type GameSession struct {
	ID         string     `json:"id" bson:"_id"`
	GameID     string     `json:"gameId" bson:"gameId"`
	CustomerID string     `json:"customerId" bson:"customerId"`
	StartTime  time.Time  `json:"startTime" bson:"startTime"`
	EndTime    *time.Time `json:"endTime,omitempty" bson:"endTime,omitempty"`
	Cost       *float64   `json:"cost,omitempty" bson:"cost,omitempty"`
	CreatedAt  time.Time  `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt" bson:"updatedAt"`
}

// Active сессия идёт, пока endTime не проставлен
func (s *GameSession) Active() bool { return s.EndTime == nil }

// Customer клиент заведения, опционально привязан к абонементу
type Customer struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email,omitempty" bson:"email,omitempty"`
	Phone        string    `json:"phone,omitempty" bson:"phone,omitempty"`
	MembershipID string    `json:"membership,omitempty" bson:"membership,omitempty"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Membership абонемент
type Membership struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Duration    int64     `json:"duration" bson:"duration"`
	Price       float64   `json:"price" bson:"price"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PaymentStatus статус оплаты заказа
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentCancelled PaymentStatus = "Cancelled"
)

// ItemType тип строки заказа
type ItemType string

const (
	ItemTypeCafeItem    ItemType = "CafeItem"
	ItemTypeGameSession ItemType = "GameSession"
)

// OrderItem строка заказа: либо товар кафе, либо счёт за игровую сессию.
// PriceAtSale — цена единицы на момент продажи; CostAtSale заполняется
// только для сессий и равен рассчитанной стоимости сессии.
type OrderItem struct {
	ID          string   `json:"id" bson:"id"`
	ItemID      string   `json:"item" bson:"item"`
	ItemType    ItemType `json:"itemType" bson:"itemType"`
	Quantity    int64    `json:"quantity" bson:"quantity"`
	PriceAtSale float64  `json:"priceAtSale" bson:"priceAtSale"`
	CostAtSale  *float64 `json:"costAtSale,omitempty" bson:"costAtSale,omitempty"`
}

// Order составной заказ клиента
type Order struct {
	ID            string        `json:"id" bson:"_id"`
	CustomerID    string        `json:"customer" bson:"customer"`
	Items         []OrderItem   `json:"items" bson:"items"`
	TotalAmount   float64       `json:"totalAmount" bson:"totalAmount"`
	PaymentStatus PaymentStatus `json:"paymentStatus" bson:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Terminal после Paid/Cancelled заказ больше не изменяется
func (o *Order) Terminal() bool {
	return o.PaymentStatus == PaymentPaid || o.PaymentStatus == PaymentCancelled
}
