package report

import (
	"github.com/mycofresh/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// DayBucket is one day's paid sales, keyed by day of month
type DayBucket struct {
	Day             int             `json:"day"`
	Sales           decimal.Decimal `json:"sales"`
	RetailOrders    int             `json:"retailOrders"`
	WholesaleOrders int             `json:"wholesaleOrders"`
}

// CategoryAmount is one expense category's monthly total
type CategoryAmount struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// DashboardStats is the monthly business overview. Sales figures count paid
// orders only; free samples are carried on the expense side instead.
type DashboardStats struct {
	CurrentMonthSales          decimal.Decimal  `json:"currentMonthSales"`
	CurrentMonthRetailSales    decimal.Decimal  `json:"currentMonthRetailSales"`
	CurrentMonthWholesaleSales decimal.Decimal  `json:"currentMonthWholesaleSales"`
	CurrentMonthExpenses       decimal.Decimal  `json:"currentMonthExpenses"`
	CurrentMonthNormalExpenses decimal.Decimal  `json:"currentMonthNormalExpenses"`
	FreeSampleAsExpense        decimal.Decimal  `json:"freeSampleAsExpense"`
	CurrentMonthProfit         decimal.Decimal  `json:"currentMonthProfit"`
	ActiveSubscriptions        int64            `json:"activeSubscriptions"`
	SalesByDay                 []DayBucket      `json:"salesByDay"`
	ExpenseBreakdown           []CategoryAmount `json:"expenseBreakdown"`
}

// CustomerContact holds whatever contact details the source records carried
type CustomerContact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerTransaction is one activity line in a customer's history
type CustomerTransaction struct {
	TransactionType string          `json:"transactionType"`
	ID              string          `json:"id"`
	InvoiceNumber   string          `json:"invoiceNumber"`
	Date            string          `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
}

// CustomerSummary rolls one person or shop up across subscriptions, retail
// and wholesale sales
type CustomerSummary struct {
	ID                 string                `json:"id"`
	Name               string                `json:"name"`
	Types              []string              `json:"types"`
	Contact            CustomerContact       `json:"contact"`
	TotalSpent         decimal.Decimal       `json:"totalSpent"`
	FirstActivityDate  string                `json:"firstActivityDate"`
	LastActivityDate   string                `json:"lastActivityDate"`
	TransactionHistory []CustomerTransaction `json:"transactionHistory"`
}

// StockPrepDelivery is one drop-off the packing team has to prepare
type StockPrepDelivery struct {
	Type         string          `json:"type"`
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Address      string          `json:"address"`
	FlatNo       string          `json:"flatNo,omitempty"`
	Phone        string          `json:"phone"`
	Plan         string          `json:"plan,omitempty"`
	Boxes        int             `json:"boxes,omitempty"`
	Items        trade.LineItems `json:"products,omitempty"`
	DeliveryDate string          `json:"deliveryDate"`
}

// DeliveryBreakdown counts deliveries by source
type DeliveryBreakdown struct {
	Subscriptions int `json:"subscriptions"`
	Retail        int `json:"retail"`
	Wholesale     int `json:"wholesale"`
}

// DayPlan is everything going out on one day
type DayPlan struct {
	Date       string              `json:"date"`
	Day        string              `json:"day"`
	Deliveries []StockPrepDelivery `json:"deliveries"`
	TotalBoxes int                 `json:"totalBoxes"`
	Breakdown  DeliveryBreakdown   `json:"breakdown"`
}

// DateRange names the two days a stock-prep report covers
type DateRange struct {
	Today    string `json:"today"`
	Tomorrow string `json:"tomorrow"`
}

// StockPrepReport is the two-day packing plan
type StockPrepReport struct {
	DateRange DateRange `json:"dateRange"`
	Today     DayPlan   `json:"today"`
	Tomorrow  DayPlan   `json:"tomorrow"`
}
