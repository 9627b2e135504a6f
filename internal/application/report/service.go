package report

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"time"

	"github.com/mycofresh/backend/internal/domain/finance"
	"github.com/mycofresh/backend/internal/domain/shared"
	"github.com/mycofresh/backend/internal/domain/subscription"
	"github.com/mycofresh/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// retailPhoneKey stands in for the phone number retail sales never capture,
// so retail customers roll up on name alone
const retailPhoneKey = "N/A_RETAIL"

// Service builds the management reports. The clock and location are injected
// so "today" and "current month" follow business-local time; results are
// cached briefly since every report is a full-table aggregation.
type Service struct {
	saleRepo      trade.SaleRepository
	wholesaleRepo trade.WholesaleSaleRepository
	expenseRepo   finance.ExpenseRepository
	subRepo       subscription.Repository
	cache         shared.ReportCache
	cacheTTL      time.Duration
	clock         func() time.Time
	location      *time.Location
}

// NewService creates a new report Service
func NewService(
	saleRepo trade.SaleRepository,
	wholesaleRepo trade.WholesaleSaleRepository,
	expenseRepo finance.ExpenseRepository,
	subRepo subscription.Repository,
	cache shared.ReportCache,
	cacheTTL time.Duration,
	clock func() time.Time,
	location *time.Location,
) *Service {
	if clock == nil {
		clock = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &Service{
		saleRepo:      saleRepo,
		wholesaleRepo: wholesaleRepo,
		expenseRepo:   expenseRepo,
		subRepo:       subRepo,
		cache:         cache,
		cacheTTL:      cacheTTL,
		clock:         clock,
		location:      location,
	}
}

func (s *Service) now() time.Time {
	return s.clock().In(s.location)
}

// DashboardStats aggregates the current month's sales, expenses and profit
func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location)
	last := first.AddDate(0, 1, -1)
	from, to := first.Format("2006-01-02"), last.Format("2006-01-02")

	cacheKey := "dashboard:" + from[:7]
	if cached, ok, _ := s.cache.Get(ctx, cacheKey); ok {
		var stats DashboardStats
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	sales, err := s.saleRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	wholesales, err := s.wholesaleRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.FindByDateRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	activeSubs, err := s.subRepo.CountByStatus(ctx, subscription.StatusActive)
	if err != nil {
		return nil, err
	}

	retailPaid := decimal.Zero
	wholesalePaid := decimal.Zero
	freeSamples := decimal.Zero
	buckets := map[int]*DayBucket{}

	for _, sale := range sales {
		if sale.IsFree() {
			freeSamples = freeSamples.Add(sale.TotalAmount.Abs())
			continue
		}
		retailPaid = retailPaid.Add(sale.TotalAmount)
		b := dayBucket(buckets, sale.Date)
		if b != nil {
			b.Sales = b.Sales.Add(sale.TotalAmount)
			b.RetailOrders++
		}
	}
	for _, sale := range wholesales {
		if sale.IsFree() {
			freeSamples = freeSamples.Add(sale.TotalAmount.Abs())
			continue
		}
		wholesalePaid = wholesalePaid.Add(sale.TotalAmount)
		b := dayBucket(buckets, sale.Date)
		if b != nil {
			b.Sales = b.Sales.Add(sale.TotalAmount)
			b.WholesaleOrders++
		}
	}

	// Free-sample mirror rows live in the expense table too; counting them
	// here and in freeSamples would double them up
	normalExpenses := decimal.Zero
	breakdown := map[string]decimal.Decimal{}
	for _, e := range expenses {
		if e.Category == finance.CategoryFreeSamples {
			continue
		}
		normalExpenses = normalExpenses.Add(e.Amount)
		breakdown[e.Category] = breakdown[e.Category].Add(e.Amount)
	}

	totalSales := retailPaid.Add(wholesalePaid)
	totalExpenses := normalExpenses.Add(freeSamples)

	stats := &DashboardStats{
		CurrentMonthSales:          totalSales,
		CurrentMonthRetailSales:    retailPaid,
		CurrentMonthWholesaleSales: wholesalePaid,
		CurrentMonthExpenses:       totalExpenses,
		CurrentMonthNormalExpenses: normalExpenses,
		FreeSampleAsExpense:        freeSamples,
		CurrentMonthProfit:         totalSales.Sub(totalExpenses),
		ActiveSubscriptions:        activeSubs,
		SalesByDay:                 sortedBuckets(buckets),
		ExpenseBreakdown:           sortedBreakdown(breakdown),
	}

	s.cacheSet(ctx, cacheKey, stats)
	return stats, nil
}

// Customers rolls every subscription, retail and wholesale record up into
// one row per customer, keyed on lowercased name plus phone
func (s *Service) Customers(ctx context.Context) ([]CustomerSummary, error) {
	const cacheKey = "customers"
	if cached, ok, _ := s.cache.Get(ctx, cacheKey); ok {
		var summaries []CustomerSummary
		if err := json.Unmarshal(cached, &summaries); err == nil {
			return summaries, nil
		}
	}

	subs, err := s.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	wholesales, err := s.wholesaleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	byKey := map[string]*CustomerSummary{}
	var order []string

	lookup := func(key, id, name string, contact CustomerContact, date string) *CustomerSummary {
		c, ok := byKey[key]
		if !ok {
			c = &CustomerSummary{
				ID:                 id,
				Name:               name,
				Contact:            contact,
				TotalSpent:         decimal.Zero,
				FirstActivityDate:  date,
				LastActivityDate:   date,
				TransactionHistory: []CustomerTransaction{},
			}
			byKey[key] = c
			order = append(order, key)
		}
		if date != "" {
			if c.FirstActivityDate == "" || date < c.FirstActivityDate {
				c.FirstActivityDate = date
			}
			if date > c.LastActivityDate {
				c.LastActivityDate = date
			}
		}
		return c
	}

	for _, sub := range subs {
		c := lookup(customerKey(sub.Name, sub.Phone), sub.ID, sub.Name,
			CustomerContact{Email: sub.Email, Phone: sub.Phone, Address: sub.Address}, sub.StartDate)
		addType(c, "Subscription")
		c.TransactionHistory = append(c.TransactionHistory, CustomerTransaction{
			TransactionType: "Subscription",
			ID:              sub.ID,
			InvoiceNumber:   sub.InvoiceNumber,
			Date:            sub.StartDate,
		})
	}

	for _, sale := range sales {
		c := lookup(customerKey(sale.CustomerName, retailPhoneKey), sale.ID, sale.CustomerName,
			CustomerContact{}, sale.Date)
		addType(c, "Retail")
		c.TotalSpent = c.TotalSpent.Add(sale.TotalAmount)
		c.TransactionHistory = append(c.TransactionHistory, CustomerTransaction{
			TransactionType: "Retail",
			ID:              sale.ID,
			InvoiceNumber:   sale.InvoiceNumber,
			Date:            sale.Date,
			Amount:          sale.TotalAmount,
		})
	}

	for _, sale := range wholesales {
		c := lookup(customerKey(sale.ShopName, sale.Contact), sale.ID, sale.ShopName,
			CustomerContact{Phone: sale.Contact, Address: sale.Address}, sale.Date)
		addType(c, "Wholesale")
		c.TotalSpent = c.TotalSpent.Add(sale.TotalAmount)
		c.TransactionHistory = append(c.TransactionHistory, CustomerTransaction{
			TransactionType: "Wholesale",
			ID:              sale.ID,
			InvoiceNumber:   sale.InvoiceNumber,
			Date:            sale.Date,
			Amount:          sale.TotalAmount,
		})
	}

	summaries := make([]CustomerSummary, 0, len(order))
	for _, key := range order {
		c := byKey[key]
		sort.Slice(c.TransactionHistory, func(i, j int) bool {
			return c.TransactionHistory[i].Date > c.TransactionHistory[j].Date
		})
		summaries = append(summaries, *c)
	}

	s.cacheSet(ctx, cacheKey, summaries)
	return summaries, nil
}

// StockPrep plans the next two days of deliveries from active subscription
// schedules plus retail and wholesale orders dated today or tomorrow
func (s *Service) StockPrep(ctx context.Context) (*StockPrepReport, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	tomorrow := today.AddDate(0, 0, 1)
	todayStr := today.Format("2006-01-02")
	tomorrowStr := tomorrow.Format("2006-01-02")

	cacheKey := "stock-prep:" + todayStr
	if cached, ok, _ := s.cache.Get(ctx, cacheKey); ok {
		var report StockPrepReport
		if err := json.Unmarshal(cached, &report); err == nil {
			return &report, nil
		}
	}

	subs, err := s.subRepo.FindByStatus(ctx, subscription.StatusActive)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.FindByDates(ctx, []string{todayStr, tomorrowStr})
	if err != nil {
		return nil, err
	}
	wholesales, err := s.wholesaleRepo.FindByDates(ctx, []string{todayStr, tomorrowStr})
	if err != nil {
		return nil, err
	}

	var todayDeliveries, tomorrowDeliveries []StockPrepDelivery
	dispatch := func(d StockPrepDelivery) {
		switch d.DeliveryDate {
		case todayStr:
			todayDeliveries = append(todayDeliveries, d)
		case tomorrowStr:
			tomorrowDeliveries = append(tomorrowDeliveries, d)
		}
	}

	for _, sub := range subs {
		for _, delivery := range subscription.ScheduleDeliveries(sub.PreferredDeliveryDay, sub.BoxesPerMonth, today) {
			dispatch(StockPrepDelivery{
				Type:         "Subscription",
				ID:           sub.ID,
				CustomerName: sub.Name,
				Address:      sub.Address,
				FlatNo:       sub.FlatNo,
				Phone:        sub.Phone,
				Plan:         sub.Plan,
				Boxes:        delivery.Boxes,
				DeliveryDate: delivery.Date,
			})
		}
	}
	for _, sale := range sales {
		dispatch(StockPrepDelivery{
			Type:         "Retail",
			ID:           sale.ID,
			CustomerName: sale.CustomerName,
			Items:        sale.Items,
			DeliveryDate: sale.Date,
		})
	}
	for _, sale := range wholesales {
		dispatch(StockPrepDelivery{
			Type:         "Wholesale",
			ID:           sale.ID,
			CustomerName: sale.ShopName,
			Address:      sale.Address,
			Phone:        sale.Contact,
			Items:        sale.Items,
			DeliveryDate: sale.Date,
		})
	}

	report := &StockPrepReport{
		DateRange: DateRange{Today: todayStr, Tomorrow: tomorrowStr},
		Today:     buildDayPlan(todayStr, today.Weekday().String(), todayDeliveries),
		Tomorrow:  buildDayPlan(tomorrowStr, tomorrow.Weekday().String(), tomorrowDeliveries),
	}

	s.cacheSet(ctx, cacheKey, report)
	return report, nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Cache failures never fail a report
	_ = s.cache.Set(ctx, key, payload, s.cacheTTL)
}

func customerKey(name, phone string) string {
	return strings.ToLower(strings.TrimSpace(name)) + "-" + strings.TrimSpace(phone)
}

func addType(c *CustomerSummary, t string) {
	for _, existing := range c.Types {
		if existing == t {
			return
		}
	}
	c.Types = append(c.Types, t)
}

func dayBucket(buckets map[int]*DayBucket, date string) *DayBucket {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil
	}
	day := parsed.Day()
	b, ok := buckets[day]
	if !ok {
		b = &DayBucket{Day: day, Sales: decimal.Zero}
		buckets[day] = b
	}
	return b
}

func sortedBuckets(buckets map[int]*DayBucket) []DayBucket {
	out := make([]DayBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func sortedBreakdown(breakdown map[string]decimal.Decimal) []CategoryAmount {
	out := make([]CategoryAmount, 0, len(breakdown))
	for name, value := range breakdown {
		out = append(out, CategoryAmount{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func buildDayPlan(date, day string, deliveries []StockPrepDelivery) DayPlan {
	plan := DayPlan{
		Date:       date,
		Day:        day,
		Deliveries: deliveries,
	}
	if plan.Deliveries == nil {
		plan.Deliveries = []StockPrepDelivery{}
	}
	for _, d := range deliveries {
		switch d.Type {
		case "Subscription":
			plan.Breakdown.Subscriptions++
			plan.TotalBoxes += d.Boxes
		case "Retail":
			plan.Breakdown.Retail++
			for _, item := range d.Items {
				plan.TotalBoxes += item.Quantity
			}
		case "Wholesale":
			plan.Breakdown.Wholesale++
			for _, item := range d.Items {
				plan.TotalBoxes += item.Quantity
			}
		}
	}
	return plan
}
