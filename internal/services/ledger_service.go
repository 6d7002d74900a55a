package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"
)

// LedgerService computes balances and aggregates from the transaction log.
// It owns no state of its own: every result is a pure function of
// repository reads.
type LedgerService struct {
	CustomerRepo    *repositories.CustomerRepository
	TransactionRepo *repositories.TransactionRepository
}

func NewLedgerService(customerRepo *repositories.CustomerRepository, transactionRepo *repositories.TransactionRepository) *LedgerService {
	return &LedgerService{CustomerRepo: customerRepo, TransactionRepo: transactionRepo}
}

// foldStats accumulates balances over a transaction set at the customer's
// current rates. Addition is commutative, so order does not matter.
func foldStats(transactions []models.Transaction, c models.Customer) models.CustomerStats {
	var stats models.CustomerStats
	for _, t := range transactions {
		stats.CurrentJarBalance += t.JarsDelivered - t.JarsReturned
		stats.CurrentThermosBalance += t.ThermosDelivered - t.ThermosReturned
		stats.TotalDue += models.DailyCost(t, c) - t.PaymentAmount
	}
	return stats
}

// ComputeStats folds the customer's full history. An unknown customer
// yields zeroed stats, never an error. OldDues is not included in
// TotalDue.
func (s *LedgerService) ComputeStats(ctx context.Context, customerID string) models.CustomerStats {
	c, ok := s.CustomerRepo.Get(ctx, customerID)
	if !ok {
		return models.CustomerStats{}
	}
	return foldStats(s.TransactionRepo.ListByCustomer(ctx, customerID), c)
}

// ComputeAllStats maps ComputeStats over every customer.
func (s *LedgerService) ComputeAllStats(ctx context.Context) map[string]models.CustomerStats {
	customers := s.CustomerRepo.List(ctx)
	transactions := s.TransactionRepo.List(ctx)

	byCustomer := make(map[string][]models.Transaction)
	for _, t := range transactions {
		byCustomer[t.CustomerID] = append(byCustomer[t.CustomerID], t)
	}

	out := make(map[string]models.CustomerStats, len(customers))
	for _, c := range customers {
		out[c.ID] = foldStats(byCustomer[c.ID], c)
	}
	return out
}

// TransactionsOnDate returns all transactions with an exact date match.
func (s *LedgerService) TransactionsOnDate(ctx context.Context, date string) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.TransactionRepo.List(ctx) {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

// TransactionsForCustomerInMonth filters by customer and calendar month.
// Dates are compared by splitting the YYYY-MM-DD string, not through
// time.Time, so results cannot shift across time zones.
func (s *LedgerService) TransactionsForCustomerInMonth(ctx context.Context, customerID string, year, month int) []models.Transaction {
	var out []models.Transaction
	for _, t := range s.TransactionRepo.ListByCustomer(ctx, customerID) {
		tYear, tMonth, _, ok := timeutil.SplitDate(t.Date)
		if ok && tYear == year && tMonth == month {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// DashboardSnapshot is the landing-page summary.
type DashboardSnapshot struct {
	TotalCustomers   int     `json:"totalCustomers"`
	TotalOutstanding float64 `json:"totalOutstanding"`
	JarsToday        int     `json:"jarsToday"`
	ThermosToday     int     `json:"thermosToday"`
	PaymentsToday    float64 `json:"paymentsToday"`
	JarsThisMonth    int     `json:"jarsThisMonth"`
	ThermosThisMonth int     `json:"thermosThisMonth"`
	PaymentsMonth    float64 `json:"paymentsThisMonth"`
}

// Dashboard aggregates today's and this month's activity plus the total
// outstanding due across all customers.
func (s *LedgerService) Dashboard(ctx context.Context) DashboardSnapshot {
	today := timeutil.Today()
	year, month, _, _ := timeutil.SplitDate(today)

	snap := DashboardSnapshot{
		TotalCustomers: len(s.CustomerRepo.List(ctx)),
	}
	for _, stats := range s.ComputeAllStats(ctx) {
		snap.TotalOutstanding += stats.TotalDue
	}

	for _, t := range s.TransactionRepo.List(ctx) {
		tYear, tMonth, _, ok := timeutil.SplitDate(t.Date)
		if !ok {
			continue
		}
		if t.Date == today {
			snap.JarsToday += t.JarsDelivered
			snap.ThermosToday += t.ThermosDelivered
			snap.PaymentsToday += t.PaymentAmount
		}
		if tYear == year && tMonth == month {
			snap.JarsThisMonth += t.JarsDelivered
			snap.ThermosThisMonth += t.ThermosDelivered
			snap.PaymentsMonth += t.PaymentAmount
		}
	}
	return snap
}

// AnalyticsPoint is one bucket of the trend series.
type AnalyticsPoint struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Jars    int     `json:"jars"`
	Thermos int     `json:"thermos"`
}

// AreaBreakdown is one area's contribution over the selected period.
type AreaBreakdown struct {
	Area    string  `json:"area"`
	Revenue float64 `json:"revenue"`
	Jars    int     `json:"jars"`
	Thermos int     `json:"thermos"`
	Share   float64 `json:"sharePercent"`
}

// AnalyticsReport is the trend view: a bucketed series plus a per-area
// breakdown of the same window.
type AnalyticsReport struct {
	Period    string           `json:"period"`
	Area      string           `json:"area,omitempty"`
	Series    []AnalyticsPoint `json:"series"`
	Breakdown []AreaBreakdown  `json:"breakdown"`
}

// Analytics buckets delivery revenue by period: "daily" covers the last 14
// days, "monthly" the days of the current month, "yearly" the 12 months of
// the current year. An area name narrows the series to that area's
// customers; the breakdown always spans all areas in the window.
func (s *LedgerService) Analytics(ctx context.Context, period, area string) AnalyticsReport {
	customers := s.CustomerRepo.List(ctx)
	customerByID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		customerByID[c.ID] = c
	}

	now := timeutil.Now()
	year, month := now.Year(), int(now.Month())

	type bucket struct {
		label string
		match func(tYear, tMonth, tDay int, date string) bool
	}
	var buckets []bucket

	switch period {
	case "yearly":
		for m := 1; m <= 12; m++ {
			mm := m
			buckets = append(buckets, bucket{
				label: timeutil.MonthDate(year, mm, 1)[:7],
				match: func(tYear, tMonth, _ int, _ string) bool {
					return tYear == year && tMonth == mm
				},
			})
		}
	case "monthly":
		for d := 1; d <= timeutil.DaysInMonth(year, month); d++ {
			date := timeutil.MonthDate(year, month, d)
			buckets = append(buckets, bucket{
				label: date,
				match: func(_, _, _ int, tDate string) bool { return tDate == date },
			})
		}
	default: // daily: last 14 days including today
		period = "daily"
		for i := 13; i >= 0; i-- {
			date := now.AddDate(0, 0, -i).Format(timeutil.DateLayout)
			buckets = append(buckets, bucket{
				label: date,
				match: func(_, _, _ int, tDate string) bool { return tDate == date },
			})
		}
	}

	report := AnalyticsReport{Period: period, Area: area}
	series := make([]AnalyticsPoint, len(buckets))
	for i, b := range buckets {
		series[i] = AnalyticsPoint{Label: b.label}
	}

	byArea := make(map[string]*AreaBreakdown)
	var totalRevenue float64

	for _, t := range s.TransactionRepo.List(ctx) {
		c, ok := customerByID[t.CustomerID]
		if !ok {
			continue
		}
		tYear, tMonth, tDay, ok := timeutil.SplitDate(t.Date)
		if !ok {
			continue
		}

		idx := -1
		for i, b := range buckets {
			if b.match(tYear, tMonth, tDay, t.Date) {
				idx = i
				break
			}
		}
		if idx < 0 {
			continue
		}

		revenue := models.DailyCost(t, c)

		if area == "" || c.Area == area {
			series[idx].Revenue += revenue
			series[idx].Jars += t.JarsDelivered
			series[idx].Thermos += t.ThermosDelivered
		}

		ab, ok := byArea[c.Area]
		if !ok {
			ab = &AreaBreakdown{Area: c.Area}
			byArea[c.Area] = ab
		}
		ab.Revenue += revenue
		ab.Jars += t.JarsDelivered
		ab.Thermos += t.ThermosDelivered
		totalRevenue += revenue
	}

	report.Series = series
	for _, ab := range byArea {
		if totalRevenue > 0 {
			ab.Share = ab.Revenue / totalRevenue * 100
		}
		report.Breakdown = append(report.Breakdown, *ab)
	}
	sort.Slice(report.Breakdown, func(i, j int) bool {
		return report.Breakdown[i].Revenue > report.Breakdown[j].Revenue
	})
	return report
}

// CustomerSummary is the per-customer digest handed to the AI insight
// prompt.
type CustomerSummary struct {
	Name              string  `json:"name"`
	Area              string  `json:"area"`
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalJars         int     `json:"totalJars"`
	TransactionsCount int     `json:"transactionsCount"`
}

// SummarizeCustomers builds the business digest used for insights.
func (s *LedgerService) SummarizeCustomers(ctx context.Context) []CustomerSummary {
	customers := s.CustomerRepo.List(ctx)
	transactions := s.TransactionRepo.List(ctx)

	out := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		summary := CustomerSummary{Name: c.Name, Area: c.Area}
		for _, t := range transactions {
			if t.CustomerID != c.ID {
				continue
			}
			summary.TotalRevenue += models.DailyCost(t, c)
			summary.TotalJars += t.JarsDelivered
			summary.TransactionsCount++
		}
		out = append(out, summary)
	}
	return out
}

// FormatMonth renders (year, month) as YYYY-MM for display labels.
func FormatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
