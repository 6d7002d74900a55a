package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sync"
	"time"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// BillingService assembles per-customer monthly statements and renders
// printable bills.
type BillingService struct {
	CustomerRepo *repositories.CustomerRepository
	SettingsRepo *repositories.SettingsRepository
	Ledger       *LedgerService
}

func NewBillingService(customerRepo *repositories.CustomerRepository, settingsRepo *repositories.SettingsRepository, ledger *LedgerService) *BillingService {
	return &BillingService{
		CustomerRepo: customerRepo,
		SettingsRepo: settingsRepo,
		Ledger:       ledger,
	}
}

// StatementDay is one calendar day of the month statement. Days without a
// transaction keep all-zero figures but still appear as a row.
type StatementDay struct {
	Date             string  `json:"date"`
	JarsDelivered    int     `json:"jarsDelivered"`
	JarsReturned     int     `json:"jarsReturned"`
	ThermosDelivered int     `json:"thermosDelivered"`
	ThermosReturned  int     `json:"thermosReturned"`
	Amount           float64 `json:"amount"`
	Paid             float64 `json:"paid"`
}

// MonthStatement is the full bill for one customer and month.
type MonthStatement struct {
	Customer     models.Customer `json:"customer"`
	Year         int             `json:"year"`
	Month        int             `json:"month"`
	Days         []StatementDay  `json:"days"`
	TotalJars    int             `json:"totalJars"`
	TotalThermos int             `json:"totalThermos"`
	TotalAmount  float64         `json:"totalAmount"`
	TotalPaid    float64         `json:"totalPaid"`
	NetDue       float64         `json:"netDue"`
}

// Statement enumerates every day 1..daysInMonth for the customer, filling
// figures from the day's transaction when one exists.
func (s *BillingService) Statement(ctx context.Context, customerID string, year, month int) (MonthStatement, error) {
	c, ok := s.CustomerRepo.Get(ctx, customerID)
	if !ok {
		return MonthStatement{}, fmt.Errorf("customer %s not found", customerID)
	}

	byDay := make(map[int]models.Transaction)
	for _, t := range s.Ledger.TransactionsForCustomerInMonth(ctx, customerID, year, month) {
		_, _, day, ok := timeutil.SplitDate(t.Date)
		if ok {
			byDay[day] = t
		}
	}

	st := MonthStatement{Customer: c, Year: year, Month: month}
	for day := 1; day <= timeutil.DaysInMonth(year, month); day++ {
		row := StatementDay{Date: timeutil.MonthDate(year, month, day)}
		if t, ok := byDay[day]; ok {
			row.JarsDelivered = t.JarsDelivered
			row.JarsReturned = t.JarsReturned
			row.ThermosDelivered = t.ThermosDelivered
			row.ThermosReturned = t.ThermosReturned
			row.Amount = models.DailyCost(t, c)
			row.Paid = t.PaymentAmount

			st.TotalJars += t.JarsDelivered
			st.TotalThermos += t.ThermosDelivered
			st.TotalAmount += row.Amount
			st.TotalPaid += row.Paid
		}
		st.Days = append(st.Days, row)
	}
	st.NetDue = st.TotalAmount - st.TotalPaid
	return st, nil
}

// BillPDF renders the month statement as an A4 bill.
func (s *BillingService) BillPDF(ctx context.Context, customerID string, year, month int) ([]byte, error) {
	st, err := s.Statement(ctx, customerID, year, month)
	if err != nil {
		return nil, err
	}
	settings := s.SettingsRepo.Get(ctx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, settings.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, settings.CompanyAddress, "", 1, "C", false, 0, "")
	if settings.CompanyMobile != "" {
		pdf.CellFormat(190, 6, fmt.Sprintf("Mobile: %s", settings.CompanyMobile), "", 1, "C", false, 0, "")
	}
	pdf.Ln(4)

	// Customer block
	pdf.SetFillColor(220, 230, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Bill for %s", FormatMonth(year, month)), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", st.Customer.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Mobile: %s", st.Customer.Mobile), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Area: %s", st.Customer.Area), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("ID: %s", st.Customer.ID), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Daily table
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(35, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Jars", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Returned", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Thermos", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Paid", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, day := range st.Days {
		jars, returned, thermos, amount, paid := "", "", "", "", ""
		if day.JarsDelivered != 0 || day.JarsReturned != 0 || day.ThermosDelivered != 0 || day.Amount != 0 || day.Paid != 0 {
			jars = fmt.Sprintf("%d", day.JarsDelivered)
			returned = fmt.Sprintf("%d", day.JarsReturned)
			thermos = fmt.Sprintf("%d", day.ThermosDelivered)
			amount = fmt.Sprintf("%.2f", day.Amount)
			paid = fmt.Sprintf("%.2f", day.Paid)
		}
		pdf.CellFormat(35, 5.5, day.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 5.5, jars, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 5.5, returned, "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 5.5, thermos, "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 5.5, amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 5.5, paid, "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Summary
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Total Amount: Rs. %.2f", st.TotalAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Total Paid: Rs. %.2f", st.TotalPaid), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Net Due: Rs. %.2f", st.NetDue), "1", 1, "C", false, 0, "")

	if settings.BillFooterNote != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(190, 6, settings.BillFooterNote, "", 1, "C", false, 0, "")
	}
	pdf.Ln(2)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(190, 5, fmt.Sprintf("Generated on %s", timeutil.FormatIST(time.Now(), timeutil.DisplayLayout)), "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SheetPDF renders one day's supply sheet as a printable A4 table: per
// customer the draft entries plus the projected balances.
func (s *BillingService) SheetPDF(ctx context.Context, sheet *SupplySheet) ([]byte, error) {
	settings := s.SettingsRepo.Get(ctx)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, settings.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "B", 12)
	title := fmt.Sprintf("Supply Sheet - %s", sheet.Date)
	if sheet.Area != "" {
		title += fmt.Sprintf(" (%s)", sheet.Area)
	}
	pdf.CellFormat(190, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFillColor(220, 230, 240)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(50, 7, "Customer", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Jars", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Returned", "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, "Thermos", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Paid", "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, "Jar Bal", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Due", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	for _, row := range sheet.Rows {
		projected := Project(row)
		pdf.CellFormat(50, 6, row.Customer.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", row.Draft.JarsDelivered), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", row.Draft.JarsReturned), "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", row.Draft.ThermosDelivered), "1", 0, "C", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%.2f", row.Draft.PaymentAmount), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, fmt.Sprintf("%d", projected.CurrentJarBalance), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", projected.TotalDue), "1", 1, "R", false, 0, "")
	}

	totals := Totals(sheet)
	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(50, 7, "Total", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%d", totals.JarsDelivered), "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%d", totals.JarsReturned), "1", 0, "C", true, 0, "")
	pdf.CellFormat(20, 7, fmt.Sprintf("%d", totals.ThermosDelivered), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%.2f", totals.PaymentAmount), "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 7, fmt.Sprintf("%d", totals.JarBalance), "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", totals.TotalDue), "1", 1, "R", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BulkBillsZip renders one bill PDF per customer for the month and packs
// them into a single ZIP. An area name narrows the run to that area's
// customers. PDFs are generated by a small worker pool.
func (s *BillingService) BulkBillsZip(ctx context.Context, year, month int, area string) ([]byte, error) {
	var customers []models.Customer
	for _, c := range s.CustomerRepo.List(ctx) {
		if area == "" || c.Area == area {
			customers = append(customers, c)
		}
	}

	type result struct {
		name string
		data []byte
		err  error
	}

	jobs := make(chan models.Customer, len(customers))
	results := make(chan result, len(customers))

	var wg sync.WaitGroup
	numWorkers := 5
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				data, err := s.BillPDF(ctx, c.ID, year, month)
				results <- result{name: fmt.Sprintf("%s_%s", c.ID, c.Name), data: data, err: err}
			}
		}()
	}

	for _, c := range customers {
		jobs <- c
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for r := range results {
		if r.err != nil || r.data == nil {
			continue
		}
		fw, err := zw.Create(fmt.Sprintf("bill_%s.pdf", r.name))
		if err != nil {
			continue
		}
		fw.Write(r.data)
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CustomersCSV exports every customer with their current balances.
func (s *BillingService) CustomersCSV(ctx context.Context) ([]byte, error) {
	customers := s.CustomerRepo.List(ctx)
	allStats := s.Ledger.ComputeAllStats(ctx)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{
		"#", "ID", "Name", "Area", "Mobile",
		"Jar Balance", "Thermos Balance", "Total Due", "Status",
	})

	for i, c := range customers {
		stats := allStats[c.ID]
		status := "PAID"
		if stats.TotalDue > 0 {
			status = "DUE"
		}
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			c.ID,
			c.Name,
			c.Area,
			c.Mobile,
			fmt.Sprintf("%d", stats.CurrentJarBalance),
			fmt.Sprintf("%d", stats.CurrentThermosBalance),
			fmt.Sprintf("%.2f", stats.TotalDue),
			status,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
