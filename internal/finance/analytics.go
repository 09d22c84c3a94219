// Package finance derives the expense installment plan and the period
// reports shown on the admin finance page.
package finance

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/JoseMiguelMilani/teste-site/internal/models"
)

type Period string

const (
	PeriodSemana Period = "semana"
	PeriodMes    Period = "mes"
	PeriodAno    Period = "ano"
)

// ParsePeriod falls back to mes for anything it does not know.
func ParsePeriod(raw string) Period {
	switch p := Period(strings.ToLower(strings.TrimSpace(raw))); p {
	case PeriodSemana, PeriodMes, PeriodAno:
		return p
	default:
		return PeriodMes
	}
}

// Start is the lower bound of the period window ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodSemana:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodAno:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

type DailyPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type MonthlyPoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

type PaymentMethodPoint struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

type SizePoint struct {
	Size    string  `json:"size"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

type ChartData struct {
	Daily          []DailyPoint         `json:"daily"`
	Monthly        []MonthlyPoint       `json:"monthly"`
	PaymentMethods []PaymentMethodPoint `json:"paymentMethods"`
	Sizes          []SizePoint          `json:"sizes"`
}

type Report struct {
	Period        Period                   `json:"period"`
	Records       []models.FinancialRecord `json:"records"`
	TotalRevenue  float64                  `json:"totalRevenue"`
	TotalExpenses float64                  `json:"totalExpenses"`
	ChartData     ChartData                `json:"chartData"`
}

// NetProfit is revenue minus expenses for the report window.
func (r Report) NetProfit() float64 {
	return r.TotalRevenue - r.TotalExpenses
}

const (
	dailyPoints   = 7
	monthlyPoints = 12
)

var monthAbbr = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Bucket order matters: the first matching token wins.
var paymentBuckets = []struct{ token, label string }{
	{"PIX", "PIX"},
	{"Cartão", "Cartão"},
	{"Dinheiro", "Dinheiro"},
}

var sizeBuckets = []struct{ token, label string }{
	{"pequena", "Pequena"},
	{"media", "Média"},
	{"grande", "Grande"},
}

const otherBucket = "Outros"

// PaymentMethodOf classifies a record by the free text of its description.
func PaymentMethodOf(description string) string {
	return classify(description, paymentBuckets)
}

// SizeOf classifies a record by the free text of its description.
func SizeOf(description string) string {
	return classify(description, sizeBuckets)
}

func classify(description string, buckets []struct{ token, label string }) string {
	for _, b := range buckets {
		if strings.Contains(description, b.token) {
			return b.label
		}
	}
	return otherBucket
}

// Summarize filters records to [period start, now] and aggregates them.
// The daily and monthly series always cover the 7 days and 12 months ending
// at now, whatever the period, but only see records inside the period.
func Summarize(period Period, records []models.FinancialRecord, now time.Time) Report {
	loc := now.Location()
	start := period.Start(now)

	daily := make([]DailyPoint, dailyPoints)
	dayIndex := make(map[string]int, dailyPoints)
	for i := 0; i < dailyPoints; i++ {
		day := now.AddDate(0, 0, -(dailyPoints - 1 - i))
		daily[i].Date = day.Format("02/01")
		dayIndex[day.Format(time.DateOnly)] = i
	}

	monthly := make([]MonthlyPoint, monthlyPoints)
	monthIndex := make(map[int]int, monthlyPoints)
	for i := 0; i < monthlyPoints; i++ {
		first := time.Date(now.Year(), now.Month()-time.Month(monthlyPoints-1-i), 1, 0, 0, 0, 0, loc)
		monthly[i].Month = fmt.Sprintf("%s/%02d", monthAbbr[first.Month()-1], first.Year()%100)
		monthIndex[monthKey(first)] = i
	}

	payments := make(map[string]*PaymentMethodPoint)
	sizes := make(map[string]*SizePoint)

	report := Report{Period: period, Records: make([]models.FinancialRecord, 0)}
	for _, rec := range records {
		if rec.Date.Before(start) || rec.Date.After(now) {
			continue
		}
		report.Records = append(report.Records, rec)

		if rec.Type == models.RecordSaida {
			report.TotalExpenses += rec.Amount
			continue
		}
		if rec.Type != models.RecordEntrada {
			continue
		}
		report.TotalRevenue += rec.Amount

		local := rec.Date.In(loc)
		if i, ok := dayIndex[local.Format(time.DateOnly)]; ok {
			daily[i].Revenue += rec.Amount
			daily[i].Orders++
		}
		if i, ok := monthIndex[monthKey(local)]; ok {
			monthly[i].Revenue += rec.Amount
			monthly[i].Orders++
		}

		method := PaymentMethodOf(rec.Description)
		if payments[method] == nil {
			payments[method] = &PaymentMethodPoint{Method: method}
		}
		payments[method].Amount += rec.Amount
		payments[method].Count++

		size := SizeOf(rec.Description)
		if sizes[size] == nil {
			sizes[size] = &SizePoint{Size: size}
		}
		sizes[size].Revenue += rec.Amount
		sizes[size].Count++
	}

	sort.SliceStable(report.Records, func(i, j int) bool {
		return report.Records[i].Date.After(report.Records[j].Date)
	})

	report.ChartData = ChartData{
		Daily:          daily,
		Monthly:        monthly,
		PaymentMethods: make([]PaymentMethodPoint, 0, len(payments)),
		Sizes:          make([]SizePoint, 0, len(sizes)),
	}
	for _, label := range labels(paymentBuckets) {
		if p := payments[label]; p != nil {
			report.ChartData.PaymentMethods = append(report.ChartData.PaymentMethods, *p)
		}
	}
	for _, label := range labels(sizeBuckets) {
		if s := sizes[label]; s != nil {
			report.ChartData.Sizes = append(report.ChartData.Sizes, *s)
		}
	}

	return report
}

func monthKey(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}

func labels(buckets []struct{ token, label string }) []string {
	out := make([]string, 0, len(buckets)+1)
	for _, b := range buckets {
		out = append(out, b.label)
	}
	return append(out, otherBucket)
}
