// Command relatorio prints the finance report for a period as terminal
// tables. It reads the same DB_* environment as the API server.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	config "github.com/JoseMiguelMilani/teste-site/configs"
	"github.com/JoseMiguelMilani/teste-site/internal/db"
	"github.com/JoseMiguelMilani/teste-site/internal/finance"
	"github.com/JoseMiguelMilani/teste-site/internal/service"
	"github.com/JoseMiguelMilani/teste-site/internal/store"
	"github.com/JoseMiguelMilani/teste-site/internal/utils"
)

func main() {
	period := flag.String("period", "mes", "report period: semana, mes or ano")
	showRecords := flag.Bool("records", false, "also list the financial records in the window")
	flag.Parse()

	gdb, err := db.Open(config.LoadDatabaseConfig())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	svc := service.New(store.NewGormStore(gdb))
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := svc.Finances(ctx, finance.ParsePeriod(*period))
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	if err := renderReport(os.Stdout, report, *showRecords); err != nil {
		log.Fatalf("Failed to render report: %v", err)
	}
}

func renderReport(w io.Writer, report finance.Report, showRecords bool) error {
	fmt.Fprintf(w, "Relatório financeiro (%s)\n\n", report.Period)

	summary := tablewriter.NewWriter(w)
	summary.Header("Receita", "Despesas", "Lucro líquido", "Lançamentos")
	if err := summary.Append([]string{
		utils.FormatBRL(report.TotalRevenue),
		utils.FormatBRL(report.TotalExpenses),
		utils.FormatBRL(report.NetProfit()),
		strconv.Itoa(len(report.Records)),
	}); err != nil {
		return err
	}
	if err := summary.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nÚltimos 7 dias")
	daily := tablewriter.NewWriter(w)
	daily.Header("Dia", "Receita", "Pedidos")
	for _, p := range report.ChartData.Daily {
		if err := daily.Append([]string{p.Date, utils.FormatBRL(p.Revenue), strconv.Itoa(p.Orders)}); err != nil {
			return err
		}
	}
	if err := daily.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nÚltimos 12 meses")
	monthly := tablewriter.NewWriter(w)
	monthly.Header("Mês", "Receita", "Pedidos")
	for _, p := range report.ChartData.Monthly {
		if err := monthly.Append([]string{p.Month, utils.FormatBRL(p.Revenue), strconv.Itoa(p.Orders)}); err != nil {
			return err
		}
	}
	if err := monthly.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nFormas de pagamento")
	payments := tablewriter.NewWriter(w)
	payments.Header("Forma", "Valor", "Pedidos")
	for _, p := range report.ChartData.PaymentMethods {
		if err := payments.Append([]string{p.Method, utils.FormatBRL(p.Amount), strconv.Itoa(p.Count)}); err != nil {
			return err
		}
	}
	if err := payments.Render(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nTamanhos")
	sizes := tablewriter.NewWriter(w)
	sizes.Header("Tamanho", "Pedidos", "Receita")
	for _, s := range report.ChartData.Sizes {
		if err := sizes.Append([]string{s.Size, strconv.Itoa(s.Count), utils.FormatBRL(s.Revenue)}); err != nil {
			return err
		}
	}
	if err := sizes.Render(); err != nil {
		return err
	}

	if !showRecords {
		return nil
	}

	fmt.Fprintln(w, "\nLançamentos")
	records := tablewriter.NewWriter(w)
	records.Header("Data", "Tipo", "Descrição", "Valor")
	for _, r := range report.Records {
		if err := records.Append([]string{
			r.Date.Format("02/01/2006 15:04"), string(r.Type), r.Description, utils.FormatBRL(r.Amount),
		}); err != nil {
			return err
		}
	}
	return records.Render()
}
