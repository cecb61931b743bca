package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"time"

	"bridal-backend/internal/booking"
	"bridal-backend/internal/cache"
	"bridal-backend/internal/config"
	"bridal-backend/internal/repository"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

type contractService struct {
	reservationRepo repository.ReservationRepository
	customerRepo    repository.CustomerRepository
	snapshot        *cache.Snapshot
	business        config.ContractConfig
	currency        string
	baseURL         string
	tmpl            *template.Template
}

func NewContractService(
	reservationRepo repository.ReservationRepository,
	customerRepo repository.CustomerRepository,
	snapshot *cache.Snapshot,
	business config.ContractConfig,
	currency string,
	baseURL string,
) (ContractService, error) {
	tmpl, err := template.New("contract").Parse(contractTemplate)
	if err != nil {
		return nil, err
	}
	return &contractService{
		reservationRepo: reservationRepo,
		customerRepo:    customerRepo,
		snapshot:        snapshot,
		business:        business,
		currency:        currency,
		baseURL:         baseURL,
		tmpl:            tmpl,
	}, nil
}

type contractItem struct {
	Name       string
	RentalCost float64
}

type contractData struct {
	Business      config.ContractConfig
	Currency      string
	ClientName    string
	ClientID      string
	ClientPhone   string
	WeddingDate   string
	PickupAt      string
	ReturnAt      string
	Items         []contractItem
	Subtotal      float64
	Deposit       float64
	Advance       float64
	Total         float64
	Notes         string
	GeneratedDate string
}

func (s *contractService) RenderContract(ctx context.Context, reservationID int32) ([]byte, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	client, err := s.customerRepo.GetByID(ctx, res.ClientID)
	if err != nil {
		return nil, err
	}

	itemByID := make(map[int32]contractItem)
	for _, it := range s.snapshot.Items() {
		itemByID[it.ID] = contractItem{Name: it.Name, RentalCost: it.RentalCost}
	}
	items := make([]contractItem, 0, len(res.ItemIDs))
	for _, id := range res.ItemIDs {
		if it, ok := itemByID[id]; ok {
			items = append(items, it)
		}
	}

	data := contractData{
		Business:      s.business,
		Currency:      s.currency,
		ClientName:    client.Name + " " + client.Surname,
		ClientID:      client.IDNumber,
		ClientPhone:   client.Phone,
		WeddingDate:   res.WeddingDate,
		PickupAt:      booking.CombineDateTime(res.PickupDate, res.PickupTime),
		ReturnAt:      booking.CombineDateTime(res.ReturnDate, res.ReturnTime),
		Items:         items,
		Subtotal:      res.Subtotal,
		Deposit:       res.SecurityDeposit,
		Advance:       res.Advance,
		Total:         res.Total,
		Notes:         res.Notes,
		GeneratedDate: time.Now().Format(booking.DateLayout),
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render contract: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateContractPDF prints the rendered contract page to PDF with
// headless Chrome.
func (s *contractService) GenerateContractPDF(ctx context.Context, reservationID int32) ([]byte, error) {
	// Make sure the reservation renders before spinning up Chrome.
	if _, err := s.RenderContract(ctx, reservationID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	opts := chromedp.DefaultExecAllocatorOptions[:]
	if chromePath := detectChromePath(); chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	opts = append(opts, chromedp.NoSandbox)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/api/v1/reservations/%d/contract/render", s.baseURL, reservationID)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 portrait: 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return pdfBuf, nil
}

// detectChromePath checks CHROME_PATH then common installation paths.
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

const contractTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; margin: 40px; color: #222; }
  h1 { text-align: center; font-size: 22px; }
  .header { text-align: center; margin-bottom: 30px; }
  table { width: 100%; border-collapse: collapse; margin: 20px 0; }
  th, td { border: 1px solid #999; padding: 6px 10px; text-align: left; }
  .totals td { border: none; }
  .totals .label { text-align: right; font-weight: bold; }
  .signature { margin-top: 60px; display: flex; justify-content: space-between; }
  .signature div { width: 40%; border-top: 1px solid #222; padding-top: 6px; text-align: center; }
</style>
</head>
<body>
  <div class="header">
    <h1>{{.Business.BusinessName}}</h1>
    <p>{{.Business.BusinessAddress}} &middot; {{.Business.BusinessPhone}} &middot; {{.Business.BusinessEmail}}</p>
  </div>

  <h1>Rental Contract</h1>
  <p>Client: <strong>{{.ClientName}}</strong>{{if .ClientID}} (ID {{.ClientID}}){{end}}{{if .ClientPhone}}, {{.ClientPhone}}{{end}}</p>
  <p>Wedding date: <strong>{{.WeddingDate}}</strong></p>
  <p>Pickup: {{.PickupAt}}<br>Return: {{.ReturnAt}}</p>

  <table>
    <tr><th>Item</th><th>Rental cost</th></tr>
    {{range .Items}}<tr><td>{{.Name}}</td><td>{{printf "%.2f" .RentalCost}} {{$.Currency}}</td></tr>{{end}}
  </table>

  <table class="totals">
    <tr><td class="label">Subtotal</td><td>{{printf "%.2f" .Subtotal}} {{.Currency}}</td></tr>
    <tr><td class="label">Security deposit</td><td>{{printf "%.2f" .Deposit}} {{.Currency}}</td></tr>
    <tr><td class="label">Advance</td><td>{{printf "%.2f" .Advance}} {{.Currency}}</td></tr>
    <tr><td class="label">Total</td><td>{{printf "%.2f" .Total}} {{.Currency}}</td></tr>
  </table>

  {{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}

  <div class="signature">
    <div>{{.Business.BusinessName}}</div>
    <div>{{.ClientName}}</div>
  </div>

  <p style="margin-top:40px;font-size:12px;">Generated on {{.GeneratedDate}}</p>
</body>
</html>`
