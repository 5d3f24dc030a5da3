package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"cloudedge/services"
)

// HandleLeadsExportExcel returns a handler that downloads all captured leads
// as an Excel workbook. The route is registered behind superuser auth.
func HandleLeadsExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("leads", "id != ''", "-created", 0, 0)
		if err != nil {
			log.Printf("leads_export: could not fetch leads: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to fetch leads")
		}

		rows := make([]services.LeadRow, 0, len(records))
		for _, r := range records {
			created := ""
			if dt := r.GetDateTime("created"); !dt.IsZero() {
				created = dt.Time().Format("02 Jan 2006")
			}
			rows = append(rows, services.LeadRow{
				Name:         r.GetString("name"),
				Email:        r.GetString("email"),
				Phone:        r.GetString("phone"),
				Company:      r.GetString("company"),
				ServiceType:  r.GetString("service_type"),
				QuoteRef:     r.GetString("quote_reference"),
				MonthlyPrice: r.GetString("monthly_price"),
				Message:      r.GetString("message"),
				CreatedDate:  created,
			})
		}

		xlsxBytes, err := services.GenerateLeadBook(rows)
		if err != nil {
			log.Printf("leads_export: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("cloudedge-leads-%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
