// Package pdfreport renders printable reports for campaigns and kafala cases.
package pdfreport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/sanad-app/sanad-backend/internal/app/models"
	"github.com/sanad-app/sanad-backend/internal/app/models/dto"
)

const (
	labelWidth = 60
	valueWidth = 120
	rowHeight  = 7
)

// Generator renders PDF documents. The organization name appears in every
// report header.
type Generator struct {
	orgName string
}

// NewGenerator creates a PDF report generator.
func NewGenerator(orgName string) *Generator {
	if orgName == "" {
		orgName = "Sanad"
	}
	return &Generator{orgName: orgName}
}

func (g *Generator) newDoc(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 10,
			fmt.Sprintf("%s  |  generated %s  |  page %d",
				g.orgName, time.Now().Format("2006-01-02 15:04"), pdf.PageNo()),
			"", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(47, 91, 124)
	pdf.CellFormat(0, 12, title, "", 1, "L", false, 0, "")
	pdf.SetDrawColor(47, 91, 124)
	pdf.SetLineWidth(0.6)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.Ln(4)
	pdf.SetTextColor(0, 0, 0)
	return pdf
}

func sectionHeader(pdf *fpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetFillColor(234, 240, 245)
	pdf.CellFormat(0, 8, title, "", 1, "L", true, 0, "")
	pdf.Ln(1)
	pdf.SetFont("Helvetica", "", 10)
}

func kvRow(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(labelWidth, rowHeight, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(valueWidth, rowHeight, value, "", 1, "L", false, 0, "")
}

func countRow(pdf *fpdf.Fpdf, label string, value int) {
	kvRow(pdf, label, fmt.Sprintf("%d", value))
}

func moneyRow(pdf *fpdf.Fpdf, label string, value float64) {
	kvRow(pdf, label, fmt.Sprintf("%.2f", value))
}

// CampaignStats renders the full statistics report for one campaign.
func (g *Generator) CampaignStats(stats *dto.CampaignStatsResponse) ([]byte, error) {
	pdf := g.newDoc(fmt.Sprintf("Campaign report: %s", stats.Campaign.Name))

	sectionHeader(pdf, "Campaign")
	kvRow(pdf, "Assistance type", stats.Campaign.AssistanceTypeName)
	kvRow(pdf, "Period", fmt.Sprintf("%s to %s", stats.Campaign.DateStart, stats.Campaign.DateEnd))
	kvRow(pdf, "Location", stats.Campaign.Location)
	kvRow(pdf, "Status", string(stats.Campaign.Status))
	moneyRow(pdf, "Budget", stats.Campaign.Budget)
	countRow(pdf, "Planned beneficiaries", stats.Campaign.PlannedBeneficiaryCount)

	sectionHeader(pdf, "Participants")
	countRow(pdf, "Total", stats.Participants.Total)
	countRow(pdf, "Awaiting", stats.Participants.Awaiting)
	countRow(pdf, "Confirmed", stats.Participants.Confirmed)
	countRow(pdf, "Declined", stats.Participants.Declined)
	g.demographics(pdf, stats.Participants.BySex, stats.Participants.ByAge)

	sectionHeader(pdf, "Beneficiaries")
	countRow(pdf, "Total", stats.Beneficiaries.Total)
	countRow(pdf, "Accepted", stats.Beneficiaries.Accepted)
	countRow(pdf, "Pending", stats.Beneficiaries.Pending)
	countRow(pdf, "Refused", stats.Beneficiaries.Refused)
	g.demographics(pdf, stats.Beneficiaries.BySex, stats.Beneficiaries.ByAge)

	sectionHeader(pdf, "Financials")
	kvRow(pdf, "Coverage rate", fmt.Sprintf("%.2f %%", stats.CoverageRate))
	kvRow(pdf, "Acceptance rate", fmt.Sprintf("%.2f %%", stats.AcceptanceRate))
	moneyRow(pdf, "Unit price", stats.UnitPrice)
	moneyRow(pdf, "Credit needed", stats.CreditNeeded)

	if stats.Devices != nil {
		sectionHeader(pdf, "Hearing aids")
		countRow(pdf, "Unilateral fittings", stats.Devices.Unilateral)
		countRow(pdf, "Bilateral fittings", stats.Devices.Bilateral)
		countRow(pdf, "Devices required", stats.Devices.DeviceCount)
	}

	return render(pdf)
}

func (g *Generator) demographics(pdf *fpdf.Fpdf, sex dto.SexCounts, age dto.AgeBrackets) {
	kvRow(pdf, "By sex", fmt.Sprintf("%d male / %d female", sex.Male, sex.Female))
	kvRow(pdf, "By age", fmt.Sprintf("%d under 15, %d aged 15-64, %d aged 65+",
		age.Under15, age.From15To64, age.Over65))
}

// KafalaSheet renders the printable case sheet for one kafala.
func (g *Generator) KafalaSheet(k *models.Kafala) ([]byte, error) {
	pdf := g.newDoc(fmt.Sprintf("Kafala case %s", k.Reference))

	sectionHeader(pdf, "Guardians")
	kvRow(pdf, "Father", k.FatherName)
	kvRow(pdf, "Father CIN", k.FatherCIN)
	kvRow(pdf, "Mother", k.MotherName)
	kvRow(pdf, "Mother CIN", k.MotherCIN)
	kvRow(pdf, "Marriage date", dateOrDash(k.MarriageDate))

	sectionHeader(pdf, "Child")
	kvRow(pdf, "Name", k.ChildName)
	kvRow(pdf, "Birth date", dateOrDash(k.ChildBirthDate))
	kvRow(pdf, "Sex", string(k.ChildSex))

	sectionHeader(pdf, "File")
	kvRow(pdf, "Reference", k.Reference)
	kvRow(pdf, "Opened", k.CreatedAt.Format("2006-01-02"))
	if k.HasDocument() && k.DocumentName != nil {
		kvRow(pdf, "Attached document", *k.DocumentName)
	} else {
		kvRow(pdf, "Attached document", "none")
	}

	return render(pdf)
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

func render(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("rendering pdf: %w", err)
	}
	return buf.Bytes(), nil
}
