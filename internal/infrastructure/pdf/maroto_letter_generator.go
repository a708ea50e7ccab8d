// Package pdf implementa la generación de cartas de cobranza en PDF:
// carta de requerimiento (con el aviso de validación de deuda de 30 días),
// estado de cuenta con historial de pagos y acuerdo de pago.
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/cloudcollect/cobranza-api/internal/application/letters"
	"github.com/cloudcollect/cobranza-api/internal/domain/entity"
)

var _ letters.Generator = (*MarotoLetterGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 175}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoLetterGenerator implementa letters.Generator usando Maroto v2.
type MarotoLetterGenerator struct{}

// NewMarotoLetterGenerator construye el generador.
func NewMarotoLetterGenerator() *MarotoLetterGenerator { return &MarotoLetterGenerator{} }

// DemandLetter genera la carta de requerimiento de pago con el texto de
// validación de deuda exigido para cobranza.
func (g *MarotoLetterGenerator) DemandLetter(_ context.Context, debtor *entity.Debtor, company *entity.Company) ([]byte, error) {
	m := newLetterDocument(company, "Demand Letter")

	m.AddRows(companyHeaderRows(company)...)
	m.AddRows(row.New(8).Add(col.New(12).Add(
		text.New(time.Now().Format("January 2, 2006"), props.Text{Size: 9, Align: align.Right, Top: 2}),
	)))

	fullName := debtor.FirstName + " " + debtor.LastName
	m.AddRows(
		row.New(6).Add(col.New(12).Add(text.New(fullName, props.Text{Style: fontstyle.Bold, Size: 10}))),
		row.New(5).Add(col.New(12).Add(text.New(debtor.Address, props.Text{Size: 9}))),
		row.New(8).Add(col.New(12).Add(text.New(
			fmt.Sprintf("%s, %s %s", debtor.City, debtor.State, debtor.Zip), props.Text{Size: 9},
		))),
		row.New(8).Add(col.New(12).Add(text.New(
			"RE: Account Number "+debtor.AccountNumber, props.Text{Style: fontstyle.Bold, Size: 10},
		))),
		row.New(8).Add(col.New(12).Add(text.New("Dear "+fullName+":", props.Text{Size: 9, Top: 2}))),
	)

	creditor := debtor.CreditorName
	if creditor == "" {
		creditor = "the original creditor"
	}
	paragraphs := []string{
		fmt.Sprintf("This letter is to inform you that your account with %s in the amount of $%s is seriously past due.",
			creditor, debtor.CurrentBalance.StringFixed(2)),
		"Unless you contact our office within thirty (30) days after receiving this notice to dispute the validity of this debt or any portion thereof, this office will assume this debt is valid.",
		"If you notify this office in writing within thirty (30) days from receiving this notice that you dispute the validity of this debt or any portion thereof, this office will obtain verification of the debt or obtain a copy of a judgment and mail you a copy of such judgment or verification.",
		"If you request of this office in writing within thirty (30) days after receiving this notice this office will provide you with the name and address of the original creditor, if different from the current creditor.",
		"Please contact our office immediately to resolve this matter.",
	}
	for _, p := range paragraphs {
		m.AddRows(paragraphRow(p))
	}

	m.AddRows(
		row.New(10).Add(col.New(12).Add(text.New("Sincerely,", props.Text{Size: 9, Top: 4}))),
		row.New(8).Add(col.New(12).Add(text.New(companyName(company), props.Text{Style: fontstyle.Bold, Size: 10, Top: 2}))),
		row.New(12).Add(col.New(12).Add(text.New(
			"This communication is from a debt collector and is an attempt to collect a debt. Any information obtained will be used for that purpose.",
			props.Text{Size: 7, Style: fontstyle.Italic, Color: colorGray, Top: 6},
		))),
	)

	return generate(m)
}

// AccountStatement genera el estado de cuenta con datos de contacto,
// teléfonos e historial de pagos.
func (g *MarotoLetterGenerator) AccountStatement(_ context.Context, debtor *entity.Debtor, company *entity.Company, phones []*entity.PhoneNumber, payments []*entity.Payment) ([]byte, error) {
	m := newLetterDocument(company, "Account Statement")

	m.AddRows(titleRow("ACCOUNT STATEMENT"))
	m.AddRows(companyHeaderRows(company)...)
	m.AddRows(sectionRow("ACCOUNT INFORMATION"))
	m.AddRows(
		fieldRow("Account Number: " + debtor.AccountNumber),
		fieldRow("Debtor: "+debtor.FirstName+" "+debtor.LastName),
		fieldRow("Original Creditor: "+nonEmpty(debtor.CreditorName, "N/A")),
		fieldRow("Original Balance: $"+debtor.OriginalBalance.StringFixed(2)),
		fieldRow("Current Balance: $"+debtor.CurrentBalance.StringFixed(2)),
		fieldRow("Status: "+strings.ToUpper(debtor.Status)),
	)

	m.AddRows(sectionRow("CONTACT INFORMATION"))
	m.AddRows(
		fieldRow("Address: "+nonEmpty(debtor.Address, "N/A")),
		fieldRow(fmt.Sprintf("City, State ZIP: %s, %s %s", debtor.City, debtor.State, debtor.Zip)),
		fieldRow("Email: "+nonEmpty(debtor.Email, "N/A")),
	)
	for _, p := range phones {
		label := fmt.Sprintf("Phone (%s): %s", p.Type, p.Number)
		if p.IsPrimary {
			label += " (Primary)"
		}
		m.AddRows(fieldRow(label))
	}

	m.AddRows(sectionRow("PAYMENT HISTORY"))
	if len(payments) == 0 {
		m.AddRows(fieldRow("No payments recorded"))
	}
	for _, p := range payments {
		m.AddRows(fieldRow(fmt.Sprintf("%s - $%s (%s) - %s",
			p.PaymentDate.Format("01/02/2006"),
			p.Amount.StringFixed(2),
			strings.ToUpper(p.Method),
			strings.ToUpper(p.Status),
		)))
	}

	m.AddRows(row.New(10).Add(col.New(12).Add(text.New(
		"Statement generated on "+time.Now().Format("01/02/2006"),
		props.Text{Size: 8, Color: colorGray, Top: 5},
	))))

	return generate(m)
}

// PaymentAgreement genera el acuerdo de pago con sus términos y espacios de
// firma.
func (g *MarotoLetterGenerator) PaymentAgreement(_ context.Context, debtor *entity.Debtor, company *entity.Company) ([]byte, error) {
	m := newLetterDocument(company, "Payment Agreement")

	fullName := debtor.FirstName + " " + debtor.LastName
	m.AddRows(titleRow("PAYMENT AGREEMENT"))
	m.AddRows(paragraphRow(fmt.Sprintf(
		`This Payment Agreement ("Agreement") is entered into on %s between %s ("Company") and %s ("Debtor").`,
		time.Now().Format("01/02/2006"), companyName(company), fullName,
	)))

	m.AddRows(sectionRow("ACCOUNT INFORMATION"))
	m.AddRows(
		fieldRow("Account Number: "+debtor.AccountNumber),
		fieldRow("Total Amount Owed: $"+debtor.CurrentBalance.StringFixed(2)),
	)

	m.AddRows(sectionRow("PAYMENT TERMS"))
	m.AddRows(paragraphRow(fmt.Sprintf(
		"The Debtor agrees to pay the total amount of $%s according to the following schedule:",
		debtor.CurrentBalance.StringFixed(2),
	)))

	m.AddRows(sectionRow("TERMS AND CONDITIONS"))
	m.AddRows(
		fieldRow("1. All payments must be received by the due date specified."),
		fieldRow("2. Failure to make payments as agreed may result in acceleration of the entire balance."),
		fieldRow("3. This agreement does not waive any rights of the Company to collect the debt."),
	)

	m.AddRows(sectionRow("SIGNATURES"))
	m.AddRows(
		row.New(12).Add(col.New(12).Add(text.New(
			"Debtor: _________________________ Date: _________", props.Text{Size: 9, Top: 6},
		))),
		row.New(12).Add(col.New(12).Add(text.New(
			"Company Representative: _________________________ Date: _________", props.Text{Size: 9, Top: 6},
		))),
	)

	return generate(m)
}

// ── Helpers de layout ─────────────────────────────────────────────────────────

func newLetterDocument(company *entity.Company, title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(companyName(company), true).
		Build()
	return maroto.New(cfg)
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// companyHeaderRows: membrete centrado con nombre y datos de contacto.
func companyHeaderRows(company *entity.Company) []core.Row {
	cityLine := fmt.Sprintf("%s, %s %s", company.City, company.State, company.Zip)
	return []core.Row{
		row.New(10).Add(col.New(12).Add(text.New(companyName(company), props.Text{
			Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorPrimary, Top: 1,
		}))),
		row.New(5).Add(col.New(12).Add(text.New(nonEmpty(company.Address, ""), props.Text{
			Size: 9, Align: align.Center,
		}))),
		row.New(5).Add(col.New(12).Add(text.New(cityLine, props.Text{
			Size: 9, Align: align.Center,
		}))),
		row.New(8).Add(col.New(12).Add(text.New(nonEmpty(company.Phone, ""), props.Text{
			Size: 9, Align: align.Center,
		}))),
		line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

func titleRow(title string) core.Row {
	return row.New(12).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorPrimary, Top: 2,
	})))
}

func sectionRow(label string) core.Row {
	return row.New(9).Add(col.New(12).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 4,
	})))
}

func fieldRow(value string) core.Row {
	return row.New(5).Add(col.New(12).Add(text.New(value, props.Text{Size: 9})))
}

func paragraphRow(content string) core.Row {
	return row.New(14).Add(col.New(12).Add(text.New(content, props.Text{Size: 9, Top: 2})))
}

func companyName(company *entity.Company) string {
	return nonEmpty(company.Name, "CloudCollect")
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
