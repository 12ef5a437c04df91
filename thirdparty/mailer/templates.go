package mailer

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/muhammadheryan/storefront/model"
	"github.com/shopspring/decimal"
)

const cell = `padding: 8px; border: 1px solid #e5e7eb;`

var funcs = map[string]any{
	"money": func(d decimal.Decimal) string { return "$" + d.StringFixed(2) },
	"unit": func(p decimal.NullDecimal) string {
		if !p.Valid {
			return "TBD"
		}
		return "$" + p.Decimal.StringFixed(2)
	},
	"line": func(it model.OrderItemRequest) string { return "$" + it.LineTotal().StringFixed(2) },
	"lines": func(s string) []string { return strings.Split(s, "\n") },
	"cell":  func() htmltemplate.CSS { return cell },
}

var orderHTML = htmltemplate.Must(htmltemplate.New("order").Funcs(funcs).Parse(`
<h2>New Order Received - #{{.OrderNumber}}</h2>
<h3>Customer Information</h3>
<p>
  <strong>Name:</strong> {{.Customer.Name}}<br>
  <strong>Email:</strong> {{.Customer.Email}}<br>
  <strong>Phone:</strong> {{.Customer.Phone}}
</p>
{{- if .Customer.Address}}
<h3>Delivery Address</h3>
<p>{{.Customer.Address}}<br>{{.Customer.City}}, {{.Customer.State}} {{.Customer.Zip}}</p>
{{- end}}
{{- if .Customer.Notes}}
<h3>Customer Notes</h3>
<p>{{.Customer.Notes}}</p>
{{- end}}
<h3>Order Items</h3>
<table style="width: 100%; border-collapse: collapse;">
  <thead>
    <tr style="background: #f3f4f6;">
      <th style="text-align: left; {{cell}}">Item</th>
      <th style="text-align: center; {{cell}}">Qty</th>
      <th style="text-align: right; {{cell}}">Price</th>
    </tr>
  </thead>
  <tbody>
  {{- range .Items}}
    <tr>
      <td style="{{cell}}">{{.Title}}
        {{- if .PartNumber}}<br><small>Part #{{.PartNumber}}</small>{{end}}
        {{- if .ModelNumber}}<br><small>Model: {{.ModelNumber}}</small>{{end}}</td>
      <td style="text-align: center; {{cell}}">{{.Quantity}}</td>
      <td style="text-align: right; {{cell}}">{{line .}}</td>
    </tr>
  {{- end}}
  </tbody>
  <tfoot>
    <tr style="background: #f3f4f6; font-weight: bold;">
      <td colspan="2" style="{{cell}}">Subtotal</td>
      <td style="text-align: right; {{cell}}">{{money .Subtotal}}</td>
    </tr>
  </tfoot>
</table>
<p style="margin-top: 20px; color: #6b7280;"><em>Please contact the customer to confirm the order and arrange payment/delivery.</em></p>
`))

var orderText = texttemplate.Must(texttemplate.New("order").Funcs(funcs).Parse(`New Order Received - #{{.OrderNumber}}

CUSTOMER
Name: {{.Customer.Name}}
Email: {{.Customer.Email}}
Phone: {{.Customer.Phone}}
{{if .Customer.Address}}
ADDRESS
{{.Customer.Address}}
{{.Customer.City}}, {{.Customer.State}} {{.Customer.Zip}}
{{end}}{{if .Customer.Notes}}
NOTES
{{.Customer.Notes}}
{{end}}
ORDER ITEMS
{{range .Items}}- {{.Title}}{{if .PartNumber}} (Part #{{.PartNumber}}){{end}}{{if .ModelNumber}} (Model: {{.ModelNumber}}){{end}}
   Qty: {{.Quantity}} x {{unit .Price}}
{{end}}
SUBTOTAL: {{money .Subtotal}}

Please contact the customer to confirm the order and arrange payment/delivery.
`))

var contactHTML = htmltemplate.Must(htmltemplate.New("contact").Funcs(funcs).Parse(`
<h2>New Website Inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Phone:</strong> <a href="tel:{{.Phone}}">{{.Phone}}</a></p>
<h3>Message</h3>
<p>{{range $i, $l := lines .Message}}{{if $i}}<br>{{end}}{{$l}}{{end}}</p>
<hr>
<p style="color: #6b7280; font-size: 12px;">This inquiry was submitted through the website contact form.</p>
`))

var contactText = texttemplate.Must(texttemplate.New("contact").Parse(`New Website Inquiry

Name: {{.Name}}
Phone: {{.Phone}}

Message:
{{.Message}}`))

type lowStockView struct {
	Items        []model.LowStockItem
	DashboardURL string
}

var lowStockHTML = htmltemplate.Must(htmltemplate.New("lowstock").Parse(`
<h2>Low Stock Alert</h2>
<p>The following items are running low and need to be reordered:</p>
<ul>
{{- range .Items}}
  <li><strong>{{.Title}}</strong> - {{.Quantity}} left (reorder point: {{.ReorderPoint}})</li>
{{- end}}
</ul>
<p><a href="{{.DashboardURL}}">View Inventory Dashboard</a></p>
`))

var lowStockText = texttemplate.Must(texttemplate.New("lowstock").Parse(`Low Stock Alert

{{range .Items}}- {{.Title}} - {{.Quantity}} left (reorder at {{.ReorderPoint}})
{{end}}
View inventory at: {{.DashboardURL}}`))

func render(h *htmltemplate.Template, t *texttemplate.Template, data any) (string, string, error) {
	var hb, tb bytes.Buffer
	if err := h.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err := t.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func renderOrder(n *model.OrderNotification) (string, string, error) {
	return render(orderHTML, orderText, n)
}

func renderContact(req *model.ContactRequest) (string, string, error) {
	return render(contactHTML, contactText, req)
}

func renderLowStock(items []model.LowStockItem, dashboardURL string) (string, string, error) {
	return render(lowStockHTML, lowStockText, lowStockView{Items: items, DashboardURL: dashboardURL})
}
