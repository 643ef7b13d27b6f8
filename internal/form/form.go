// Package form renders the embeddable payment form: hidden data/signature
// inputs posted straight to the gateway, plus the gateway's client-side
// script and a submit button labelled in the request's language.
package form

import (
	"fmt"
	"html/template"
	"io"

	"github.com/DeNice-r/liqpay-go/internal/entity"
)

var checkoutTmpl = template.Must(template.New("checkout").Parse(`<form method="POST" action="{{.CheckoutURL}}" accept-charset="utf-8">
	<input type="hidden" name="data" value="{{.Data}}"/>
	<input type="hidden" name="signature" value="{{.Signature}}"/>
	<script type="text/javascript" src="{{.ScriptURL}}"></script>
	<button type="submit">{{.Label}}</button>
</form>
`))

type templateData struct {
	CheckoutURL string
	ScriptURL   string
	Data        string
	Signature   string
	Label       string
}

func Render(w io.Writer, checkoutURL, scriptURL string, p entity.SignedPayload) error {
	label := "Підтримати"
	if p.Params.Language == entity.LanguageEN {
		label = "Donate"
	}

	err := checkoutTmpl.Execute(w, templateData{
		CheckoutURL: checkoutURL,
		ScriptURL:   scriptURL,
		Data:        p.Data,
		Signature:   p.Signature,
		Label:       label,
	})
	if err != nil {
		return fmt.Errorf("execute template: %w", err)
	}

	return nil
}
