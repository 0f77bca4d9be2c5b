package carrier

import (
	"net/url"

	"github.com/inoova/shipping-connector/pkg/connector/model"
)

const (
	CodeGLS = "GLS"
	CodeBRT = "BRT"
	CodeDHL = "DHL"
	CodeUPS = "UPS"
)

type trackingURLTemplate func(trackingNumber string) string

func queryTemplate(base string) trackingURLTemplate {
	return func(trackingNumber string) string {
		return base + url.QueryEscape(trackingNumber)
	}
}

var _trackingURLTemplates = map[string]trackingURLTemplate{
	CodeGLS: queryTemplate("https://gls-group.com/IT/it/servizi-online/tracking?match="),
	CodeBRT: queryTemplate("https://vas.brt.it/vas/sped_det_boll.hsm?referer=sped_numspe.htm&numSped="),
	CodeDHL: queryTemplate("https://www.dhl.com/it-it/home/tracking.html?tracking-id="),
	CodeUPS: queryTemplate("https://www.ups.com/track?loc=it_IT&tracknum="),
}

// TrackingURL returns the public tracking page of trackingNumber at the given carrier.
// Codes match exactly; any other code, "ups" included, uses the GLS page.
func TrackingURL(carrierCode, trackingNumber string) string {
	tmpl, ok := _trackingURLTemplates[carrierCode]
	if !ok {
		tmpl = _trackingURLTemplates[model.DefaultCarrier]
	}
	return tmpl(trackingNumber)
}
